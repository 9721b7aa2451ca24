package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nakochan/the-kokoa-engine/internal/config"
	httpx "github.com/nakochan/the-kokoa-engine/internal/http"
	"github.com/nakochan/the-kokoa-engine/internal/http/handlers"
	"github.com/nakochan/the-kokoa-engine/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	authH := handlers.NewAuthHandlers(c.AuthSvc, c.VerificationSvc)
	noticeH := handlers.NewNoticeHandlers(c.NoticeSvc)
	cloudH := handlers.NewCloudHandlers(c.ImageStore)
	jwtMW := middleware.NewAuthMW(c.TokenSvc)

	r := httpx.BuildRouter(authH, noticeH, cloudH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
