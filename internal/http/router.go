package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/nakochan/the-kokoa-engine/internal/http/handlers"
	"github.com/nakochan/the-kokoa-engine/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, nh *handlers.NoticeHandlers, ch *handlers.CloudHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("", ah.Login)
	auth.POST("/register", ah.Register)
	auth.POST("/code", ah.SendCode)
	auth.POST("/verify", ah.ConfirmEmail)
	auth.GET("/check", jwtmw.WithToken(), ah.Check)

	notice := api.Group("/notice")
	notice.GET("", nh.Count)
	notice.POST("/list", nh.List)

	api.POST("/cloud", jwtmw.WithToken(), ch.Upload)

	return r
}
