package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/nakochan/the-kokoa-engine/domain"
	"github.com/nakochan/the-kokoa-engine/internal/config"
	"github.com/nakochan/the-kokoa-engine/internal/infrastructure/auth"
	"github.com/nakochan/the-kokoa-engine/internal/infrastructure/database"
	"github.com/nakochan/the-kokoa-engine/internal/infrastructure/notifications"
	"github.com/nakochan/the-kokoa-engine/internal/infrastructure/repositories"
	"github.com/nakochan/the-kokoa-engine/internal/infrastructure/storage"
	"github.com/nakochan/the-kokoa-engine/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo   domain.UserRepository
	NoticeRepo domain.NoticeRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	AuthCodeSvc     domain.AuthCodeService
	Mailer          domain.Mailer
	ImageStore      domain.ImageStore
	AuthSvc         domain.AuthService
	VerificationSvc domain.VerificationService
	NoticeSvc       domain.NoticeService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	c.DB = db

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.RedisClient = rdb.Client

	c.UserRepo = repositories.NewUserRepository(db)
	c.NoticeRepo = repositories.NewNoticeRepository(db)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	c.AuthCodeSvc = auth.NewAuthCodeService(cfg.AuthCodeSecret)

	mailer, err := notifications.NewSMTPMailer(cfg.SMTP)
	if err != nil {
		return nil, err
	}
	c.Mailer = mailer

	imageStore, err := storage.NewLocalImageStore(cfg.ImageDir, cfg.ImageMaxWidth, cfg.ThumbSize, cfg.JPEGQuality)
	if err != nil {
		return nil, err
	}
	c.ImageStore = imageStore

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.AuthCodeSvc)
	c.VerificationSvc = services.NewVerificationService(c.UserRepo, c.AuthCodeSvc, c.Mailer, c.RedisClient, cfg.CodeResendWindow)
	c.NoticeSvc = services.NewNoticeService(c.NoticeRepo)

	return c, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
