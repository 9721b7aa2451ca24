package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nakochan/the-kokoa-engine/domain"
)

// VerificationServiceImpl implements domain.VerificationService.
// Resend throttling lives in Redis so it survives restarts and is
// shared across instances.
type VerificationServiceImpl struct {
	userRepo     domain.UserRepository
	authCodeSvc  domain.AuthCodeService
	mailer       domain.Mailer
	redisClient  *redis.Client
	resendWindow time.Duration
}

// NewVerificationService creates a new verification service
func NewVerificationService(
	userRepo domain.UserRepository,
	authCodeSvc domain.AuthCodeService,
	mailer domain.Mailer,
	redisClient *redis.Client,
	resendWindow time.Duration,
) domain.VerificationService {
	return &VerificationServiceImpl{
		userRepo:     userRepo,
		authCodeSvc:  authCodeSvc,
		mailer:       mailer,
		redisClient:  redisClient,
		resendWindow: resendWindow,
	}
}

// SendCode implements domain.VerificationService
func (s *VerificationServiceImpl) SendCode(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrInvalidRequest
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	resendKey := resendThrottleKey(email)
	acquired, err := s.redisClient.SetNX(ctx, resendKey, 1, s.resendWindow).Result()
	if err != nil {
		return fmt.Errorf("failed to set resend throttle: %w", err)
	}
	if !acquired {
		return domain.ErrCodeResendLimit
	}

	code, err := s.authCodeSvc.EncryptEmail(email)
	if err != nil {
		s.redisClient.Del(ctx, resendKey)
		return fmt.Errorf("failed to create auth code: %w", err)
	}

	if err := s.mailer.SendVerificationCode(email, code); err != nil {
		// release the throttle so the user can retry right away
		s.redisClient.Del(ctx, resendKey)
		logEvent(domain.NewAuditEvent(domain.CodeRequestFailedEvent).
			WithEmail(email).WithError(err))
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	logEvent(domain.NewAuditEvent(domain.CodeRequestedEvent).WithEmail(email))
	return nil
}

// CanResend implements domain.VerificationService
func (s *VerificationServiceImpl) CanResend(ctx context.Context, email string) (bool, int64, error) {
	ttl, err := s.redisClient.TTL(ctx, resendThrottleKey(email)).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	if ttl <= 0 {
		return true, 0, nil
	}
	return false, int64(ttl.Seconds()), nil
}

func resendThrottleKey(email string) string {
	return "authcode:res:" + email
}
