package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/nakochan/the-kokoa-engine/domain"
	"github.com/nakochan/the-kokoa-engine/internal/mocks"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() { mr.Close() })

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, client
}

func TestVerificationServiceImpl_SendCode(t *testing.T) {
	_, client := setupTestRedis(t)
	mailer := &mocks.MockMailer{}

	svc := NewVerificationService(mocks.NewMockUserRepository(), &mocks.MockAuthCodeService{}, mailer, client, time.Minute)

	if err := svc.SendCode(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mailer.SentTo) != 1 || mailer.SentTo[0] != "alice@example.com" {
		t.Errorf("expected one mail to alice@example.com, got %v", mailer.SentTo)
	}
	if mailer.SentCodes[0] != "code_alice@example.com" {
		t.Errorf("expected encrypted email as code, got %q", mailer.SentCodes[0])
	}
}

func TestVerificationServiceImpl_SendCode_EmptyEmail(t *testing.T) {
	_, client := setupTestRedis(t)
	svc := NewVerificationService(mocks.NewMockUserRepository(), &mocks.MockAuthCodeService{}, &mocks.MockMailer{}, client, time.Minute)

	if err := svc.SendCode(context.Background(), ""); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestVerificationServiceImpl_SendCode_RegisteredEmail(t *testing.T) {
	_, client := setupTestRedis(t)
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{Email: email}, nil
	}

	svc := NewVerificationService(userRepo, &mocks.MockAuthCodeService{}, &mocks.MockMailer{}, client, time.Minute)

	if err := svc.SendCode(context.Background(), "alice@example.com"); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestVerificationServiceImpl_SendCode_Throttled(t *testing.T) {
	mr, client := setupTestRedis(t)
	mailer := &mocks.MockMailer{}
	svc := NewVerificationService(mocks.NewMockUserRepository(), &mocks.MockAuthCodeService{}, mailer, client, time.Minute)
	ctx := context.Background()

	if err := svc.SendCode(ctx, "alice@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// second request inside the window is rejected
	if err := svc.SendCode(ctx, "alice@example.com"); !errors.Is(err, domain.ErrCodeResendLimit) {
		t.Fatalf("expected ErrCodeResendLimit, got %v", err)
	}

	canResend, wait, err := svc.CanResend(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if canResend {
		t.Error("expected resend to be throttled")
	}
	if wait <= 0 {
		t.Errorf("expected positive wait, got %d", wait)
	}

	// a different address is unaffected
	if err := svc.SendCode(ctx, "bob@example.com"); err != nil {
		t.Fatalf("unexpected error for other address: %v", err)
	}

	// after the window passes the original address may resend
	mr.FastForward(2 * time.Minute)
	if err := svc.SendCode(ctx, "alice@example.com"); err != nil {
		t.Fatalf("expected resend after window, got %v", err)
	}

	if len(mailer.SentTo) != 3 {
		t.Errorf("expected 3 delivered mails, got %d", len(mailer.SentTo))
	}
}

func TestVerificationServiceImpl_SendCode_MailFailureReleasesThrottle(t *testing.T) {
	_, client := setupTestRedis(t)
	mailer := &mocks.MockMailer{
		SendVerificationCodeFunc: func(to, code string) error {
			return errors.New("smtp unreachable")
		},
	}
	svc := NewVerificationService(mocks.NewMockUserRepository(), &mocks.MockAuthCodeService{}, mailer, client, time.Minute)
	ctx := context.Background()

	if err := svc.SendCode(ctx, "alice@example.com"); !errors.Is(err, domain.ErrMailDelivery) {
		t.Fatalf("expected ErrMailDelivery, got %v", err)
	}

	canResend, _, err := svc.CanResend(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !canResend {
		t.Error("throttle should be released when delivery fails")
	}
}
