package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nakochan/the-kokoa-engine/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	authCodeSvc domain.AuthCodeService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	authCodeSvc domain.AuthCodeService,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		authCodeSvc: authCodeSvc,
	}
}

// Login implements domain.AuthService. No state is mutated on any path.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidRequest
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !s.passwordSvc.Verify(password, user.Salt, user.PasswordHash) {
		logEvent(domain.NewAuditEvent(domain.UserLoginFailureEvent).
			WithUsername(username).WithError(domain.ErrInvalidCredentials))
		return "", domain.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return "", domain.ErrNotVerified
	}

	token, err := s.tokenSvc.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	logEvent(domain.NewAuditEvent(domain.UserLoginEvent).WithUsername(username))
	return token, nil
}

// Register implements domain.AuthService. Validations run in order and
// short-circuit; the single durable write happens only after all of
// them pass. The lookups are a friendliness fast path -- the unique
// indexes on the users table are what actually guarantee at most one
// winner between concurrent registrations.
func (s *AuthServiceImpl) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if req.Username == "" || req.Nickname == "" || req.Email == "" || req.AuthCode == "" || req.Password == "" {
		return nil, domain.ErrInvalidRequest
	}

	if err := s.checkAvailable(ctx, req); err != nil {
		return nil, err
	}

	decrypted, err := s.authCodeSvc.DecryptCode(req.AuthCode)
	if err != nil || decrypted != req.Email {
		return nil, domain.ErrInvalidAuthCode
	}

	hash, salt, err := s.passwordSvc.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrHashingFailure, err)
	}

	user := &domain.User{
		Username:     req.Username,
		Nickname:     req.Nickname,
		Email:        req.Email,
		PasswordHash: hash,
		Salt:         salt,
		IsVerified:   false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			// lost a race with a concurrent registration
			return nil, s.resolveDuplicate(ctx, req)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logEvent(domain.NewAuditEvent(domain.UserRegistrationEvent).
		WithUsername(req.Username).WithEmail(req.Email))
	return user, nil
}

// ConfirmEmail implements domain.AuthService. Marks the account
// verified once a code matching its email is presented. Idempotent.
func (s *AuthServiceImpl) ConfirmEmail(ctx context.Context, username, authCode string) error {
	if username == "" || authCode == "" {
		return domain.ErrInvalidRequest
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	decrypted, err := s.authCodeSvc.DecryptCode(authCode)
	if err != nil || decrypted != user.Email {
		return domain.ErrInvalidAuthCode
	}

	if user.IsVerified {
		return nil
	}

	if err := s.userRepo.SetVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	logEvent(domain.NewAuditEvent(domain.EmailVerifiedEvent).
		WithUsername(username).WithEmail(user.Email))
	return nil
}

// checkAvailable runs the username/nickname/email pre-checks, in that
// order, mapping each hit to its field-specific duplicate error.
func (s *AuthServiceImpl) checkAvailable(ctx context.Context, req domain.RegisterRequest) error {
	checks := []struct {
		find func() (*domain.User, error)
		dup  error
	}{
		{func() (*domain.User, error) { return s.userRepo.FindByUsername(ctx, req.Username) }, domain.ErrDuplicateUsername},
		{func() (*domain.User, error) { return s.userRepo.FindByNickname(ctx, req.Nickname) }, domain.ErrDuplicateNickname},
		{func() (*domain.User, error) { return s.userRepo.FindByEmail(ctx, req.Email) }, domain.ErrDuplicateEmail},
	}

	for _, c := range checks {
		_, err := c.find()
		if err == nil {
			return c.dup
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("failed to check availability: %w", err)
		}
	}
	return nil
}

// resolveDuplicate re-runs the lookups after a unique constraint
// violation to report which field the loser actually collided on.
func (s *AuthServiceImpl) resolveDuplicate(ctx context.Context, req domain.RegisterRequest) error {
	if err := s.checkAvailable(ctx, req); err != nil {
		return err
	}
	// the winning row disappeared between the insert and the re-check
	return domain.ErrDuplicateUsername
}

func logEvent(ev *domain.AuditEvent) {
	if ev.Success {
		log.Printf("%s: username=%s email=%s timestamp=%s",
			ev.EventType, ev.Username, ev.Email, ev.Timestamp.Format("2006-01-02T15:04:05Z07:00"))
		return
	}
	log.Printf("%s: username=%s email=%s error=%q timestamp=%s",
		ev.EventType, ev.Username, ev.Email, ev.ErrorMsg, ev.Timestamp.Format("2006-01-02T15:04:05Z07:00"))
}
