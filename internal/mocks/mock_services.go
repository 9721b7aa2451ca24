package mocks

import (
	"context"
	"io"

	"github.com/nakochan/the-kokoa-engine/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc         func(password string) ([]byte, []byte, error)
	HashWithSaltFunc func(password string, salt []byte) ([]byte, error)
	VerifyFunc       func(password string, salt, hash []byte) bool
}

func (m *MockPasswordService) Hash(password string) ([]byte, []byte, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: transparent hash with a fixed salt
	return []byte("hashed_" + password), []byte("salt"), nil
}

func (m *MockPasswordService) HashWithSalt(password string, salt []byte) ([]byte, error) {
	if m.HashWithSaltFunc != nil {
		return m.HashWithSaltFunc(password, salt)
	}
	return []byte("hashed_" + password), nil
}

func (m *MockPasswordService) Verify(password string, salt, hash []byte) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, salt, hash)
	}
	return string(hash) == "hashed_"+password
}

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueFunc    func(username string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

func (m *MockTokenService) Issue(username string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(username)
	}
	return "token_" + username, nil
}

func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// MockAuthCodeService implements domain.AuthCodeService for testing
type MockAuthCodeService struct {
	EncryptEmailFunc func(email string) (string, error)
	DecryptCodeFunc  func(code string) (string, error)
}

func (m *MockAuthCodeService) EncryptEmail(email string) (string, error) {
	if m.EncryptEmailFunc != nil {
		return m.EncryptEmailFunc(email)
	}
	return "code_" + email, nil
}

func (m *MockAuthCodeService) DecryptCode(code string) (string, error) {
	if m.DecryptCodeFunc != nil {
		return m.DecryptCodeFunc(code)
	}
	if len(code) > 5 && code[:5] == "code_" {
		return code[5:], nil
	}
	return "", domain.ErrInvalidAuthCode
}

// MockMailer implements domain.Mailer for testing
type MockMailer struct {
	SendVerificationCodeFunc func(to, code string) error
	SendFunc                 func(to, subject, body string) error

	SentTo    []string
	SentCodes []string
}

func (m *MockMailer) SendVerificationCode(to, code string) error {
	m.SentTo = append(m.SentTo, to)
	m.SentCodes = append(m.SentCodes, code)
	if m.SendVerificationCodeFunc != nil {
		return m.SendVerificationCodeFunc(to, code)
	}
	return nil
}

func (m *MockMailer) Send(to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(to, subject, body)
	}
	return nil
}

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	LoginFunc        func(ctx context.Context, username, password string) (string, error)
	RegisterFunc     func(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	ConfirmEmailFunc func(ctx context.Context, username, authCode string) error
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return "token_" + username, nil
}

func (m *MockAuthService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return &domain.User{Username: req.Username}, nil
}

func (m *MockAuthService) ConfirmEmail(ctx context.Context, username, authCode string) error {
	if m.ConfirmEmailFunc != nil {
		return m.ConfirmEmailFunc(ctx, username, authCode)
	}
	return nil
}

// MockVerificationService implements domain.VerificationService for testing
type MockVerificationService struct {
	SendCodeFunc  func(ctx context.Context, email string) error
	CanResendFunc func(ctx context.Context, email string) (bool, int64, error)
}

func (m *MockVerificationService) SendCode(ctx context.Context, email string) error {
	if m.SendCodeFunc != nil {
		return m.SendCodeFunc(ctx, email)
	}
	return nil
}

func (m *MockVerificationService) CanResend(ctx context.Context, email string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, email)
	}
	return true, 0, nil
}

// MockNoticeService implements domain.NoticeService for testing
type MockNoticeService struct {
	CountFunc func(ctx context.Context) (int64, error)
	ListFunc  func(ctx context.Context, page int) ([]*domain.Notice, error)
}

func (m *MockNoticeService) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockNoticeService) List(ctx context.Context, page int) ([]*domain.Notice, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page)
	}
	return nil, nil
}

// MockImageStore implements domain.ImageStore for testing
type MockImageStore struct {
	SaveFunc func(r io.Reader) (*domain.StoredImage, error)
}

func (m *MockImageStore) Save(r io.Reader) (*domain.StoredImage, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(r)
	}
	return &domain.StoredImage{Filename: "stored.jpg", Width: 1, Height: 1}, nil
}
