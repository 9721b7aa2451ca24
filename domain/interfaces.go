package domain

import (
	"context"
	"io"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByNickname(ctx context.Context, nickname string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	SetVerified(ctx context.Context, userID uint) error
}

// NoticeRepository defines announcement data access operations
type NoticeRepository interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]*Notice, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	ConfirmEmail(ctx context.Context, username, authCode string) error
}

// VerificationService delivers email verification codes
type VerificationService interface {
	SendCode(ctx context.Context, email string) error
	CanResend(ctx context.Context, email string) (bool, int64, error)
}

// NoticeService defines announcement business logic
type NoticeService interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, page int) ([]*Notice, error)
}

// PasswordService defines password hashing operations.
// HashWithSalt is deterministic: the same password and salt always
// produce the same hash.
type PasswordService interface {
	Hash(password string) (hash, salt []byte, err error)
	HashWithSalt(password string, salt []byte) ([]byte, error)
	Verify(password string, salt, hash []byte) bool
}

// TokenService defines session token operations
type TokenService interface {
	Issue(username string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// AuthCodeService encrypts an email address into an opaque verification
// code and recovers it again. A code is valid for an email iff it
// decrypts and the plaintext equals that email.
type AuthCodeService interface {
	EncryptEmail(email string) (string, error)
	DecryptCode(code string) (string, error)
}

// Mailer defines outgoing mail operations
type Mailer interface {
	SendVerificationCode(to, code string) error
	Send(to, subject, body string) error
}

// ImageStore persists uploaded images and derives thumbnails
type ImageStore interface {
	Save(r io.Reader) (*StoredImage, error)
}
