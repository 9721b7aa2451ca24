package domain

import "errors"

// Authentication errors
var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("email not verified")
)

// Registration errors
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateNickname = errors.New("nickname already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrInvalidAuthCode   = errors.New("invalid auth code")
	ErrHashingFailure    = errors.New("password hashing failed")
	ErrDuplicateKey      = errors.New("unique constraint violated")
)

// Verification code delivery errors
var (
	ErrCodeResendLimit = errors.New("verification code resend limit exceeded")
	ErrMailDelivery    = errors.New("failed to deliver verification mail")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Upload errors
var (
	ErrUnsupportedImage = errors.New("unsupported image format")
)
