package domain

import "time"

// User represents a community member.
// Username, Nickname and Email are each globally unique.
type User struct {
	ID           uint
	Username     string
	Nickname     string
	Email        string
	PasswordHash []byte
	Salt         []byte
	IsVerified   bool
	Level        int
	Exp          int
	Point        int
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Notice represents a site announcement shown on the front page.
type Notice struct {
	ID        uint
	Title     string
	Content   string
	CreatedAt time.Time
}

// RegisterRequest represents a new account registration
type RegisterRequest struct {
	Username string
	Nickname string
	Email    string
	AuthCode string
	Password string
}

// TokenClaims represents the payload of a session token
type TokenClaims struct {
	Username  string `json:"jti"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// StoredImage describes an uploaded image after processing
type StoredImage struct {
	Filename string
	Width    int
	Height   int
}
