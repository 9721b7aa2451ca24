package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/nakochan/the-kokoa-engine/domain"
)

const (
	saltLength = 16
	keyLength  = 64
	iterations = 100_000
)

// PasswordServiceImpl implements domain.PasswordService using
// PBKDF2-SHA512 with a per-user random salt.
type PasswordServiceImpl struct {
	iterations int
	keyLength  int
}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{
		iterations: iterations,
		keyLength:  keyLength,
	}
}

// Hash implements domain.PasswordService. A fresh random salt is
// generated for every call.
func (p *PasswordServiceImpl) Hash(password string) ([]byte, []byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	hash, err := p.HashWithSalt(password, salt)
	if err != nil {
		return nil, nil, err
	}
	return hash, salt, nil
}

// HashWithSalt implements domain.PasswordService. Deterministic for a
// given password and salt.
func (p *PasswordServiceImpl) HashWithSalt(password string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("salt must not be empty")
	}
	return pbkdf2.Key([]byte(password), salt, p.iterations, p.keyLength, sha512.New), nil
}

// Verify implements domain.PasswordService
func (p *PasswordServiceImpl) Verify(password string, salt, hash []byte) bool {
	computed, err := p.HashWithSalt(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(computed, hash) == 1
}
