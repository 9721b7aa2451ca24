package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/nakochan/the-kokoa-engine/domain"
)

const nonceSize = 12

// AuthCodeServiceImpl implements domain.AuthCodeService using AES-GCM.
// A code is the base64url encoding of nonce || ciphertext, where the
// plaintext is the email address the code was issued for.
type AuthCodeServiceImpl struct {
	key []byte
}

// NewAuthCodeService creates an auth code service. The AES key is
// derived from the configured secret so operators can use any string.
func NewAuthCodeService(secret string) domain.AuthCodeService {
	key := sha256.Sum256([]byte(secret))
	return &AuthCodeServiceImpl{key: key[:]}
}

// EncryptEmail implements domain.AuthCodeService
func (s *AuthCodeServiceImpl) EncryptEmail(email string) (string, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := aesgcm.Seal(nonce, nonce, []byte(email), nil)
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

// DecryptCode implements domain.AuthCodeService. Any malformed or
// tampered code fails with ErrInvalidAuthCode; garbled input is never
// silently accepted.
func (s *AuthCodeServiceImpl) DecryptCode(code string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return "", domain.ErrInvalidAuthCode
	}
	if len(raw) <= nonceSize {
		return "", domain.ErrInvalidAuthCode
	}

	block, err := aes.NewCipher(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	plaintext, err := aesgcm.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", domain.ErrInvalidAuthCode
	}

	return string(plaintext), nil
}
