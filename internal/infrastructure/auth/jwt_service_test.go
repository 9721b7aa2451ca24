package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/nakochan/the-kokoa-engine/domain"
)

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", "kokoa-test", 24*time.Hour)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error validating token: %v", err)
	}

	if claims.Username != "alice" {
		t.Errorf("expected username alice, got %s", claims.Username)
	}

	lifetime := claims.ExpiresAt - claims.IssuedAt
	if lifetime != int64((24 * time.Hour).Seconds()) {
		t.Errorf("expected 24h lifetime, got %d seconds", lifetime)
	}
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "kokoa-test", time.Hour)
	verifier := NewJWTService("secret-b", "kokoa-test", time.Hour)

	token, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_Validate_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", "kokoa-test", -time.Hour)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Validate(token)
	if err == nil {
		t.Fatal("expected validation of expired token to fail")
	}
	// jwt/v5 rejects expired tokens during Parse, before our own exp check
	if !errors.Is(err, domain.ErrTokenInvalid) && !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected token invalid/expired, got %v", err)
	}
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", "kokoa-test", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(token); err == nil {
			t.Errorf("expected error for token %q", token)
		}
	}
}
