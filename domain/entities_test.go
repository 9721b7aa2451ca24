package domain

import (
	"testing"
	"time"
)

func TestUser_Fields(t *testing.T) {
	now := time.Now()
	user := &User{
		ID:           1,
		Username:     "alice",
		Nickname:     "앨리스",
		Email:        "alice@example.com",
		PasswordHash: []byte{0x01, 0x02},
		Salt:         []byte{0x03, 0x04},
		IsVerified:   true,
		Level:        1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if user.Username != "alice" {
		t.Errorf("expected username alice, got %s", user.Username)
	}
	if string(user.PasswordHash) == "" {
		t.Error("password hash should be set")
	}
	if !user.IsVerified {
		t.Error("expected verified user")
	}
}

func TestNewAuditEvent(t *testing.T) {
	ev := NewAuditEvent(UserRegistrationEvent).
		WithUsername("alice").
		WithEmail("alice@example.com")

	if ev.EventType != UserRegistrationEvent {
		t.Errorf("expected event type %s, got %s", UserRegistrationEvent, ev.EventType)
	}
	if !ev.Success {
		t.Error("new events should default to success")
	}
	if ev.Username != "alice" || ev.Email != "alice@example.com" {
		t.Errorf("unexpected event identity fields: %+v", ev)
	}
	if ev.Timestamp.IsZero() {
		t.Error("timestamp should be populated")
	}
}

func TestAuditEvent_WithError(t *testing.T) {
	ev := NewAuditEvent(UserLoginFailureEvent).WithError(ErrInvalidCredentials)

	if ev.Success {
		t.Error("event with error should not be marked success")
	}
	if ev.ErrorMsg != ErrInvalidCredentials.Error() {
		t.Errorf("expected error message %q, got %q", ErrInvalidCredentials.Error(), ev.ErrorMsg)
	}
}
