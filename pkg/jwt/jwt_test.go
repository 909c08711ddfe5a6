package jwt

import (
	"testing"
	"time"

	"medinote/config"

	"github.com/google/uuid"
)

func newTestService() *JWTService {
	return NewJWTService(config.SessionConfig{Secret: "test-secret", TTL: time.Hour})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, sessionID, err := svc.GenerateSessionToken(userID, "drsmith", "doctor")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	if sessionID == "" {
		t.Fatal("expected a session id")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Username != "drsmith" || claims.Role != "doctor" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.SessionID != sessionID {
		t.Errorf("SessionID = %q, want %q", claims.SessionID, sessionID)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newTestService().GenerateSessionToken(uuid.New(), "u", "admin")
	if err != nil {
		t.Fatal(err)
	}

	other := NewJWTService(config.SessionConfig{Secret: "other", TTL: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected error for token signed with another secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService()
	token, _, err := svc.GenerateSessionToken(uuid.New(), "u", "admin")
	if err != nil {
		t.Fatal(err)
	}

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := newTestService().ValidateToken("not-a-token"); err == nil {
		t.Error("expected error")
	}
}
