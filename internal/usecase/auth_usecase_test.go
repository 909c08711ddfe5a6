package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"medinote/config"
	"medinote/internal/delivery/dto"
	"medinote/internal/domain/entity"
	"medinote/internal/testutil"
	"medinote/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

func newTestAuthUsecase(t *testing.T) (AuthUsecase, *testutil.UserRepo, *testutil.SessionStore) {
	t.Helper()
	users := testutil.NewUserRepo()
	sessions := testutil.NewSessionStore()
	jwtService := jwt.NewJWTService(config.SessionConfig{Secret: "secret", TTL: time.Hour})

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if err := users.Create(context.Background(), &entity.User{Username: "drsmith", Password: string(hash), Role: entity.RoleDoctor}); err != nil {
		t.Fatal(err)
	}

	return NewAuthUsecase(testutil.NewLogger(), users, jwtService, sessions), users, sessions
}

func TestLogin_Success(t *testing.T) {
	uc, _, sessions := newTestAuthUsecase(t)
	ctx := context.Background()

	res, err := uc.Login(ctx, &dto.LoginRequest{Username: "drsmith", Password: "s3cret!"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token == "" || res.ExpiresIn != 3600 {
		t.Errorf("unexpected login response: %+v", res)
	}
	if res.User.Role != "doctor" {
		t.Errorf("Role = %q", res.User.Role)
	}
	if len(sessions.Sessions) != 1 {
		t.Errorf("expected one stored session, got %d", len(sessions.Sessions))
	}

	principal, err := uc.Authenticate(ctx, res.Token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if principal.Username != "drsmith" || principal.Role != entity.RoleDoctor {
		t.Errorf("unexpected principal: %+v", principal)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc, _, _ := newTestAuthUsecase(t)

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"wrong password", dto.LoginRequest{Username: "drsmith", Password: "nope"}},
		{"unknown user", dto.LoginRequest{Username: "ghost", Password: "s3cret!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), &tt.req)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	uc, _, _ := newTestAuthUsecase(t)
	ctx := context.Background()

	res, err := uc.Login(ctx, &dto.LoginRequest{Username: "drsmith", Password: "s3cret!"})
	if err != nil {
		t.Fatal(err)
	}
	principal, err := uc.Authenticate(ctx, res.Token)
	if err != nil {
		t.Fatal(err)
	}

	if err := uc.Logout(ctx, principal); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if _, err := uc.Authenticate(ctx, res.Token); !errors.Is(err, ErrSessionRevoked) {
		t.Errorf("expected ErrSessionRevoked, got %v", err)
	}
}

func TestAuthenticate_BadToken(t *testing.T) {
	uc, _, _ := newTestAuthUsecase(t)
	if _, err := uc.Authenticate(context.Background(), "garbage"); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession, got %v", err)
	}
}

func TestAuthenticate_FollowsStoredUser(t *testing.T) {
	uc, users, _ := newTestAuthUsecase(t)
	ctx := context.Background()

	res, err := uc.Login(ctx, &dto.LoginRequest{Username: "drsmith", Password: "s3cret!"})
	if err != nil {
		t.Fatal(err)
	}

	demoted := users.Users["drsmith"]
	demoted.Role = entity.RoleAdmin
	users.Users["drsmith"] = demoted

	principal, err := uc.Authenticate(ctx, res.Token)
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if principal.Role != entity.RoleAdmin || principal.Can(entity.PermissionPatientWrite) {
		t.Errorf("role change not applied: %+v", principal)
	}

	delete(users.Users, "drsmith")
	if _, err := uc.Authenticate(ctx, res.Token); !errors.Is(err, ErrSessionRevoked) {
		t.Errorf("expected ErrSessionRevoked for removed user, got %v", err)
	}
}
