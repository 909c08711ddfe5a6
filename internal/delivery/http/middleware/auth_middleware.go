package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"medinote/internal/domain/entity"
	"medinote/internal/usecase"
	"medinote/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const PrincipalKey contextKey = "principal"

type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
	cookieName  string
	log         *logrus.Logger
}

func NewAuthMiddleware(authUsecase usecase.AuthUsecase, cookieName string, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		cookieName:  cookieName,
		log:         log,
	}
}

// Authenticate guards browser routes: a request without a live session
// is redirected to the login page.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.resolve(r)
		if err != nil {
			if isSessionError(err) {
				ClearSessionCookie(w, m.cookieName)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			m.log.Warnf("Failed to authenticate request: %+v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// AuthenticateAPI guards JSON routes and answers 401 instead of redirecting.
func (m *AuthMiddleware) AuthenticateAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.resolve(r)
		if err != nil {
			if isSessionError(err) {
				response.Unauthorized(w, "Authentication required")
				return
			}
			m.log.Warnf("Failed to authenticate request: %+v", err)
			response.InternalServerError(w, "Failed to validate session")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// resolve reads the session token from the cookie, or from a bearer
// header for API clients.
func (m *AuthMiddleware) resolve(r *http.Request) (*entity.Principal, error) {
	token := ""
	if cookie, err := r.Cookie(m.cookieName); err == nil {
		token = cookie.Value
	}
	if token == "" {
		parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}
	if token == "" {
		return nil, usecase.ErrInvalidSession
	}

	return m.authUsecase.Authenticate(r.Context(), token)
}

func isSessionError(err error) bool {
	return errors.Is(err, usecase.ErrInvalidSession) || errors.Is(err, usecase.ErrSessionRevoked)
}

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, principal)
}

// GetPrincipalFromContext extracts the authenticated principal from context
func GetPrincipalFromContext(ctx context.Context) (*entity.Principal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(*entity.Principal)
	return principal, ok && principal != nil
}
