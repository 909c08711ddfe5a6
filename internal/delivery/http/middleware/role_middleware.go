package middleware

import (
	"net/http"
	"strings"

	"medinote/internal/delivery/http/view"
	"medinote/internal/domain/entity"
	"medinote/pkg/response"
)

type PermissionMiddleware struct {
	renderer *view.Renderer
}

func NewPermissionMiddleware(renderer *view.Renderer) *PermissionMiddleware {
	return &PermissionMiddleware{renderer: renderer}
}

// Require creates a middleware that lets the request through only when the
// principal's role grants perm. Principal is read from context (set by
// AuthMiddleware).
func (m *PermissionMiddleware) Require(perm entity.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipalFromContext(r.Context())
			if !ok {
				if isAPIRequest(r) {
					response.Unauthorized(w, "Authentication required")
				} else {
					http.Redirect(w, r, "/login", http.StatusSeeOther)
				}
				return
			}

			if !principal.Can(perm) {
				const msg = "You don't have permission to perform this action"
				if isAPIRequest(r) {
					response.Forbidden(w, msg)
				} else {
					m.renderer.RenderError(w, http.StatusForbidden, principal, msg)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}
