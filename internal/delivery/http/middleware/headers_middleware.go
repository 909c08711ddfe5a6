package middleware

import "net/http"

type HeadersMiddleware struct {
}

func NewHeadersMiddleware() *HeadersMiddleware {
	return &HeadersMiddleware{}
}

// Handle sets the security headers for server-rendered pages holding
// patient data.
func (m *HeadersMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "same-origin")
		h.Set("Cache-Control", "no-store")

		next.ServeHTTP(w, req)
	})
}
