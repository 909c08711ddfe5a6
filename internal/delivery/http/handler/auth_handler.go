package handler

import (
	"errors"
	"net/http"
	"strings"

	"medinote/config"
	"medinote/internal/delivery/dto"
	"medinote/internal/delivery/http/middleware"
	"medinote/internal/delivery/http/view"
	"medinote/internal/usecase"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	renderer    *view.Renderer
	session     config.SessionConfig
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, renderer *view.Renderer, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		renderer:    renderer,
		session:     session,
	}
}

// Root sends everyone to the dashboard; the auth middleware there bounces
// anonymous visitors to the login page.
func (h *AuthHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, view.PageLogin, view.Page{
		Title: "Login",
		Flash: popFlash(w, r),
	})
}

// Login handles the login form
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req := dto.LoginRequest{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}

	if req.Username == "" || req.Password == "" {
		h.renderLoginError(w, http.StatusBadRequest, req.Username, "Username and password are required")
		return
	}

	res, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			h.renderLoginError(w, http.StatusUnauthorized, req.Username, "Invalid username or password")
			return
		}
		h.renderer.RenderError(w, http.StatusInternalServerError, nil, "Failed to login")
		return
	}

	middleware.SetSessionCookie(w, h.session.CookieName, res.Token, h.session.TTL, h.session.CookieSecure)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout ends the current session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipalFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := h.authUsecase.Logout(r.Context(), principal); err != nil {
		h.renderer.RenderError(w, http.StatusInternalServerError, principal, "Failed to logout")
		return
	}

	middleware.ClearSessionCookie(w, h.session.CookieName)
	setFlash(w, "You have been logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, status int, username, msg string) {
	h.renderer.Render(w, status, view.PageLogin, view.Page{
		Title:    "Login",
		Message:  msg,
		Username: username,
	})
}
