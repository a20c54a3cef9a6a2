package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/service"
	"github.com/quietgrove/folio/pkg/httpx"
	"github.com/quietgrove/folio/pkg/slogx"
)

// AuthHandler serves the login/logout/me endpoints.
type AuthHandler struct {
	AuthService   *service.AuthService
	SecureCookies bool
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	User domain.User `json:"user"`
}

// HandleLogin verifies credentials and mints a session. A failed attempt
// returns 401 with no Set-Cookie header; the generic message does not reveal
// whether the email exists.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error("login failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	setSessionCookie(w, token, h.SecureCookies)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, userResponse{User: user})
}

// HandleLogout destroys the session named by the cookie, if any, and clears
// the cookie. Always reports success, even without a cookie.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.AuthService.Logout(ctx, cookie.Value); err != nil {
			// The cookie is cleared regardless; the orphaned row is swept later.
			log.Warn("session delete failed during logout", "error", err)
		}
	}

	clearSessionCookie(w, h.SecureCookies)
	httpx.WriteSuccess(w, http.StatusOK)
}

// HandleMe reports the authenticated user. Runs behind RequireAuth.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, userResponse{User: user})
}
