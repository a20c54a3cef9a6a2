package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/service"
	"github.com/quietgrove/folio/internal/portfolio/store"
	"github.com/quietgrove/folio/pkg/httpx"
	"github.com/quietgrove/folio/pkg/slogx"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session"

type ctxKeyUser struct{}

// UserFromContext returns the authenticated user placed there by RequireAuth.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxKeyUser{}).(domain.User)
	return u, ok
}

// RequireAuth guards admin routes. It resolves the session cookie to a user
// and rejects everything else with 401. A missing cookie answers
// "Unauthorized"; any token that no longer resolves to a session, expired or
// unknown alike, answers "Session expired" so clients cannot tell the two
// apart.
func RequireAuth(auth *service.AuthService, secureCookies bool) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			userID, err := auth.GetSession(ctx, cookie.Value)
			if err != nil {
				switch {
				case errors.Is(err, service.ErrSessionExpired), errors.Is(err, store.ErrNotFound):
					clearSessionCookie(w, secureCookies)
					httpx.WriteError(w, http.StatusUnauthorized, "Session expired")
				default:
					log.Error("session lookup failed", "error", err)
					httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
				}
				return
			}

			user, err := auth.GetUserByID(ctx, userID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					httpx.WriteError(w, http.StatusUnauthorized, "User not found")
					return
				}
				log.Error("user lookup failed", "user_id", userID, "error", err)
				httpx.WriteError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, ctxKeyUser{}, user)))
		})
	}
}

func setSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(domain.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
