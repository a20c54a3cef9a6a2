package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/quietgrove/folio/internal/portfolio/domain"
	"github.com/quietgrove/folio/internal/portfolio/store"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	t.Run("valid credentials set a session cookie", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    testAdminEmail,
			"password": testAdminPassword,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			User domain.User `json:"user"`
		}
		decodeBody(t, rec, &body)
		require.Equal(t, testAdminEmail, body.User.Email)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		require.Equal(t, SessionCookieName, c.Name)
		require.NotEmpty(t, c.Value)
		require.True(t, c.HttpOnly)
		require.Equal(t, http.SameSiteLaxMode, c.SameSite)
		require.Equal(t, "/", c.Path)
		require.Equal(t, int(domain.SessionTTL.Seconds()), c.MaxAge)
	})

	t.Run("wrong password gets 401 and no cookie", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    testAdminEmail,
			"password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Empty(t, rec.Result().Cookies())
		require.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
	})

	t.Run("unknown email gets the same 401", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": testAdminPassword,
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
	})

	t.Run("missing fields get 400", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email": testAdminEmail,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)

	t.Run("no cookie", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/auth/me", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	})

	t.Run("garbage token reads as expired", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/auth/me", nil,
			&http.Cookie{Name: SessionCookieName, Value: "not-a-session"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Session expired"}`, rec.Body.String())
	})

	t.Run("valid session", func(t *testing.T) {
		cookie := env.login(t)

		rec := env.do(t, http.MethodGet, "/api/auth/me", nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			User domain.User `json:"user"`
		}
		decodeBody(t, rec, &body)
		require.Equal(t, testAdminEmail, body.User.Email)
	})

	t.Run("expired session is rejected and deleted", func(t *testing.T) {
		ctx := context.Background()
		user, err := env.store.Users().GetUserByEmail(ctx, testAdminEmail)
		require.NoError(t, err)

		require.NoError(t, env.store.Sessions().CreateSession(ctx, domain.Session{
			ID:        "stale-token",
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(-time.Minute),
		}))

		rec := env.do(t, http.MethodGet, "/api/auth/me", nil,
			&http.Cookie{Name: SessionCookieName, Value: "stale-token"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Session expired"}`, rec.Body.String())

		_, err = env.store.Sessions().GetSession(ctx, "stale-token")
		require.ErrorIs(t, err, store.ErrNotFound)

		// A retry hits the unknown-token path and gets the same answer.
		rec = env.do(t, http.MethodGet, "/api/auth/me", nil,
			&http.Cookie{Name: SessionCookieName, Value: "stale-token"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"error":"Session expired"}`, rec.Body.String())
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	t.Run("revokes the session", func(t *testing.T) {
		cookie := env.login(t)

		rec := env.do(t, http.MethodPost, "/api/auth/logout", nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"success":true}`, rec.Body.String())

		// The cookie is cleared in the response.
		cleared := rec.Result().Cookies()
		require.Len(t, cleared, 1)
		require.Equal(t, SessionCookieName, cleared[0].Name)
		require.Empty(t, cleared[0].Value)

		// The old token no longer authenticates.
		rec = env.do(t, http.MethodGet, "/api/auth/me", nil, cookie)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("without a cookie still succeeds", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/auth/logout", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"success":true}`, rec.Body.String())
	})
}
