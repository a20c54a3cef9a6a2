package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quietgrove/folio/internal/portfolio/service"
	"github.com/quietgrove/folio/internal/portfolio/store"
	"github.com/quietgrove/folio/internal/portfolio/store/drivers/sqlite"
	"github.com/quietgrove/folio/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

const (
	testAdminEmail    = "admin@example.com"
	testAdminPassword = "hunter2hunter2"
)

type testEnv struct {
	router *Router
	store  store.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	hash, err := cryptox.HashPassword(testAdminPassword)
	require.NoError(t, err)
	_, err = st.Users().CreateUser(context.Background(), testAdminEmail, hash)
	require.NoError(t, err)

	router := NewRouter(RouterConfig{BuildVersion: "test"}, st, slog.Default())
	router.AuthService = &service.AuthService{Store: st}
	router.ProjectsService = &service.ProjectsService{Store: st}
	router.ExperienceService = &service.ExperienceService{Store: st}
	router.SkillsService = &service.SkillsService{Store: st}
	router.SettingsService = &service.SettingsService{Store: st}
	router.BlogService = &service.BlogService{Store: st}
	router.MessagesService = &service.MessagesService{Store: st}
	router.ApplyRoutes()

	return &testEnv{router: router, store: st}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// login authenticates as the seeded admin and returns the session cookie.
func (e *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName && c.Value != "" {
			return c
		}
	}

	t.Fatal("no session cookie in login response")
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}
