package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quietgrove/folio/internal/portfolio/service"
	"github.com/quietgrove/folio/internal/portfolio/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	const origin = "https://folio.example"

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	router := NewRouter(RouterConfig{
		BuildVersion: "test",
		CORSOrigins:  []string{origin},
	}, st, slog.Default())
	router.AuthService = &service.AuthService{Store: st}
	router.ProjectsService = &service.ProjectsService{Store: st}
	router.ExperienceService = &service.ExperienceService{Store: st}
	router.SkillsService = &service.SkillsService{Store: st}
	router.SettingsService = &service.SettingsService{Store: st}
	router.BlogService = &service.BlogService{Store: st}
	router.MessagesService = &service.MessagesService{Store: st}
	router.ApplyRoutes()

	t.Run("allowed origin gets credentialed headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("disallowed origin gets no allow header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight allows admin methods", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/admin/projects/site", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
		require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
	})
}
