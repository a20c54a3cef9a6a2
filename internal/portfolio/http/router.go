package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/quietgrove/folio/internal/portfolio/service"
	"github.com/quietgrove/folio/internal/portfolio/store"
	"github.com/quietgrove/folio/pkg/httpx"
	"github.com/quietgrove/folio/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion  string
	startTime     time.Time
	logger        *slog.Logger
	secureCookies bool
	staticDir     string

	store             store.Store
	AuthService       *service.AuthService
	ProjectsService   *service.ProjectsService
	ExperienceService *service.ExperienceService
	SkillsService     *service.SkillsService
	SettingsService   *service.SettingsService
	BlogService       *service.BlogService
	MessagesService   *service.MessagesService
}

// RouterConfig carries the non-service knobs for NewRouter.
type RouterConfig struct {
	BuildVersion  string
	SecureCookies bool
	StaticDir     string
	CORSOrigins   []string
}

func NewRouter(cfg RouterConfig, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		buildVersion:  cfg.BuildVersion,
		startTime:     time.Now(),
		logger:        logger,
		secureCookies: cfg.SecureCookies,
		staticDir:     cfg.StaticDir,
		store:         st,
	}

	// Credentialed CORS forbids the * wildcard, so the allowlist is explicit.
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           600,
	})

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		c.Handler,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProjects()
	r.registerExperience()
	r.registerSkills()
	r.registerSettings()
	r.registerBlog()
	r.registerMessages()
	r.registerSystem()

	if r.staticDir != "" {
		r.Mux.Handle("/", SPAHandler(r.staticDir))
	}
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps admin handlers with session authentication.
func (r *Router) secured(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, RequireAuth(r.AuthService, r.secureCookies))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:   r.AuthService,
		SecureCookies: r.secureCookies,
	}

	// POST /login - strict rate limit by IP (credential guessing)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /api/auth/logout", http.HandlerFunc(h.HandleLogout))
	r.Mux.Handle("GET /api/auth/me", r.secured(h.HandleMe))
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{ProjectsService: r.ProjectsService}

	r.Mux.Handle("GET /api/projects",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/projects/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// reorder precedes {id} routes so the literal segment stays unambiguous
	r.Mux.Handle("POST /api/admin/projects/reorder", r.secured(h.HandleReorder))
	r.Mux.Handle("POST /api/admin/projects", r.secured(h.HandleCreate))
	r.Mux.Handle("PUT /api/admin/projects/{id}", r.secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/admin/projects/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerExperience() {
	h := &ExperienceHandler{ExperienceService: r.ExperienceService}

	r.Mux.Handle("GET /api/experience",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/experience/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("POST /api/admin/experience/reorder", r.secured(h.HandleReorder))
	r.Mux.Handle("POST /api/admin/experience", r.secured(h.HandleCreate))
	r.Mux.Handle("PUT /api/admin/experience/{id}", r.secured(h.HandleUpdate))
	// trailing-slash form prunes rows that were created with an empty id
	r.Mux.Handle("DELETE /api/admin/experience/{$}", r.secured(h.HandlePruneEmpty))
	r.Mux.Handle("DELETE /api/admin/experience/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerSkills() {
	h := &SkillsHandler{SkillsService: r.SkillsService}

	r.Mux.Handle("GET /api/skills",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/skills/category/{category}",
		httpx.Chain(http.HandlerFunc(h.HandleListByCategory),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("POST /api/admin/skills/reorder", r.secured(h.HandleReorder))
	r.Mux.Handle("POST /api/admin/skills", r.secured(h.HandleCreate))
	r.Mux.Handle("PUT /api/admin/skills/{id}", r.secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/admin/skills/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerSettings() {
	h := &SettingsHandler{SettingsService: r.SettingsService}

	r.Mux.Handle("GET /api/settings",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/settings/{key}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("PUT /api/admin/settings/{key}", r.secured(h.HandleSet))
}

func (r *Router) registerBlog() {
	h := &BlogHandler{BlogService: r.BlogService}

	r.Mux.Handle("GET /api/blog",
		httpx.Chain(http.HandlerFunc(h.HandleListPublished),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /api/blog/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGetPublished),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	r.Mux.Handle("GET /api/admin/blog", r.secured(h.HandleList))
	r.Mux.Handle("GET /api/admin/blog/{id}", r.secured(h.HandleGet))
	r.Mux.Handle("POST /api/admin/blog", r.secured(h.HandleCreate))
	r.Mux.Handle("PUT /api/admin/blog/{id}", r.secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/admin/blog/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerMessages() {
	h := &MessagesHandler{MessagesService: r.MessagesService}

	// POST /contact - moderate rate limit by IP (public write endpoint)
	r.Mux.Handle("POST /api/contact",
		httpx.Chain(http.HandlerFunc(h.HandleContact),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /api/admin/messages", r.secured(h.HandleList))
	r.Mux.Handle("PUT /api/admin/messages/{id}/read", r.secured(h.HandleMarkRead))
	r.Mux.Handle("DELETE /api/admin/messages/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /health", HealthHandler())
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
