package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/userecho/userecho/internal/handler"
	"github.com/userecho/userecho/internal/metrics"
	"github.com/userecho/userecho/internal/middleware"
	"github.com/userecho/userecho/internal/service"
)

// RouterConfig carries everything the router needs to build the handler
// graph.
type RouterConfig struct {
	Logger         *slog.Logger
	Production     bool
	RequestTimeout time.Duration
	MaxBodySize    int64
	CORSOrigins    []string

	// Metrics receives request and user events. When MetricsHandler is
	// non-nil it is mounted at /metrics.
	Metrics        metrics.Recorder
	MetricsHandler http.Handler
}

// NewRouter configures the chi router with all routes and middleware.
func NewRouter(cfg RouterConfig) *chi.Mux {
	recorder := cfg.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	h := handler.New(cfg.Logger, cfg.Production)
	healthHandler := handler.NewHealthHandler()
	userHandler := handler.NewUserHandler(service.NewUserService(recorder), cfg.Logger)

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSOrigins

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Metrics(recorder))
	r.Use(middleware.Recoverer(h.ServerError))
	r.Use(middleware.Security(middleware.SecurityConfig{Production: cfg.Production}))
	r.Use(middleware.CORS(corsCfg))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	if cfg.MaxBodySize > 0 {
		r.Use(middleware.MaxBodySize(cfg.MaxBodySize))
	}

	r.Get("/", h.Welcome)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
		r.Post("/users", h.Wrap(userHandler.Create))
	})

	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	// Unknown paths and unknown methods on known paths look the same.
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	return r
}
