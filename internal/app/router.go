package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/gitau15/YarnLoft/internal/auth"
	"github.com/gitau15/YarnLoft/internal/catalog"
	"github.com/gitau15/YarnLoft/internal/community"
	"github.com/gitau15/YarnLoft/internal/observability"
)

// RouterParams groups dependencies for building the HTTP router. The token
// verifier and handlers are injected here rather than imported as singletons.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	AuthMiddleware   auth.Middleware
	AuthHandler      *auth.Handler
	CatalogHandler   *catalog.Handler
	CommunityHandler *community.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with YarnLoft defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		params.AuthHandler.MountRoutes(r, params.AuthMiddleware)
	})
	r.Route("/products", func(r chi.Router) {
		params.CatalogHandler.MountRoutes(r, params.AuthMiddleware.Optional)
	})
	if params.CommunityHandler != nil {
		params.CommunityHandler.MountRoutes(r)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
