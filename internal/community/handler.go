// Package community holds the published routes whose features are not built
// yet. Each answers with an empty payload so clients can probe the surface.
package community

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gitau15/YarnLoft/internal/shared"
)

// Handler serves the placeholder community and commerce routers.
type Handler struct{}

// NewHandler constructs a Handler instance.
func NewHandler() *Handler {
	return &Handler{}
}

type stub struct {
	path    string
	data    any
	message string
}

var stubs = []stub{
	{"/stash", []any{}, "Stash endpoint - coming soon"},
	{"/patterns", []any{}, "Pattern library endpoint - coming soon"},
	{"/projects", []any{}, "Projects endpoint - coming soon"},
	{"/orders", []any{}, "Orders endpoint - coming soon"},
	{"/cart", map[string]any{"items": []any{}, "total": 0}, "Cart endpoint - coming soon"},
	{"/payments", nil, "Stripe payment endpoint - coming soon"},
	{"/users", nil, "User profile endpoint - coming soon"},
}

// MountRoutes registers one GET route per placeholder feature.
func (h *Handler) MountRoutes(r chi.Router) {
	for _, s := range stubs {
		s := s
		r.Get(s.path, func(w http.ResponseWriter, _ *http.Request) {
			shared.JSONMessage(w, http.StatusOK, s.data, s.message)
		})
	}
}
