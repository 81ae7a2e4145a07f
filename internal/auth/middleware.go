package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gitau15/YarnLoft/internal/shared"
)

// Middleware verifies bearer tokens and attaches the caller identity to the
// request context. It is constructed with its dependencies and passed into
// route construction rather than imported as a singleton.
type Middleware struct {
	Logger  *slog.Logger
	Tokens  *TokenManager
	Service *Service
}

// Require rejects the request unless a valid bearer token resolves to a user.
func (m Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.identify(r)
		if err != nil {
			shared.RespondError(m.Logger, w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(shared.ContextWithIdentity(r.Context(), identity)))
	})
}

// Optional attaches an identity when one can be resolved and proceeds
// anonymously otherwise. No identity-resolution failure is ever surfaced.
func (m Middleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, ok := m.TryIdentify(r); ok {
			r = r.WithContext(shared.ContextWithIdentity(r.Context(), identity))
		}
		next.ServeHTTP(w, r)
	})
}

// TryIdentify attempts the same decode path as Require but reports absence
// instead of failing.
func (m Middleware) TryIdentify(r *http.Request) (shared.Identity, bool) {
	identity, err := m.identify(r)
	if err != nil {
		return shared.Identity{}, false
	}
	return identity, true
}

func (m Middleware) identify(r *http.Request) (shared.Identity, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return shared.Identity{}, shared.ErrNoToken
	}
	userID, err := m.Tokens.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return shared.Identity{}, err
	}
	return m.Service.Identify(r.Context(), userID)
}
