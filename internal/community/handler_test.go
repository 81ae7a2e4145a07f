package community

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubRoutesAnswerComingSoon(t *testing.T) {
	r := chi.NewRouter()
	NewHandler().MountRoutes(r)

	cases := map[string]string{
		"/stash":    "Stash endpoint - coming soon",
		"/patterns": "Pattern library endpoint - coming soon",
		"/projects": "Projects endpoint - coming soon",
		"/orders":   "Orders endpoint - coming soon",
		"/cart":     "Cart endpoint - coming soon",
		"/payments": "Stripe payment endpoint - coming soon",
		"/users":    "User profile endpoint - coming soon",
	}
	for path, message := range cases {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rr.Code, path)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.Equal(t, true, envelope["success"], path)
		assert.Equal(t, message, envelope["message"], path)
	}
}

func TestStashStubHasEmptyArrayData(t *testing.T) {
	r := chi.NewRouter()
	NewHandler().MountRoutes(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/stash", nil))

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, []any{}, envelope["data"])
}
