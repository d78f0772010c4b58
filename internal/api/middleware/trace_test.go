package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eisenhq/eisen-api/internal/api/shared"
	"github.com/eisenhq/eisen-api/internal/platform/logger"
)

func TestTraceMiddleware(t *testing.T) {
	var gotTraceID string
	var gotLoggerFromContext bool

	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = shared.GetTraceID(r.Context())
		// The request-scoped logger must be retrievable downstream
		log := logger.FromContextOrDefault(r.Context(), nil)
		gotLoggerFromContext = log != nil
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, gotTraceID, 32, "Expected a 32 hex character trace ID")
	assert.True(t, gotLoggerFromContext)

	// A second request gets a different trace ID
	var secondTraceID string
	handler2 := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secondTraceID = shared.GetTraceID(r.Context())
	}))
	handler2.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tasks", nil))
	assert.NotEqual(t, gotTraceID, secondTraceID)
}
