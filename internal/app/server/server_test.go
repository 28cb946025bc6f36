package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pms/internal/domain/session"
	"pms/internal/domain/users"
	"pms/internal/platform/config"
	"pms/internal/platform/metrics"
)

type tokenParser map[string]session.Session

func (p tokenParser) Parse(token string) (session.Session, error) {
	current, ok := p[token]
	if !ok {
		return session.Session{}, errors.New("unknown token")
	}
	return current, nil
}

func testRouter(t *testing.T, limit int, collector *metrics.Collector) http.Handler {
	t.Helper()
	cfg := config.Config{Environment: "test", MaxBodyBytes: 1 << 20, RateLimitPerMinute: limit}
	parser := tokenParser{
		"ada":   {Role: users.RoleManager, UserID: 1, UserName: "Ada"},
		"grace": {Role: users.RoleManager, UserID: 2, UserName: "Grace"},
	}

	router := chi.NewRouter()
	router.Use(baseMiddleware(cfg, collector, parser)...)
	router.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	router.Get("/ok", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return router
}

func TestPanicIsRecordedAsServerError(t *testing.T) {
	collector := metrics.New()
	router := testRouter(t, 100, collector)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	snap := collector.Snapshot()
	assert.Equal(t, uint64(1), snap["requestsTotal"])
	assert.Equal(t, uint64(1), snap["errorsTotal"])
}

func TestRateLimitKeysOnSessionBehindOneAddress(t *testing.T) {
	router := testRouter(t, 1, metrics.New())

	get := func(token string) int {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, get("ada"))
	assert.Equal(t, http.StatusNoContent, get("grace"), "a second manager on the same address has its own budget")
	assert.Equal(t, http.StatusNoContent, get(""))
	assert.Equal(t, http.StatusTooManyRequests, get("ada"))
	assert.Equal(t, http.StatusTooManyRequests, get(""))
}
