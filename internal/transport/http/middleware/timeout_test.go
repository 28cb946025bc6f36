package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestQueryTimeoutSetsDeadline(t *testing.T) {
	var hasDeadline bool
	h := QueryTimeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !hasDeadline {
		t.Fatal("expected request context to carry a deadline")
	}
}

func TestQueryTimeoutDisabled(t *testing.T) {
	var hasDeadline bool
	h := QueryTimeout(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if hasDeadline {
		t.Fatal("expected no deadline when the timeout is disabled")
	}
}
