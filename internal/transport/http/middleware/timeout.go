package middleware

import (
	"context"
	"net/http"
	"time"
)

// QueryTimeout bounds the request context so every statement issued while
// serving it is cancelled after d. A non-positive d disables the bound.
func QueryTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
