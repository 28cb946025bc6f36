package middleware

import (
	"context"
	"net/http"
	"strings"

	"pms/internal/domain/session"
	"pms/internal/domain/users"
	"pms/internal/transport/http/api"
)

type SessionParser interface {
	Parse(token string) (session.Session, error)
}

// Session places the bearer token's session on the request context. Requests
// without a valid token pass through anonymously.
func Session(parser SessionParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			current, err := parser.Parse(parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), current)))
		})
	}
}

func GetSession(ctx context.Context) (session.Session, bool) {
	return session.FromContext(ctx)
}

func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSession(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "select a role and user first", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole admits only sessions holding role.
func RequireRole(role users.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			current, ok := GetSession(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "select a role and user first", GetRequestID(r.Context()))
				return
			}
			if current.Role != role {
				api.Fail(w, http.StatusForbidden, "forbidden", "action requires the "+string(role)+" role", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func failInternal(w http.ResponseWriter, r *http.Request) {
	api.Fail(w, http.StatusInternalServerError, "internal_error", "operation failed", GetRequestID(r.Context()))
}
