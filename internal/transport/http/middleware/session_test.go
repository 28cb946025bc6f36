package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pms/internal/domain/session"
	"pms/internal/domain/users"
)

type parserFunc func(string) (session.Session, error)

func (f parserFunc) Parse(token string) (session.Session, error) { return f(token) }

func staticParser(want string, s session.Session) SessionParser {
	return parserFunc(func(token string) (session.Session, error) {
		if token != want {
			return session.Session{}, session.ErrInvalidToken
		}
		return s, nil
	})
}

func TestSessionMiddlewareSetsSession(t *testing.T) {
	parser := staticParser("good", session.Session{Role: users.RoleEmployee, UserID: 3, UserName: "Ben"})
	called := false
	handler := Session(parser)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		current, ok := GetSession(r.Context())
		if !ok {
			t.Fatal("expected session in context")
		}
		if current.UserID != 3 || current.Role != users.RoleEmployee {
			t.Fatalf("unexpected session: %+v", current)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if !called {
		t.Fatal("expected next handler to run")
	}
}

func TestSessionMiddlewareIgnoresBadTokens(t *testing.T) {
	parser := parserFunc(func(string) (session.Session, error) { return session.Session{}, errors.New("bad") })
	handler := Session(parser)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSession(r.Context()); ok {
			t.Fatal("did not expect session in context")
		}
	}))

	for _, header := range []string{"", "Bearer nope", "Basic abc", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	handler := RequireRole(users.RoleManager)(ok)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rec.Code)
	}

	employee := session.WithSession(httptest.NewRequest(http.MethodGet, "/", nil).Context(), session.Session{Role: users.RoleEmployee, UserID: 2})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(employee))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for employee, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(managerContext(1)))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected manager to pass, got %d", rec.Code)
	}
}

func TestRequireSession(t *testing.T) {
	handler := RequireSession(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
