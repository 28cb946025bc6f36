package reportshandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pms/internal/domain/performance"
	"pms/internal/domain/reports"
	"pms/internal/domain/session"
	"pms/internal/domain/users"
	"pms/internal/transport/http/middleware"
)

type fakeReports struct {
	scope   reports.Scope
	pdfName string
}

func (f *fakeReports) Analytics(_ context.Context, scope reports.Scope) (reports.Analytics, error) {
	f.scope = scope
	return reports.Analytics{Scope: scope, GoalStatus: map[string]int{}, TaskStatus: map[string]int{}}, nil
}

func (f *fakeReports) WriteHistoryPDF(_ context.Context, w io.Writer, _ int64, name string) error {
	f.pdfName = name
	_, err := io.WriteString(w, "%PDF-1.3 fake")
	return err
}

type fakeHistory struct {
	employeeID int64
}

func (f *fakeHistory) History(_ context.Context, employeeID int64) ([]performance.HistoryEntry, error) {
	f.employeeID = employeeID
	return []performance.HistoryEntry{}, nil
}

type fakeUsers struct{}

func (fakeUsers) Get(_ context.Context, id int64) (users.User, error) {
	if id == 404 {
		return users.User{}, users.ErrNotFound
	}
	return users.User{ID: id, Name: "Cy", Role: users.RoleEmployee}, nil
}

func newRouter(svc Service, history HistorySource, current *session.Session) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if current != nil {
				req = req.WithContext(session.WithSession(req.Context(), *current))
			}
			next.ServeHTTP(w, req)
		})
	})
	NewHandler(svc, history, fakeUsers{}).RegisterRoutes(r)
	return r
}

var employee = &session.Session{Role: users.RoleEmployee, UserID: 2, UserName: "Ben"}

func TestHistoryDefaultsToSessionUser(t *testing.T) {
	history := &fakeHistory{}
	rec := httptest.NewRecorder()
	newRouter(&fakeReports{}, history, employee).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/history", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), history.employeeID)

	rec = httptest.NewRecorder()
	newRouter(&fakeReports{}, history, employee).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/history?employeeId=5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), history.employeeID)

	rec = httptest.NewRecorder()
	newRouter(&fakeReports{}, history, employee).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/history?employeeId=-1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryRequiresSession(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(&fakeReports{}, &fakeHistory{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/history", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHistoryPDF(t *testing.T) {
	svc := &fakeReports{}
	rec := httptest.NewRecorder()
	newRouter(svc, &fakeHistory{}, employee).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/history.pdf", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Ben", svc.pdfName)

	rec = httptest.NewRecorder()
	newRouter(svc, &fakeHistory{}, employee).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/history.pdf?employeeId=3", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cy", svc.pdfName)

	rec = httptest.NewRecorder()
	newRouter(svc, &fakeHistory{}, employee).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/history.pdf?employeeId=404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalyticsScopedToSession(t *testing.T) {
	svc := &fakeReports{}
	manager := &session.Session{Role: users.RoleManager, UserID: 1}

	rec := httptest.NewRecorder()
	newRouter(svc, &fakeHistory{}, manager).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/analytics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, reports.Scope{Kind: reports.ScopeManager, UserID: 1}, svc.scope)

	rec = httptest.NewRecorder()
	newRouter(svc, &fakeHistory{}, employee).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/analytics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, reports.Scope{Kind: reports.ScopeEmployee, UserID: 2}, svc.scope)
}
