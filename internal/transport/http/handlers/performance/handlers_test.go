package performancehandler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pms/internal/domain/performance"
	"pms/internal/domain/session"
	"pms/internal/domain/users"
	"pms/internal/transport/http/middleware"
)

type fakeService struct {
	Service

	createdGoal  performance.GoalInput
	statusErr    error
	approveErr   error
	taskErr      error
	feedbackErr  error
	createdTask  string
	actorID      int64
	managerBoard performance.ManagerDashboard
}

func (f *fakeService) StatusOptions() []performance.StatusOption {
	return performance.NewService(nil, nil, performance.PolicyPermissive).StatusOptions()
}

func (f *fakeService) CreateGoal(_ context.Context, in performance.GoalInput) (int64, error) {
	f.createdGoal = in
	return 11, nil
}

func (f *fakeService) UpdateGoalStatus(_ context.Context, managerID, _ int64, _ performance.GoalStatus) error {
	f.actorID = managerID
	return f.statusErr
}

func (f *fakeService) ApproveTask(_ context.Context, managerID, _ int64) error {
	f.actorID = managerID
	return f.approveErr
}

func (f *fakeService) CreateTask(_ context.Context, employeeID, _ int64, description string) (int64, error) {
	f.actorID = employeeID
	f.createdTask = description
	return 21, f.taskErr
}

func (f *fakeService) CreateFeedback(_ context.Context, _, managerID int64, _ string) (int64, error) {
	f.actorID = managerID
	return 31, f.feedbackErr
}

func (f *fakeService) ManagerDashboard(context.Context, int64) (performance.ManagerDashboard, error) {
	return f.managerBoard, nil
}

func (f *fakeService) History(context.Context, int64) ([]performance.HistoryEntry, error) {
	return []performance.HistoryEntry{}, nil
}

type fakeDirectory struct{}

func (fakeDirectory) ListByRole(context.Context, users.Role) ([]users.User, error) {
	return []users.User{{ID: 2, Name: "Ben", Role: users.RoleEmployee}}, nil
}

func newRouter(svc Service, current *session.Session) http.Handler {
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
	NewHandler(svc, fakeDirectory{}).RegisterRoutes(r)
	return r
}

var (
	manager  = &session.Session{Role: users.RoleManager, UserID: 1, UserName: "Ada"}
	employee = &session.Session{Role: users.RoleEmployee, UserID: 2, UserName: "Ben"}
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestCreateGoalUsesSessionManager(t *testing.T) {
	svc := &fakeService{}
	rec, env := do(t, newRouter(svc, manager), http.MethodPost, "/goals", `{"employeeId":2,"description":"Finish report","dueDate":"2026-12-31"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, env.Success)
	assert.Equal(t, int64(1), svc.createdGoal.ManagerID)
	assert.Equal(t, int64(2), svc.createdGoal.EmployeeID)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), svc.createdGoal.DueDate)
}

func TestCreateGoalValidation(t *testing.T) {
	rec, env := do(t, newRouter(&fakeService{}, manager), http.MethodPost, "/goals", `{"employeeId":0,"description":"","dueDate":"tomorrow"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation_error", env.Error.Code)
	assert.NotNil(t, env.Error.Details)
}

func TestCreateGoalRequiresManager(t *testing.T) {
	rec, _ := do(t, newRouter(&fakeService{}, employee), http.MethodPost, "/goals", `{"employeeId":2,"description":"x","dueDate":"2026-12-31"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = do(t, newRouter(&fakeService{}, nil), http.MethodPost, "/goals", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateGoalStatus(t *testing.T) {
	svc := &fakeService{}
	rec, _ := do(t, newRouter(svc, manager), http.MethodPut, "/goals/10/status", `{"status":"In Progress"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, manager.UserID, svc.actorID)

	rec, env := do(t, newRouter(&fakeService{}, manager), http.MethodPut, "/goals/10/status", `{"status":"Done"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", env.Error.Code)

	rec, env = do(t, newRouter(&fakeService{statusErr: performance.ErrTransitionNotAllowed}, manager), http.MethodPut, "/goals/10/status", `{"status":"Completed"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "invalid_transition", env.Error.Code)

	rec, _ = do(t, newRouter(&fakeService{statusErr: performance.ErrGoalNotFound}, manager), http.MethodPut, "/goals/10/status", `{"status":"Completed"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, newRouter(&fakeService{}, manager), http.MethodPut, "/goals/abc/status", `{"status":"Completed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApproveTaskConflict(t *testing.T) {
	rec, env := do(t, newRouter(&fakeService{approveErr: performance.ErrTaskAlreadyDecided}, manager), http.MethodPost, "/tasks/7/approve", ``)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", env.Error.Code)

	rec, _ = do(t, newRouter(&fakeService{}, manager), http.MethodPost, "/tasks/7/approve", ``)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateTaskRequiresEmployeeAndDescription(t *testing.T) {
	svc := &fakeService{}
	rec, _ := do(t, newRouter(svc, employee), http.MethodPost, "/goals/10/tasks", `{"description":"Draft section 1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Draft section 1", svc.createdTask)
	assert.Equal(t, employee.UserID, svc.actorID)

	rec, _ = do(t, newRouter(svc, employee), http.MethodPost, "/goals/10/tasks", `{"description":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, newRouter(svc, manager), http.MethodPost, "/goals/10/tasks", `{"description":"x"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMutationsOnSomeoneElsesGoalAreForbidden(t *testing.T) {
	svc := &fakeService{
		statusErr:   performance.ErrNotGoalOwner,
		approveErr:  performance.ErrNotGoalOwner,
		taskErr:     performance.ErrNotGoalOwner,
		feedbackErr: performance.ErrNotGoalOwner,
	}

	cases := []struct {
		name    string
		current *session.Session
		method  string
		path    string
		body    string
	}{
		{"status", manager, http.MethodPut, "/goals/10/status", `{"status":"Completed"}`},
		{"approve", manager, http.MethodPost, "/tasks/7/approve", ``},
		{"feedback", manager, http.MethodPost, "/goals/10/feedback", `{"text":"Good start"}`},
		{"task", employee, http.MethodPost, "/goals/10/tasks", `{"description":"Draft section 1"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc.actorID = 0
			rec, env := do(t, newRouter(svc, tc.current), tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "forbidden", env.Error.Code)
			assert.Equal(t, tc.current.UserID, svc.actorID)
		})
	}
}

func TestManagerDashboard(t *testing.T) {
	svc := &fakeService{managerBoard: performance.ManagerDashboard{
		PendingTasks: []performance.PendingTask{{TaskID: 7}},
		Goals:        []performance.GoalView{},
	}}
	rec, env := do(t, newRouter(svc, manager), http.MethodGet, "/dashboard", ``)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data struct {
		Session session.Session `json:"session"`
		Manager struct {
			PendingTasks []performance.PendingTask `json:"pendingTasks"`
			Employees    []users.User              `json:"employees"`
		} `json:"manager"`
		Employee     any                        `json:"employee"`
		GoalStatuses []performance.StatusOption `json:"goalStatuses"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Ada", data.Session.UserName)
	assert.Len(t, data.Manager.PendingTasks, 1)
	assert.Len(t, data.Manager.Employees, 1)
	assert.Nil(t, data.Employee)
	assert.Len(t, data.GoalStatuses, 4)
}
