package performancehandler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pms/internal/domain/performance"
	"pms/internal/domain/session"
	"pms/internal/domain/users"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
	"pms/internal/transport/http/shared"
)

type Service interface {
	StatusOptions() []performance.StatusOption
	CreateGoal(ctx context.Context, in performance.GoalInput) (int64, error)
	UpdateGoalStatus(ctx context.Context, managerID, goalID int64, status performance.GoalStatus) error
	ListEmployeeGoals(ctx context.Context, employeeID int64) ([]performance.Goal, error)
	ListManagerGoals(ctx context.Context, managerID int64) ([]performance.Goal, error)
	CreateTask(ctx context.Context, employeeID, goalID int64, description string) (int64, error)
	ListGoalTasks(ctx context.Context, goalID int64) ([]performance.Task, error)
	ListPendingTasks(ctx context.Context, managerID int64) ([]performance.PendingTask, error)
	ApproveTask(ctx context.Context, managerID, taskID int64) error
	RejectTask(ctx context.Context, managerID, taskID int64) error
	CreateFeedback(ctx context.Context, goalID, managerID int64, text string) (int64, error)
	ListGoalFeedback(ctx context.Context, goalID int64) ([]performance.Feedback, error)
	History(ctx context.Context, employeeID int64) ([]performance.HistoryEntry, error)
	ManagerDashboard(ctx context.Context, managerID int64) (performance.ManagerDashboard, error)
	EmployeeDashboard(ctx context.Context, employeeID int64) (performance.EmployeeDashboard, error)
}

type UserDirectory interface {
	ListByRole(ctx context.Context, role users.Role) ([]users.User, error)
}

type Handler struct {
	Service Service
	Users   UserDirectory
}

func NewHandler(service Service, directory UserDirectory) *Handler {
	return &Handler{Service: service, Users: directory}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/dashboard", h.handleDashboard)
		r.Get("/goal-statuses", h.handleGoalStatuses)
		r.Get("/goals/{goalID}/tasks", h.handleListTasks)
		r.Get("/goals/{goalID}/feedback", h.handleListFeedback)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(users.RoleManager))
		r.Get("/manager/goals", h.handleManagerGoals)
		r.Get("/manager/tasks/pending", h.handlePendingTasks)
		r.Post("/goals", h.handleCreateGoal)
		r.Put("/goals/{goalID}/status", h.handleUpdateGoalStatus)
		r.Post("/goals/{goalID}/feedback", h.handleCreateFeedback)
		r.Post("/tasks/{taskID}/approve", h.handleApproveTask)
		r.Post("/tasks/{taskID}/reject", h.handleRejectTask)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(users.RoleEmployee))
		r.Get("/employee/goals", h.handleEmployeeGoals)
		r.Post("/goals/{goalID}/tasks", h.handleCreateTask)
	})
}

type dashboardResponse struct {
	Session   session.Session                `json:"session"`
	Manager   *managerDashboard              `json:"manager,omitempty"`
	Employee  *performance.EmployeeDashboard `json:"employee,omitempty"`
	History   []performance.HistoryEntry     `json:"history"`
	Statuses  []performance.StatusOption     `json:"goalStatuses"`
	Generated time.Time                      `json:"generatedAt"`
}

type managerDashboard struct {
	performance.ManagerDashboard
	Employees []users.User `json:"employees"`
}

// handleDashboard renders everything the selected role sees in one response.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	current, _ := middleware.GetSession(ctx)
	requestID := middleware.GetRequestID(ctx)

	resp := dashboardResponse{Session: current, Statuses: h.Service.StatusOptions(), Generated: time.Now().UTC()}

	switch current.Role {
	case users.RoleManager:
		board, err := h.Service.ManagerDashboard(ctx, current.UserID)
		if err != nil {
			shared.FailError(w, err, requestID)
			return
		}
		employees, err := h.Users.ListByRole(ctx, users.RoleEmployee)
		if err != nil {
			shared.FailError(w, err, requestID)
			return
		}
		resp.Manager = &managerDashboard{ManagerDashboard: board, Employees: employees}
	case users.RoleEmployee:
		board, err := h.Service.EmployeeDashboard(ctx, current.UserID)
		if err != nil {
			shared.FailError(w, err, requestID)
			return
		}
		resp.Employee = &board
	}

	history, err := h.Service.History(ctx, current.UserID)
	if err != nil {
		shared.FailError(w, err, requestID)
		return
	}
	resp.History = history
	api.Success(w, resp, requestID)
}

func (h *Handler) handleGoalStatuses(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.StatusOptions(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleManagerGoals(w http.ResponseWriter, r *http.Request) {
	current, _ := middleware.GetSession(r.Context())
	goals, err := h.Service.ListManagerGoals(r.Context(), current.UserID)
	if err != nil {
		shared.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, goals, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEmployeeGoals(w http.ResponseWriter, r *http.Request) {
	current, _ := middleware.GetSession(r.Context())
	goals, err := h.Service.ListEmployeeGoals(r.Context(), current.UserID)
	if err != nil {
		shared.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, goals, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePendingTasks(w http.ResponseWriter, r *http.Request) {
	current, _ := middleware.GetSession(r.Context())
	tasks, err := h.Service.ListPendingTasks(r.Context(), current.UserID)
	if err != nil {
		shared.FailError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, tasks, middleware.GetRequestID(r.Context()))
}

type createGoalRequest struct {
	EmployeeID  int64  `json:"employeeId"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

func (h *Handler) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	current, _ := middleware.GetSession(r.Context())
	requestID := middleware.GetRequestID(r.Context())

	var payload createGoalRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Positive("employeeId", payload.EmployeeID)
	v.Required("description", payload.Description, "is required")
	dueDate, _ := v.Date("dueDate", payload.DueDate)
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.Service.CreateGoal(r.Context(), performance.GoalInput{
		EmployeeID:  payload.EmployeeID,
		ManagerID:   current.UserID,
		Description: payload.Description,
		DueDate:     dueDate,
	})
	if err != nil {
		shared.FailError(w, err, requestID)
		return
	}
	api.Created(w, map[string]any{"id": id, "status": performance.GoalStatusDraft}, requestID)
}

type updateGoalStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) handleUpdateGoalStatus(w http.ResponseWriter, r *http.Request) {
	current, _ := middleware.GetSession(r.Context())
	requestID := middleware.GetRequestID(r.Context())
	goalID, ok := shared.IDParam(r, "goalID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid goal id", requestID)
		return
	}

	var payload updateGoalStatusRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Enum("status", payload.Status, goalStatusNames(), "must be one of Draft, In Progress, Completed, Cancelled")
	if v.Reject(w, requestID) {
		return
	}

	status := performance.GoalStatus(payload.Status)
	if err := h.Service.UpdateGoalStatus(r.Context(), current.UserID, goalID, status); err != nil {
		shared.FailError(w, err, requestID)
		return
	}
	api.Success(w, map[string]any{"id": goalID, "status": status}, requestID)
}

type textRequest struct {
	Text string `json:"text"`
}

func (h *Handler) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	current, _ := middleware.GetSession(r.Context())
	requestID := middleware.GetRequestID(r.Context())
	goalID, ok := shared.IDParam(r, "goalID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid goal id", requestID)
		return
	}

	var payload textRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("text", payload.Text, "is required")
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.Service.CreateFeedback(r.Context(), goalID, current.UserID, payload.Text)
	if err != nil {
		shared.FailError(w, err, requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) handleListFeedback(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	goalID, ok := shared.IDParam(r, "goalID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid goal id", requestID)
		return
	}
	feedback, err := h.Service.ListGoalFeedback(r.Context(), goalID)
	if err != nil {
		shared.FailError(w, err, requestID)
		return
	}
	api.Success(w, feedback, requestID)
}

type createTaskRequest struct {
	Description string `json:"description"`
}

func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	current, _ := middleware.GetSession(r.Context())
	requestID := middleware.GetRequestID(r.Context())
	goalID, ok := shared.IDParam(r, "goalID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid goal id", requestID)
		return
	}

	var payload createTaskRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Required("description", payload.Description, "please provide a task description")
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.Service.CreateTask(r.Context(), current.UserID, goalID, payload.Description)
	if err != nil {
		shared.FailError(w, err, requestID)
		return
	}
	api.Created(w, map[string]any{"id": id, "status": performance.TaskStatusPending}, requestID)
}

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	goalID, ok := shared.IDParam(r, "goalID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid goal id", requestID)
		return
	}
	tasks, err := h.Service.ListGoalTasks(r.Context(), goalID)
	if err != nil {
		shared.FailError(w, err, requestID)
		return
	}
	api.Success(w, tasks, requestID)
}

func (h *Handler) handleApproveTask(w http.ResponseWriter, r *http.Request) {
	h.decideTask(w, r, performance.TaskStatusApproved, h.Service.ApproveTask)
}

func (h *Handler) handleRejectTask(w http.ResponseWriter, r *http.Request) {
	h.decideTask(w, r, performance.TaskStatusRejected, h.Service.RejectTask)
}

func (h *Handler) decideTask(w http.ResponseWriter, r *http.Request, status performance.TaskStatus, decide func(context.Context, int64, int64) error) {
	current, _ := middleware.GetSession(r.Context())
	requestID := middleware.GetRequestID(r.Context())
	taskID, ok := shared.IDParam(r, "taskID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid task id", requestID)
		return
	}
	if err := decide(r.Context(), current.UserID, taskID); err != nil {
		shared.FailError(w, err, requestID)
		return
	}
	api.Success(w, map[string]any{"id": taskID, "status": status}, requestID)
}

func goalStatusNames() []string {
	names := make([]string, 0, len(performance.GoalStatuses))
	for _, status := range performance.GoalStatuses {
		names = append(names, string(status))
	}
	return names
}
