package performance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pms/internal/domain/users"
	"pms/internal/platform/querier"
)

// Directory resolves the users goals are assigned to.
type Directory interface {
	GetWithRole(ctx context.Context, userID int64, role users.Role) (users.User, error)
}

type Service struct {
	store     StoreAPI
	directory Directory
	policy    Policy
}

func NewService(store StoreAPI, directory Directory, policy Policy) *Service {
	if policy == "" {
		policy = PolicyPermissive
	}
	return &Service{store: store, directory: directory, policy: policy}
}

func (s *Service) Policy() Policy {
	return s.policy
}

// StatusOptions lists every goal status with the statuses it may move to
// under the active policy.
func (s *Service) StatusOptions() []StatusOption {
	options := make([]StatusOption, 0, len(GoalStatuses))
	for _, status := range GoalStatuses {
		options = append(options, StatusOption{Status: status, Next: s.policy.Next(status)})
	}
	return options
}

func (s *Service) CreateGoal(ctx context.Context, in GoalInput) (int64, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return 0, ErrEmptyText
	}
	if in.DueDate.IsZero() {
		return 0, ErrDueDateRequired
	}
	if in.EmployeeID == in.ManagerID {
		return 0, ErrSelfAssignment
	}
	if _, err := s.directory.GetWithRole(ctx, in.EmployeeID, users.RoleEmployee); err != nil {
		return 0, fmt.Errorf("goal employee %d: %w", in.EmployeeID, err)
	}
	id, err := s.store.CreateGoal(ctx, in.EmployeeID, in.ManagerID, in.Description, in.DueDate)
	if err != nil {
		return 0, translate("create goal", err, ErrGoalNotFound, ErrInvalidGoalStatus)
	}
	return id, nil
}

func (s *Service) GetGoal(ctx context.Context, goalID int64) (Goal, error) {
	goal, err := s.store.GetGoal(ctx, goalID)
	if err != nil {
		return Goal{}, translate("get goal", err, ErrGoalNotFound, ErrInvalidGoalStatus)
	}
	return goal, nil
}

// managedGoal loads a goal and checks it was assigned by managerID.
func (s *Service) managedGoal(ctx context.Context, managerID, goalID int64) (Goal, error) {
	goal, err := s.GetGoal(ctx, goalID)
	if err != nil {
		return Goal{}, err
	}
	if goal.ManagerID != managerID {
		return Goal{}, fmt.Errorf("goal %d is managed by user %d: %w", goalID, goal.ManagerID, ErrNotGoalOwner)
	}
	return goal, nil
}

// ownedGoal loads a goal and checks it is assigned to employeeID.
func (s *Service) ownedGoal(ctx context.Context, employeeID, goalID int64) (Goal, error) {
	goal, err := s.GetGoal(ctx, goalID)
	if err != nil {
		return Goal{}, err
	}
	if goal.EmployeeID != employeeID {
		return Goal{}, fmt.Errorf("goal %d belongs to user %d: %w", goalID, goal.EmployeeID, ErrNotGoalOwner)
	}
	return goal, nil
}

// UpdateGoalStatus sets the status of a goal managed by managerID. Under the
// strict policy the change is checked against the goal's current status and
// applied only if that status has not moved in between.
func (s *Service) UpdateGoalStatus(ctx context.Context, managerID, goalID int64, status GoalStatus) error {
	if !status.Valid() {
		return ErrInvalidGoalStatus
	}

	goal, err := s.managedGoal(ctx, managerID, goalID)
	if err != nil {
		return err
	}

	if s.policy != PolicyStrict {
		updated, err := s.store.SetGoalStatus(ctx, goalID, status)
		if err != nil {
			return translate("update goal status", err, ErrGoalNotFound, ErrInvalidGoalStatus)
		}
		if !updated {
			return ErrGoalNotFound
		}
		return nil
	}

	if goal.Status == status {
		return nil
	}
	if !s.policy.Allows(goal.Status, status) {
		return fmt.Errorf("%s to %s: %w", goal.Status, status, ErrTransitionNotAllowed)
	}
	updated, err := s.store.TransitionGoalStatus(ctx, goalID, goal.Status, status)
	if err != nil {
		return translate("update goal status", err, ErrGoalNotFound, ErrInvalidGoalStatus)
	}
	if !updated {
		return ErrGoalStatusChanged
	}
	return nil
}

func (s *Service) ListEmployeeGoals(ctx context.Context, employeeID int64) ([]Goal, error) {
	goals, err := s.store.ListGoalsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, translate("list employee goals", err, ErrGoalNotFound, ErrInvalidGoalStatus)
	}
	return nonNil(goals), nil
}

func (s *Service) ListManagerGoals(ctx context.Context, managerID int64) ([]Goal, error) {
	goals, err := s.store.ListGoalsByManager(ctx, managerID)
	if err != nil {
		return nil, translate("list manager goals", err, ErrGoalNotFound, ErrInvalidGoalStatus)
	}
	return nonNil(goals), nil
}

// CreateTask logs a task against a goal owned by employeeID.
func (s *Service) CreateTask(ctx context.Context, employeeID, goalID int64, description string) (int64, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return 0, ErrEmptyText
	}
	if _, err := s.ownedGoal(ctx, employeeID, goalID); err != nil {
		return 0, err
	}
	id, err := s.store.CreateTask(ctx, goalID, description)
	if err != nil {
		return 0, translate("create task", err, ErrGoalNotFound, ErrInvalidTaskStatus)
	}
	return id, nil
}

func (s *Service) GetTask(ctx context.Context, taskID int64) (Task, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return Task{}, translate("get task", err, ErrTaskNotFound, ErrInvalidTaskStatus)
	}
	return task, nil
}

func (s *Service) ListGoalTasks(ctx context.Context, goalID int64) ([]Task, error) {
	tasks, err := s.store.ListTasksByGoal(ctx, goalID)
	if err != nil {
		return nil, translate("list tasks", err, ErrTaskNotFound, ErrInvalidTaskStatus)
	}
	return nonNil(tasks), nil
}

func (s *Service) ListPendingTasks(ctx context.Context, managerID int64) ([]PendingTask, error) {
	tasks, err := s.store.ListPendingTasks(ctx, managerID)
	if err != nil {
		return nil, translate("list pending tasks", err, ErrTaskNotFound, ErrInvalidTaskStatus)
	}
	return nonNil(tasks), nil
}

// DecideTask approves or rejects a pending task on a goal managed by
// managerID. Only the first decision lands; later ones get
// ErrTaskAlreadyDecided.
func (s *Service) DecideTask(ctx context.Context, managerID, taskID int64, status TaskStatus) error {
	if !status.Decision() {
		return ErrInvalidTaskStatus
	}
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	if _, err := s.managedGoal(ctx, managerID, task.GoalID); err != nil {
		return err
	}
	if task.Status != TaskStatusPending {
		return fmt.Errorf("task %d is %s: %w", taskID, task.Status, ErrTaskAlreadyDecided)
	}

	decided, err := s.store.DecideTask(ctx, taskID, status)
	if err != nil {
		return translate("decide task", err, ErrTaskNotFound, ErrInvalidTaskStatus)
	}
	if decided {
		return nil
	}
	task, err = s.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	return fmt.Errorf("task %d is %s: %w", taskID, task.Status, ErrTaskAlreadyDecided)
}

func (s *Service) ApproveTask(ctx context.Context, managerID, taskID int64) error {
	return s.DecideTask(ctx, managerID, taskID, TaskStatusApproved)
}

func (s *Service) RejectTask(ctx context.Context, managerID, taskID int64) error {
	return s.DecideTask(ctx, managerID, taskID, TaskStatusRejected)
}

// CreateFeedback attaches feedback from managerID to a goal they manage.
func (s *Service) CreateFeedback(ctx context.Context, goalID, managerID int64, text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyText
	}
	if _, err := s.managedGoal(ctx, managerID, goalID); err != nil {
		return 0, err
	}
	id, err := s.store.CreateFeedback(ctx, goalID, managerID, text)
	if err != nil {
		return 0, translate("create feedback", err, ErrGoalNotFound, ErrEmptyText)
	}
	return id, nil
}

func (s *Service) ListGoalFeedback(ctx context.Context, goalID int64) ([]Feedback, error) {
	feedback, err := s.store.ListFeedbackByGoal(ctx, goalID)
	if err != nil {
		return nil, translate("list feedback", err, ErrGoalNotFound, ErrEmptyText)
	}
	return nonNil(feedback), nil
}

// History returns one entry per goal owned by the employee, each with its
// tasks and feedback as lists.
func (s *Service) History(ctx context.Context, employeeID int64) ([]HistoryEntry, error) {
	history, err := s.store.History(ctx, employeeID)
	if err != nil {
		return nil, translate("performance history", err, ErrGoalNotFound, ErrInvalidGoalStatus)
	}
	history = nonNil(history)
	for i := range history {
		history[i].Tasks = nonNil(history[i].Tasks)
		history[i].Feedback = nonNil(history[i].Feedback)
	}
	return history, nil
}

func (s *Service) ManagerDashboard(ctx context.Context, managerID int64) (ManagerDashboard, error) {
	pending, err := s.ListPendingTasks(ctx, managerID)
	if err != nil {
		return ManagerDashboard{}, err
	}
	goals, err := s.ListManagerGoals(ctx, managerID)
	if err != nil {
		return ManagerDashboard{}, err
	}
	views, err := s.goalViews(ctx, goals, true)
	if err != nil {
		return ManagerDashboard{}, err
	}
	return ManagerDashboard{PendingTasks: pending, Goals: views}, nil
}

func (s *Service) EmployeeDashboard(ctx context.Context, employeeID int64) (EmployeeDashboard, error) {
	goals, err := s.ListEmployeeGoals(ctx, employeeID)
	if err != nil {
		return EmployeeDashboard{}, err
	}
	views, err := s.goalViews(ctx, goals, false)
	if err != nil {
		return EmployeeDashboard{}, err
	}
	return EmployeeDashboard{Goals: views}, nil
}

func (s *Service) goalViews(ctx context.Context, goals []Goal, withNext bool) ([]GoalView, error) {
	views := make([]GoalView, 0, len(goals))
	for _, goal := range goals {
		tasks, err := s.ListGoalTasks(ctx, goal.ID)
		if err != nil {
			return nil, err
		}
		feedback, err := s.ListGoalFeedback(ctx, goal.ID)
		if err != nil {
			return nil, err
		}
		view := GoalView{Goal: goal, Tasks: tasks, Feedback: feedback}
		if withNext {
			view.NextStatuses = s.policy.Next(goal.Status)
		}
		views = append(views, view)
	}
	return views, nil
}

// translate maps driver errors onto the package sentinels. notFound and
// invalid name the errors for a missing row and a rejected value in op.
func translate(op string, err error, notFound, invalid error) error {
	switch {
	case querier.IsNoRows(err):
		return notFound
	case querier.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, ErrReferenceMissing)
	case querier.IsCheckViolation(err):
		return fmt.Errorf("%s: %w", op, invalid)
	case querier.IsUnavailable(err):
		return fmt.Errorf("%s: %w: %w", op, querier.ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// IsNotFound reports whether err means a goal, task or referenced row is missing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrGoalNotFound) || errors.Is(err, ErrTaskNotFound) || errors.Is(err, ErrReferenceMissing)
}
