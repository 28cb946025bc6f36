package performance

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock_performance/mock_store.go -package=mock_performance pms/internal/domain/performance StoreAPI

type StoreAPI interface {
	CreateGoal(ctx context.Context, employeeID, managerID int64, description string, dueDate time.Time) (int64, error)
	GetGoal(ctx context.Context, goalID int64) (Goal, error)
	SetGoalStatus(ctx context.Context, goalID int64, status GoalStatus) (bool, error)
	TransitionGoalStatus(ctx context.Context, goalID int64, from, to GoalStatus) (bool, error)
	ListGoalsByEmployee(ctx context.Context, employeeID int64) ([]Goal, error)
	ListGoalsByManager(ctx context.Context, managerID int64) ([]Goal, error)
	CreateTask(ctx context.Context, goalID int64, description string) (int64, error)
	GetTask(ctx context.Context, taskID int64) (Task, error)
	ListTasksByGoal(ctx context.Context, goalID int64) ([]Task, error)
	ListPendingTasks(ctx context.Context, managerID int64) ([]PendingTask, error)
	DecideTask(ctx context.Context, taskID int64, status TaskStatus) (bool, error)
	CreateFeedback(ctx context.Context, goalID, managerID int64, text string) (int64, error)
	ListFeedbackByGoal(ctx context.Context, goalID int64) ([]Feedback, error)
	History(ctx context.Context, employeeID int64) ([]HistoryEntry, error)
}
