package reports

import (
	"context"
	"fmt"
	"io"
	"time"

	"pms/internal/domain/performance"
	"pms/internal/platform/querier"
	"pms/internal/requestctx"
)

type HistorySource interface {
	History(ctx context.Context, employeeID int64) ([]performance.HistoryEntry, error)
}

type Service struct {
	store   StoreAPI
	history HistorySource
	title   string
	now     func() time.Time
}

func NewService(store StoreAPI, history HistorySource, title string) *Service {
	if title == "" {
		title = "Performance History"
	}
	return &Service{store: store, history: history, title: title, now: time.Now}
}

// Analytics summarises goals, tasks and feedback within scope. Every known
// status appears in the distributions, zero when unused.
func (s *Service) Analytics(ctx context.Context, scope Scope) (Analytics, error) {
	if !scope.Valid() {
		return Analytics{}, ErrInvalidScope
	}

	goalCounts, err := s.store.GoalStatusCounts(ctx, scope)
	if err != nil {
		return Analytics{}, wrap("goal status counts", err)
	}
	taskCounts, err := s.store.TaskStatusCounts(ctx, scope)
	if err != nil {
		return Analytics{}, wrap("task status counts", err)
	}
	feedback, err := s.store.FeedbackCount(ctx, scope)
	if err != nil {
		return Analytics{}, wrap("feedback count", err)
	}
	goalsByMonth, err := s.store.GoalsByMonth(ctx, scope)
	if err != nil {
		return Analytics{}, wrap("goals by month", err)
	}
	tasksByMonth, err := s.store.TasksByMonth(ctx, scope)
	if err != nil {
		return Analytics{}, wrap("tasks by month", err)
	}

	result := Analytics{
		Scope:         scope,
		FeedbackCount: feedback,
		GoalStatus:    map[string]int{},
		TaskStatus:    map[string]int{},
		GoalsByMonth:  nonNil(goalsByMonth),
		TasksByMonth:  nonNil(tasksByMonth),
	}
	for _, status := range performance.GoalStatuses {
		result.GoalStatus[string(status)] = 0
	}
	for _, status := range performance.TaskStatuses {
		result.TaskStatus[string(status)] = 0
	}
	for _, count := range goalCounts {
		result.GoalStatus[count.Status] += count.Count
		result.TotalGoals += count.Count
	}
	for _, count := range taskCounts {
		result.TaskStatus[count.Status] += count.Count
		result.TotalTasks += count.Count
	}
	result.PendingTasks = result.TaskStatus[string(performance.TaskStatusPending)]
	result.CompletionRate = ratio(result.GoalStatus[string(performance.GoalStatusCompleted)], result.TotalGoals)
	result.TaskApprovalRate = ratio(result.TaskStatus[string(performance.TaskStatusApproved)], result.TotalTasks)
	return result, nil
}

// WriteHistoryPDF renders the employee's performance history to w.
func (s *Service) WriteHistoryPDF(ctx context.Context, w io.Writer, employeeID int64, employeeName string) error {
	entries, err := s.history.History(ctx, employeeID)
	if err != nil {
		return err
	}
	if err := RenderHistoryPDF(w, HistoryDocument{
		Title:        s.title,
		EmployeeName: employeeName,
		GeneratedAt:  s.now(),
		Entries:      entries,
	}); err != nil {
		return fmt.Errorf("render history pdf: %w", err)
	}
	requestctx.Logger(ctx).Debug("history pdf rendered", "employeeId", employeeID, "goals", len(entries))
	return nil
}

func ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}

func wrap(op string, err error) error {
	if querier.IsUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, querier.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nonNil(items []MonthCount) []MonthCount {
	if items == nil {
		return []MonthCount{}
	}
	return items
}
