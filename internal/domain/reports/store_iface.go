package reports

import "context"

//go:generate mockgen -destination=mock_reports/mock_store.go -package=mock_reports pms/internal/domain/reports StoreAPI

type StoreAPI interface {
	GoalStatusCounts(ctx context.Context, scope Scope) ([]StatusCount, error)
	TaskStatusCounts(ctx context.Context, scope Scope) ([]StatusCount, error)
	FeedbackCount(ctx context.Context, scope Scope) (int, error)
	GoalsByMonth(ctx context.Context, scope Scope) ([]MonthCount, error)
	TasksByMonth(ctx context.Context, scope Scope) ([]MonthCount, error)
}
