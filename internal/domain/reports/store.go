package reports

import (
	"context"

	"pms/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

// goalFilter returns the WHERE clause restricting goals alias g to scope.
func goalFilter(scope Scope) (string, []any) {
	switch scope.Kind {
	case ScopeManager:
		return "g.manager_id = $1", []any{scope.UserID}
	case ScopeEmployee:
		return "g.employee_id = $1", []any{scope.UserID}
	default:
		return "TRUE", nil
	}
}

func (s *Store) GoalStatusCounts(ctx context.Context, scope Scope) ([]StatusCount, error) {
	where, args := goalFilter(scope)
	return s.statusCounts(ctx, `
    SELECT g.status, COUNT(1)
    FROM goals g
    WHERE `+where+`
    GROUP BY g.status
  `, args...)
}

func (s *Store) TaskStatusCounts(ctx context.Context, scope Scope) ([]StatusCount, error) {
	where, args := goalFilter(scope)
	return s.statusCounts(ctx, `
    SELECT t.status, COUNT(1)
    FROM tasks t
    JOIN goals g ON t.goal_id = g.goal_id
    WHERE `+where+`
    GROUP BY t.status
  `, args...)
}

func (s *Store) statusCounts(ctx context.Context, sql string, args ...any) ([]StatusCount, error) {
	rows, err := s.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []StatusCount{}
	for rows.Next() {
		var count StatusCount
		if err := rows.Scan(&count.Status, &count.Count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}
	return counts, rows.Err()
}

func (s *Store) FeedbackCount(ctx context.Context, scope Scope) (int, error) {
	where, args := goalFilter(scope)
	var count int
	if err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM feedback f
    JOIN goals g ON f.goal_id = g.goal_id
    WHERE `+where, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) GoalsByMonth(ctx context.Context, scope Scope) ([]MonthCount, error) {
	where, args := goalFilter(scope)
	return s.monthCounts(ctx, `
    SELECT to_char(date_trunc('month', g.created_at), 'YYYY-MM') AS month, COUNT(1)
    FROM goals g
    WHERE `+where+`
    GROUP BY month
    ORDER BY month
  `, args...)
}

func (s *Store) TasksByMonth(ctx context.Context, scope Scope) ([]MonthCount, error) {
	where, args := goalFilter(scope)
	return s.monthCounts(ctx, `
    SELECT to_char(date_trunc('month', t.created_at), 'YYYY-MM') AS month, COUNT(1)
    FROM tasks t
    JOIN goals g ON t.goal_id = g.goal_id
    WHERE `+where+`
    GROUP BY month
    ORDER BY month
  `, args...)
}

func (s *Store) monthCounts(ctx context.Context, sql string, args ...any) ([]MonthCount, error) {
	rows, err := s.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []MonthCount{}
	for rows.Next() {
		var count MonthCount
		if err := rows.Scan(&count.Month, &count.Count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}
	return counts, rows.Err()
}
