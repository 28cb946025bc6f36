package performance

import (
	"context"
	"time"

	"pms/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const goalColumns = `
    g.goal_id, g.employee_id, g.manager_id, e.name, m.name,
    g.description, g.due_date, g.status, g.created_at`

func scanGoal(row interface{ Scan(dest ...any) error }) (Goal, error) {
	var goal Goal
	err := row.Scan(&goal.ID, &goal.EmployeeID, &goal.ManagerID, &goal.EmployeeName, &goal.ManagerName,
		&goal.Description, &goal.DueDate, &goal.Status, &goal.CreatedAt)
	return goal, err
}

func (s *Store) CreateGoal(ctx context.Context, employeeID, managerID int64, description string, dueDate time.Time) (int64, error) {
	var id int64
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO goals (employee_id, manager_id, description, due_date)
    VALUES ($1,$2,$3,$4)
    RETURNING goal_id
  `, employeeID, managerID, description, dueDate).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) GetGoal(ctx context.Context, goalID int64) (Goal, error) {
	return scanGoal(s.DB.QueryRow(ctx, `
    SELECT`+goalColumns+`
    FROM goals g
    JOIN users e ON g.employee_id = e.user_id
    JOIN users m ON g.manager_id = m.user_id
    WHERE g.goal_id = $1
  `, goalID))
}

func (s *Store) SetGoalStatus(ctx context.Context, goalID int64, status GoalStatus) (bool, error) {
	tag, err := s.DB.Exec(ctx, "UPDATE goals SET status = $1 WHERE goal_id = $2", string(status), goalID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// TransitionGoalStatus only updates the goal while it still holds from.
func (s *Store) TransitionGoalStatus(ctx context.Context, goalID int64, from, to GoalStatus) (bool, error) {
	tag, err := s.DB.Exec(ctx, "UPDATE goals SET status = $1 WHERE goal_id = $2 AND status = $3", string(to), goalID, string(from))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ListGoalsByEmployee(ctx context.Context, employeeID int64) ([]Goal, error) {
	return s.listGoals(ctx, "g.employee_id = $1", employeeID)
}

func (s *Store) ListGoalsByManager(ctx context.Context, managerID int64) ([]Goal, error) {
	return s.listGoals(ctx, "g.manager_id = $1", managerID)
}

func (s *Store) listGoals(ctx context.Context, filter string, userID int64) ([]Goal, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+goalColumns+`
    FROM goals g
    JOIN users e ON g.employee_id = e.user_id
    JOIN users m ON g.manager_id = m.user_id
    WHERE `+filter+`
    ORDER BY g.due_date, g.goal_id
  `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}
