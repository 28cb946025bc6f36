package performance

import "context"

func (s *Store) CreateTask(ctx context.Context, goalID int64, description string) (int64, error) {
	var id int64
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO tasks (goal_id, description)
    VALUES ($1,$2)
    RETURNING task_id
  `, goalID, description).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) GetTask(ctx context.Context, taskID int64) (Task, error) {
	var task Task
	if err := s.DB.QueryRow(ctx, `
    SELECT task_id, goal_id, description, status, created_at
    FROM tasks
    WHERE task_id = $1
  `, taskID).Scan(&task.ID, &task.GoalID, &task.Description, &task.Status, &task.CreatedAt); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (s *Store) ListTasksByGoal(ctx context.Context, goalID int64) ([]Task, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT task_id, goal_id, description, status, created_at
    FROM tasks
    WHERE goal_id = $1
    ORDER BY created_at, task_id
  `, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []Task{}
	for rows.Next() {
		var task Task
		if err := rows.Scan(&task.ID, &task.GoalID, &task.Description, &task.Status, &task.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (s *Store) ListPendingTasks(ctx context.Context, managerID int64) ([]PendingTask, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT t.task_id, t.description, g.goal_id, g.description, g.due_date, e.user_id, e.name
    FROM tasks t
    JOIN goals g ON t.goal_id = g.goal_id
    JOIN users e ON g.employee_id = e.user_id
    WHERE t.status = $1 AND g.manager_id = $2
    ORDER BY g.due_date, t.created_at, t.task_id
  `, string(TaskStatusPending), managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := []PendingTask{}
	for rows.Next() {
		var task PendingTask
		if err := rows.Scan(&task.TaskID, &task.TaskDescription, &task.GoalID, &task.GoalDescription, &task.GoalDueDate, &task.EmployeeID, &task.EmployeeName); err != nil {
			return nil, err
		}
		pending = append(pending, task)
	}
	return pending, rows.Err()
}

// DecideTask moves a pending task to status. It reports false when the task
// does not exist or has already been decided.
func (s *Store) DecideTask(ctx context.Context, taskID int64, status TaskStatus) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE tasks
    SET status = $1
    WHERE task_id = $2 AND status = $3
  `, string(status), taskID, string(TaskStatusPending))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
