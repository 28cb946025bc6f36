package performance

import "context"

func (s *Store) CreateFeedback(ctx context.Context, goalID, managerID int64, text string) (int64, error) {
	var id int64
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO feedback (goal_id, manager_id, feedback_text)
    VALUES ($1,$2,$3)
    RETURNING feedback_id
  `, goalID, managerID, text).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) ListFeedbackByGoal(ctx context.Context, goalID int64) ([]Feedback, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT f.feedback_id, f.goal_id, f.manager_id, u.name, f.feedback_text, f.created_at
    FROM feedback f
    JOIN users u ON f.manager_id = u.user_id
    WHERE f.goal_id = $1
    ORDER BY f.created_at DESC, f.feedback_id DESC
  `, goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedback := []Feedback{}
	for rows.Next() {
		var item Feedback
		if err := rows.Scan(&item.ID, &item.GoalID, &item.ManagerID, &item.ManagerName, &item.Text, &item.CreatedAt); err != nil {
			return nil, err
		}
		feedback = append(feedback, item)
	}
	return feedback, rows.Err()
}
