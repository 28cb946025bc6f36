package performance

import (
	"context"
	"encoding/json"
	"fmt"
)

// History builds one entry per goal. Children are aggregated in correlated
// subqueries so tasks and feedback never multiply each other.
func (s *Store) History(ctx context.Context, employeeID int64) ([]HistoryEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT g.goal_id, g.description, g.due_date, g.status, m.name,
           COALESCE((
             SELECT json_agg(json_build_object(
                      'id', t.task_id,
                      'description', t.description,
                      'status', t.status,
                      'createdAt', t.created_at)
                    ORDER BY t.created_at, t.task_id)
             FROM tasks t
             WHERE t.goal_id = g.goal_id
           ), '[]'::json),
           COALESCE((
             SELECT json_agg(json_build_object(
                      'id', f.feedback_id,
                      'text', f.feedback_text,
                      'managerName', u.name,
                      'createdAt', f.created_at)
                    ORDER BY f.created_at, f.feedback_id)
             FROM feedback f
             JOIN users u ON f.manager_id = u.user_id
             WHERE f.goal_id = g.goal_id
           ), '[]'::json)
    FROM goals g
    JOIN users m ON g.manager_id = m.user_id
    WHERE g.employee_id = $1
    ORDER BY g.due_date, g.goal_id
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []HistoryEntry{}
	for rows.Next() {
		var entry HistoryEntry
		var tasksJSON, feedbackJSON []byte
		if err := rows.Scan(&entry.GoalID, &entry.GoalDescription, &entry.DueDate, &entry.GoalStatus, &entry.ManagerName, &tasksJSON, &feedbackJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(tasksJSON, &entry.Tasks); err != nil {
			return nil, fmt.Errorf("decode tasks of goal %d: %w", entry.GoalID, err)
		}
		if err := json.Unmarshal(feedbackJSON, &entry.Feedback); err != nil {
			return nil, fmt.Errorf("decode feedback of goal %d: %w", entry.GoalID, err)
		}
		history = append(history, entry)
	}
	return history, rows.Err()
}
