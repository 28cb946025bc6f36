package performance

import "strings"

const historySeparator = " | "

// TaskDescriptions joins task descriptions the way the legacy report did.
// Empty when the goal has no tasks.
func (h HistoryEntry) TaskDescriptions() string {
	parts := make([]string, 0, len(h.Tasks))
	for _, task := range h.Tasks {
		parts = append(parts, task.Description)
	}
	return strings.Join(parts, historySeparator)
}

func (h HistoryEntry) FeedbackHistory() string {
	parts := make([]string, 0, len(h.Feedback))
	for _, item := range h.Feedback {
		parts = append(parts, item.Text)
	}
	return strings.Join(parts, historySeparator)
}

func (h HistoryEntry) ApprovedTasks() int {
	count := 0
	for _, task := range h.Tasks {
		if task.Status == TaskStatusApproved {
			count++
		}
	}
	return count
}
