package performance

import "time"

type Goal struct {
	ID           int64      `json:"id"`
	EmployeeID   int64      `json:"employeeId"`
	ManagerID    int64      `json:"managerId"`
	EmployeeName string     `json:"employeeName,omitempty"`
	ManagerName  string     `json:"managerName,omitempty"`
	Description  string     `json:"description"`
	DueDate      time.Time  `json:"dueDate"`
	Status       GoalStatus `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type GoalInput struct {
	EmployeeID  int64
	ManagerID   int64
	Description string
	DueDate     time.Time
}

type Task struct {
	ID          int64      `json:"id"`
	GoalID      int64      `json:"goalId"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// PendingTask is a row of a manager's approval queue.
type PendingTask struct {
	TaskID          int64     `json:"taskId"`
	TaskDescription string    `json:"taskDescription"`
	GoalID          int64     `json:"goalId"`
	GoalDescription string    `json:"goalDescription"`
	GoalDueDate     time.Time `json:"goalDueDate"`
	EmployeeID      int64     `json:"employeeId"`
	EmployeeName    string    `json:"employeeName"`
}

type Feedback struct {
	ID          int64     `json:"id"`
	GoalID      int64     `json:"goalId"`
	ManagerID   int64     `json:"managerId"`
	ManagerName string    `json:"managerName"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TaskSummary struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type FeedbackSummary struct {
	ID          int64     `json:"id"`
	Text        string    `json:"text"`
	ManagerName string    `json:"managerName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HistoryEntry is one goal of an employee's performance history with its
// child records kept as lists.
type HistoryEntry struct {
	GoalID          int64             `json:"goalId"`
	GoalDescription string            `json:"goalDescription"`
	DueDate         time.Time         `json:"dueDate"`
	GoalStatus      GoalStatus        `json:"goalStatus"`
	ManagerName     string            `json:"managerName"`
	Tasks           []TaskSummary     `json:"tasks"`
	Feedback        []FeedbackSummary `json:"feedback"`
}

// GoalView is a goal with everything a dashboard renders beneath it.
type GoalView struct {
	Goal
	Tasks        []Task       `json:"tasks"`
	Feedback     []Feedback   `json:"feedback"`
	NextStatuses []GoalStatus `json:"nextStatuses,omitempty"`
}

type StatusOption struct {
	Status GoalStatus   `json:"status"`
	Next   []GoalStatus `json:"next"`
}

type ManagerDashboard struct {
	PendingTasks []PendingTask `json:"pendingTasks"`
	Goals        []GoalView    `json:"goals"`
}

type EmployeeDashboard struct {
	Goals []GoalView `json:"goals"`
}
