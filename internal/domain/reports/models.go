package reports

import "errors"

type ScopeKind string

const (
	ScopeAll      ScopeKind = "all"
	ScopeManager  ScopeKind = "manager"
	ScopeEmployee ScopeKind = "employee"
)

var ErrInvalidScope = errors.New("invalid analytics scope")

// Scope selects the goals analytics are computed over: those a manager
// assigned, those an employee owns, or every goal.
type Scope struct {
	Kind   ScopeKind `json:"kind"`
	UserID int64     `json:"userId,omitempty"`
}

func (s Scope) Valid() bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeManager, ScopeEmployee:
		return s.UserID > 0
	}
	return false
}

type StatusCount struct {
	Status string
	Count  int
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type Analytics struct {
	Scope            Scope          `json:"scope"`
	TotalGoals       int            `json:"totalGoals"`
	TotalTasks       int            `json:"totalTasks"`
	PendingTasks     int            `json:"pendingTasks"`
	FeedbackCount    int            `json:"feedbackCount"`
	GoalStatus       map[string]int `json:"goalStatus"`
	TaskStatus       map[string]int `json:"taskStatus"`
	GoalsByMonth     []MonthCount   `json:"goalsByMonth"`
	TasksByMonth     []MonthCount   `json:"tasksByMonth"`
	CompletionRate   float64        `json:"completionRate"`
	TaskApprovalRate float64        `json:"taskApprovalRate"`
}
