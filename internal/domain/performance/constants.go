package performance

type GoalStatus string

const (
	GoalStatusDraft      GoalStatus = "Draft"
	GoalStatusInProgress GoalStatus = "In Progress"
	GoalStatusCompleted  GoalStatus = "Completed"
	GoalStatusCancelled  GoalStatus = "Cancelled"
)

// GoalStatuses is the selector order shown to managers.
var GoalStatuses = []GoalStatus{GoalStatusDraft, GoalStatusInProgress, GoalStatusCompleted, GoalStatusCancelled}

func (s GoalStatus) Valid() bool {
	for _, candidate := range GoalStatuses {
		if s == candidate {
			return true
		}
	}
	return false
}

type TaskStatus string

const (
	TaskStatusPending  TaskStatus = "Pending Approval"
	TaskStatusApproved TaskStatus = "Approved"
	TaskStatusRejected TaskStatus = "Rejected"
)

var TaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusApproved, TaskStatusRejected}

func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusApproved || s == TaskStatusRejected
}

// Decision reports whether s is a status a manager may set on a pending task.
func (s TaskStatus) Decision() bool {
	return s == TaskStatusApproved || s == TaskStatusRejected
}

func (s TaskStatus) Terminal() bool {
	return s.Decision()
}
