package performance

import "errors"

var (
	ErrGoalNotFound         = errors.New("goal not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrInvalidGoalStatus    = errors.New("invalid goal status")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
	ErrTransitionNotAllowed = errors.New("goal status transition not allowed")
	ErrGoalStatusChanged    = errors.New("goal status changed concurrently")
	ErrTaskAlreadyDecided   = errors.New("task has already been approved or rejected")
	ErrEmptyText            = errors.New("text must not be empty")
	ErrDueDateRequired      = errors.New("due date is required")
	ErrSelfAssignment       = errors.New("a goal cannot be assigned by the employee to themselves")
	ErrReferenceMissing     = errors.New("referenced user or goal does not exist")
	ErrNotGoalOwner         = errors.New("goal belongs to another user")
)
