package performance

import "fmt"

// Policy decides which goal status changes a manager may make.
type Policy string

const (
	// PolicyPermissive lets any status be set from any status.
	PolicyPermissive Policy = "permissive"
	// PolicyStrict walks Draft -> In Progress -> Completed, with Cancelled
	// reachable until the goal is finished.
	PolicyStrict Policy = "strict"
)

var strictTransitions = map[GoalStatus][]GoalStatus{
	GoalStatusDraft:      {GoalStatusInProgress, GoalStatusCancelled},
	GoalStatusInProgress: {GoalStatusCompleted, GoalStatusCancelled},
	GoalStatusCompleted:  {},
	GoalStatusCancelled:  {},
}

func ParsePolicy(value string) (Policy, error) {
	switch Policy(value) {
	case PolicyPermissive, "":
		return PolicyPermissive, nil
	case PolicyStrict:
		return PolicyStrict, nil
	}
	return "", fmt.Errorf("unknown goal status policy %q", value)
}

// Allows reports whether a goal in from may be moved to to. Re-setting the
// current status is always allowed.
func (p Policy) Allows(from, to GoalStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	if p != PolicyStrict {
		return true
	}
	for _, next := range strictTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Next lists the statuses reachable from from, excluding from itself.
func (p Policy) Next(from GoalStatus) []GoalStatus {
	next := []GoalStatus{}
	for _, candidate := range GoalStatuses {
		if candidate != from && p.Allows(from, candidate) {
			next = append(next, candidate)
		}
	}
	return next
}
