package shared

import (
	"errors"
	"log/slog"
	"net/http"

	"pms/internal/domain/performance"
	"pms/internal/domain/reports"
	"pms/internal/domain/session"
	"pms/internal/domain/users"
	"pms/internal/platform/querier"
	"pms/internal/transport/http/api"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

var errorMappings = []errorMapping{
	{querier.ErrUnavailable, http.StatusServiceUnavailable, "unavailable", "database unavailable, try again later"},
	{performance.ErrGoalNotFound, http.StatusNotFound, "not_found", "goal not found"},
	{performance.ErrTaskNotFound, http.StatusNotFound, "not_found", "task not found"},
	{performance.ErrReferenceMissing, http.StatusNotFound, "not_found", "referenced user or goal not found"},
	{users.ErrNotFound, http.StatusNotFound, "not_found", "user not found"},
	{users.ErrManagerMissing, http.StatusNotFound, "not_found", "manager not found"},
	{performance.ErrNotGoalOwner, http.StatusForbidden, "forbidden", "goal belongs to another user"},
	{performance.ErrTaskAlreadyDecided, http.StatusConflict, "conflict", "task has already been decided"},
	{performance.ErrGoalStatusChanged, http.StatusConflict, "conflict", "goal status changed, reload and retry"},
	{performance.ErrTransitionNotAllowed, http.StatusUnprocessableEntity, "invalid_transition", "goal status transition not allowed"},
	{performance.ErrInvalidGoalStatus, http.StatusBadRequest, "validation_error", "invalid goal status"},
	{performance.ErrInvalidTaskStatus, http.StatusBadRequest, "validation_error", "invalid task status"},
	{performance.ErrEmptyText, http.StatusBadRequest, "validation_error", "text must not be empty"},
	{performance.ErrDueDateRequired, http.StatusBadRequest, "validation_error", "due date is required"},
	{performance.ErrSelfAssignment, http.StatusBadRequest, "validation_error", "a manager cannot assign a goal to themselves"},
	{users.ErrInvalidRole, http.StatusBadRequest, "validation_error", "invalid role for this user"},
	{users.ErrEmptyName, http.StatusBadRequest, "validation_error", "name is required"},
	{reports.ErrInvalidScope, http.StatusBadRequest, "validation_error", "invalid analytics scope"},
	{session.ErrInvalidToken, http.StatusUnauthorized, "unauthorized", "invalid session"},
}

// FailError maps a domain error onto the response envelope. Unknown errors
// are logged and reported as a generic failure; driver text never reaches
// the client.
func FailError(w http.ResponseWriter, err error, requestID string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.status >= http.StatusInternalServerError {
				slog.Error("request failed", "err", err, "requestId", requestID)
			}
			api.Fail(w, m.status, m.code, m.message, requestID)
			return
		}
	}
	slog.Error("request failed", "err", err, "requestId", requestID)
	api.Fail(w, http.StatusInternalServerError, "internal_error", "operation failed", requestID)
}
