package sessionhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pms/internal/domain/session"
	"pms/internal/domain/users"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
	"pms/internal/transport/http/shared"
)

type UserDirectory interface {
	ListByRole(ctx context.Context, role users.Role) ([]users.User, error)
}

type Starter interface {
	Start(ctx context.Context, role users.Role, userID int64) (session.Token, error)
}

type Handler struct {
	Users    UserDirectory
	Sessions Starter
}

func NewHandler(directory UserDirectory, sessions Starter) *Handler {
	return &Handler{Users: directory, Sessions: sessions}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/roles", h.handleRoles)
	r.Get("/users", h.handleListUsers)
	r.Post("/session", h.handleStartSession)
	r.With(middleware.RequireSession).Get("/session", h.handleCurrentSession)
}

func (h *Handler) handleRoles(w http.ResponseWriter, r *http.Request) {
	api.Success(w, users.Roles, middleware.GetRequestID(r.Context()))
}

// handleListUsers feeds the user selector for a role. No users is an empty
// list so clients can prompt for out-of-band creation.
func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	role, err := users.ParseRole(r.URL.Query().Get("role"))
	if err != nil {
		shared.FailValidation(w, requestID, []shared.ValidationIssue{{Field: "role", Reason: "must be Manager or Employee"}})
		return
	}
	list, err := h.Users.ListByRole(r.Context(), role)
	if err != nil {
		shared.FailError(w, err, requestID)
		return
	}
	api.Success(w, list, requestID)
}

type startSessionRequest struct {
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
}

func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload startSessionRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Enum("role", payload.Role, []string{string(users.RoleManager), string(users.RoleEmployee)}, "must be Manager or Employee")
	v.Positive("userId", payload.UserID)
	if v.Reject(w, requestID) {
		return
	}

	token, err := h.Sessions.Start(r.Context(), users.Role(payload.Role), payload.UserID)
	if err != nil {
		shared.FailError(w, err, requestID)
		return
	}
	api.Created(w, token, requestID)
}

func (h *Handler) handleCurrentSession(w http.ResponseWriter, r *http.Request) {
	current, _ := middleware.GetSession(r.Context())
	api.Success(w, current, middleware.GetRequestID(r.Context()))
}
