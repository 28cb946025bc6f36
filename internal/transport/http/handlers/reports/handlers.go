package reportshandler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pms/internal/domain/performance"
	"pms/internal/domain/reports"
	"pms/internal/domain/session"
	"pms/internal/domain/users"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
	"pms/internal/transport/http/shared"
)

type Service interface {
	Analytics(ctx context.Context, scope reports.Scope) (reports.Analytics, error)
	WriteHistoryPDF(ctx context.Context, w io.Writer, employeeID int64, employeeName string) error
}

type HistorySource interface {
	History(ctx context.Context, employeeID int64) ([]performance.HistoryEntry, error)
}

type UserLookup interface {
	Get(ctx context.Context, userID int64) (users.User, error)
}

type Handler struct {
	Service Service
	History HistorySource
	Users   UserLookup
}

func NewHandler(service Service, history HistorySource, lookup UserLookup) *Handler {
	return &Handler{Service: service, History: history, Users: lookup}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/history", h.handleHistory)
		r.Get("/history.pdf", h.handleHistoryPDF)
		r.Get("/analytics", h.handleAnalytics)
	})
}

type historyResponse struct {
	EmployeeID int64                      `json:"employeeId"`
	Entries    []performance.HistoryEntry `json:"entries"`
}

// handleHistory reports on the session user unless employeeId names someone
// else.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID, ok := h.subject(w, r)
	if !ok {
		return
	}
	entries, err := h.History.History(r.Context(), employeeID)
	if err != nil {
		shared.FailError(w, err, requestID)
		return
	}
	api.Success(w, historyResponse{EmployeeID: employeeID, Entries: entries}, requestID)
}

func (h *Handler) handleHistoryPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID, ok := h.subject(w, r)
	if !ok {
		return
	}

	name := ""
	if current, _ := middleware.GetSession(r.Context()); current.UserID == employeeID {
		name = current.UserName
	} else {
		user, err := h.Users.Get(r.Context(), employeeID)
		if err != nil {
			shared.FailError(w, err, requestID)
			return
		}
		name = user.Name
	}

	var buf bytes.Buffer
	if err := h.Service.WriteHistoryPDF(r.Context(), &buf, employeeID, name); err != nil {
		shared.FailError(w, err, requestID)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"performance-history-%d.pdf\"", employeeID))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	current, _ := middleware.GetSession(r.Context())

	result, err := h.Service.Analytics(r.Context(), scopeFor(current))
	if err != nil {
		shared.FailError(w, err, requestID)
		return
	}
	api.Success(w, result, requestID)
}

func (h *Handler) subject(w http.ResponseWriter, r *http.Request) (int64, bool) {
	current, _ := middleware.GetSession(r.Context())
	employeeID, ok := shared.IDQuery(r, "employeeId")
	if !ok {
		shared.FailValidation(w, middleware.GetRequestID(r.Context()), []shared.ValidationIssue{{Field: "employeeId", Reason: "must be a positive id"}})
		return 0, false
	}
	if employeeID == 0 {
		employeeID = current.UserID
	}
	return employeeID, true
}

func scopeFor(current session.Session) reports.Scope {
	if current.Role == users.RoleManager {
		return reports.Scope{Kind: reports.ScopeManager, UserID: current.UserID}
	}
	return reports.Scope{Kind: reports.ScopeEmployee, UserID: current.UserID}
}
