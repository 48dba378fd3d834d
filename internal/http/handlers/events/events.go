// Package events contains the HTTP handlers for event registration and
// cancellation.
package events

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/helpdesk-api/internal/service"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/request"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/response"
)

// Register handles POST /api/events/registrations.
func Register(svc *service.Events) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.EventRegistrationRequest
		if !request.Decode(w, r, &req) {
			return
		}

		slog.Info("registering for event",
			slog.String("student_id", req.StudentID),
			slog.String("event_id", req.EventID))

		result, err := svc.Register(req.StudentID, req.EventID)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, response.OK(result))
	}
}

// Cancel handles DELETE /api/events/registrations.
func Cancel(svc *service.Events) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.EventRegistrationRequest
		if !request.Decode(w, r, &req) {
			return
		}

		slog.Info("cancelling event registration",
			slog.String("student_id", req.StudentID),
			slog.String("event_id", req.EventID))

		result, err := svc.Cancel(req.StudentID, req.EventID)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK(result))
	}
}
