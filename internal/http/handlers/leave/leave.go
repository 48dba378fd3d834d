// Package leave contains the HTTP handler for leave applications.
package leave

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/helpdesk-api/internal/service"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/request"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/response"
)

// Apply handles POST /api/leaves.
func Apply(svc *service.Leave) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.LeaveApplication
		if !request.Decode(w, r, &req) {
			return
		}

		slog.Info("leave application",
			slog.String("student_id", req.StudentID),
			slog.String("start_date", req.StartDate),
			slog.String("end_date", req.EndDate))

		lr, err := svc.Apply(req.StudentID, req.StartDate, req.EndDate, req.Reason)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, response.OK(lr))
	}
}
