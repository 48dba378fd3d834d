// Package hostel contains the HTTP handlers for hostel availability,
// room booking, and maintenance tickets.
package hostel

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/helpdesk-api/internal/service"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/request"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/response"
)

// Availability handles GET /api/hostels.
func Availability(svc *service.Hostel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing hostel availability")

		hostels, err := svc.Availability()
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK(hostels))
	}
}

// Book handles POST /api/hostels/bookings.
func Book(svc *service.Hostel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.HostelBookingRequest
		if !request.Decode(w, r, &req) {
			return
		}

		slog.Info("booking hostel room",
			slog.String("student_id", req.StudentID),
			slog.String("hostel_id", req.HostelID))

		booking, err := svc.Book(req.StudentID, req.HostelID)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, response.OK(booking))
	}
}

// Maintenance handles POST /api/hostels/maintenance.
func Maintenance(svc *service.Hostel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.MaintenanceRequest
		if !request.Decode(w, r, &req) {
			return
		}

		slog.Info("filing maintenance ticket",
			slog.String("student_id", req.StudentID),
			slog.String("room_id", req.RoomID))

		ticket, err := svc.FileMaintenance(req.StudentID, req.RoomID, req.Description)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, response.OK(ticket))
	}
}
