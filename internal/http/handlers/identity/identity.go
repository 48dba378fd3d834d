// Package identity contains the HTTP handlers for OTP verification and
// student profile lookups.
package identity

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/helpdesk-api/internal/service"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/request"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/response"
)

// RequestOTP handles POST /api/otp/request. The issued code is echoed
// back in the response — acceptable only because nothing here is real.
func RequestOTP(svc *service.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.OTPRequest
		if !request.Decode(w, r, &req) {
			return
		}

		slog.Info("otp requested", slog.String("student_id", req.StudentID))

		session, err := svc.RequestOTP(req.StudentID)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, response.OK(session))
	}
}

// VerifyOTP handles POST /api/otp/verify.
func VerifyOTP(svc *service.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.OTPVerification
		if !request.Decode(w, r, &req) {
			return
		}

		slog.Info("otp verification attempt", slog.String("student_id", req.StudentID))

		result, err := svc.VerifyOTP(req.StudentID, req.Code)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK(result))
	}
}

// Student handles GET /api/students/{id}.
func Student(svc *service.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting student", slog.String("id", id))

		student, err := svc.Student(id)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK(student))
	}
}
