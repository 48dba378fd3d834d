// Package enrollment contains the HTTP handlers for course enrollment,
// drops, and course status.
package enrollment

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/helpdesk-api/internal/service"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/request"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/response"
)

// Enroll handles POST /api/enrollments.
func Enroll(svc *service.Enrollment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.EnrollmentRequest
		if !request.Decode(w, r, &req) {
			return
		}

		slog.Info("enrolling student",
			slog.String("student_id", req.StudentID),
			slog.String("course_code", req.CourseCode))

		result, err := svc.Enroll(req.StudentID, req.CourseCode)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, response.OK(result))
	}
}

// Status handles GET /api/enrollments/{courseCode}.
func Status(svc *service.Enrollment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courseCode := r.PathValue("courseCode")
		slog.Info("getting course status", slog.String("course_code", courseCode))

		status, err := svc.Status(courseCode)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK(status))
	}
}

// Drop handles DELETE /api/enrollments.
func Drop(svc *service.Enrollment) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.EnrollmentRequest
		if !request.Decode(w, r, &req) {
			return
		}

		slog.Info("dropping enrollment",
			slog.String("student_id", req.StudentID),
			slog.String("course_code", req.CourseCode))

		result, err := svc.Drop(req.StudentID, req.CourseCode)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK(result))
	}
}
