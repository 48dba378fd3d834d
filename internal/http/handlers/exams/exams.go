// Package exams contains the HTTP handlers for exam timetables and
// special arrangement requests.
package exams

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/helpdesk-api/internal/service"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/request"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/response"
)

// Timetable handles GET /api/exams/{studentId}.
func Timetable(svc *service.Exams) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := r.PathValue("studentId")
		slog.Info("getting exam timetable", slog.String("student_id", studentID))

		tt, err := svc.Timetable(studentID)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK(tt))
	}
}

// RequestSpecial handles POST /api/exams/special.
func RequestSpecial(svc *service.Exams) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SpecialExamRequestBody
		if !request.Decode(w, r, &req) {
			return
		}

		slog.Info("special exam arrangement requested",
			slog.String("student_id", req.StudentID),
			slog.String("course_code", req.CourseCode))

		ticket, err := svc.RequestSpecialArrangement(req.StudentID, req.CourseCode, req.Reason)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, response.OK(ticket))
	}
}
