package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/aanand-mishra/helpdesk-api/internal/store"
	"github.com/aanand-mishra/helpdesk-api/internal/storage"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

// ExamTimetable maps each of the student's enrolled courses to its
// scheduled exam slots. Courses without scheduled exams map to an
// empty slice.
type ExamTimetable struct {
	StudentID string                      `json:"student_id"`
	Timetable map[string][]types.ExamSlot `json:"timetable"`
}

// Exams serves exam timetables and special arrangement requests.
type Exams struct {
	store *store.Store
	audit storage.Storage
	clock func() time.Time
}

func NewExams(st *store.Store, audit storage.Storage) *Exams {
	return &Exams{store: st, audit: audit, clock: time.Now}
}

// Timetable returns the exam slots for every course the student is
// enrolled in.
func (e *Exams) Timetable(studentID string) (ExamTimetable, error) {
	tt := ExamTimetable{StudentID: studentID, Timetable: map[string][]types.ExamSlot{}}
	err := e.store.View(func(d *store.Data) error {
		s, err := d.Student(studentID)
		if err != nil {
			return err
		}
		for _, code := range s.Courses {
			// Copied so the snapshot never aliases store memory.
			tt.Timetable[code] = append([]types.ExamSlot{}, d.ExamSlots[code]...)
		}
		return nil
	})
	if err != nil {
		return ExamTimetable{}, err
	}
	recordAudit(e.audit, studentID, "view_exam_timetable", nil)
	return tt, nil
}

// RequestSpecialArrangement files a ticket asking for special exam
// arrangements for one course. Tickets are never reviewed in this
// mock; they just exist.
func (e *Exams) RequestSpecialArrangement(studentID, courseCode, reason string) (types.SpecialExamRequest, error) {
	req := types.SpecialExamRequest{
		ID:         uuid.NewString(),
		StudentID:  studentID,
		CourseCode: courseCode,
		Reason:     reason,
		Status:     types.SpecialStatusSubmitted,
		CreatedAt:  e.clock(),
	}

	err := e.store.Update(func(d *store.Data) error {
		if _, err := d.Student(studentID); err != nil {
			return err
		}
		if _, err := d.Course(courseCode); err != nil {
			return err
		}
		d.Specials[req.ID] = &req
		return nil
	})
	if err != nil {
		return types.SpecialExamRequest{}, err
	}

	recordAudit(e.audit, studentID, "special_exam_request", map[string]any{
		"ticket_id": req.ID,
		"course":    courseCode,
	})
	return req, nil
}
