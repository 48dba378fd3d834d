package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/aanand-mishra/helpdesk-api/internal/store"
	"github.com/aanand-mishra/helpdesk-api/internal/storage"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

// Enrollment outcomes.
const (
	OutcomeEnrolled   = "enrolled"
	OutcomeWaitlisted = "waitlisted"
)

// EnrollmentResult reports where the student ended up. Position is the
// 1-based waitlist position and only set for waitlisted outcomes.
type EnrollmentResult struct {
	Status     string `json:"status"`
	CourseCode string `json:"course_code"`
	Position   int    `json:"position,omitempty"`
}

// CourseStatus is the public view of a course's enrollment state.
type CourseStatus struct {
	CourseCode string   `json:"course_code"`
	Title      string   `json:"title"`
	Capacity   int      `json:"capacity"`
	Enrolled   []string `json:"enrolled"`
	Waitlist   []string `json:"waitlist"`
}

// DropResult reports a drop and, when a seat opened up, which
// waitlisted student was promoted into it.
type DropResult struct {
	CourseCode string `json:"course_code"`
	Dropped    string `json:"dropped"`
	Promoted   string `json:"promoted,omitempty"`
}

// Enrollment enforces the capacity rule: seats fill up to capacity,
// everyone after that queues on a FIFO waitlist, and dropping a seat
// promotes the head of the queue.
type Enrollment struct {
	store *store.Store
	audit storage.Storage
	clock func() time.Time
}

func NewEnrollment(st *store.Store, audit storage.Storage) *Enrollment {
	return &Enrollment{store: st, audit: audit, clock: time.Now}
}

// Enroll places the student in the course or on its waitlist. A
// student already enrolled or already waiting gets ErrAlreadyEnrolled.
func (e *Enrollment) Enroll(studentID, courseCode string) (EnrollmentResult, error) {
	var result EnrollmentResult
	err := e.store.Update(func(d *store.Data) error {
		s, err := d.Student(studentID)
		if err != nil {
			return err
		}
		c, err := d.Course(courseCode)
		if err != nil {
			return err
		}

		if slices.Contains(c.Enrolled, studentID) {
			return fmt.Errorf("student %s in course %s: %w", studentID, courseCode, types.ErrAlreadyEnrolled)
		}
		if waitlistIndex(c.Waitlist, studentID) >= 0 {
			return fmt.Errorf("student %s waitlisted for course %s: %w", studentID, courseCode, types.ErrAlreadyEnrolled)
		}

		if len(c.Enrolled) < c.Capacity {
			c.Enrolled = append(c.Enrolled, studentID)
			s.Courses = append(s.Courses, courseCode)
			result = EnrollmentResult{Status: OutcomeEnrolled, CourseCode: courseCode}
			return nil
		}

		c.Waitlist = append(c.Waitlist, types.WaitlistEntry{
			StudentID:   studentID,
			RequestedAt: e.clock(),
		})
		result = EnrollmentResult{
			Status:     OutcomeWaitlisted,
			CourseCode: courseCode,
			Position:   len(c.Waitlist),
		}
		return nil
	})
	if err != nil {
		return EnrollmentResult{}, err
	}

	recordAudit(e.audit, studentID, result.Status, map[string]any{"course": courseCode})
	return result, nil
}

// Status returns who holds seats and who is waiting, in order.
func (e *Enrollment) Status(courseCode string) (CourseStatus, error) {
	var status CourseStatus
	err := e.store.View(func(d *store.Data) error {
		c, err := d.Course(courseCode)
		if err != nil {
			return err
		}
		status = CourseStatus{
			CourseCode: c.Code,
			Title:      c.Title,
			Capacity:   c.Capacity,
			Enrolled:   append([]string{}, c.Enrolled...),
			Waitlist:   waitlistIDs(c.Waitlist),
		}
		return nil
	})
	if err != nil {
		return CourseStatus{}, err
	}
	return status, nil
}

// Drop removes the student from the course (or from its waitlist). If
// a seat was freed and someone is waiting, the head of the waitlist is
// promoted into it.
func (e *Enrollment) Drop(studentID, courseCode string) (DropResult, error) {
	var result DropResult
	err := e.store.Update(func(d *store.Data) error {
		c, err := d.Course(courseCode)
		if err != nil {
			return err
		}

		if i := slices.Index(c.Enrolled, studentID); i >= 0 {
			c.Enrolled = slices.Delete(c.Enrolled, i, i+1)
			removeCourse(d, studentID, courseCode)
			result = DropResult{CourseCode: courseCode, Dropped: studentID}

			if len(c.Waitlist) > 0 {
				next := c.Waitlist[0]
				c.Waitlist = c.Waitlist[1:]
				c.Enrolled = append(c.Enrolled, next.StudentID)
				if s, err := d.Student(next.StudentID); err == nil {
					s.Courses = append(s.Courses, courseCode)
				}
				result.Promoted = next.StudentID
			}
			return nil
		}

		if i := waitlistIndex(c.Waitlist, studentID); i >= 0 {
			c.Waitlist = slices.Delete(c.Waitlist, i, i+1)
			result = DropResult{CourseCode: courseCode, Dropped: studentID}
			return nil
		}

		return fmt.Errorf("student %s not in course %s: %w", studentID, courseCode, types.ErrNotFound)
	})
	if err != nil {
		return DropResult{}, err
	}

	details := map[string]any{"course": courseCode}
	if result.Promoted != "" {
		details["promoted"] = result.Promoted
	}
	recordAudit(e.audit, studentID, "dropped", details)
	return result, nil
}

func waitlistIndex(wl []types.WaitlistEntry, studentID string) int {
	return slices.IndexFunc(wl, func(w types.WaitlistEntry) bool {
		return w.StudentID == studentID
	})
}

func waitlistIDs(wl []types.WaitlistEntry) []string {
	ids := make([]string, 0, len(wl))
	for _, w := range wl {
		ids = append(ids, w.StudentID)
	}
	return ids
}

func removeCourse(d *store.Data, studentID, courseCode string) {
	s, err := d.Student(studentID)
	if err != nil {
		return
	}
	if i := slices.Index(s.Courses, courseCode); i >= 0 {
		s.Courses = slices.Delete(s.Courses, i, i+1)
	}
}
