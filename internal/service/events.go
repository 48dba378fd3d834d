package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/aanand-mishra/helpdesk-api/internal/store"
	"github.com/aanand-mishra/helpdesk-api/internal/storage"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

// Event registration outcomes.
const (
	OutcomeRegistered = "registered"
	OutcomeCancelled  = "cancelled"
)

// RegistrationResult reports where the registrant ended up; Position
// is the 1-based waitlist position for waitlisted outcomes.
type RegistrationResult struct {
	Status   string `json:"status"`
	EventID  string `json:"event_id"`
	Position int    `json:"position,omitempty"`
}

// CancellationResult reports a cancellation and any promotion it
// triggered.
type CancellationResult struct {
	EventID  string `json:"event_id"`
	Status   string `json:"status"`
	Promoted string `json:"promoted,omitempty"`
}

// Events applies the same capacity/FIFO-waitlist policy as course
// enrollment, just against event registrations.
type Events struct {
	store *store.Store
	audit storage.Storage
	clock func() time.Time
}

func NewEvents(st *store.Store, audit storage.Storage) *Events {
	return &Events{store: st, audit: audit, clock: time.Now}
}

// Register adds the student to the event or to its waitlist; duplicate
// registrations (either list) fail with ErrAlreadyEnrolled.
func (e *Events) Register(studentID, eventID string) (RegistrationResult, error) {
	var result RegistrationResult
	err := e.store.Update(func(d *store.Data) error {
		if _, err := d.Student(studentID); err != nil {
			return err
		}
		ev, err := d.Event(eventID)
		if err != nil {
			return err
		}

		if slices.Contains(ev.Registrants, studentID) {
			return fmt.Errorf("student %s at event %s: %w", studentID, eventID, types.ErrAlreadyEnrolled)
		}
		if waitlistIndex(ev.Waitlist, studentID) >= 0 {
			return fmt.Errorf("student %s waitlisted for event %s: %w", studentID, eventID, types.ErrAlreadyEnrolled)
		}

		if len(ev.Registrants) < ev.Capacity {
			ev.Registrants = append(ev.Registrants, studentID)
			result = RegistrationResult{Status: OutcomeRegistered, EventID: eventID}
			return nil
		}

		ev.Waitlist = append(ev.Waitlist, types.WaitlistEntry{
			StudentID:   studentID,
			RequestedAt: e.clock(),
		})
		result = RegistrationResult{
			Status:   OutcomeWaitlisted,
			EventID:  eventID,
			Position: len(ev.Waitlist),
		}
		return nil
	})
	if err != nil {
		return RegistrationResult{}, err
	}

	action := "event_registered"
	if result.Status == OutcomeWaitlisted {
		action = "event_waitlisted"
	}
	recordAudit(e.audit, studentID, action, map[string]any{"event_id": eventID})
	return result, nil
}

// Cancel removes the student's registration (or waitlist spot) and
// promotes the head of the waitlist into any freed place.
func (e *Events) Cancel(studentID, eventID string) (CancellationResult, error) {
	var result CancellationResult
	err := e.store.Update(func(d *store.Data) error {
		ev, err := d.Event(eventID)
		if err != nil {
			return err
		}

		if i := slices.Index(ev.Registrants, studentID); i >= 0 {
			ev.Registrants = slices.Delete(ev.Registrants, i, i+1)
			result = CancellationResult{EventID: eventID, Status: OutcomeCancelled}

			if len(ev.Waitlist) > 0 {
				next := ev.Waitlist[0]
				ev.Waitlist = ev.Waitlist[1:]
				ev.Registrants = append(ev.Registrants, next.StudentID)
				result.Promoted = next.StudentID
			}
			return nil
		}

		if i := waitlistIndex(ev.Waitlist, studentID); i >= 0 {
			ev.Waitlist = slices.Delete(ev.Waitlist, i, i+1)
			result = CancellationResult{EventID: eventID, Status: OutcomeCancelled}
			return nil
		}

		return fmt.Errorf("student %s not registered for event %s: %w", studentID, eventID, types.ErrNotFound)
	})
	if err != nil {
		return CancellationResult{}, err
	}

	details := map[string]any{"event_id": eventID}
	if result.Promoted != "" {
		details["promoted"] = result.Promoted
	}
	recordAudit(e.audit, studentID, "event_cancelled", details)
	return result, nil
}
