package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aanand-mishra/helpdesk-api/internal/store"
	"github.com/aanand-mishra/helpdesk-api/internal/storage"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

// Leave implements the auto-approval rule: applications strictly
// shorter than the configured threshold are approved on the spot,
// everything else waits as pending. Approved days come off the
// student's leave balance.
type Leave struct {
	store           *store.Store
	audit           storage.Storage
	autoApproveDays int
	clock           func() time.Time
}

func NewLeave(st *store.Store, audit storage.Storage, autoApproveDays int) *Leave {
	return &Leave{store: st, audit: audit, autoApproveDays: autoApproveDays, clock: time.Now}
}

// Apply files a leave request for the inclusive date range
// [start, end], both formatted YYYY-MM-DD.
func (l *Leave) Apply(studentID, startDate, endDate, reason string) (types.LeaveRequest, error) {
	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return types.LeaveRequest{}, fmt.Errorf("start_date must be YYYY-MM-DD: %w", types.ErrInvalidInput)
	}
	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return types.LeaveRequest{}, fmt.Errorf("end_date must be YYYY-MM-DD: %w", types.ErrInvalidInput)
	}
	if end.Before(start) {
		return types.LeaveRequest{}, fmt.Errorf("end_date before start_date: %w", types.ErrInvalidInput)
	}

	// Inclusive duration: a single-day leave is 1 day.
	duration := int(end.Sub(start).Hours()/24) + 1

	req := types.LeaveRequest{
		ID:           uuid.NewString(),
		StudentID:    studentID,
		StartDate:    startDate,
		EndDate:      endDate,
		Reason:       reason,
		Status:       types.LeaveStatusPending,
		DurationDays: duration,
		CreatedAt:    l.clock(),
	}
	if duration < l.autoApproveDays {
		req.Status = types.LeaveStatusApproved
		req.AutoApproved = true
	}

	err = l.store.Update(func(d *store.Data) error {
		s, err := d.Student(studentID)
		if err != nil {
			return err
		}
		if req.AutoApproved {
			s.LeaveBalance -= duration
			if s.LeaveBalance < 0 {
				s.LeaveBalance = 0
			}
		}
		d.Leaves[req.ID] = &req
		return nil
	})
	if err != nil {
		return types.LeaveRequest{}, err
	}

	recordAudit(l.audit, studentID, "leave_applied", map[string]any{
		"leave_id": req.ID,
		"status":   req.Status,
		"days":     duration,
	})
	return req, nil
}
