package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/helpdesk-api/internal/store"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

func TestLeaveShortDurationAutoApproves(t *testing.T) {
	st := newTestStore(t)
	svc := NewLeave(st, nil, 3)

	// Two days, strictly under the three-day threshold.
	req, err := svc.Apply("s001", "2026-03-02", "2026-03-03", "family visit")
	require.NoError(t, err)

	assert.Equal(t, 2, req.DurationDays)
	assert.Equal(t, types.LeaveStatusApproved, req.Status)
	assert.True(t, req.AutoApproved)
}

func TestLeaveLongDurationStaysPending(t *testing.T) {
	st := newTestStore(t)
	svc := NewLeave(st, nil, 3)

	req, err := svc.Apply("s001", "2026-03-02", "2026-03-06", "conference")
	require.NoError(t, err)

	assert.Equal(t, 5, req.DurationDays)
	assert.Equal(t, types.LeaveStatusPending, req.Status)
	assert.False(t, req.AutoApproved)
}

func TestLeaveAtThresholdStaysPending(t *testing.T) {
	st := newTestStore(t)
	svc := NewLeave(st, nil, 3)

	// Exactly three days: not strictly below the threshold.
	req, err := svc.Apply("s001", "2026-03-02", "2026-03-04", "")
	require.NoError(t, err)

	assert.Equal(t, 3, req.DurationDays)
	assert.Equal(t, types.LeaveStatusPending, req.Status)
}

func TestLeaveAutoApprovalDeductsBalance(t *testing.T) {
	st := newTestStore(t)
	svc := NewLeave(st, nil, 3)

	_, err := svc.Apply("s001", "2026-03-02", "2026-03-03", "")
	require.NoError(t, err)

	err = st.View(func(d *store.Data) error {
		s, err := d.Student("s001")
		require.NoError(t, err)
		assert.Equal(t, 10, s.LeaveBalance) // seeded with 12
		return nil
	})
	require.NoError(t, err)
}

func TestLeaveRejectsBadDates(t *testing.T) {
	st := newTestStore(t)
	svc := NewLeave(st, nil, 3)

	_, err := svc.Apply("s001", "02-03-2026", "2026-03-03", "")
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = svc.Apply("s001", "2026-03-05", "2026-03-03", "")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestLeaveUnknownStudent(t *testing.T) {
	st := newTestStore(t)
	svc := NewLeave(st, nil, 3)

	_, err := svc.Apply("ghost", "2026-03-02", "2026-03-03", "")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
