package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

func TestEventRegistrationWaitlists(t *testing.T) {
	st := newTestStore(t)
	svc := NewEvents(st, nil)

	// EVT100 has capacity 2.
	r1, err := svc.Register("s001", "EVT100")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRegistered, r1.Status)

	r2, err := svc.Register("s002", "EVT100")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRegistered, r2.Status)

	r3, err := svc.Register("s003", "EVT100")
	require.NoError(t, err)
	assert.Equal(t, OutcomeWaitlisted, r3.Status)
	assert.Equal(t, 1, r3.Position)
}

func TestEventDuplicateRegistrationFails(t *testing.T) {
	st := newTestStore(t)
	svc := NewEvents(st, nil)

	_, err := svc.Register("s001", "EVT100")
	require.NoError(t, err)

	_, err = svc.Register("s001", "EVT100")
	assert.ErrorIs(t, err, types.ErrAlreadyEnrolled)
}

func TestEventCancelPromotesWaitlist(t *testing.T) {
	st := newTestStore(t)
	svc := NewEvents(st, nil)

	for _, id := range []string{"s001", "s002", "s003"} {
		_, err := svc.Register(id, "EVT100")
		require.NoError(t, err)
	}

	result, err := svc.Cancel("s001", "EVT100")
	require.NoError(t, err)
	assert.Equal(t, "s003", result.Promoted)

	// Cancelling a waitlist spot frees nothing to promote into.
	_, err = svc.Register("s004", "EVT100")
	require.NoError(t, err)
	result, err = svc.Cancel("s004", "EVT100")
	require.NoError(t, err)
	assert.Empty(t, result.Promoted)
}

func TestEventCancelWithoutRegistration(t *testing.T) {
	st := newTestStore(t)
	svc := NewEvents(st, nil)

	_, err := svc.Cancel("s001", "EVT100")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestEventUnknownEvent(t *testing.T) {
	st := newTestStore(t)
	svc := NewEvents(st, nil)

	_, err := svc.Register("s001", "EVT999")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
