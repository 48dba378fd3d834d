package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/helpdesk-api/internal/store"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

func TestRequestOTPIssuesNumericCode(t *testing.T) {
	st := newTestStore(t)
	svc := NewIdentity(st, nil, 5*time.Minute, 6)

	session, err := svc.RequestOTP("s001")
	require.NoError(t, err)

	assert.Len(t, session.Code, 6)
	for _, c := range session.Code {
		assert.True(t, c >= '0' && c <= '9', "code must be numeric, got %q", session.Code)
	}
	assert.False(t, session.Verified)
}

func TestVerifyOTPBeforeExpiry(t *testing.T) {
	st := newTestStore(t)
	svc := NewIdentity(st, nil, 5*time.Minute, 6)

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return base }

	session, err := svc.RequestOTP("s001")
	require.NoError(t, err)

	result, err := svc.VerifyOTP("s001", session.Code)
	require.NoError(t, err)
	assert.True(t, result.Verified)
}

func TestVerifyOTPAfterExpiry(t *testing.T) {
	st := newTestStore(t)
	svc := NewIdentity(st, nil, 5*time.Minute, 6)

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc.clock = func() time.Time { return base }

	session, err := svc.RequestOTP("s001")
	require.NoError(t, err)

	svc.clock = func() time.Time { return base.Add(10 * time.Minute) }

	_, err = svc.VerifyOTP("s001", session.Code)
	assert.ErrorIs(t, err, types.ErrExpiredOTP)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	st := newTestStore(t)
	svc := NewIdentity(st, nil, 5*time.Minute, 6)

	_, err := svc.RequestOTP("s001")
	require.NoError(t, err)

	_, err = svc.VerifyOTP("s001", "not-the-code")
	assert.ErrorIs(t, err, types.ErrInvalidCode)
}

func TestVerifyOTPWithoutSession(t *testing.T) {
	st := newTestStore(t)
	svc := NewIdentity(st, nil, 5*time.Minute, 6)

	_, err := svc.VerifyOTP("s001", "123456")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestVerifiedFlagIsOneWay(t *testing.T) {
	st := newTestStore(t)
	svc := NewIdentity(st, nil, 5*time.Minute, 6)

	session, err := svc.RequestOTP("s001")
	require.NoError(t, err)

	_, err = svc.VerifyOTP("s001", session.Code)
	require.NoError(t, err)

	// A failed re-verification must not clear the flag.
	_, err = svc.VerifyOTP("s001", "wrong")
	assert.ErrorIs(t, err, types.ErrInvalidCode)

	err = st.View(func(d *store.Data) error {
		s, err := d.OTP("s001")
		require.NoError(t, err)
		assert.True(t, s.Verified)
		return nil
	})
	require.NoError(t, err)

	// A fresh session starts unverified — that is the only reset.
	fresh, err := svc.RequestOTP("s001")
	require.NoError(t, err)
	assert.False(t, fresh.Verified)
}

func TestRequestOTPUnknownStudent(t *testing.T) {
	st := newTestStore(t)
	svc := NewIdentity(st, nil, 5*time.Minute, 6)

	_, err := svc.RequestOTP("ghost")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
