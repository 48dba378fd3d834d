package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

func TestTimetableCoversEnrolledCourses(t *testing.T) {
	st := newTestStore(t)
	enroll := NewEnrollment(st, nil)
	svc := NewExams(st, nil)

	// No enrollments yet: empty timetable, not an error.
	tt, err := svc.Timetable("s001")
	require.NoError(t, err)
	assert.Empty(t, tt.Timetable)

	_, err = enroll.Enroll("s001", "CSE101")
	require.NoError(t, err)
	_, err = enroll.Enroll("s001", "MTH101")
	require.NoError(t, err)

	tt, err = svc.Timetable("s001")
	require.NoError(t, err)
	require.Len(t, tt.Timetable, 2)
	require.Len(t, tt.Timetable["CSE101"], 1)
	assert.Equal(t, "Hall A", tt.Timetable["CSE101"][0].Venue)
}

func TestTimetableUnknownStudent(t *testing.T) {
	st := newTestStore(t)
	svc := NewExams(st, nil)

	_, err := svc.Timetable("ghost")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRequestSpecialArrangement(t *testing.T) {
	st := newTestStore(t)
	svc := NewExams(st, nil)

	req, err := svc.RequestSpecialArrangement("s001", "CSE101", "extra time")
	require.NoError(t, err)
	assert.Equal(t, types.SpecialStatusSubmitted, req.Status)
	assert.NotEmpty(t, req.ID)

	_, err = svc.RequestSpecialArrangement("s001", "NOPE999", "")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
