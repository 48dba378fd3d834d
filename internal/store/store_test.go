package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

func TestSeedContents(t *testing.T) {
	d := Seed()

	assert.Len(t, d.Students, 2)
	assert.Len(t, d.Courses, 2)
	assert.Len(t, d.Hostels, 2)
	assert.Len(t, d.Rooms, 7)
	assert.Len(t, d.Events, 1)

	s, err := d.Student("s001")
	require.NoError(t, err)
	assert.Equal(t, "Alice Example", s.Name)
	assert.Equal(t, 1500.0, s.FeeBalance)

	c, err := d.Course("MTH101")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Capacity)
}

func TestLookupsWrapNotFound(t *testing.T) {
	d := Seed()

	_, err := d.Student("ghost")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = d.Course("NOPE")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = d.Hostel("H9")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = d.Room("Z-1")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = d.Event("EVT999")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = d.Payment("nope")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = d.OTP("s001")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestUpdateIsVisibleToView(t *testing.T) {
	st := New(Seed())

	err := st.Update(func(d *Data) error {
		s, err := d.Student("s001")
		if err != nil {
			return err
		}
		s.FeeBalance = 0
		return nil
	})
	require.NoError(t, err)

	err = st.View(func(d *Data) error {
		s, err := d.Student("s001")
		require.NoError(t, err)
		assert.Equal(t, 0.0, s.FeeBalance)
		return nil
	})
	require.NoError(t, err)
}

func TestResetRestoresSeedState(t *testing.T) {
	st := New(Seed())

	err := st.Update(func(d *Data) error {
		delete(d.Students, "s001")
		return nil
	})
	require.NoError(t, err)

	st.Reset(Seed())

	err = st.View(func(d *Data) error {
		_, err := d.Student("s001")
		return err
	})
	require.NoError(t, err)
}

func TestLoadSeedFile(t *testing.T) {
	seedJSON := `{
		"students": [{"id": "x1", "name": "Xena", "email": "x@example.edu", "leave_balance": 5}],
		"courses":  [{"code": "PHY101", "title": "Physics I", "capacity": 3}],
		"exam_slots": [{"course_code": "PHY101", "date": "2026-02-01", "time": "10:00", "venue": "Lab 1"}],
		"hostels": [{"id": "H5", "name": "Oak Hostel", "rooms": ["O-1"]}],
		"rooms":   [{"id": "O-1", "hostel_id": "H5", "capacity": 2}],
		"events":  [{"id": "EVT200", "title": "Hackathon", "capacity": 10}]
	}`
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(seedJSON), 0o600))

	d, err := LoadSeedFile(path)
	require.NoError(t, err)

	s, err := d.Student("x1")
	require.NoError(t, err)
	assert.Equal(t, 5, s.LeaveBalance)

	c, err := d.Course("PHY101")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Capacity)

	assert.Len(t, d.ExamSlots["PHY101"], 1)

	// Runtime collections always start empty.
	assert.Empty(t, d.Bookings)
	assert.Empty(t, d.Payments)
}

func TestLoadSeedFileErrors(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = LoadSeedFile(path)
	assert.Error(t, err)
}
