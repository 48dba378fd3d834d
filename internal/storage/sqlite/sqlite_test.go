package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/helpdesk-api/internal/config"
)

func newTestStorage(t *testing.T) *SQLite {
	t.Helper()

	cfg := &config.Config{StoragePath: filepath.Join(t.TempDir(), "audit.db")}
	st, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { st.Db.Close() })
	return st
}

func TestSaveAndGetAuditEntries(t *testing.T) {
	st := newTestStorage(t)

	id1, err := st.SaveAuditEntry("s001", "enrolled", map[string]any{"course": "CSE101"})
	require.NoError(t, err)
	assert.NotEmpty(t, id1)

	id2, err := st.SaveAuditEntry("s002", "otp_requested", nil)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	entries, err := st.GetAuditEntries(time.Time{})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Insertion order, not id order.
	assert.Equal(t, "enrolled", entries[0].Action)
	assert.JSONEq(t, `{"course":"CSE101"}`, entries[0].Details)

	// A nil details map is stored as an empty object.
	assert.Equal(t, "otp_requested", entries[1].Action)
	assert.JSONEq(t, `{}`, entries[1].Details)
}

func TestGetAuditEntriesSince(t *testing.T) {
	st := newTestStorage(t)

	_, err := st.SaveAuditEntry("s001", "check_fees", nil)
	require.NoError(t, err)

	entries, err := st.GetAuditEntries(time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = st.GetAuditEntries(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEmptyTrailReturnsEmptySlice(t *testing.T) {
	st := newTestStorage(t)

	entries, err := st.GetAuditEntries(time.Time{})
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
