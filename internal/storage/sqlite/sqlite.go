// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// SQLite stores everything in a single file on disk — no network, no
// separate server process, nothing to install beyond the driver. For an
// audit trail on a mock API that is exactly the right amount of
// database.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aanand-mishra/helpdesk-api/internal/config"
	"github.com/aanand-mishra/helpdesk-api/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// A single *sql.DB is a connection pool and is safe for concurrent use.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at cfg.StoragePath, creates the
// audit_entries table if it does not already exist, and returns a
// ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Idempotent — safe to run on every startup.
	// Timestamps are stored as RFC 3339 TEXT so the file stays
	// readable with any sqlite shell; seq keeps insertion order.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS audit_entries (
			seq     INTEGER PRIMARY KEY AUTOINCREMENT,
			id      TEXT NOT NULL,
			time    TEXT NOT NULL,
			actor   TEXT NOT NULL,
			action  TEXT NOT NULL,
			details TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// SaveAuditEntry appends one audit row. The details map is marshalled
// to a JSON object; a nil map becomes "{}".
func (s *SQLite) SaveAuditEntry(actor, action string, details map[string]any) (string, error) {
	if details == nil {
		details = map[string]any{}
	}
	blob, err := json.Marshal(details)
	if err != nil {
		return "", fmt.Errorf("SaveAuditEntry: marshal details: %w", err)
	}

	stmt, err := s.Db.Prepare(
		"INSERT INTO audit_entries (id, time, actor, action, details) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return "", fmt.Errorf("SaveAuditEntry: prepare: %w", err)
	}
	defer stmt.Close()

	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)

	if _, err := stmt.Exec(id, now, actor, action, string(blob)); err != nil {
		return "", fmt.Errorf("SaveAuditEntry: exec: %w", err)
	}

	return id, nil
}

// GetAuditEntries returns entries recorded at or after since, oldest
// first. A zero since returns the whole trail.
func (s *SQLite) GetAuditEntries(since time.Time) ([]types.AuditEntry, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, time, actor, action, details FROM audit_entries WHERE time >= ? ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("GetAuditEntries: prepare: %w", err)
	}
	defer stmt.Close()

	floor := ""
	if !since.IsZero() {
		floor = since.UTC().Format(time.RFC3339)
	}

	rows, err := stmt.Query(floor)
	if err != nil {
		return nil, fmt.Errorf("GetAuditEntries: query: %w", err)
	}
	defer rows.Close()

	// Empty slice (not nil) so the JSON response is [] rather than null.
	entries := []types.AuditEntry{}

	for rows.Next() {
		var entry types.AuditEntry
		var ts string
		if err := rows.Scan(&entry.ID, &ts, &entry.Actor, &entry.Action, &entry.Details); err != nil {
			return nil, fmt.Errorf("GetAuditEntries: scan: %w", err)
		}
		entry.Time, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("GetAuditEntries: parse time %q: %w", ts, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetAuditEntries: rows: %w", err)
	}

	return entries, nil
}
