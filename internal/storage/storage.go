// Package storage defines the Storage interface — the contract the
// audit trail backend must satisfy.
//
// The rest of this service is deliberately amnesiac (the mock store is
// wiped on restart), but the audit trail survives across runs so a
// tester can inspect what a chatbot session actually did. Handlers and
// services depend only on this interface; swapping SQLite for anything
// else means implementing these two methods and changing one line in
// main.go.
package storage

import (
	"time"

	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

// Storage is the audit trail contract.
type Storage interface {
	// SaveAuditEntry appends one entry and returns its generated id.
	// details is marshalled to JSON by the implementation; a nil map
	// is stored as "{}".
	SaveAuditEntry(actor, action string, details map[string]any) (string, error)

	// GetAuditEntries returns entries recorded at or after since, in
	// insertion order. A zero since returns everything.
	GetAuditEntries(since time.Time) ([]types.AuditEntry, error)
}
