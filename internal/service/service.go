// Package service implements the domain rules behind each helpdesk
// feature: fees, enrollment, exams, hostel, leave, events, and
// identity. Each service struct holds the mock store plus whatever
// policy knobs it needs; all state changes happen inside a single
// store.Update closure so the capacity and FIFO invariants hold even
// under concurrent requests.
package service

import (
	"log/slog"

	"github.com/aanand-mishra/helpdesk-api/internal/storage"
)

// recordAudit appends an audit entry, logging (never failing the
// request) when the trail is unavailable. A nil store disables
// auditing, which is what the tests use.
func recordAudit(st storage.Storage, actor, action string, details map[string]any) {
	if st == nil {
		return
	}
	if _, err := st.SaveAuditEntry(actor, action, details); err != nil {
		slog.Warn("failed to record audit entry",
			slog.String("action", action),
			slog.String("error", err.Error()))
	}
}
