// Package system contains the operational endpoints: health, course
// catalog, audit log queries, and the admin reset that reseeds the
// mock state between test runs.
package system

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aanand-mishra/helpdesk-api/internal/service"
	"github.com/aanand-mishra/helpdesk-api/internal/storage"
	"github.com/aanand-mishra/helpdesk-api/internal/store"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/response"
)

// Health handles GET /api/health.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK, response.OK(map[string]string{
			"time": time.Now().UTC().Format(time.RFC3339),
		}))
	}
}

// Courses handles GET /api/courses.
func Courses(svc *service.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing courses")

		courses, err := svc.Courses()
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK(courses))
	}
}

// AuditLog handles GET /api/audit?since=RFC3339. Without a since
// parameter the whole trail comes back.
func AuditLog(st storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var since time.Time
		if raw := r.URL.Query().Get("since"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				response.WriteJSON(w, http.StatusBadRequest,
					response.GeneralError(errors.New("since must be RFC 3339, e.g. 2026-01-15T09:00:00Z")))
				return
			}
			since = parsed
		}

		entries, err := st.GetAuditEntries(since)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK(map[string]any{
			"count": len(entries),
			"logs":  entries,
		}))
	}
}

// Reset handles POST /api/admin/reset. seed rebuilds the data set the
// store is reset to — main wires it to the built-in seed or the
// configured seed file.
func Reset(st *store.Store, seed func() (*store.Data, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("resetting mock state")

		data, err := seed()
		if err != nil {
			response.WriteError(w, err)
			return
		}
		st.Reset(data)

		response.WriteJSON(w, http.StatusOK, response.OK(map[string]bool{"reset": true}))
	}
}
