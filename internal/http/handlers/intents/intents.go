// Package intents exposes the dispatcher over HTTP. This is the single
// endpoint a chatbot integration talks to: it posts the classified
// intent plus parameters and gets the uniform envelope back, whatever
// domain the intent lands in.
package intents

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/helpdesk-api/internal/dispatch"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/request"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/response"
)

// DispatchRequest is the body of POST /api/dispatch.
type DispatchRequest struct {
	Intent string          `json:"intent" validate:"required"`
	Params dispatch.Params `json:"params"`
}

// Dispatch handles POST /api/dispatch.
func Dispatch(d *dispatch.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DispatchRequest
		if !request.Decode(w, r, &req) {
			return
		}

		slog.Info("dispatching intent", slog.String("intent", req.Intent))

		data, err := d.Dispatch(req.Intent, req.Params)
		if err != nil {
			// Everything — unknown intents, missing parameters, and
			// domain errors alike — leaves as an error envelope; the
			// dispatcher never lets a handler failure escape as
			// anything else.
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK(data))
	}
}
