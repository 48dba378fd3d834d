// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Every endpoint answers with the same envelope:
//
//	{ "status": "ok",    "data":  ... }
//	{ "status": "error", "error": "..." }
//
// so the chatbot on the other end never needs per-endpoint parsing of
// failure shapes.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

// Response is the uniform envelope. Exactly one of Data and Error is
// set, selected by Status.
type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Status string constants — use these instead of raw string literals so
// a typo is caught by the compiler rather than silently sending "eroor".
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Status: StatusOK, Data: data}
}

// WriteJSON writes a JSON-encoded response with the given HTTP status
// code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard envelope.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError converts a slice of validator.FieldError values into
// a single human-readable Response.
//
// Example output:
//
//	{ "status": "error", "error": "field StudentID is required" }
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "gt":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be greater than %s", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}

// ErrorStatus maps a service/store/dispatch error kind to the HTTP
// status code the envelope ships with. Anything unclassified is a 500.
func ErrorStatus(err error) int {
	var missing *types.MissingParameterError

	switch {
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrAlreadyEnrolled),
		errors.Is(err, types.ErrRoomFull):
		return http.StatusConflict
	case errors.Is(err, types.ErrExpiredOTP),
		errors.Is(err, types.ErrInvalidCode),
		errors.Is(err, types.ErrInvalidInput),
		errors.Is(err, types.ErrUnknownIntent),
		errors.As(err, &missing):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError classifies err and writes the matching error envelope.
func WriteError(w http.ResponseWriter, err error) error {
	return WriteJSON(w, ErrorStatus(err), GeneralError(err))
}
