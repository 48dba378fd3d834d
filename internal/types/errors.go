package types

import (
	"errors"
	"fmt"
)

// Shared error kinds. Services and stores return these sentinels (often
// wrapped with context via fmt.Errorf and %w); the HTTP boundary
// classifies them with errors.Is to pick a status code.
var (
	// ErrNotFound signals an unknown id for any entity type.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyEnrolled signals a duplicate enrollment or event
	// registration, whether the student is in the main list or on
	// the waitlist.
	ErrAlreadyEnrolled = errors.New("already enrolled")

	// ErrRoomFull signals that no room in the requested hostel has
	// free capacity.
	ErrRoomFull = errors.New("room full")

	// ErrExpiredOTP signals a correct code presented past the
	// session's expiry.
	ErrExpiredOTP = errors.New("otp expired")

	// ErrInvalidCode signals a code that does not match the session.
	ErrInvalidCode = errors.New("invalid otp code")

	// ErrInvalidInput signals a request that decoded fine but fails a
	// domain rule (negative amount, end date before start date, ...).
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownIntent signals a dispatch request naming an intent the
	// dispatch table does not list.
	ErrUnknownIntent = errors.New("unknown intent")
)

// MissingParameterError reports a required dispatch parameter that was
// absent or empty. It carries the parameter name so the chatbot can
// prompt the user for exactly the missing piece.
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Param)
}
