// Package request centralises JSON body decoding and validation for
// the HTTP handlers. Every POST handler needs the same three steps —
// decode, reject empty bodies, run the validate:"..." tags — so they
// live here once.
package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/helpdesk-api/internal/utils/response"
)

var validate = validator.New()

// Decode populates dst from the request body and validates it. On any
// failure it writes the error envelope itself and returns false, so
// handlers can simply return early:
//
//	var req types.EnrollmentRequest
//	if !request.Decode(w, r, &req) {
//	    return
//	}
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)

	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("request body is empty")))
		return false
	}
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
		} else {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		}
		return false
	}

	return true
}
