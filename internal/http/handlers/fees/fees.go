// Package fees contains the HTTP handlers for fee lookups and the mock
// payment flow.
//
// The handlers are factories: each receives its dependencies once at
// route-registration time and returns the http.HandlerFunc the router
// calls per request (the closure / dependency-injection pattern used
// throughout this codebase).
package fees

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/helpdesk-api/internal/service"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/request"
	"github.com/aanand-mishra/helpdesk-api/internal/utils/response"
)

// Balance handles GET /api/fees/{studentId}.
func Balance(svc *service.Fees) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := r.PathValue("studentId")
		slog.Info("checking fee balance", slog.String("student_id", studentID))

		stmt, err := svc.Balance(studentID)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK(stmt))
	}
}

// CreatePaymentLink handles POST /api/fees/{studentId}/payments.
func CreatePaymentLink(svc *service.Fees) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := r.PathValue("studentId")
		slog.Info("creating payment link", slog.String("student_id", studentID))

		var req types.PaymentLinkRequest
		if !request.Decode(w, r, &req) {
			return
		}

		payment, err := svc.CreatePaymentLink(studentID, req.Amount)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusCreated, response.OK(payment))
	}
}

// PaymentCallback handles POST /api/payments/{id}/callback — the mock
// gateway confirming a payment.
func PaymentCallback(svc *service.Fees) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		paymentID := r.PathValue("id")
		slog.Info("payment callback", slog.String("payment_id", paymentID))

		payment, err := svc.CompletePayment(paymentID)
		if err != nil {
			response.WriteError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, response.OK(payment))
	}
}
