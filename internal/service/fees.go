package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aanand-mishra/helpdesk-api/internal/store"
	"github.com/aanand-mishra/helpdesk-api/internal/storage"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

// paymentLinkBase is the mock payment gateway. Nothing listens there.
const paymentLinkBase = "https://payments.example/university/pay/"

// FeeStatement is what a balance lookup returns.
type FeeStatement struct {
	StudentID string          `json:"student_id"`
	Balance   float64         `json:"balance"`
	Items     []types.FeeItem `json:"items"`
}

// Fees answers balance lookups and simulates the payment-link dance:
// generate a link, then complete it via the gateway callback.
type Fees struct {
	store   *store.Store
	audit   storage.Storage
	linkTTL time.Duration
	clock   func() time.Time
}

func NewFees(st *store.Store, audit storage.Storage, linkTTL time.Duration) *Fees {
	return &Fees{
		store:   st,
		audit:   audit,
		linkTTL: linkTTL,
		clock:   time.Now,
	}
}

// Balance returns the student's fee statement.
func (f *Fees) Balance(studentID string) (FeeStatement, error) {
	var stmt FeeStatement
	err := f.store.View(func(d *store.Data) error {
		s, err := d.Student(studentID)
		if err != nil {
			return err
		}
		// Copied, not aliased: CompletePayment appends to the store's
		// item slice after this lock is gone. The copy is also never
		// nil, so the JSON response carries [] rather than null.
		items := append([]types.FeeItem{}, s.FeeItems...)
		stmt = FeeStatement{StudentID: s.ID, Balance: s.FeeBalance, Items: items}
		return nil
	})
	if err != nil {
		return FeeStatement{}, err
	}
	recordAudit(f.audit, studentID, "check_fees", nil)
	return stmt, nil
}

// CreatePaymentLink issues a pending payment with a mock gateway link.
// The amount must be positive; the student must exist.
func (f *Fees) CreatePaymentLink(studentID string, amount float64) (types.Payment, error) {
	if amount <= 0 {
		return types.Payment{}, fmt.Errorf("amount must be positive: %w", types.ErrInvalidInput)
	}

	now := f.clock()
	payment := types.Payment{
		ID:        uuid.NewString(),
		StudentID: studentID,
		Amount:    amount,
		Status:    types.PaymentStatusPending,
		CreatedAt: now,
		ExpiresAt: now.Add(f.linkTTL),
	}
	payment.Link = paymentLinkBase + payment.ID

	err := f.store.Update(func(d *store.Data) error {
		if _, err := d.Student(studentID); err != nil {
			return err
		}
		d.Payments[payment.ID] = &payment
		return nil
	})
	if err != nil {
		return types.Payment{}, err
	}

	recordAudit(f.audit, studentID, "generate_payment", map[string]any{
		"payment_id": payment.ID,
		"amount":     amount,
	})
	return payment, nil
}

// CompletePayment is the mock gateway callback. It marks the payment
// completed and settles it against the student's balance, flooring at
// zero; the settlement shows up as a negative fee item. ExpiresAt is
// advisory and not checked here — a late callback still settles.
func (f *Fees) CompletePayment(paymentID string) (types.Payment, error) {
	var result types.Payment
	err := f.store.Update(func(d *store.Data) error {
		p, err := d.Payment(paymentID)
		if err != nil {
			return err
		}
		if p.Status == types.PaymentStatusCompleted {
			// Idempotent: the gateway retries callbacks.
			result = *p
			return nil
		}

		now := f.clock()
		p.Status = types.PaymentStatusCompleted
		p.CompletedAt = &now

		if s, err := d.Student(p.StudentID); err == nil {
			s.FeeBalance -= p.Amount
			if s.FeeBalance < 0 {
				s.FeeBalance = 0
			}
			s.FeeItems = append(s.FeeItems, types.FeeItem{
				Description: "Online payment",
				Amount:      -p.Amount,
			})
		}

		result = *p
		return nil
	})
	if err != nil {
		return types.Payment{}, err
	}

	recordAudit(f.audit, result.StudentID, "payment_completed", map[string]any{
		"payment_id": paymentID,
	})
	return result, nil
}
