package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/aanand-mishra/helpdesk-api/internal/store"
	"github.com/aanand-mishra/helpdesk-api/internal/storage"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

// VerificationResult is returned on a successful OTP check.
type VerificationResult struct {
	StudentID string `json:"student_id"`
	Verified  bool   `json:"verified"`
}

// Identity simulates identity verification with one-time codes. One
// session per student: requesting a new code replaces the previous
// session entirely, which is the only way the verified flag ever goes
// back to false.
type Identity struct {
	store   *store.Store
	audit   storage.Storage
	ttl     time.Duration
	codeLen int
	clock   func() time.Time
}

func NewIdentity(st *store.Store, audit storage.Storage, ttl time.Duration, codeLen int) *Identity {
	return &Identity{store: st, audit: audit, ttl: ttl, codeLen: codeLen, clock: time.Now}
}

// RequestOTP issues a fresh numeric code for the student. The code is
// returned in the response because this is a mock — a real deployment
// would send it out of band.
func (i *Identity) RequestOTP(studentID string) (types.OTPSession, error) {
	code, err := numericCode(i.codeLen)
	if err != nil {
		return types.OTPSession{}, fmt.Errorf("generate otp: %w", err)
	}

	session := types.OTPSession{
		StudentID: studentID,
		Code:      code,
		ExpiresAt: i.clock().Add(i.ttl),
	}

	err = i.store.Update(func(d *store.Data) error {
		if _, err := d.Student(studentID); err != nil {
			return err
		}
		d.OTPs[studentID] = &session
		return nil
	})
	if err != nil {
		return types.OTPSession{}, err
	}

	recordAudit(i.audit, studentID, "otp_requested", nil)
	return session, nil
}

// VerifyOTP checks the code against the student's current session.
// The code is compared before the expiry, so a wrong code on an
// expired session still reads as invalid, not expired. On success the
// session's verified flag is set and stays set.
func (i *Identity) VerifyOTP(studentID, code string) (VerificationResult, error) {
	err := i.store.Update(func(d *store.Data) error {
		session, err := d.OTP(studentID)
		if err != nil {
			return err
		}
		if session.Code != code {
			return fmt.Errorf("student %s: %w", studentID, types.ErrInvalidCode)
		}
		if i.clock().After(session.ExpiresAt) {
			return fmt.Errorf("student %s: %w", studentID, types.ErrExpiredOTP)
		}
		session.Verified = true
		return nil
	})
	if err != nil {
		return VerificationResult{}, err
	}

	recordAudit(i.audit, studentID, "otp_verified", nil)
	return VerificationResult{StudentID: studentID, Verified: true}, nil
}

// Student looks up a student's profile. The returned value owns its
// slices; it never aliases store memory.
func (i *Identity) Student(studentID string) (types.Student, error) {
	var student types.Student
	err := i.store.View(func(d *store.Data) error {
		s, err := d.Student(studentID)
		if err != nil {
			return err
		}
		student = *s
		student.Courses = append([]string{}, s.Courses...)
		student.FeeItems = append([]types.FeeItem{}, s.FeeItems...)
		return nil
	})
	if err != nil {
		return types.Student{}, err
	}
	return student, nil
}

// numericCode returns n random decimal digits. crypto/rand rather than
// math/rand so test fixtures can't accidentally depend on a seed.
func numericCode(n int) (string, error) {
	digits := make([]byte, n)
	for idx := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[idx] = '0' + byte(v.Int64())
	}
	return string(digits), nil
}
