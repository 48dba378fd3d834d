// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, services, the dispatcher, and the stores can all import
// types without depending on each other.
package types

import "time"

// Leave request statuses.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// Payment statuses.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Maintenance ticket statuses.
const (
	TicketStatusOpen   = "open"
	TicketStatusClosed = "closed"
)

// SpecialStatusSubmitted is the only status a special exam arrangement
// request takes in this mock; nobody ever reviews them.
const SpecialStatusSubmitted = "submitted"

// Student represents a student record in the mock registry.
//
// Courses holds the codes of courses the student is currently enrolled
// in (not waitlisted). LeaveBalance is the number of leave days the
// student has left; auto-approved leaves deduct from it.
type Student struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	FeeBalance   float64   `json:"fee_balance"`
	FeeItems     []FeeItem `json:"fee_items"`
	Courses      []string  `json:"courses"`
	LeaveBalance int       `json:"leave_balance"`
}

// FeeItem is a single line on a student's fee statement. Payments show
// up as items with a negative amount.
type FeeItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Course describes an offered course together with its current
// enrollment state. Enrolled never exceeds Capacity; students beyond
// capacity queue on the Waitlist in FIFO order.
type Course struct {
	Code     string          `json:"code"`
	Title    string          `json:"title"`
	Capacity int             `json:"capacity"`
	Enrolled []string        `json:"enrolled"`
	Waitlist []WaitlistEntry `json:"waitlist"`
}

// WaitlistEntry records one student waiting for a vacancy. Order of
// entries in a waitlist slice is the promotion order.
type WaitlistEntry struct {
	StudentID   string    `json:"student_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// ExamSlot is one scheduled exam sitting for a course.
type ExamSlot struct {
	CourseCode string `json:"course_code"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Venue      string `json:"venue"`
}

// Hostel is a named building containing rooms.
type Hostel struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Rooms []string `json:"rooms"`
}

// HostelRoom is a bookable room. A room is full when
// len(Occupants) == Capacity.
type HostelRoom struct {
	ID        string   `json:"id"`
	HostelID  string   `json:"hostel_id"`
	Capacity  int      `json:"capacity"`
	Occupants []string `json:"occupants"`
	Tickets   []string `json:"tickets"`
}

// Booking links a student to the room they were assigned.
type Booking struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	HostelID  string    `json:"hostel_id"`
	RoomID    string    `json:"room_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MaintenanceTicket is a student-reported issue against a hostel room.
type MaintenanceTicket struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	RoomID      string    `json:"room_id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// LeaveRequest is an application for leave. DurationDays counts both
// endpoints (a one-day leave has start == end and duration 1).
type LeaveRequest struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"student_id"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	AutoApproved bool      `json:"auto_approved"`
	DurationDays int       `json:"duration_days"`
	CreatedAt    time.Time `json:"created_at"`
}

// Event is a campus event with capacity-limited registration and the
// same FIFO waitlist policy as course enrollment.
type Event struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Capacity    int             `json:"capacity"`
	Registrants []string        `json:"registrants"`
	Waitlist    []WaitlistEntry `json:"waitlist"`
}

// OTPSession is one identity-verification attempt for a student.
// Verified only ever flips false → true; requesting a new code replaces
// the whole session rather than resetting the flag.
type OTPSession struct {
	StudentID string    `json:"student_id"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Verified  bool      `json:"verified"`
}

// Payment is a mock payment-link record. Completing it via the callback
// endpoint reduces the student's fee balance.
type Payment struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"student_id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	Link        string     `json:"link"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   time.Time  `json:"expires_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// SpecialExamRequest is a request for special exam arrangements
// (e.g. extra time, separate venue).
type SpecialExamRequest struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	CourseCode string    `json:"course_code"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuditEntry is one row of the audit trail. Details is a JSON object
// serialized to a string so the storage layer stays schema-free.
type AuditEntry struct {
	ID      string    `json:"id"`
	Time    time.Time `json:"time"`
	Actor   string    `json:"actor"`
	Action  string    `json:"action"`
	Details string    `json:"details"`
}
