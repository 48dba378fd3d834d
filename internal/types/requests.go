package types

// Request bodies accepted by the HTTP handlers. The validate:"..."
// tags are checked with go-playground/validator before any service
// call; json tags match the wire names the chatbot sends.

// PaymentLinkRequest asks for a mock payment link for a fee amount.
type PaymentLinkRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// EnrollmentRequest enrolls (or drops) a student in a course.
type EnrollmentRequest struct {
	StudentID  string `json:"student_id"  validate:"required"`
	CourseCode string `json:"course_code" validate:"required"`
}

// SpecialExamRequestBody asks for special exam arrangements.
type SpecialExamRequestBody struct {
	StudentID  string `json:"student_id"  validate:"required"`
	CourseCode string `json:"course_code" validate:"required"`
	Reason     string `json:"reason"`
}

// HostelBookingRequest books a room in a hostel.
type HostelBookingRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	HostelID  string `json:"hostel_id"  validate:"required"`
}

// MaintenanceRequest files a maintenance ticket against a room.
type MaintenanceRequest struct {
	StudentID   string `json:"student_id" validate:"required"`
	RoomID      string `json:"room_id"    validate:"required"`
	Description string `json:"description"`
}

// LeaveApplication applies for leave between two dates (inclusive,
// YYYY-MM-DD).
type LeaveApplication struct {
	StudentID string `json:"student_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date"   validate:"required"`
	Reason    string `json:"reason"`
}

// EventRegistrationRequest registers (or cancels) a student for an
// event.
type EventRegistrationRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	EventID   string `json:"event_id"   validate:"required"`
}

// OTPRequest starts a new identity-verification session.
type OTPRequest struct {
	StudentID string `json:"student_id" validate:"required"`
}

// OTPVerification confirms a previously issued code.
type OTPVerification struct {
	StudentID string `json:"student_id" validate:"required"`
	Code      string `json:"code"       validate:"required"`
}
