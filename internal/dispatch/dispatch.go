// Package dispatch maps chatbot intents onto the domain services.
//
// The chatbot does not speak REST; it classifies a user utterance into
// an intent name plus a bag of parameters and posts that to a single
// endpoint. This package owns the enumerated intent table — a plain
// map, built once, rather than any reflection or runtime lookup — and
// the required-parameter check in front of every handler.
package dispatch

import (
	"fmt"

	"github.com/aanand-mishra/helpdesk-api/internal/service"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

// Intent names accepted on the dispatch endpoint.
const (
	IntentCheckFees          = "check_fees"
	IntentCreatePaymentLink  = "create_payment_link"
	IntentCompletePayment    = "complete_payment"
	IntentEnroll             = "enroll"
	IntentEnrollmentStatus   = "enrollment_status"
	IntentDropCourse         = "drop_course"
	IntentExamTimetable      = "exam_timetable"
	IntentRequestSpecialExam = "request_special_exam"
	IntentHostelAvailability = "hostel_availability"
	IntentBookHostel         = "book_hostel"
	IntentReportMaintenance  = "report_maintenance"
	IntentApplyLeave         = "apply_leave"
	IntentRegisterEvent      = "register_event"
	IntentCancelEvent        = "cancel_event"
	IntentRequestOTP         = "request_otp"
	IntentVerifyOTP          = "verify_otp"
	IntentStudentProfile     = "student_profile"
	IntentListCourses        = "list_courses"
)

// Params is the untyped parameter bag attached to a dispatch request.
type Params map[string]any

// str returns the named parameter as a string; absent keys and
// non-string values read as "".
func (p Params) str(key string) string {
	s, _ := p[key].(string)
	return s
}

// num returns the named parameter as a float64 (every JSON number
// decodes to float64 through encoding/json's any path).
func (p Params) num(key string) float64 {
	f, _ := p[key].(float64)
	return f
}

// entry is one row of the intent table: the parameters that must be
// present and the call into the services.
type entry struct {
	required []string
	handle   func(p Params) (any, error)
}

// Dispatcher routes an (intent, params) pair to the right domain
// service and normalises errors at the boundary.
type Dispatcher struct {
	table map[string]entry
}

// Services collects everything the dispatch table can reach.
type Services struct {
	Fees       *service.Fees
	Enrollment *service.Enrollment
	Exams      *service.Exams
	Hostel     *service.Hostel
	Leave      *service.Leave
	Events     *service.Events
	Identity   *service.Identity
	Catalog    *service.Catalog
}

// New builds the dispatch table over the given services.
func New(s Services) *Dispatcher {
	table := map[string]entry{
		IntentCheckFees: {
			required: []string{"student_id"},
			handle: func(p Params) (any, error) {
				return s.Fees.Balance(p.str("student_id"))
			},
		},
		IntentCreatePaymentLink: {
			required: []string{"student_id", "amount"},
			handle: func(p Params) (any, error) {
				return s.Fees.CreatePaymentLink(p.str("student_id"), p.num("amount"))
			},
		},
		IntentCompletePayment: {
			required: []string{"payment_id"},
			handle: func(p Params) (any, error) {
				return s.Fees.CompletePayment(p.str("payment_id"))
			},
		},
		IntentEnroll: {
			required: []string{"student_id", "course_code"},
			handle: func(p Params) (any, error) {
				return s.Enrollment.Enroll(p.str("student_id"), p.str("course_code"))
			},
		},
		IntentEnrollmentStatus: {
			required: []string{"course_code"},
			handle: func(p Params) (any, error) {
				return s.Enrollment.Status(p.str("course_code"))
			},
		},
		IntentDropCourse: {
			required: []string{"student_id", "course_code"},
			handle: func(p Params) (any, error) {
				return s.Enrollment.Drop(p.str("student_id"), p.str("course_code"))
			},
		},
		IntentExamTimetable: {
			required: []string{"student_id"},
			handle: func(p Params) (any, error) {
				return s.Exams.Timetable(p.str("student_id"))
			},
		},
		IntentRequestSpecialExam: {
			required: []string{"student_id", "course_code"},
			handle: func(p Params) (any, error) {
				return s.Exams.RequestSpecialArrangement(
					p.str("student_id"), p.str("course_code"), p.str("reason"))
			},
		},
		IntentHostelAvailability: {
			handle: func(p Params) (any, error) {
				return s.Hostel.Availability()
			},
		},
		IntentBookHostel: {
			required: []string{"student_id", "hostel_id"},
			handle: func(p Params) (any, error) {
				return s.Hostel.Book(p.str("student_id"), p.str("hostel_id"))
			},
		},
		IntentReportMaintenance: {
			required: []string{"student_id", "room_id"},
			handle: func(p Params) (any, error) {
				return s.Hostel.FileMaintenance(
					p.str("student_id"), p.str("room_id"), p.str("description"))
			},
		},
		IntentApplyLeave: {
			required: []string{"student_id", "start_date", "end_date"},
			handle: func(p Params) (any, error) {
				return s.Leave.Apply(
					p.str("student_id"), p.str("start_date"), p.str("end_date"), p.str("reason"))
			},
		},
		IntentRegisterEvent: {
			required: []string{"student_id", "event_id"},
			handle: func(p Params) (any, error) {
				return s.Events.Register(p.str("student_id"), p.str("event_id"))
			},
		},
		IntentCancelEvent: {
			required: []string{"student_id", "event_id"},
			handle: func(p Params) (any, error) {
				return s.Events.Cancel(p.str("student_id"), p.str("event_id"))
			},
		},
		IntentRequestOTP: {
			required: []string{"student_id"},
			handle: func(p Params) (any, error) {
				return s.Identity.RequestOTP(p.str("student_id"))
			},
		},
		IntentVerifyOTP: {
			required: []string{"student_id", "code"},
			handle: func(p Params) (any, error) {
				return s.Identity.VerifyOTP(p.str("student_id"), p.str("code"))
			},
		},
		IntentStudentProfile: {
			required: []string{"student_id"},
			handle: func(p Params) (any, error) {
				return s.Identity.Student(p.str("student_id"))
			},
		},
		IntentListCourses: {
			handle: func(p Params) (any, error) {
				return s.Catalog.Courses()
			},
		},
	}

	return &Dispatcher{table: table}
}

// Dispatch resolves the intent, checks required parameters, and runs
// the handler. Unknown intents and missing parameters are dispatch
// errors, never handler crashes.
func (d *Dispatcher) Dispatch(intent string, params Params) (any, error) {
	e, ok := d.table[intent]
	if !ok {
		return nil, fmt.Errorf("%q: %w", intent, types.ErrUnknownIntent)
	}

	if params == nil {
		params = Params{}
	}
	for _, name := range e.required {
		if missingParam(params, name) {
			return nil, &types.MissingParameterError{Param: name}
		}
	}

	return e.handle(params)
}

// Intents lists every intent the table knows, for diagnostics.
func (d *Dispatcher) Intents() []string {
	names := make([]string, 0, len(d.table))
	for name := range d.table {
		names = append(names, name)
	}
	return names
}

// missingParam treats absent keys and empty strings as missing. A
// number is only missing when the key itself is absent: an explicit
// zero was sent deliberately and belongs to the service's range
// checks (ErrInvalidInput), not to this presence check.
func missingParam(p Params, name string) bool {
	v, ok := p[name]
	if !ok || v == nil {
		return true
	}
	s, isString := v.(string)
	return isString && s == ""
}
