// Package store is the in-memory mock data store behind every domain
// service. There is no database here on purpose: the whole point of
// this API is to be a disposable stub, so state lives in maps, is
// seeded at startup, and evaporates on restart.
//
// The HTTP server is concurrent, so every access goes through a single
// RWMutex via View/Update. One lock covers all collections because the
// interesting transitions (enroll, book, promote a waitlist) touch more
// than one collection and must observe the capacity and FIFO invariants
// atomically. Last-write-wins; no transactional guarantees.
package store

import (
	"fmt"
	"sync"

	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

// Data is the raw collection set. Services receive it inside a
// View/Update closure and use the typed accessors below; they must not
// retain references past the closure.
type Data struct {
	Students  map[string]*types.Student
	Courses   map[string]*types.Course
	ExamSlots map[string][]types.ExamSlot // keyed by course code
	Hostels   map[string]*types.Hostel
	Rooms     map[string]*types.HostelRoom
	Bookings  map[string]*types.Booking
	Tickets   map[string]*types.MaintenanceTicket
	Leaves    map[string]*types.LeaveRequest
	Events    map[string]*types.Event
	OTPs      map[string]*types.OTPSession // keyed by student id
	Payments  map[string]*types.Payment
	Specials  map[string]*types.SpecialExamRequest
}

// NewData returns an empty, fully allocated collection set.
func NewData() *Data {
	return &Data{
		Students:  make(map[string]*types.Student),
		Courses:   make(map[string]*types.Course),
		ExamSlots: make(map[string][]types.ExamSlot),
		Hostels:   make(map[string]*types.Hostel),
		Rooms:     make(map[string]*types.HostelRoom),
		Bookings:  make(map[string]*types.Booking),
		Tickets:   make(map[string]*types.MaintenanceTicket),
		Leaves:    make(map[string]*types.LeaveRequest),
		Events:    make(map[string]*types.Event),
		OTPs:      make(map[string]*types.OTPSession),
		Payments:  make(map[string]*types.Payment),
		Specials:  make(map[string]*types.SpecialExamRequest),
	}
}

// Typed lookups. Each fails with types.ErrNotFound (wrapped with the
// entity kind and id) when the key is unknown.

func (d *Data) Student(id string) (*types.Student, error) {
	s, ok := d.Students[id]
	if !ok {
		return nil, fmt.Errorf("student %s: %w", id, types.ErrNotFound)
	}
	return s, nil
}

func (d *Data) Course(code string) (*types.Course, error) {
	c, ok := d.Courses[code]
	if !ok {
		return nil, fmt.Errorf("course %s: %w", code, types.ErrNotFound)
	}
	return c, nil
}

func (d *Data) Hostel(id string) (*types.Hostel, error) {
	h, ok := d.Hostels[id]
	if !ok {
		return nil, fmt.Errorf("hostel %s: %w", id, types.ErrNotFound)
	}
	return h, nil
}

func (d *Data) Room(id string) (*types.HostelRoom, error) {
	r, ok := d.Rooms[id]
	if !ok {
		return nil, fmt.Errorf("room %s: %w", id, types.ErrNotFound)
	}
	return r, nil
}

func (d *Data) Event(id string) (*types.Event, error) {
	e, ok := d.Events[id]
	if !ok {
		return nil, fmt.Errorf("event %s: %w", id, types.ErrNotFound)
	}
	return e, nil
}

func (d *Data) Payment(id string) (*types.Payment, error) {
	p, ok := d.Payments[id]
	if !ok {
		return nil, fmt.Errorf("payment %s: %w", id, types.ErrNotFound)
	}
	return p, nil
}

func (d *Data) OTP(studentID string) (*types.OTPSession, error) {
	s, ok := d.OTPs[studentID]
	if !ok {
		return nil, fmt.Errorf("otp session for %s: %w", studentID, types.ErrNotFound)
	}
	return s, nil
}

// Store serializes access to a Data behind one RWMutex.
type Store struct {
	mu   sync.RWMutex
	data *Data
}

// New returns a store holding the given collections. Use Seed() or
// LoadSeedFile() to build them.
func New(data *Data) *Store {
	return &Store{data: data}
}

// View runs fn with shared (read) access to the collections.
func (s *Store) View(fn func(d *Data) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

// Update runs fn with exclusive (write) access to the collections.
// Everything fn does is atomic with respect to other View/Update calls.
func (s *Store) Update(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// Reset throws away all state and replaces it with the given
// collections. Used by the admin reset endpoint and by tests.
func (s *Store) Reset(data *Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}
