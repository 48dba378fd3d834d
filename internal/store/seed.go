package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

// Seed returns the built-in demo data set. Two students, two courses
// with tight capacities (so waitlists actually trigger during demos),
// a couple of hostels, and one event.
func Seed() *Data {
	d := NewData()

	d.Students["s001"] = &types.Student{
		ID:         "s001",
		Name:       "Alice Example",
		Email:      "alice@example.edu",
		FeeBalance: 1500.0,
		FeeItems: []types.FeeItem{
			{Description: "Tuition", Amount: 1500.0},
		},
		LeaveBalance: 12,
	}
	d.Students["s002"] = &types.Student{
		ID:           "s002",
		Name:         "Bob Example",
		Email:        "bob@example.edu",
		FeeBalance:   0.0,
		LeaveBalance: 12,
	}

	d.Courses["CSE101"] = &types.Course{
		Code:     "CSE101",
		Title:    "Intro to Computer Science",
		Capacity: 2,
	}
	d.Courses["MTH101"] = &types.Course{
		Code:     "MTH101",
		Title:    "Calculus I",
		Capacity: 1,
	}

	d.ExamSlots["CSE101"] = []types.ExamSlot{
		{CourseCode: "CSE101", Date: "2026-01-15", Time: "09:00", Venue: "Hall A"},
	}
	d.ExamSlots["MTH101"] = []types.ExamSlot{
		{CourseCode: "MTH101", Date: "2026-01-17", Time: "13:00", Venue: "Hall B"},
	}

	d.Hostels["H1"] = &types.Hostel{
		ID:    "H1",
		Name:  "Maple Hostel",
		Rooms: []string{"M-101", "M-102", "M-103", "M-104"},
	}
	d.Hostels["H2"] = &types.Hostel{
		ID:    "H2",
		Name:  "Pine Hostel",
		Rooms: []string{"P-201", "P-202", "P-203"},
	}
	d.Rooms["M-101"] = &types.HostelRoom{ID: "M-101", HostelID: "H1", Capacity: 1, Occupants: []string{"s001"}}
	d.Rooms["M-102"] = &types.HostelRoom{ID: "M-102", HostelID: "H1", Capacity: 1, Occupants: []string{"s002"}}
	d.Rooms["M-103"] = &types.HostelRoom{ID: "M-103", HostelID: "H1", Capacity: 1}
	d.Rooms["M-104"] = &types.HostelRoom{ID: "M-104", HostelID: "H1", Capacity: 1}
	d.Rooms["P-201"] = &types.HostelRoom{ID: "P-201", HostelID: "H2", Capacity: 1}
	d.Rooms["P-202"] = &types.HostelRoom{ID: "P-202", HostelID: "H2", Capacity: 1}
	d.Rooms["P-203"] = &types.HostelRoom{ID: "P-203", HostelID: "H2", Capacity: 1}

	d.Events["EVT100"] = &types.Event{
		ID:       "EVT100",
		Title:    "Freshers Meet",
		Capacity: 2,
	}

	return d
}

// seedFile is the accepted shape of an external seed JSON file. Only
// the catalog-ish collections can be seeded; runtime state (bookings,
// payments, OTP sessions, ...) always starts empty.
type seedFile struct {
	Students  []types.Student    `json:"students"`
	Courses   []types.Course     `json:"courses"`
	ExamSlots []types.ExamSlot   `json:"exam_slots"`
	Hostels   []types.Hostel     `json:"hostels"`
	Rooms     []types.HostelRoom `json:"rooms"`
	Events    []types.Event      `json:"events"`
}

// LoadSeedFile builds a Data set from a JSON file. Collections missing
// from the file stay empty rather than falling back to the built-in
// seed, so a test fixture gets exactly what it declares.
func LoadSeedFile(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var sf seedFile
	if err := json.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	d := NewData()
	for i := range sf.Students {
		s := sf.Students[i]
		d.Students[s.ID] = &s
	}
	for i := range sf.Courses {
		c := sf.Courses[i]
		d.Courses[c.Code] = &c
	}
	for _, slot := range sf.ExamSlots {
		d.ExamSlots[slot.CourseCode] = append(d.ExamSlots[slot.CourseCode], slot)
	}
	for i := range sf.Hostels {
		h := sf.Hostels[i]
		d.Hostels[h.ID] = &h
	}
	for i := range sf.Rooms {
		r := sf.Rooms[i]
		d.Rooms[r.ID] = &r
	}
	for i := range sf.Events {
		e := sf.Events[i]
		d.Events[e.ID] = &e
	}
	return d, nil
}
