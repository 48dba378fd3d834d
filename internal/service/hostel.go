package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/aanand-mishra/helpdesk-api/internal/store"
	"github.com/aanand-mishra/helpdesk-api/internal/storage"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

// HostelAvailability summarises free capacity per hostel.
type HostelAvailability struct {
	HostelID       string `json:"hostel_id"`
	Name           string `json:"name"`
	RoomsTotal     int    `json:"rooms_total"`
	RoomsAvailable int    `json:"rooms_available"`
}

// Hostel handles room bookings and maintenance tickets. Booking
// assigns the first room (by room id) with spare capacity, so repeated
// bookings fill a hostel deterministically.
type Hostel struct {
	store *store.Store
	audit storage.Storage
	clock func() time.Time
}

func NewHostel(st *store.Store, audit storage.Storage) *Hostel {
	return &Hostel{store: st, audit: audit, clock: time.Now}
}

// Availability lists every hostel with its total and free room counts.
// A room counts as available while it has at least one free place.
func (h *Hostel) Availability() ([]HostelAvailability, error) {
	// Empty slice (not nil) so the JSON response is [] rather than null.
	out := []HostelAvailability{}
	err := h.store.View(func(d *store.Data) error {
		for _, hostel := range d.Hostels {
			avail := HostelAvailability{
				HostelID:   hostel.ID,
				Name:       hostel.Name,
				RoomsTotal: len(hostel.Rooms),
			}
			for _, roomID := range hostel.Rooms {
				if room, ok := d.Rooms[roomID]; ok && len(room.Occupants) < room.Capacity {
					avail.RoomsAvailable++
				}
			}
			out = append(out, avail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HostelID < out[j].HostelID })
	return out, nil
}

// Book assigns the student to the first room in the hostel with free
// capacity. When every room is full it fails with ErrRoomFull.
func (h *Hostel) Book(studentID, hostelID string) (types.Booking, error) {
	var booking types.Booking
	err := h.store.Update(func(d *store.Data) error {
		if _, err := d.Student(studentID); err != nil {
			return err
		}
		hostel, err := d.Hostel(hostelID)
		if err != nil {
			return err
		}

		for _, roomID := range hostel.Rooms {
			room, ok := d.Rooms[roomID]
			if !ok || len(room.Occupants) >= room.Capacity {
				continue
			}
			room.Occupants = append(room.Occupants, studentID)
			booking = types.Booking{
				ID:        uuid.NewString(),
				StudentID: studentID,
				HostelID:  hostelID,
				RoomID:    roomID,
				CreatedAt: h.clock(),
			}
			d.Bookings[booking.ID] = &booking
			return nil
		}

		return fmt.Errorf("hostel %s: %w", hostelID, types.ErrRoomFull)
	})
	if err != nil {
		return types.Booking{}, err
	}

	recordAudit(h.audit, studentID, "hostel_booked", map[string]any{
		"booking_id": booking.ID,
		"hostel_id":  hostelID,
		"room_id":    booking.RoomID,
	})
	return booking, nil
}

// FileMaintenance opens a maintenance ticket against a room and links
// it from the room record.
func (h *Hostel) FileMaintenance(studentID, roomID, description string) (types.MaintenanceTicket, error) {
	ticket := types.MaintenanceTicket{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		RoomID:      roomID,
		Description: description,
		Status:      types.TicketStatusOpen,
		CreatedAt:   h.clock(),
	}

	err := h.store.Update(func(d *store.Data) error {
		if _, err := d.Student(studentID); err != nil {
			return err
		}
		room, err := d.Room(roomID)
		if err != nil {
			return err
		}
		room.Tickets = append(room.Tickets, ticket.ID)
		d.Tickets[ticket.ID] = &ticket
		return nil
	})
	if err != nil {
		return types.MaintenanceTicket{}, err
	}

	recordAudit(h.audit, studentID, "maintenance_ticket", map[string]any{
		"ticket_id": ticket.ID,
		"room_id":   roomID,
	})
	return ticket, nil
}
