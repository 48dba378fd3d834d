package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/helpdesk-api/internal/store"
	"github.com/aanand-mishra/helpdesk-api/internal/types"
)

func TestBookFillsRoomsInOrder(t *testing.T) {
	st := newTestStore(t)
	svc := NewHostel(st, nil)

	// H2 (Pine) seeds with three free single rooms.
	b1, err := svc.Book("s001", "H2")
	require.NoError(t, err)
	assert.Equal(t, "P-201", b1.RoomID)

	b2, err := svc.Book("s002", "H2")
	require.NoError(t, err)
	assert.Equal(t, "P-202", b2.RoomID)

	b3, err := svc.Book("s003", "H2")
	require.NoError(t, err)
	assert.Equal(t, "P-203", b3.RoomID)

	_, err = svc.Book("s004", "H2")
	assert.ErrorIs(t, err, types.ErrRoomFull)
}

func TestBookUnknownHostel(t *testing.T) {
	st := newTestStore(t)
	svc := NewHostel(st, nil)

	_, err := svc.Book("s001", "H9")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestAvailabilityCountsFreeRooms(t *testing.T) {
	st := newTestStore(t)
	svc := NewHostel(st, nil)

	hostels, err := svc.Availability()
	require.NoError(t, err)
	require.Len(t, hostels, 2)

	// H1 seeds with two of four rooms occupied.
	assert.Equal(t, "H1", hostels[0].HostelID)
	assert.Equal(t, 4, hostels[0].RoomsTotal)
	assert.Equal(t, 2, hostels[0].RoomsAvailable)

	assert.Equal(t, "H2", hostels[1].HostelID)
	assert.Equal(t, 3, hostels[1].RoomsAvailable)

	// Booking shrinks availability.
	_, err = svc.Book("s003", "H2")
	require.NoError(t, err)

	hostels, err = svc.Availability()
	require.NoError(t, err)
	assert.Equal(t, 2, hostels[1].RoomsAvailable)
}

func TestAvailabilityWithNoHostels(t *testing.T) {
	st := store.New(store.NewData())
	svc := NewHostel(st, nil)

	hostels, err := svc.Availability()
	require.NoError(t, err)
	assert.NotNil(t, hostels)
	assert.Empty(t, hostels)
}

func TestFileMaintenanceOpensTicket(t *testing.T) {
	st := newTestStore(t)
	svc := NewHostel(st, nil)

	ticket, err := svc.FileMaintenance("s001", "M-101", "broken heater")
	require.NoError(t, err)

	assert.Equal(t, types.TicketStatusOpen, ticket.Status)
	assert.Equal(t, "M-101", ticket.RoomID)
	assert.NotEmpty(t, ticket.ID)

	_, err = svc.FileMaintenance("s001", "Z-999", "no such room")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
