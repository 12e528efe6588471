package ledger

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrSlotNotFound occurs when the referenced slot does not exist.
	ErrSlotNotFound = errors.New("slot not found")

	// ErrAlreadyBooked indicates the slot was occupied at the time of the
	// reserve attempt. First successful claimant wins; there is no queuing.
	ErrAlreadyBooked = errors.New("slot already booked")

	// ErrBookingNotFound occurs when the referenced booking does not exist or
	// was already released.
	ErrBookingNotFound = errors.New("booking not found")
)

const (
	// SlotStatusFree marks a slot available for reservation.
	SlotStatusFree = "free"
	// SlotStatusOccupied marks a slot held by an active booking.
	SlotStatusOccupied = "occupied"
)

// Slot is a physical parking slot inside a mall.
type Slot struct {
	ID     string
	MallID string
	Label  string
	Status string
}

// Booking records an active claim of a slot by a user for a vehicle.
type Booking struct {
	ID            string
	SlotID        string
	UserID        string
	VehicleNumber string
	CreatedAt     time.Time
}

// Ledger tracks slot occupancy and brokers atomic reservation and release.
// At most one active booking may reference a slot; Reserve flips the slot to
// occupied and creates the booking as one indivisible unit, Release undoes
// both. Implementations must guarantee that of N concurrent reserves on a
// free slot exactly one succeeds.
type Ledger interface {
	EnsureSlot(ctx context.Context, slot Slot) error
	ListAvailable(ctx context.Context, mallID string) ([]Slot, error)
	Reserve(ctx context.Context, slotID, userID, vehicleNumber string) (Booking, error)
	Release(ctx context.Context, bookingID string) error
	BookingsFor(ctx context.Context, userID string) ([]Booking, error)
}
