package ledger

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryLedger struct {
	mu       sync.Mutex
	slots    map[string]Slot
	bookings map[string]Booking
	order    []string
}

// NewMemory creates a concurrency-safe in-memory ledger used by tests and dev
// mode. A single mutex stands in for the per-row lock of the Postgres backend.
func NewMemory() Ledger {
	return &memoryLedger{
		slots:    make(map[string]Slot),
		bookings: make(map[string]Booking),
	}
}

func (l *memoryLedger) EnsureSlot(_ context.Context, slot Slot) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.slots[slot.ID]; exists {
		return nil
	}
	if slot.Status == "" {
		slot.Status = SlotStatusFree
	}
	l.slots[slot.ID] = slot
	return nil
}

func (l *memoryLedger) ListAvailable(_ context.Context, mallID string) ([]Slot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var slots []Slot
	for _, slot := range l.slots {
		if slot.MallID == mallID && slot.Status == SlotStatusFree {
			slots = append(slots, slot)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Label < slots[j].Label })
	return slots, nil
}

func (l *memoryLedger) Reserve(_ context.Context, slotID, userID, vehicleNumber string) (Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[slotID]
	if !ok {
		return Booking{}, ErrSlotNotFound
	}
	if slot.Status != SlotStatusFree {
		return Booking{}, ErrAlreadyBooked
	}

	slot.Status = SlotStatusOccupied
	l.slots[slotID] = slot

	booking := Booking{
		ID:            uuid.New().String(),
		SlotID:        slotID,
		UserID:        userID,
		VehicleNumber: vehicleNumber,
		CreatedAt:     time.Now().UTC(),
	}
	l.bookings[booking.ID] = booking
	l.order = append(l.order, booking.ID)
	return booking, nil
}

func (l *memoryLedger) Release(_ context.Context, bookingID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	booking, ok := l.bookings[bookingID]
	if !ok {
		return ErrBookingNotFound
	}

	delete(l.bookings, bookingID)
	for i, id := range l.order {
		if id == bookingID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}

	if slot, ok := l.slots[booking.SlotID]; ok {
		slot.Status = SlotStatusFree
		l.slots[booking.SlotID] = slot
	}
	return nil
}

func (l *memoryLedger) BookingsFor(_ context.Context, userID string) ([]Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var bookings []Booking
	for _, id := range l.order {
		if booking := l.bookings[id]; booking.UserID == userID {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}
