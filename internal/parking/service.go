package parking

import (
	"context"
	"fmt"

	"github.com/mallpark/mallpark/internal/identity"
	"github.com/mallpark/mallpark/internal/ledger"
	"github.com/mallpark/mallpark/internal/notification"
)

// Service wires slot reservations for authenticated users against the ledger.
type Service struct {
	ledger   ledger.Ledger
	ids      *identity.Service
	notifier notification.Notifier
}

// NewService constructs a parking service.
func NewService(ledgerBackend ledger.Ledger, ids *identity.Service, notifier notification.Notifier) *Service {
	return &Service{ledger: ledgerBackend, ids: ids, notifier: notifier}
}

// ReserveInput captures the data needed to claim a slot.
type ReserveInput struct {
	SlotID        string
	UserID        string
	VehicleNumber string
}

// Reserve claims a free slot for the user's vehicle. The ledger performs the
// atomic check-and-set; a confirmation notification is sent best effort.
func (s *Service) Reserve(ctx context.Context, input ReserveInput) (ledger.Booking, error) {
	if input.VehicleNumber == "" {
		return ledger.Booking{}, fmt.Errorf("vehicle number is required")
	}

	booking, err := s.ledger.Reserve(ctx, input.SlotID, input.UserID, input.VehicleNumber)
	if err != nil {
		return ledger.Booking{}, err
	}

	if s.notifier != nil {
		if user, uerr := s.ids.Get(ctx, input.UserID); uerr == nil {
			_ = s.notifier.Send(ctx, notification.Message{
				Kind:        notification.KindBookingConfirmed,
				Destination: user.Email,
				Subject:     "Parking slot reserved",
				Body:        fmt.Sprintf("Slot reserved for vehicle %s, booking %s.", booking.VehicleNumber, booking.ID),
			})
		}
	}

	return booking, nil
}

// Release frees the slot held by the booking. Releasing twice fails the
// second time with ErrBookingNotFound, which is the correct signal.
func (s *Service) Release(ctx context.Context, bookingID string) error {
	return s.ledger.Release(ctx, bookingID)
}

// ListAvailable returns the free slots of a mall.
func (s *Service) ListAvailable(ctx context.Context, mallID string) ([]ledger.Slot, error) {
	return s.ledger.ListAvailable(ctx, mallID)
}

// BookingsFor lists the user's active bookings.
func (s *Service) BookingsFor(ctx context.Context, userID string) ([]ledger.Booking, error) {
	return s.ledger.BookingsFor(ctx, userID)
}
