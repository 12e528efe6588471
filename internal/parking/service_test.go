package parking

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/mallpark/mallpark/internal/identity"
	"github.com/mallpark/mallpark/internal/ledger"
	"github.com/mallpark/mallpark/internal/notification"
)

type testNotifier struct {
	last notification.Message
}

func (n *testNotifier) Send(_ context.Context, msg notification.Message) error {
	n.last = msg
	return nil
}

func setup(t *testing.T) (*Service, ledger.Ledger, *testNotifier, identity.User) {
	t.Helper()
	led := ledger.NewMemory()
	ids := identity.NewService(identity.NewMemoryRepository())
	notifier := &testNotifier{}
	svc := NewService(led, ids, notifier)

	user, err := ids.Register(context.Background(), identity.RegisterInput{Email: "a@x.com", Phone: "+919800000000", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return svc, led, notifier, user
}

func seedSlot(t *testing.T, led ledger.Ledger) ledger.Slot {
	t.Helper()
	slot := ledger.Slot{ID: uuid.NewString(), MallID: uuid.NewString(), Label: "P-001"}
	if err := led.EnsureSlot(context.Background(), slot); err != nil {
		t.Fatalf("ensure slot: %v", err)
	}
	return slot
}

func TestReserveSendsConfirmation(t *testing.T) {
	svc, led, notifier, user := setup(t)
	ctx := context.Background()
	slot := seedSlot(t, led)

	booking, err := svc.Reserve(ctx, ReserveInput{SlotID: slot.ID, UserID: user.ID, VehicleNumber: "KA01AB1234"})
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if booking.SlotID != slot.ID {
		t.Fatalf("booking for wrong slot: %+v", booking)
	}
	if notifier.last.Kind != notification.KindBookingConfirmed {
		t.Fatalf("expected booking confirmation, got %q", notifier.last.Kind)
	}
	if notifier.last.Destination != user.Email {
		t.Fatalf("confirmation sent to %q", notifier.last.Destination)
	}
}

func TestReserveConflictSurfaces(t *testing.T) {
	svc, led, _, user := setup(t)
	ctx := context.Background()
	slot := seedSlot(t, led)

	if _, err := svc.Reserve(ctx, ReserveInput{SlotID: slot.ID, UserID: user.ID, VehicleNumber: "KA01AB1234"}); err != nil {
		t.Fatalf("first reserve: %v", err)
	}
	_, err := svc.Reserve(ctx, ReserveInput{SlotID: slot.ID, UserID: user.ID, VehicleNumber: "KA02CD5678"})
	if !errors.Is(err, ledger.ErrAlreadyBooked) {
		t.Fatalf("expected ErrAlreadyBooked, got %v", err)
	}
}

func TestReserveRequiresVehicleNumber(t *testing.T) {
	svc, led, _, user := setup(t)
	slot := seedSlot(t, led)

	if _, err := svc.Reserve(context.Background(), ReserveInput{SlotID: slot.ID, UserID: user.ID}); err == nil {
		t.Fatalf("expected error for missing vehicle number")
	}
}

func TestReleaseThenRebook(t *testing.T) {
	svc, led, _, user := setup(t)
	ctx := context.Background()
	slot := seedSlot(t, led)

	booking, err := svc.Reserve(ctx, ReserveInput{SlotID: slot.ID, UserID: user.ID, VehicleNumber: "KA01AB1234"})
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := svc.Release(ctx, booking.ID); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := svc.Release(ctx, booking.ID); !errors.Is(err, ledger.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound on double release, got %v", err)
	}

	if _, err := svc.Reserve(ctx, ReserveInput{SlotID: slot.ID, UserID: user.ID, VehicleNumber: "KA02CD5678"}); err != nil {
		t.Fatalf("rebook after release: %v", err)
	}
}
