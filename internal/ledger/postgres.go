package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresLedger persists slots and bookings in PostgreSQL. Reserve and
// Release run inside a transaction holding a row lock on the slot, so the
// check-and-set is serialized per slot while different slots proceed
// independently.
type PostgresLedger struct {
	db *pgxpool.Pool
}

// NewPostgresLedger constructs a Postgres-backed slot ledger.
func NewPostgresLedger(db *pgxpool.Pool) *PostgresLedger {
	return &PostgresLedger{db: db}
}

// EnsureSlot guarantees a slot row exists, leaving an existing one untouched.
func (l *PostgresLedger) EnsureSlot(ctx context.Context, slot Slot) error {
	slotID, err := uuid.Parse(slot.ID)
	if err != nil {
		return err
	}
	mallID, err := uuid.Parse(slot.MallID)
	if err != nil {
		return err
	}
	status := slot.Status
	if status == "" {
		status = SlotStatusFree
	}
	_, err = l.db.Exec(ctx, `INSERT INTO slots (id, mall_id, label, status) VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING`, slotID, mallID, slot.Label, status)
	return err
}

// ListAvailable returns the free slots of a mall.
func (l *PostgresLedger) ListAvailable(ctx context.Context, mallID string) ([]Slot, error) {
	mall, err := uuid.Parse(mallID)
	if err != nil {
		return nil, err
	}
	rows, err := l.db.Query(ctx, `SELECT id, mall_id, label, status FROM slots
        WHERE mall_id = $1 AND status = $2 ORDER BY label`, mall, SlotStatusFree)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []Slot
	for rows.Next() {
		var (
			id     uuid.UUID
			mallID uuid.UUID
			slot   Slot
		)
		if err := rows.Scan(&id, &mallID, &slot.Label, &slot.Status); err != nil {
			return nil, err
		}
		slot.ID = id.String()
		slot.MallID = mallID.String()
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// Reserve claims a free slot for the user and creates the booking atomically.
// The FOR UPDATE lock on the slot row makes concurrent reserves on the same
// slot observe a total order: the first commits, the rest see occupied.
func (l *PostgresLedger) Reserve(ctx context.Context, slotID, userID, vehicleNumber string) (Booking, error) {
	slotUUID, err := uuid.Parse(slotID)
	if err != nil {
		return Booking{}, ErrSlotNotFound
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return Booking{}, err
	}

	tx, err := l.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Booking{}, err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	var status string
	if err := tx.QueryRow(ctx, `SELECT status FROM slots WHERE id = $1 FOR UPDATE`, slotUUID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Booking{}, ErrSlotNotFound
		}
		return Booking{}, err
	}
	if status != SlotStatusFree {
		return Booking{}, ErrAlreadyBooked
	}

	if _, err := tx.Exec(ctx, `UPDATE slots SET status = $1 WHERE id = $2`, SlotStatusOccupied, slotUUID); err != nil {
		return Booking{}, err
	}

	booking := Booking{
		ID:            uuid.New().String(),
		SlotID:        slotID,
		UserID:        userID,
		VehicleNumber: vehicleNumber,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := tx.Exec(ctx, `INSERT INTO bookings (id, slot_id, user_id, vehicle_number, created_at)
        VALUES ($1, $2, $3, $4, $5)`, uuid.MustParse(booking.ID), slotUUID, userUUID, booking.VehicleNumber, booking.CreatedAt); err != nil {
		return Booking{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Booking{}, err
	}

	return booking, nil
}

// Release deletes the booking and frees its slot atomically. A second release
// of the same booking id finds no row and reports ErrBookingNotFound.
func (l *PostgresLedger) Release(ctx context.Context, bookingID string) error {
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return ErrBookingNotFound
	}

	tx, err := l.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	var slotUUID uuid.UUID
	if err := tx.QueryRow(ctx, `SELECT slot_id FROM bookings WHERE id = $1 FOR UPDATE`, bookingUUID).Scan(&slotUUID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrBookingNotFound
		}
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, bookingUUID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE slots SET status = $1 WHERE id = $2`, SlotStatusFree, slotUUID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// BookingsFor lists the user's active bookings in insertion order.
func (l *PostgresLedger) BookingsFor(ctx context.Context, userID string) ([]Booking, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	rows, err := l.db.Query(ctx, `SELECT id, slot_id, user_id, vehicle_number, created_at FROM bookings
        WHERE user_id = $1 ORDER BY created_at`, userUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		var (
			id        uuid.UUID
			slotID    uuid.UUID
			uid       uuid.UUID
			createdAt time.Time
			booking   Booking
		)
		if err := rows.Scan(&id, &slotID, &uid, &booking.VehicleNumber, &createdAt); err != nil {
			return nil, err
		}
		booking.ID = id.String()
		booking.SlotID = slotID.String()
		booking.UserID = uid.String()
		booking.CreatedAt = createdAt.UTC()
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
