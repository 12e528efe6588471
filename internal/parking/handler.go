package parking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mallpark/mallpark/internal/ledger"
	"github.com/mallpark/mallpark/internal/validation"
)

// Handler exposes reservation endpoints. All routes require an authenticated
// session; the user id comes from the session middleware.
type Handler struct {
	service *Service
}

// NewHandler builds a parking HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type reserveRequest struct {
	SlotID        string `json:"slot_id" validate:"required,uuid4"`
	VehicleNumber string `json:"vehicle_number" validate:"required"`
}

type bookingResponse struct {
	ID            string    `json:"id"`
	SlotID        string    `json:"slot_id"`
	UserID        string    `json:"user_id"`
	VehicleNumber string    `json:"vehicle_number"`
	CreatedAt     time.Time `json:"created_at"`
}

type slotResponse struct {
	ID     string `json:"id"`
	MallID string `json:"mall_id"`
	Label  string `json:"label"`
	Status string `json:"status"`
}

func callerID(c *fiber.Ctx) (string, error) {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return "", fiber.NewError(http.StatusUnauthorized, "missing session")
	}
	return uid, nil
}

// ListSlots returns the free slots of a mall.
func (h *Handler) ListSlots(c *fiber.Ctx) error {
	slots, err := h.service.ListAvailable(c.UserContext(), c.Params("mallId"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	resp := make([]slotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, slotResponse{ID: s.ID, MallID: s.MallID, Label: s.Label, Status: s.Status})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// Reserve claims a slot for the caller's vehicle.
func (h *Handler) Reserve(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	var req reserveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validation.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Reserve(c.UserContext(), ReserveInput{SlotID: req.SlotID, UserID: uid, VehicleNumber: req.VehicleNumber})
	switch {
	case err == nil:
		return c.Status(http.StatusCreated).JSON(bookingResponse{
			ID:            booking.ID,
			SlotID:        booking.SlotID,
			UserID:        booking.UserID,
			VehicleNumber: booking.VehicleNumber,
			CreatedAt:     booking.CreatedAt,
		})
	case errors.Is(err, ledger.ErrSlotNotFound):
		return fiber.NewError(http.StatusNotFound, "slot not found")
	case errors.Is(err, ledger.ErrAlreadyBooked):
		return fiber.NewError(http.StatusConflict, "slot already booked, pick another")
	default:
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
}

// Release frees the slot held by the caller's booking.
func (h *Handler) Release(c *fiber.Ctx) error {
	if _, err := callerID(c); err != nil {
		return err
	}

	err := h.service.Release(c.UserContext(), c.Params("bookingId"))
	switch {
	case err == nil:
		return c.Status(http.StatusOK).JSON(fiber.Map{"status": "released"})
	case errors.Is(err, ledger.ErrBookingNotFound):
		return fiber.NewError(http.StatusNotFound, "booking not found")
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}

// Bookings lists the caller's active bookings.
func (h *Handler) Bookings(c *fiber.Ctx) error {
	uid, err := callerID(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.BookingsFor(c.UserContext(), uid)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	resp := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, bookingResponse{ID: b.ID, SlotID: b.SlotID, UserID: b.UserID, VehicleNumber: b.VehicleNumber, CreatedAt: b.CreatedAt})
	}
	return c.Status(http.StatusOK).JSON(resp)
}
