package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mallpark/mallpark/internal/parking"
)

// RegisterParkingRoutes wires the slot reservation endpoints.
func RegisterParkingRoutes(r fiber.Router, h *parking.Handler) {
	r.Get("/malls/:mallId/slots", h.ListSlots)
	r.Post("/bookings", h.Reserve)
	r.Get("/bookings", h.Bookings)
	r.Delete("/bookings/:bookingId", h.Release)
}
