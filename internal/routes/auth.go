package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mallpark/mallpark/internal/auth"
)

// RegisterAuthRoutes wires the two-phase login endpoints.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler) {
	group := r.Group("/auth")
	group.Post("/login", h.Login)
	group.Post("/confirm", h.Confirm)
}
