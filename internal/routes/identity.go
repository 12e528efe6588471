package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mallpark/mallpark/internal/identity"
)

// RegisterIdentityRoutes wires user onboarding.
func RegisterIdentityRoutes(r fiber.Router, h *identity.Handler) {
	r.Post("/identity/register", h.Register)
}
