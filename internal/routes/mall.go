package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mallpark/mallpark/internal/mall"
)

// RegisterMallRoutes wires mall provisioning and listing endpoints.
func RegisterMallRoutes(r fiber.Router, h *mall.Handler) {
	r.Post("/malls", h.Create)
	r.Get("/malls", h.List)
}
