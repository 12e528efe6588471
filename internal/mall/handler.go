package mall

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mallpark/mallpark/internal/validation"
)

// Handler exposes mall HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a mall HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	Name      string `json:"name" validate:"required"`
	Address   string `json:"address"`
	SlotCount int    `json:"slot_count" validate:"gte=0"`
}

type mallResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Create provisions a mall and its parking slots.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validation.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	mall, err := h.service.Create(c.UserContext(), CreateInput{Name: req.Name, Address: req.Address, SlotCount: req.SlotCount})
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(mallResponse{ID: mall.ID, Name: mall.Name, Address: mall.Address})
}

// List returns all malls.
func (h *Handler) List(c *fiber.Ctx) error {
	malls, err := h.service.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	resp := make([]mallResponse, 0, len(malls))
	for _, m := range malls {
		resp = append(resp, mallResponse{ID: m.ID, Name: m.Name, Address: m.Address})
	}
	return c.Status(http.StatusOK).JSON(resp)
}
