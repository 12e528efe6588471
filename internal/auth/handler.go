package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mallpark/mallpark/internal/identity"
	"github.com/mallpark/mallpark/internal/notification"
	"github.com/mallpark/mallpark/internal/otp"
	"github.com/mallpark/mallpark/internal/validation"
)

// Handler exposes the two-phase login endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds the auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login checks the password and dispatches a one-time passcode out of band.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validation.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	err := h.svc.Login(c.UserContext(), identity.Credentials{Email: req.Email, Password: req.Password})
	switch {
	case err == nil:
		return c.Status(http.StatusAccepted).JSON(fiber.Map{"status": "passcode_sent"})
	case errors.Is(err, identity.ErrNotFound), errors.Is(err, identity.ErrMismatch):
		return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, notification.ErrDelivery):
		return fiber.NewError(http.StatusBadGateway, "passcode delivery failed")
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}

type confirmRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// Confirm checks the passcode and returns a session token.
func (h *Handler) Confirm(c *fiber.Ctx) error {
	var req confirmRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validation.Struct(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	token, err := h.svc.Confirm(c.UserContext(), req.Email, req.Code)
	switch {
	case err == nil:
		return c.Status(http.StatusOK).JSON(fiber.Map{"token": token})
	case errors.Is(err, otp.ErrMismatch):
		return fiber.NewError(http.StatusUnauthorized, "wrong passcode")
	case errors.Is(err, otp.ErrNotFound), errors.Is(err, identity.ErrNotFound):
		return fiber.NewError(http.StatusUnauthorized, "no pending passcode, start over")
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}
