package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mallpark/mallpark/internal/session"
)

// UserIDKey is the request-locals key under which SessionAuth stores the
// authenticated user's id.
const UserIDKey = "user_id"

// SessionAuth returns a middleware that validates bearer session tokens and
// stores the subject id in the request locals.
func SessionAuth(issuer *session.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		tokenStr := strings.TrimSpace(authz[len("Bearer "):])

		subject, err := issuer.Validate(tokenStr)
		if err != nil {
			if errors.Is(err, session.ErrExpired) {
				return fiber.NewError(http.StatusUnauthorized, "session expired")
			}
			return fiber.NewError(http.StatusUnauthorized, "invalid session token")
		}

		c.Locals(UserIDKey, subject)
		return c.Next()
	}
}
