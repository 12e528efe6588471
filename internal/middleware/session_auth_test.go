package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mallpark/mallpark/internal/session"
)

func setupAuthApp(t *testing.T, issuer *session.Issuer) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", SessionAuth(issuer), func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		return c.SendString(uid)
	})
	return app
}

func TestSessionAuthAllowsValidToken(t *testing.T) {
	issuer := session.NewIssuer("test-secret", time.Hour)
	app := setupAuthApp(t, issuer)

	token, err := issuer.Mint("user-42")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestSessionAuthRejectsMissingHeader(t *testing.T) {
	app := setupAuthApp(t, session.NewIssuer("test-secret", time.Hour))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestSessionAuthRejectsExpiredToken(t *testing.T) {
	expiredIssuer := session.NewIssuer("test-secret", -time.Minute)
	app := setupAuthApp(t, session.NewIssuer("test-secret", time.Hour))

	token, err := expiredIssuer.Mint("user-42")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestSessionAuthRejectsForeignToken(t *testing.T) {
	app := setupAuthApp(t, session.NewIssuer("secret-a", time.Hour))

	token, err := session.NewIssuer("secret-b", time.Hour).Mint("user-42")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
