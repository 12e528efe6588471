package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/mallpark/mallpark/internal/auth"
	"github.com/mallpark/mallpark/internal/config"
	"github.com/mallpark/mallpark/internal/identity"
	"github.com/mallpark/mallpark/internal/ledger"
	"github.com/mallpark/mallpark/internal/mall"
	"github.com/mallpark/mallpark/internal/middleware"
	"github.com/mallpark/mallpark/internal/notification"
	"github.com/mallpark/mallpark/internal/otp"
	"github.com/mallpark/mallpark/internal/parking"
	"github.com/mallpark/mallpark/internal/session"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.Env)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.Env)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	if d.Logger != nil {
		app.Use(middleware.Audit(d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Storage backends
	var ledgerBackend ledger.Ledger
	if d.DB != nil {
		ledgerBackend = ledger.NewPostgresLedger(d.DB)
	} else {
		ledgerBackend = ledger.NewMemory()
	}

	var identityRepo identity.Repository
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
	} else {
		identityRepo = identity.NewMemoryRepository()
	}

	var mallRepo mall.Repository
	if d.DB != nil {
		mallRepo = mall.NewPostgresRepository(d.DB)
	} else {
		mallRepo = mall.NewMemoryRepository()
	}

	var registry otp.Registry
	if d.Cache != nil {
		registry = otp.NewRedisRegistry(d.Cache, d.Cfg.PasscodeTTL)
	} else {
		registry = otp.NewMemoryRegistry(d.Cfg.PasscodeTTL)
	}

	var notifier notification.Notifier
	if d.Cfg.SMTPConfigured() {
		notifier = notification.NewSMTPNotifier(d.Cfg)
	} else {
		notifier = notification.NewLoggerNotifier(d.Logger)
	}

	// Services and handlers
	issuer := session.NewIssuer(d.Cfg.SessionSecret, d.Cfg.SessionTTL)
	identitySvc := identity.NewService(identityRepo)
	authSvc := auth.NewService(identitySvc, registry, issuer, notifier)
	mallSvc := mall.NewService(mallRepo, ledgerBackend)
	parkingSvc := parking.NewService(ledgerBackend, identitySvc, notifier)

	identityHandler := identity.NewHandler(identitySvc)
	authHandler := auth.NewHandler(authSvc)
	mallHandler := mall.NewHandler(mallSvc)
	parkingHandler := parking.NewHandler(parkingSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	RegisterIdentityRoutes(api, identityHandler)
	RegisterAuthRoutes(api, authHandler)
	RegisterMallRoutes(api, mallHandler)

	// Protected routes
	sessionmw := middleware.SessionAuth(issuer)
	protected := api.Group("", sessionmw)
	protected.Get("/me", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return c.SendStatus(http.StatusUnauthorized)
		}
		user, err := identityRepo.FindByID(c.UserContext(), uid)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "user not found")
		}
		return c.JSON(fiber.Map{
			"user_id":    user.ID,
			"email":      user.Email,
			"phone":      user.Phone,
			"created_at": user.CreatedAt,
		})
	})
	RegisterParkingRoutes(protected, parkingHandler)

	return nil
}
