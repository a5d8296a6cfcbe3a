// Package webapi wires the Fiber application: middleware, the API-key gate
// and the per-domain route registrations.
package webapi

import (
	"errors"
	"strings"

	"github.com/corebank/accounts-api/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

var (
	errForbiddenKey = errors.New("forbidden api key")
	errInvalidKey   = errors.New("invalid api key")
)

// NewApp builds the Fiber app with the shared middleware stack: security
// headers, CORS, request logging, panic recovery, rate limiting and the
// API-key gate. Health and metrics endpoints sit in front of the gate.
// Domain routes are registered by the caller.
func NewApp(cfg *config.App) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path} | ${locals:requestid}\n",
	}))
	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Prefer X-Forwarded-For behind a proxy, first hop wins.
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			return c.IP()
		},
	}))

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Accounts API is running")
	})
	app.Get("/metrics", monitor.New(monitor.Config{Title: "Accounts API Metrics"}))

	app.Use(APIKeyGate(cfg.Auth.APIKey))
	return app
}

// APIKeyGate protects every route registered after it. The gate answers with
// the coded error envelope: 401 without a key, 403 for the reserved
// FORBIDDENKEY value or for any key that does not match the configured one.
func APIKeyGate(apiKey string) fiber.Handler {
	return keyauth.New(keyauth.Config{
		KeyLookup: "header:X-API-Key",
		Validator: func(c *fiber.Ctx, key string) (bool, error) {
			if key == "FORBIDDENKEY" {
				return false, errForbiddenKey
			}
			if key != apiKey {
				return false, errInvalidKey
			}
			return true, nil
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			switch {
			case errors.Is(err, errForbiddenKey):
				return ErrorResponseJSON(c, fiber.StatusForbidden,
					ErrCodeForbidden, "Not authorized to access this resource")
			case errors.Is(err, errInvalidKey):
				return ErrorResponseJSON(c, fiber.StatusForbidden,
					ErrCodeForbidden, "Invalid API key")
			default:
				return ErrorResponseJSON(c, fiber.StatusUnauthorized,
					ErrCodeUnauthorized, "Missing API key")
			}
		},
	})
}

// errorHandler converts errors that escape a handler into the simple error
// envelope. Client errors raised as *fiber.Error keep their status and
// message; everything else becomes an opaque 500.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return SimpleErrorJSON(c, fe.Code, fe.Message)
	}
	return SimpleErrorJSON(c, fiber.StatusInternalServerError, "Internal Server Error")
}
