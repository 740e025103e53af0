// Package webapi provides the HTTP surface of the storefront. It is
// organized into sub-packages per concern:
// - rates: exchange rate endpoints
// - products: catalog with live display prices
// - cart: session cart endpoints
// - checkout: order validation and WhatsApp handoff
package webapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/brioches/storefront/pkg/app"
	"github.com/brioches/storefront/pkg/middleware"
	cartweb "github.com/brioches/storefront/webapi/cart"
	checkoutweb "github.com/brioches/storefront/webapi/checkout"
	"github.com/brioches/storefront/webapi/common"
	productsweb "github.com/brioches/storefront/webapi/products"
	ratesweb "github.com/brioches/storefront/webapi/rates"
)

// SetupApp initializes Fiber with the storefront routes.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	// Uses X-Forwarded-For when behind a proxy, falling back to
	// X-Real-IP and then the direct peer address.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, "Too Many Requests", nil,
				"rate limit exceeded", fiber.StatusTooManyRequests)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())
	fiberApp.Use(middleware.Session())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Brioches Bakery API is running! 🥐")
	})

	ratesweb.Routes(fiberApp, a.RateService, a.PricingService)
	productsweb.Routes(fiberApp, a.PricingService)
	cartweb.Routes(fiberApp, a.CartService, a.PricingService)
	checkoutweb.Routes(fiberApp, a.CartService)

	return fiberApp
}
