// Package rates exposes the exchange rate over HTTP.
package rates

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brioches/storefront/pkg/pricing"
	ratesvc "github.com/brioches/storefront/pkg/rates"
	"github.com/brioches/storefront/webapi/common"
)

// Routes registers the rate endpoints.
func Routes(app *fiber.App, rateSvc *ratesvc.Service, pricingSvc *pricing.Service) {
	group := app.Group("/rates")

	group.Get("/", GetRate(rateSvc, pricingSvc))
	group.Post("/refresh", Refresh(pricingSvc))
}

// GetRate returns the current USD→VES rate. Reading the rate also
// checks for a calendar day rollover, so the first request of the day
// triggers a refetch just like reopening the storefront used to.
func GetRate(rateSvc *ratesvc.Service, pricingSvc *pricing.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rateSvc.Wake(c.Context())
		pricingSvc.Sync(c.Context())
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Exchange rate fetched successfully", pricingSvc.Snapshot())
	}
}

// Refresh busts the cache and refetches the rate from the sources.
func Refresh(pricingSvc *pricing.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pricingSvc.Refresh(c.Context())
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Exchange rate refreshed successfully", pricingSvc.Snapshot())
	}
}
