// Package products exposes the catalog with live display prices.
package products

import (
	"math"

	"github.com/gofiber/fiber/v2"

	"github.com/brioches/storefront/pkg/catalog"
	"github.com/brioches/storefront/pkg/pricing"
	"github.com/brioches/storefront/webapi/common"
)

// View is a catalog product with its rendered price.
type View struct {
	catalog.Product
	Price    string  `json:"price"`
	PriceVES float64 `json:"price_ves"`
}

// Routes registers the product listing.
func Routes(app *fiber.App, pricingSvc *pricing.Service) {
	app.Get("/products", List(pricingSvc))
}

// List returns the catalog priced at the current rate. `?category=`
// filters; `?both=false` drops the USD reference from price labels.
func List(pricingSvc *pricing.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pricingSvc.Sync(c.Context())

		showBoth := c.QueryBool("both", true)
		snap := pricingSvc.Snapshot()

		items := catalog.ByCategory(c.Query("category"))
		views := make([]View, 0, len(items))
		for _, p := range items {
			v := View{
				Product: p,
				Price:   pricingSvc.DisplayPrice(p.BaseUSD, showBoth),
			}
			if snap.Rate > 0 {
				v.PriceVES = math.Round(p.BaseUSD*snap.Rate*100) / 100
			}
			views = append(views, v)
		}

		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Products fetched successfully", fiber.Map{
				"products": views,
				"pricing":  snap,
			})
	}
}
