// Package cart exposes the session cart over HTTP.
package cart

import (
	"math"

	"github.com/gofiber/fiber/v2"

	cartsvc "github.com/brioches/storefront/pkg/cart"
	"github.com/brioches/storefront/pkg/catalog"
	"github.com/brioches/storefront/pkg/domain"
	"github.com/brioches/storefront/pkg/middleware"
	"github.com/brioches/storefront/pkg/pricing"
	"github.com/brioches/storefront/webapi/common"
)

// AddItemRequest adds one unit of a catalog product to the cart.
type AddItemRequest struct {
	ProductID int `json:"product_id"`
}

// UpdateItemRequest sets a line's quantity; zero or less removes it.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// Routes registers the cart endpoints. All of them operate on the
// session from the session cookie.
func Routes(app *fiber.App, cartSvc *cartsvc.Service, pricingSvc *pricing.Service) {
	group := app.Group("/cart")

	group.Get("/", Get(cartSvc))
	group.Post("/", AddItem(cartSvc, pricingSvc))
	group.Delete("/", Clear(cartSvc))
	group.Patch("/items/:id", UpdateItem(cartSvc))
	group.Delete("/items/:id", RemoveItem(cartSvc))
}

// Get returns the session's cart with totals.
func Get(cartSvc *cartsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		crt, err := cartSvc.Get(c.Context(), middleware.SessionID(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load cart", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Cart fetched successfully", view(crt))
	}
}

// AddItem puts one unit of a product in the cart. The price captured
// here sticks to the line; repeat adds only bump the quantity.
func AddItem(cartSvc *cartsvc.Service, pricingSvc *pricing.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AddItemRequest](c)
		if err != nil {
			return nil
		}

		product, ok := catalog.ByID(input.ProductID)
		if !ok {
			return common.ProblemDetailsJSON(c, "Product not found", nil,
				fiber.StatusNotFound)
		}

		item := domain.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     pricingSvc.DisplayPrice(product.BaseUSD, true),
			PriceUSD:  product.BaseUSD,
			Image:     product.Image,
			Category:  product.Category,
		}
		if snap := pricingSvc.Snapshot(); snap.Rate > 0 {
			item.PriceVES = math.Round(product.BaseUSD*snap.Rate*100) / 100
		}

		crt, err := cartSvc.AddItem(c.Context(), middleware.SessionID(c), item)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to add item", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Item added to cart", view(crt))
	}
}

// UpdateItem changes a line's quantity.
func UpdateItem(cartSvc *cartsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := c.ParamsInt("id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid product id", err,
				fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateItemRequest](c)
		if err != nil {
			return nil
		}

		crt, err := cartSvc.SetQuantity(
			c.Context(), middleware.SessionID(c), productID, input.Quantity)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update item", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Cart updated successfully", view(crt))
	}
}

// RemoveItem drops a line from the cart.
func RemoveItem(cartSvc *cartsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productID, err := c.ParamsInt("id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid product id", err,
				fiber.StatusBadRequest)
		}

		crt, err := cartSvc.RemoveItem(c.Context(), middleware.SessionID(c), productID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to remove item", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Item removed from cart", view(crt))
	}
}

// Clear empties the cart.
func Clear(cartSvc *cartsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		crt, err := cartSvc.Clear(c.Context(), middleware.SessionID(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to clear cart", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Cart cleared successfully", view(crt))
	}
}

func view(crt *cartsvc.Cart) fiber.Map {
	return fiber.Map{
		"items":       crt.Items,
		"total_items": crt.TotalItems(),
		"totals":      crt.Total(),
	}
}
