// Package checkout turns a cart into a WhatsApp order handoff.
package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	cartsvc "github.com/brioches/storefront/pkg/cart"
	"github.com/brioches/storefront/pkg/domain"
	"github.com/brioches/storefront/pkg/middleware"
	"github.com/brioches/storefront/webapi/common"
)

// Routes registers the checkout endpoints.
func Routes(app *fiber.App, cartSvc *cartsvc.Service) {
	group := app.Group("/checkout")

	group.Post("/", Checkout(cartSvc))
	group.Get("/message", OrderMessage(cartSvc))
	group.Get("/customer", Customer(cartSvc))
}

// Checkout validates the contact data and produces the order message
// plus its WhatsApp deep link. Field errors come back as a 422 with a
// per-field map; the order is not dispatched until they are fixed.
func Checkout(cartSvc *cartsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[domain.CustomerData](c)
		if err != nil {
			return nil
		}
		sid := middleware.SessionID(c)

		crt, err := cartSvc.Get(c.Context(), sid)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load cart", err)
		}
		if len(crt.Items) == 0 {
			return common.ProblemDetailsJSON(c, "Cart is empty",
				errors.New("nothing to order"), fiber.StatusUnprocessableEntity)
		}

		result, fieldErrs, err := cartSvc.Checkout(c.Context(), sid, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Checkout failed", err)
		}
		if len(fieldErrs) > 0 {
			return common.ProblemDetailsJSON(c, "Validation failed", nil,
				fiber.StatusUnprocessableEntity, fieldErrs)
		}

		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Order ready for dispatch", result)
	}
}

// OrderMessage previews the order message for the current cart.
func OrderMessage(cartSvc *cartsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msg, err := cartSvc.OrderMessage(c.Context(), middleware.SessionID(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to build order message", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Order message built successfully", fiber.Map{"message": msg})
	}
}

// Customer returns the stored contact data for prefilling the form.
func Customer(cartSvc *cartsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer, err := cartSvc.Customer(c.Context(), middleware.SessionID(c))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load customer data", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"Customer data fetched successfully", customer)
	}
}
