// Package cart implements the shopping cart: an ordered collection of
// line items unique by product, its monetary aggregation, customer
// validation and the outbound order message.
package cart

import "github.com/brioches/storefront/pkg/domain"

// Cart is the ordered line-item collection for one session. Methods
// mutate in place; persistence is handled by Service.
type Cart struct {
	Items []domain.CartItem `json:"items"`
}

// Add appends the product with quantity 1, or bumps the quantity of
// an existing line. A repeat add keeps the existing line's price and
// category: the price is pinned at first add.
func (c *Cart) Add(item domain.CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity++
			return
		}
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// Remove deletes the matching line; no-op if absent.
func (c *Cart) Remove(productID int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites a line's quantity. A quantity of zero or
// less removes the line; an absent product is a no-op either way.
func (c *Cart) SetQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal accumulates the VES and USD components across all lines.
// Lines added by this service carry structured amounts; lines from
// older persisted carts fall back to parsing the display label. A
// label matching no known pattern contributes zero.
func (c *Cart) Subtotal() domain.Totals {
	var totals domain.Totals
	for _, item := range c.Items {
		prices := itemPrices(item)
		totals.VES += prices.VES * float64(item.Quantity)
		totals.USD += prices.USD * float64(item.Quantity)
	}
	return totals
}

// Total currently equals Subtotal. Kept separate so additive
// adjustments (tax, delivery) slot in without touching callers.
func (c *Cart) Total() domain.Totals {
	return c.Subtotal()
}

func itemPrices(item domain.CartItem) domain.Totals {
	if item.PriceVES != 0 || item.PriceUSD != 0 {
		return domain.Totals{VES: item.PriceVES, USD: item.PriceUSD}
	}
	return ParsePriceLabel(item.Price)
}
