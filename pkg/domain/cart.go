package domain

// CartItem is one product line in a cart. Quantity is always >= 1;
// a line reaching zero is removed, never stored.
//
// Price holds the human-readable label shown to the customer
// (e.g. "Bs. 40,11 ($0.25)"). PriceVES and PriceUSD carry the
// structured amounts computed at the moment the line was added, so
// totals do not depend on re-parsing the label. Carts persisted by
// older clients may only have the label; totals fall back to parsing
// it in that case.
type CartItem struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Price     string  `json:"price"`
	PriceVES  float64 `json:"price_ves,omitempty"`
	PriceUSD  float64 `json:"price_usd,omitempty"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Category  string  `json:"category"`
}

// Totals accumulates the VES and USD components of a cart
// independently; neither is derived from the other.
type Totals struct {
	VES float64 `json:"ves"`
	USD float64 `json:"usd"`
}

// CustomerData is the checkout contact block. It is persisted per
// session to prefill future checkouts and folded into the outbound
// order message after validation.
type CustomerData struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
}
