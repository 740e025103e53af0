package cart

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/brioches/storefront/pkg/domain"
)

// Store persists carts and customer data per session. Reads tolerate
// missing or corrupt records by returning empty state; only transport
// failures on writes surface as errors.
type Store interface {
	LoadCart(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	SaveCart(ctx context.Context, sessionID string, items []domain.CartItem) error
	LoadCustomer(ctx context.Context, sessionID string) (*domain.CustomerData, error)
	SaveCustomer(ctx context.Context, sessionID string, customer domain.CustomerData) error
}

// CheckoutResult is the outcome of a successful checkout: the order
// message and the WhatsApp deep link carrying it.
type CheckoutResult struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// Service owns session-scoped cart state: it loads a cart, applies a
// mutation, and persists the result on every change.
type Service struct {
	store          Store
	whatsappNumber string
	logger         *slog.Logger
}

// NewService creates the cart service.
func NewService(store Store, whatsappNumber string, logger *slog.Logger) *Service {
	return &Service{
		store:          store,
		whatsappNumber: whatsappNumber,
		logger:         logger,
	}
}

// Get loads the session's cart; a session with no stored cart gets an
// empty one.
func (s *Service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	items, err := s.store.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return &Cart{Items: items}, nil
}

// AddItem adds the product to the session's cart and persists it.
func (s *Service) AddItem(ctx context.Context, sessionID string, item domain.CartItem) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) { c.Add(item) })
}

// RemoveItem deletes the product line and persists the cart.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) { c.Remove(productID) })
}

// SetQuantity updates a line's quantity (zero or less removes it) and
// persists the cart.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, productID, quantity int) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) { c.SetQuantity(productID, quantity) })
}

// Clear empties the session's cart and persists it.
func (s *Service) Clear(ctx context.Context, sessionID string) (*Cart, error) {
	return s.mutate(ctx, sessionID, func(c *Cart) { c.Clear() })
}

// Customer returns the last-used checkout data for prefilling, or nil.
func (s *Service) Customer(ctx context.Context, sessionID string) (*domain.CustomerData, error) {
	return s.store.LoadCustomer(ctx, sessionID)
}

// OrderMessage builds the order handoff message for the session,
// folding in the stored customer data when available.
func (s *Service) OrderMessage(ctx context.Context, sessionID string) (string, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	customer, err := s.store.LoadCustomer(ctx, sessionID)
	if err != nil {
		s.logger.Warn("customer load failed, omitting from message", "error", err)
		customer = nil
	}
	return c.BuildOrderMessage(customer), nil
}

// Checkout validates the customer data, persists it for future
// prefills, and produces the dispatch link. Validation failures are
// returned as per-field messages and block the dispatch.
func (s *Service) Checkout(
	ctx context.Context,
	sessionID string,
	customer domain.CustomerData,
) (*CheckoutResult, map[string]string, error) {
	if fieldErrs := ValidateCustomer(customer); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	if err := s.store.SaveCustomer(ctx, sessionID, customer); err != nil {
		// Prefill is a convenience; the order still goes out.
		s.logger.Warn("customer save failed", "error", err)
	}

	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	message := c.BuildOrderMessage(&customer)
	return &CheckoutResult{
		Message:     message,
		WhatsAppURL: WhatsAppLink(s.whatsappNumber, message),
	}, nil, nil
}

func (s *Service) mutate(ctx context.Context, sessionID string, fn func(*Cart)) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fn(c)
	if err := s.store.SaveCart(ctx, sessionID, c.Items); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return c, nil
}
