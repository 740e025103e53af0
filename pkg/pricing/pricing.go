// Package pricing is the presentation layer over the exchange rate
// service: it tracks loading/error state and renders display prices.
// It is the only pricing interface the catalog handlers depend on.
package pricing

import (
	"context"
	"sync"
	"time"

	"github.com/brioches/storefront/pkg/domain"
	"github.com/brioches/storefront/pkg/money"
)

// Placeholders shown while a usable rate is not available.
const (
	LoadingPlaceholder = "Obteniendo precio..."
	ErrorPlaceholder   = "Precio no disponible"
	// FallbackNotice is informational: prices still render, but from
	// the hardcoded backup rate.
	FallbackNotice = "Usando tasa de respaldo temporal"
)

// RateProvider is the slice of the rate service the pricing layer
// needs.
type RateProvider interface {
	GetRate(ctx context.Context) *domain.ExchangeRate
	Refresh(ctx context.Context) *domain.ExchangeRate
}

// Snapshot is the observable pricing state.
type Snapshot struct {
	Loading  bool              `json:"loading"`
	Err      string            `json:"error,omitempty"`
	Notice   string            `json:"notice,omitempty"`
	Rate     float64           `json:"rate"`
	Date     time.Time         `json:"date"`
	Source   domain.RateSource `json:"source"`
	Endpoint string            `json:"endpoint,omitempty"`
}

// Service wraps a RateProvider with display state.
type Service struct {
	provider RateProvider

	mu   sync.RWMutex
	snap Snapshot
}

// New creates a pricing service in the loading state. Call Init to
// resolve the first rate.
func New(provider RateProvider) *Service {
	return &Service{
		provider: provider,
		snap:     Snapshot{Loading: true},
	}
}

// Init resolves the initial rate and leaves the service ready to
// render prices. The rate service never fails, so this always
// completes; a fallback-sourced rate just carries the notice.
func (s *Service) Init(ctx context.Context) {
	s.Sync(ctx)
}

// Sync re-resolves the rate from the provider and updates the
// snapshot. Cheap while the upstream cache is warm.
func (s *Service) Sync(ctx context.Context) {
	s.update(s.provider.GetRate(ctx))
}

// Refresh clears the upstream cache and re-resolves the rate.
func (s *Service) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.snap.Loading = true
	s.mu.Unlock()

	s.update(s.provider.Refresh(ctx))
}

// Snapshot returns the current pricing state.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// DisplayPrice renders the converted price for a USD base amount:
// a loading placeholder while no rate is set, an error placeholder
// when the state is errored, otherwise "Bs. n,nn" with the USD base
// appended in parentheses when showBoth is true.
func (s *Service) DisplayPrice(usdBase float64, showBoth bool) string {
	snap := s.Snapshot()

	if snap.Loading || snap.Rate == 0 {
		return LoadingPlaceholder
	}
	if snap.Err != "" {
		return ErrorPlaceholder
	}

	ves := usdBase * snap.Rate
	if showBoth {
		return money.FormatVES(ves) + " (" + money.FormatUSD(usdBase) + ")"
	}
	return money.FormatVES(ves)
}

func (s *Service) update(rate *domain.ExchangeRate) {
	snap := Snapshot{
		Rate:     rate.Rate,
		Date:     rate.Date,
		Source:   rate.Source,
		Endpoint: rate.Endpoint,
	}
	if rate.Source == domain.RateSourceFallback {
		snap.Notice = FallbackNotice
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}
