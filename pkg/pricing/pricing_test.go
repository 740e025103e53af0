package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brioches/storefront/pkg/domain"
)

type stubProvider struct {
	rate     *domain.ExchangeRate
	refreshn int
}

func (s *stubProvider) GetRate(context.Context) *domain.ExchangeRate { return s.rate }
func (s *stubProvider) Refresh(context.Context) *domain.ExchangeRate {
	s.refreshn++
	return s.rate
}

func apiRate(v float64) *domain.ExchangeRate {
	return &domain.ExchangeRate{
		Rate:     v,
		Date:     time.Now(),
		Source:   domain.RateSourceAPI,
		Endpoint: "https://open.er-api.com/v6/latest/USD",
	}
}

func TestDisplayPriceBeforeInit(t *testing.T) {
	svc := New(&stubProvider{rate: apiRate(160.45)})

	assert.Equal(t, LoadingPlaceholder, svc.DisplayPrice(0.25, true))
	assert.True(t, svc.Snapshot().Loading)
}

func TestDisplayPriceAfterInit(t *testing.T) {
	svc := New(&stubProvider{rate: apiRate(160.45)})
	svc.Init(context.Background())

	assert.Equal(t, "Bs. 40,11 ($0.25)", svc.DisplayPrice(0.25, true))
	assert.Equal(t, "Bs. 40,11", svc.DisplayPrice(0.25, false))

	snap := svc.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
	assert.Equal(t, domain.RateSourceAPI, snap.Source)
	assert.InDelta(t, 160.45, snap.Rate, 1e-9)
}

func TestFallbackCarriesNoticeButStillPrices(t *testing.T) {
	svc := New(&stubProvider{rate: &domain.ExchangeRate{
		Rate:     160.45,
		Date:     time.Now(),
		Source:   domain.RateSourceFallback,
		Endpoint: "HARDCODED_FALLBACK",
	}})
	svc.Init(context.Background())

	snap := svc.Snapshot()
	assert.Equal(t, FallbackNotice, snap.Notice)
	assert.Empty(t, snap.Err)

	// Degraded mode never blocks pricing.
	assert.Equal(t, "Bs. 40,11 ($0.25)", svc.DisplayPrice(0.25, true))
}

func TestErroredStateShowsPlaceholder(t *testing.T) {
	svc := New(&stubProvider{rate: apiRate(160.45)})
	svc.Init(context.Background())

	svc.mu.Lock()
	svc.snap.Err = "boom"
	svc.mu.Unlock()

	assert.Equal(t, ErrorPlaceholder, svc.DisplayPrice(0.25, true))
}

func TestRefreshDelegates(t *testing.T) {
	p := &stubProvider{rate: apiRate(162.3)}
	svc := New(p)
	svc.Init(context.Background())

	svc.Refresh(context.Background())

	assert.Equal(t, 1, p.refreshn)
	assert.False(t, svc.Snapshot().Loading)
	assert.InDelta(t, 162.3, svc.Snapshot().Rate, 1e-9)
}
