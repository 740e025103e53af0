package rates

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/brioches/storefront/pkg/cache"
	"github.com/brioches/storefront/pkg/config"
	"github.com/brioches/storefront/pkg/domain"
)

// FallbackEndpoint tags the hardcoded last-resort rate so the UI can
// surface the degraded mode.
const FallbackEndpoint = "HARDCODED_FALLBACK"

const maxPayloadBytes = 1 << 20

// Service resolves the current USD→VES rate: cache first, then the
// configured endpoints in strict priority order, and finally the
// hardcoded fallback. GetRate never fails; the worst case is a
// fallback-tagged rate.
type Service struct {
	endpoints []string
	fallback  float64
	ttl       time.Duration

	adapter *Adapter
	cache   cache.RateCache
	client  *http.Client
	logger  *slog.Logger

	sfg singleflight.Group

	mu           sync.Mutex
	lastFetchDay string
	stop         context.CancelFunc

	now func() time.Time
}

// New creates the exchange rate service.
func New(cfg *config.Rates, c cache.RateCache, logger *slog.Logger) *Service {
	return &Service{
		endpoints: cfg.Endpoints,
		fallback:  cfg.FallbackRate,
		ttl:       cfg.CacheTTL,
		adapter:   NewAdapter(cfg, logger),
		cache:     c,
		client:    &http.Client{Timeout: cfg.HTTPTimeout},
		logger:    logger,
		now:       time.Now,
	}
}

// GetRate returns the current rate. A valid cached rate is served
// tagged CACHE; otherwise the sources are tried in order and the
// first accepted rate is cached and returned. Concurrent callers
// share a single in-flight fetch.
func (s *Service) GetRate(ctx context.Context) *domain.ExchangeRate {
	if s.cache.IsValid() {
		if cached, ok := s.cache.Get(); ok {
			out := *cached
			out.Source = domain.RateSourceCache
			return &out
		}
	}

	v, _, _ := s.sfg.Do("usd:ves", func() (any, error) {
		return s.fetchChain(ctx), nil
	})
	return v.(*domain.ExchangeRate)
}

// Refresh clears the cache and starts a fresh sequential fetch. It is
// the explicit user-triggered variant of GetRate.
func (s *Service) Refresh(ctx context.Context) *domain.ExchangeRate {
	s.cache.Clear(ctx)
	return s.fetchChain(ctx)
}

// Wake busts the cache and re-fetches if the calendar day has rolled
// over since the last fetch, so a session left idle overnight sees
// the new day's rate without a manual refresh.
func (s *Service) Wake(ctx context.Context) {
	today := s.now().Format("2006-01-02")

	s.mu.Lock()
	stale := s.lastFetchDay != "" && s.lastFetchDay != today
	s.mu.Unlock()

	if stale {
		s.logger.Info("day rolled over, refreshing rate", "day", today)
		s.Refresh(ctx)
	}
}

// ConvertUSD converts an amount in USD to VES at the current rate,
// rounded to 2 decimal places.
func (s *Service) ConvertUSD(ctx context.Context, usd float64) float64 {
	rate := s.GetRate(ctx)
	return math.Round(usd*rate.Rate*100) / 100
}

// Start launches the periodic background refresh. Stop with Stop.
func (s *Service) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.stop = cancel
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(s.ttl)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.fetchChain(ctx)
			}
		}
	}()
}

// Stop cancels the background refresh.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}

// fetchChain walks the endpoints in order and returns the first
// accepted rate, caching it on the way out. When every source fails
// it returns the fallback rate, which is deliberately not cached so
// the next call retries the live sources.
func (s *Service) fetchChain(ctx context.Context) *domain.ExchangeRate {
	s.mu.Lock()
	s.lastFetchDay = s.now().Format("2006-01-02")
	s.mu.Unlock()

	for _, endpoint := range s.endpoints {
		rate, err := s.fetchEndpoint(ctx, endpoint)
		if err != nil {
			s.logger.Warn("rate source failed", "endpoint", endpoint, "error", err)
			continue
		}
		if rate == nil {
			s.logger.Warn("rate source rejected by adapter", "endpoint", endpoint)
			continue
		}
		s.cache.Put(ctx, rate)
		s.logger.Info("rate fetched", "endpoint", endpoint, "rate", rate.Rate)
		return rate
	}

	s.logger.Warn("all rate sources failed, using fallback", "rate", s.fallback)
	return &domain.ExchangeRate{
		Rate:     s.fallback,
		Date:     s.now(),
		Source:   domain.RateSourceFallback,
		Endpoint: FallbackEndpoint,
	}
}

func (s *Service) fetchEndpoint(ctx context.Context, endpoint string) (*domain.ExchangeRate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return s.adapter.Normalize(payload, endpoint), nil
}
