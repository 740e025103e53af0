// Package cache defines the rate cache contract used by the exchange
// rate service.
package cache

import (
	"context"

	"github.com/brioches/storefront/pkg/domain"
)

// RateCache is a single-slot cache holding the most recently accepted
// exchange rate. Implementations absorb storage failures internally:
// a broken or corrupt durable copy behaves like an empty cache and is
// never surfaced as an error.
type RateCache interface {
	// Get returns the cached rate regardless of validity; ok is
	// false when the slot is empty.
	Get() (rate *domain.ExchangeRate, ok bool)
	// Put stores the rate together with the current wall-clock time
	// and persists it to durable storage when available.
	Put(ctx context.Context, rate *domain.ExchangeRate)
	// IsValid reports whether the cached rate may still be served:
	// the TTL has not elapsed and the calendar day has not changed
	// since it was stored.
	IsValid() bool
	// Clear wipes the in-memory slot and the durable copy.
	Clear(ctx context.Context)
	// Load rehydrates the slot from durable storage. Used once at
	// startup; missing or corrupt data leaves the slot empty.
	Load(ctx context.Context)
}
