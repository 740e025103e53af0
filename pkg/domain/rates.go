// Package domain holds the core types shared across the storefront:
// exchange rates, cart line items and customer data.
package domain

import "time"

// RateSource identifies where an exchange rate came from.
type RateSource string

const (
	// RateSourceAPI marks a rate fetched live from an upstream endpoint.
	RateSourceAPI RateSource = "API"
	// RateSourceCache marks a rate served from the local cache.
	RateSourceCache RateSource = "CACHE"
	// RateSourceFallback marks the hardcoded last-resort rate.
	RateSourceFallback RateSource = "FALLBACK"
)

// ExchangeRate is the canonical USD→VES rate record produced by the
// rate source adapter and served by the rate service.
type ExchangeRate struct {
	// Rate is the amount of VES per 1 USD.
	Rate     float64    `json:"rate"`
	Date     time.Time  `json:"date"`
	Source   RateSource `json:"source"`
	Endpoint string     `json:"endpoint,omitempty"`
}
