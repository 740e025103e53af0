// Package config defines the application configuration, loaded from the
// environment (optionally seeded from a .env file).
package config

import (
	"time"
)

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[storefront]"`
}

type Redis struct {
	// URL is empty when the service runs without durable storage;
	// caches and carts then live in memory only.
	URL          string        `envconfig:"URL" default:"redis://localhost:6379/0"`
	KeyPrefix    string        `envconfig:"KEY_PREFIX" default:""`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Rates configures the USD→VES exchange rate subsystem.
type Rates struct {
	// Endpoints are tried strictly in order until one yields a
	// plausible rate.
	Endpoints []string `envconfig:"ENDPOINTS" default:"https://open.er-api.com/v6/latest/USD,https://api.exchangerate-api.com/v4/latest/USD,https://api.fxratesapi.com/latest?base=USD&currencies=VES"`
	// CacheTTL bounds how long a fetched rate is reused. A calendar
	// day change invalidates the cache regardless of the TTL.
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"2h"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
	// FallbackRate is the last-resort rate used when every endpoint
	// fails. It never expires; the source tag marks it as degraded.
	FallbackRate float64 `envconfig:"FALLBACK_RATE" default:"160.45"`
	// MinPlausible/MaxPlausible bound rates accepted from generic
	// multi-currency endpoints; values outside are treated as wrong
	// currency pairs or garbage and rejected.
	MinPlausible float64 `envconfig:"MIN_PLAUSIBLE" default:"100"`
	MaxPlausible float64 `envconfig:"MAX_PLAUSIBLE" default:"300"`
	CacheKey     string  `envconfig:"CACHE_KEY" default:"bcv_rates_cache"`
}

// Cart configures durable cart/customer storage keys.
type Cart struct {
	KeyPrefix         string `envconfig:"KEY_PREFIX" default:"brioches-cart:"`
	CustomerKeyPrefix string `envconfig:"CUSTOMER_KEY_PREFIX" default:"brioches-customer-data:"`
}

// WhatsApp configures the outbound order handoff link.
type WhatsApp struct {
	Number string `envconfig:"NUMBER" default:"584129586725"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	Redis     *Redis     `envconfig:"REDIS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Rates     *Rates     `envconfig:"RATES"`
	Cart      *Cart      `envconfig:"CART"`
	WhatsApp  *WhatsApp  `envconfig:"WHATSAPP"`
}
