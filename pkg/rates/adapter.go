// Package rates implements the USD→VES exchange rate subsystem: the
// source adapter that normalizes heterogeneous upstream payloads and
// the service that orchestrates cache, sources and fallback.
package rates

import (
	"log/slog"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/brioches/storefront/pkg/config"
	"github.com/brioches/storefront/pkg/domain"
	"github.com/brioches/storefront/pkg/money"
)

// Adapter normalizes raw upstream payloads into ExchangeRate records.
// Unrecognized shapes and implausible values yield nil, never an
// error: the caller advances to the next source.
type Adapter struct {
	minRate float64
	maxRate float64
	logger  *slog.Logger

	now func() time.Time
}

// NewAdapter creates an adapter with the configured plausibility band.
func NewAdapter(cfg *config.Rates, logger *slog.Logger) *Adapter {
	return &Adapter{
		minRate: cfg.MinPlausible,
		maxRate: cfg.MaxPlausible,
		logger:  logger,
		now:     time.Now,
	}
}

// Normalize extracts a VES-per-USD rate from the payload, dispatching
// on the endpoint that produced it. Dedicated BCV endpoints are
// trusted as-is; generic multi-currency endpoints pass through the
// plausibility band so a wrong currency pair or garbage value is
// rejected rather than displayed.
func (a *Adapter) Normalize(payload []byte, endpoint string) *domain.ExchangeRate {
	if !gjson.ValidBytes(payload) {
		return nil
	}
	data := gjson.ParseBytes(payload)

	var rate float64
	var date string
	banded := true

	switch {
	case strings.Contains(endpoint, "rafnixg"):
		// { "date": "2025-09-15", "currency": "USD", "rate": "160.4479" }
		if data.Get("currency").String() != "USD" {
			return nil
		}
		rate = numeric(data.Get("rate"))
		date = data.Get("date").String()
		banded = false

	case strings.Contains(endpoint, "pydolarve"):
		// { "price": "160,4479", "date": "15-09-2025" } or nested
		// under monitors.bcv.
		rate = numeric(data.Get("price"))
		date = data.Get("date").String()
		if rate == 0 {
			rate = numeric(data.Get("monitors.bcv.price"))
			date = data.Get("monitors.bcv.last_update").String()
		}
		banded = false

	case strings.Contains(endpoint, "yadio.io"):
		// { "USD": { "VES": 160.4479 } }
		rate = numeric(data.Get("USD.VES"))
		banded = false

	case strings.Contains(endpoint, "exchangerate-api.com"),
		strings.Contains(endpoint, "open.er-api.com"):
		// { "rates": { "VES": n } } or { "conversion_rates": { "VES": n } }
		rate = numeric(data.Get("rates.VES"))
		if rate == 0 {
			rate = numeric(data.Get("conversion_rates.VES"))
		}
		date = firstString(data, "time_last_update_utc", "date")

	case strings.Contains(endpoint, "exchangerate.host"),
		strings.Contains(endpoint, "fxratesapi"):
		// { "rates": { "VES": n }, "date": "2025-09-15" }
		rate = numeric(data.Get("rates.VES"))
		date = data.Get("date").String()

	case strings.Contains(endpoint, "fawazahmed0"),
		strings.Contains(endpoint, "jsdelivr"):
		// Bare numeric payload, or { "ves": n }.
		if data.Type == gjson.Number {
			rate = data.Float()
		} else {
			rate = numeric(data.Get("ves"))
			if rate == 0 {
				rate = numeric(data.Get("VES"))
			}
		}
		date = data.Get("date").String()

	default:
		// Unknown endpoint: try the recognized shapes in order.
		rate, date = a.genericExtract(data)
	}

	if rate <= 0 {
		return nil
	}
	if banded && (rate < a.minRate || rate > a.maxRate) {
		a.logger.Warn("rate outside plausibility band, rejecting",
			"endpoint", endpoint, "rate", rate, "min", a.minRate, "max", a.maxRate)
		return nil
	}

	return &domain.ExchangeRate{
		Rate:     rate,
		Date:     a.parseDate(date),
		Source:   domain.RateSourceAPI,
		Endpoint: endpoint,
	}
}

// genericExtract walks the known payload shapes until one yields a
// number. Rates found this way always pass through the band.
func (a *Adapter) genericExtract(data gjson.Result) (float64, string) {
	if data.Type == gjson.Number {
		return data.Float(), ""
	}
	paths := []string{"rates.VES", "conversion_rates.VES", "USD.VES", "ves", "VES", "price"}
	for _, p := range paths {
		if v := numeric(data.Get(p)); v != 0 {
			return v, firstString(data, "time_last_update_utc", "date")
		}
	}
	// { "rate": n, "currency": "USD" } only counts with the pair
	// confirmed, otherwise any API's unrelated "rate" field would
	// slip through.
	if data.Get("currency").String() == "USD" {
		return numeric(data.Get("rate")), data.Get("date").String()
	}
	return 0, ""
}

// numeric coerces a JSON value that may be a number or a string with
// a decimal comma ("160,4479").
func numeric(res gjson.Result) float64 {
	switch res.Type {
	case gjson.Number:
		return res.Float()
	case gjson.String:
		return money.ParseDecimal(res.String())
	default:
		return 0
	}
}

func firstString(data gjson.Result, paths ...string) string {
	for _, p := range paths {
		if s := data.Get(p).String(); s != "" {
			return s
		}
	}
	return ""
}

// parseDate normalizes the date representations seen across the
// upstream APIs into a timestamp, defaulting to now when absent or
// unparseable. DD-MM-YYYY and DD/MM/YYYY are common on Venezuelan
// APIs; ISO and RFC1123 come from the generic ones.
func (a *Adapter) parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return a.now()
	}

	if len(s) == 10 {
		sep := ""
		switch {
		case strings.Contains(s, "/"):
			sep = "/"
		case strings.Contains(s, "-"):
			sep = "-"
		}
		if sep != "" {
			parts := strings.Split(s, sep)
			if len(parts) == 3 && len(parts[0]) == 4 {
				// Year first: ISO.
				if t, err := time.Parse("2006"+sep+"01"+sep+"02", s); err == nil {
					return t.Add(12 * time.Hour)
				}
			} else if len(parts) == 3 {
				// Day first.
				if t, err := time.Parse("02"+sep+"01"+sep+"2006", s); err == nil {
					return t.Add(12 * time.Hour)
				}
			}
		}
	}

	for _, layout := range []string{
		time.RFC3339,
		time.RFC1123Z,
		time.RFC1123,
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return a.now()
}
