package rates

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brioches/storefront/pkg/config"
)

func testAdapter() *Adapter {
	cfg := &config.Rates{MinPlausible: 100, MaxPlausible: 300}
	a := NewAdapter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	a.now = func() time.Time { return time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC) }
	return a
}

func TestNormalizeRecognizedShapes(t *testing.T) {
	a := testAdapter()

	tests := []struct {
		name     string
		payload  string
		endpoint string
		wantRate float64
	}{
		{
			name:     "dedicated rate and currency",
			payload:  `{"date":"2025-09-15","currency":"USD","rate":"160.4479"}`,
			endpoint: "https://bcv-api.rafnixg.dev/rates/",
			wantRate: 160.4479,
		},
		{
			name:     "price with day-first date",
			payload:  `{"price":"160,4479","date":"15-09-2025"}`,
			endpoint: "https://pydolarve.org/api/v1/dollar",
			wantRate: 160.4479,
		},
		{
			name:     "price nested under monitor key",
			payload:  `{"monitors":{"bcv":{"price":160.45,"last_update":"15/09/2025"}}}`,
			endpoint: "https://pydolarve.org/api/v1/dollar?page=bcv",
			wantRate: 160.45,
		},
		{
			name:     "rates map",
			payload:  `{"rates":{"VES":160.45},"time_last_update_utc":"Mon, 15 Sep 2025 00:00:01 +0000"}`,
			endpoint: "https://open.er-api.com/v6/latest/USD",
			wantRate: 160.45,
		},
		{
			name:     "conversion_rates map",
			payload:  `{"conversion_rates":{"VES":155.2}}`,
			endpoint: "https://api.exchangerate-api.com/v4/latest/USD",
			wantRate: 155.2,
		},
		{
			name:     "bare numeric payload",
			payload:  `160.45`,
			endpoint: "https://cdn.jsdelivr.net/gh/fawazahmed0/currency-api@1/latest/currencies/usd/ves.json",
			wantRate: 160.45,
		},
		{
			name:     "nested currency pair",
			payload:  `{"USD":{"VES":160.45}}`,
			endpoint: "https://api.yadio.io/exrates/USD",
			wantRate: 160.45,
		},
		{
			name:     "unknown endpoint falls back to generic shapes",
			payload:  `{"rates":{"VES":160.45},"date":"2025-09-15"}`,
			endpoint: "https://example.com/some/feed",
			wantRate: 160.45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Normalize([]byte(tt.payload), tt.endpoint)
			require.NotNil(t, got)
			assert.InDelta(t, tt.wantRate, got.Rate, 1e-9)
			assert.False(t, got.Date.IsZero())
			assert.Equal(t, tt.endpoint, got.Endpoint)
		})
	}
}

func TestNormalizeRejections(t *testing.T) {
	a := testAdapter()

	tests := []struct {
		name     string
		payload  string
		endpoint string
	}{
		{
			name:     "below plausibility band",
			payload:  `{"rates":{"VES":5.5}}`,
			endpoint: "https://open.er-api.com/v6/latest/USD",
		},
		{
			name:     "above plausibility band",
			payload:  `{"rates":{"VES":4000}}`,
			endpoint: "https://api.fxratesapi.com/latest?base=USD&currencies=VES",
		},
		{
			name:     "banded bare number",
			payload:  `0.35`,
			endpoint: "https://cdn.jsdelivr.net/gh/fawazahmed0/currency-api@1/latest/currencies/usd/ves.json",
		},
		{
			name:     "wrong currency on dedicated endpoint",
			payload:  `{"date":"2025-09-15","currency":"EUR","rate":"170.1"}`,
			endpoint: "https://bcv-api.rafnixg.dev/rates/",
		},
		{
			name:     "missing VES key",
			payload:  `{"rates":{"EUR":0.85}}`,
			endpoint: "https://open.er-api.com/v6/latest/USD",
		},
		{
			name:     "unrecognized shape",
			payload:  `{"hello":"world"}`,
			endpoint: "https://example.com/feed",
		},
		{
			name:     "zero rate",
			payload:  `{"rates":{"VES":0}}`,
			endpoint: "https://open.er-api.com/v6/latest/USD",
		},
		{
			name:     "invalid json",
			payload:  `{"rates":`,
			endpoint: "https://open.er-api.com/v6/latest/USD",
		},
		{
			name:     "empty payload",
			payload:  ``,
			endpoint: "https://open.er-api.com/v6/latest/USD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, a.Normalize([]byte(tt.payload), tt.endpoint))
		})
	}
}

func TestParseDate(t *testing.T) {
	a := testAdapter()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso date", "2025-09-15", "2025-09-15"},
		{"day first dashes", "15-09-2025", "2025-09-15"},
		{"day first slashes", "15/09/2025", "2025-09-15"},
		{"rfc3339", "2025-09-15T08:30:00Z", "2025-09-15"},
		{"rfc1123", "Mon, 15 Sep 2025 00:00:01 +0000", "2025-09-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.parseDate(tt.in)
			assert.Equal(t, tt.want, got.UTC().Format("2006-01-02"))
		})
	}

	t.Run("unparseable defaults to now", func(t *testing.T) {
		got := a.parseDate("whenever")
		assert.Equal(t, a.now(), got)
	})

	t.Run("empty defaults to now", func(t *testing.T) {
		got := a.parseDate("")
		assert.Equal(t, a.now(), got)
	})
}

func TestNormalizeDecimalComma(t *testing.T) {
	a := testAdapter()

	got := a.Normalize([]byte(`{"price":"165,75","date":"15-09-2025"}`), "https://pydolarve.org/api/v1/dollar")
	require.NotNil(t, got)
	assert.InDelta(t, 165.75, got.Rate, 1e-9)
}
