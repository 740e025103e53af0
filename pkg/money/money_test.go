package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVES(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"small amount", 40.11, "Bs. 40,11"},
		{"thousands separator", 1234.56, "Bs. 1.234,56"},
		{"millions", 1234567.8, "Bs. 1.234.567,80"},
		{"zero", 0, "Bs. 0,00"},
		{"rounds to two decimals", 56.159, "Bs. 56,16"},
		{"negative", -12.5, "Bs. -12,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatVES(tt.amount))
		})
	}
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0.25", FormatUSD(0.25))
	assert.Equal(t, "$8.00", FormatUSD(8))
	assert.Equal(t, "-$1.50", FormatUSD(-1.5))
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in       string
		expected float64
	}{
		{"160,45", 160.45},
		{"1.234,56", 1234.56},
		{"8.00", 8.0},
		{"  56,16 ", 56.16},
		{"0.35", 0.35},
		{"garbage", 0},
		{"", 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, ParseDecimal(tt.in), 1e-9, "input %q", tt.in)
	}
}
