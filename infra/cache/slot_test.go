package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brioches/storefront/pkg/domain"
)

func testSlot(ttl time.Duration) *Slot {
	return NewSlot(ttl, nil, "bcv_rates_cache", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testRate() *domain.ExchangeRate {
	return &domain.ExchangeRate{
		Rate:   160.45,
		Date:   time.Now(),
		Source: domain.RateSourceAPI,
	}
}

func TestSlotEmpty(t *testing.T) {
	s := testSlot(2 * time.Hour)

	_, ok := s.Get()
	assert.False(t, ok)
	assert.False(t, s.IsValid())
}

func TestSlotPutGet(t *testing.T) {
	s := testSlot(2 * time.Hour)
	rate := testRate()

	s.Put(context.Background(), rate)

	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, rate, got)
	assert.True(t, s.IsValid())
}

func TestSlotInvalidAfterTTL(t *testing.T) {
	s := testSlot(2 * time.Hour)
	base := time.Date(2025, 9, 15, 8, 0, 0, 0, time.Local)

	s.now = func() time.Time { return base }
	s.Put(context.Background(), testRate())

	// Same day, TTL elapsed.
	s.now = func() time.Time { return base.Add(2 * time.Hour) }
	assert.False(t, s.IsValid())

	// Just under the TTL is still valid.
	s.now = func() time.Time { return base.Add(2*time.Hour - time.Minute) }
	assert.True(t, s.IsValid())
}

func TestSlotInvalidAfterDayChange(t *testing.T) {
	s := testSlot(2 * time.Hour)
	base := time.Date(2025, 9, 15, 23, 30, 0, 0, time.Local)

	s.now = func() time.Time { return base }
	s.Put(context.Background(), testRate())

	// One hour later the TTL has not elapsed, but it is a new
	// calendar day.
	s.now = func() time.Time { return base.Add(time.Hour) }
	assert.False(t, s.IsValid())
}

func TestSlotClear(t *testing.T) {
	s := testSlot(2 * time.Hour)

	s.Put(context.Background(), testRate())
	s.Clear(context.Background())

	_, ok := s.Get()
	assert.False(t, ok)
	assert.False(t, s.IsValid())
}

func TestSlotLoadWithoutStorage(t *testing.T) {
	s := testSlot(2 * time.Hour)

	// No Redis client configured: Load is a no-op, not a crash.
	s.Load(context.Background())

	_, ok := s.Get()
	assert.False(t, ok)
}
