// Package cache implements the single-slot rate cache: an in-memory
// entry persisted write-through to Redis so a restart can reuse a
// still-valid rate without a network round trip.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brioches/storefront/pkg/domain"
)

// storedRate is the durable representation of the slot. Timestamp is
// in milliseconds since epoch.
type storedRate struct {
	Rate      *domain.ExchangeRate `json:"rate"`
	Timestamp int64                `json:"timestamp"`
}

// Slot holds the most recently accepted exchange rate. A nil Redis
// client degrades to a memory-only cache.
type Slot struct {
	mu       sync.RWMutex
	rate     *domain.ExchangeRate
	storedAt time.Time

	ttl    time.Duration
	client *redis.Client
	key    string
	logger *slog.Logger

	now func() time.Time
}

// NewSlot creates an empty rate cache slot. client may be nil.
func NewSlot(ttl time.Duration, client *redis.Client, key string, logger *slog.Logger) *Slot {
	return &Slot{
		ttl:    ttl,
		client: client,
		key:    key,
		logger: logger,
		now:    time.Now,
	}
}

// Get returns the cached rate regardless of validity.
func (s *Slot) Get() (*domain.ExchangeRate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.rate == nil {
		return nil, false
	}
	return s.rate, true
}

// Put stores the rate with the current time and persists it.
func (s *Slot) Put(ctx context.Context, rate *domain.ExchangeRate) {
	now := s.now()

	s.mu.Lock()
	s.rate = rate
	s.storedAt = now
	s.mu.Unlock()

	if s.client == nil {
		return
	}
	data, err := json.Marshal(storedRate{Rate: rate, Timestamp: now.UnixMilli()})
	if err != nil {
		s.logger.Warn("rate cache marshal failed", "error", err)
		return
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		s.logger.Warn("rate cache persist failed", "key", s.key, "error", err)
	}
}

// IsValid reports whether the cached rate may still be served. The
// slot is invalid once the TTL elapses or the calendar day changes,
// whichever comes first; a new business day always forces a re-fetch.
func (s *Slot) IsValid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.rate == nil {
		return false
	}
	now := s.now()
	if now.Sub(s.storedAt) >= s.ttl {
		return false
	}
	return sameDay(now, s.storedAt)
}

// Clear wipes the in-memory slot and the durable copy.
func (s *Slot) Clear(ctx context.Context) {
	s.mu.Lock()
	s.rate = nil
	s.storedAt = time.Time{}
	s.mu.Unlock()

	if s.client == nil {
		return
	}
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		s.logger.Warn("rate cache clear failed", "key", s.key, "error", err)
	}
}

// Load rehydrates the slot from Redis. Missing or corrupt data leaves
// the slot empty.
func (s *Slot) Load(ctx context.Context) {
	if s.client == nil {
		return
	}
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("rate cache load failed", "key", s.key, "error", err)
		}
		return
	}

	var stored storedRate
	if err := json.Unmarshal([]byte(val), &stored); err != nil || stored.Rate == nil || stored.Timestamp == 0 {
		s.logger.Warn("rate cache corrupt, starting empty", "key", s.key)
		return
	}

	s.mu.Lock()
	s.rate = stored.Rate
	s.storedAt = time.UnixMilli(stored.Timestamp)
	s.mu.Unlock()
	s.logger.Info("rate cache rehydrated", "rate", stored.Rate.Rate, "stored_at", s.storedAt)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
