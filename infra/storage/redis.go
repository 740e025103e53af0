// Package storage persists carts and customer checkout data keyed by
// session. The Redis store mirrors how the storefront used to keep this
// state client-side: whole-value JSON snapshots, rewritten on every
// change, tolerant of missing or mangled records.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/brioches/storefront/pkg/domain"
)

// RedisStore keeps one JSON document per session under a prefixed key.
type RedisStore struct {
	client         *redis.Client
	cartPrefix     string
	customerPrefix string
	logger         *slog.Logger
}

// NewRedisStore creates a session store backed by the given client.
func NewRedisStore(
	client *redis.Client,
	cartPrefix, customerPrefix string,
	logger *slog.Logger,
) *RedisStore {
	return &RedisStore{
		client:         client,
		cartPrefix:     cartPrefix,
		customerPrefix: customerPrefix,
		logger:         logger,
	}
}

// LoadCart returns the session's cart lines. A missing key or a record
// that no longer decodes yields an empty cart rather than an error, so
// a wiped or corrupted entry never blocks the storefront.
func (s *RedisStore) LoadCart(
	ctx context.Context,
	sessionID string,
) ([]domain.CartItem, error) {
	val, err := s.client.Get(ctx, s.cartPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	items, err := decodeItems([]byte(val))
	if err != nil {
		s.logger.Warn("discarding corrupt cart record",
			"session", sessionID, "error", err)
		return nil, nil
	}
	return items, nil
}

// SaveCart overwrites the session's cart snapshot.
func (s *RedisStore) SaveCart(
	ctx context.Context,
	sessionID string,
	items []domain.CartItem,
) error {
	data, err := encodeItems(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.cartPrefix+sessionID, data, 0).Err()
}

// LoadCustomer returns the session's saved checkout contact data, or
// nil when none was stored. Corrupt records are dropped like carts.
func (s *RedisStore) LoadCustomer(
	ctx context.Context,
	sessionID string,
) (*domain.CustomerData, error) {
	val, err := s.client.Get(ctx, s.customerPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var customer domain.CustomerData
	if err := json.Unmarshal([]byte(val), &customer); err != nil {
		s.logger.Warn("discarding corrupt customer record",
			"session", sessionID, "error", err)
		return nil, nil
	}
	return &customer, nil
}

// SaveCustomer stores the contact data used on the last checkout so the
// next one can prefill the form.
func (s *RedisStore) SaveCustomer(
	ctx context.Context,
	sessionID string,
	customer domain.CustomerData,
) error {
	data, err := json.Marshal(customer)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.customerPrefix+sessionID, data, 0).Err()
}

func encodeItems(items []domain.CartItem) ([]byte, error) {
	if items == nil {
		items = []domain.CartItem{}
	}
	return json.Marshal(items)
}

func decodeItems(data []byte) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
