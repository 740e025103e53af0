package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/brioches/storefront/pkg/domain"
)

// MemoryStore is the in-process session store used when no Redis URL is
// configured and in tests. Carts survive only as long as the process.
type MemoryStore struct {
	mu        sync.RWMutex
	carts     map[string][]byte
	customers map[string][]byte
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts:     make(map[string][]byte),
		customers: make(map[string][]byte),
	}
}

func (s *MemoryStore) LoadCart(
	_ context.Context,
	sessionID string,
) ([]domain.CartItem, error) {
	s.mu.RLock()
	data, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	items, err := decodeItems(data)
	if err != nil {
		return nil, nil
	}
	return items, nil
}

func (s *MemoryStore) SaveCart(
	_ context.Context,
	sessionID string,
	items []domain.CartItem,
) error {
	data, err := encodeItems(items)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.carts[sessionID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) LoadCustomer(
	_ context.Context,
	sessionID string,
) (*domain.CustomerData, error) {
	s.mu.RLock()
	data, ok := s.customers[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var customer domain.CustomerData
	if err := json.Unmarshal(data, &customer); err != nil {
		return nil, nil
	}
	return &customer, nil
}

func (s *MemoryStore) SaveCustomer(
	_ context.Context,
	sessionID string,
	customer domain.CustomerData,
) error {
	data, err := json.Marshal(customer)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.customers[sessionID] = data
	s.mu.Unlock()
	return nil
}
