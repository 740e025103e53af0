package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brioches/storefront/pkg/cart"
	"github.com/brioches/storefront/pkg/domain"
)

var (
	_ cart.Store = (*RedisStore)(nil)
	_ cart.Store = (*MemoryStore)(nil)
)

func sampleItems() []domain.CartItem {
	return []domain.CartItem{
		{
			ProductID: 1,
			Name:      "Croissant de Mantequilla",
			Price:     "Bs. 40,11 ($0.25)",
			PriceVES:  40.11,
			PriceUSD:  0.25,
			Image:     "🥐",
			Quantity:  2,
			Category:  "panaderia",
		},
		{
			ProductID: 4,
			Name:      "Torta de Chocolate",
			Price:     "Bs. 1.283,60 ($8.00)",
			PriceVES:  1283.60,
			PriceUSD:  8.00,
			Image:     "🎂",
			Quantity:  1,
			Category:  "tortas",
		},
	}
}

func TestItemsRoundTrip(t *testing.T) {
	data, err := encodeItems(sampleItems())
	require.NoError(t, err)

	got, err := decodeItems(data)
	require.NoError(t, err)

	// Order and every field survive the snapshot.
	assert.Equal(t, sampleItems(), got)
}

func TestEncodeNilItemsYieldsEmptyArray(t *testing.T) {
	data, err := encodeItems(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecodeRejectsCorruptRecord(t *testing.T) {
	_, err := decodeItems([]byte(`{"not":"a cart"`))
	assert.Error(t, err)
}

func TestMemoryStoreCartRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Unknown session reads as empty, not as an error.
	items, err := store.LoadCart(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, store.SaveCart(ctx, "s1", sampleItems()))

	items, err = store.LoadCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sampleItems(), items)

	// Saves are whole-value snapshots.
	require.NoError(t, store.SaveCart(ctx, "s1", nil))
	items, err = store.LoadCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryStoreCustomerRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	customer, err := store.LoadCustomer(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, customer)

	want := domain.CustomerData{
		Name:    "María Pérez",
		Phone:   "0414-1234567",
		Address: "Av. Bolívar, Caracas",
	}
	require.NoError(t, store.SaveCustomer(ctx, "s1", want))

	customer, err = store.LoadCustomer(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, want, *customer)
}

func TestMemoryStoreSessionsIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveCart(ctx, "s1", sampleItems()))

	items, err := store.LoadCart(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, items)
}
