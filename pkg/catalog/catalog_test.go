package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsAreWellFormed(t *testing.T) {
	seen := make(map[int]bool)
	for _, p := range Products() {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.Positive(t, p.BaseUSD)
		assert.Contains(t, Categories, p.Category)
	}
}

func TestProductsReturnsCopy(t *testing.T) {
	first := Products()
	first[0].Name = "mutated"

	assert.NotEqual(t, "mutated", Products()[0].Name)
}

func TestByCategory(t *testing.T) {
	assert.Len(t, ByCategory("todos"), len(Products()))
	assert.Len(t, ByCategory(""), len(Products()))

	for _, p := range ByCategory("postres") {
		assert.Equal(t, "postres", p.Category)
	}
	assert.NotEmpty(t, ByCategory("postres"))

	assert.Empty(t, ByCategory("ferreteria"))
}

func TestByID(t *testing.T) {
	p, ok := ByID(3)
	require.True(t, ok)
	assert.Equal(t, "Croissant de Mantequilla", p.Name)

	_, ok = ByID(999)
	assert.False(t, ok)
}
