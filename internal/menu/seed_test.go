package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededCatalog(t *testing.T) {
	repo := NewSeededRepository()

	items, err := repo.List()
	require.NoError(t, err)
	require.Len(t, items, 53)

	first := items[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Pizza", first.Name)
	assert.Equal(t, 350.0, first.Price)

	last := items[52]
	assert.Equal(t, 53, last.ID)
	assert.Equal(t, "Veg Manchurian", last.Name)
	assert.Equal(t, 220.0, last.Price)

	for _, it := range items {
		assert.True(t, it.Available, "seed item %q should start available", it.Name)
	}
}

func TestSeedAssignsSequentialIDs(t *testing.T) {
	repo := NewSeededRepository()

	items, err := repo.List()
	require.NoError(t, err)

	for i, it := range items {
		assert.Equal(t, i+1, it.ID)
	}
}
