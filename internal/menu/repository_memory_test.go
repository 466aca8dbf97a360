package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addNamed(t *testing.T, repo *InMemoryRepository, name string, price float64) Item {
	t.Helper()

	item := Item{Name: name, Price: price, Available: true}
	require.NoError(t, repo.Add(&item))
	return item
}

func TestListPreservesInsertionOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	addNamed(t, repo, "Pizza", 350)
	addNamed(t, repo, "Burger", 150)
	addNamed(t, repo, "Tea", 40)

	items, err := repo.List()
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Pizza", items[0].Name)
	assert.Equal(t, "Burger", items[1].Name)
	assert.Equal(t, "Tea", items[2].Name)
}

func TestGetAfterAddAndRemove(t *testing.T) {
	repo := NewInMemoryRepository()
	item := addNamed(t, repo, "Dosa", 100)

	got, err := repo.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, got)

	require.NoError(t, repo.Remove(item.ID))

	_, err = repo.Get(item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	repo := NewInMemoryRepository()
	addNamed(t, repo, "Idli", 80)

	require.NoError(t, repo.Remove(999))

	items, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

// The original derived new ids from the collection size, so removing an
// item let the next add collide with a live id. The repository now keeps
// a counter independent of the collection size.
func TestAddAfterRemoveDoesNotReuseID(t *testing.T) {
	repo := NewInMemoryRepository()
	addNamed(t, repo, "Pizza", 350)
	second := addNamed(t, repo, "Burger", 150)
	third := addNamed(t, repo, "Tea", 40)

	require.NoError(t, repo.Remove(second.ID))

	fourth := addNamed(t, repo, "Juice", 100)
	assert.Equal(t, 4, fourth.ID)
	assert.NotEqual(t, third.ID, fourth.ID)
}

func TestAddWithExplicitIDAdvancesCounter(t *testing.T) {
	repo := NewInMemoryRepository()

	item := Item{ID: 7, Name: "Thali", Price: 300, Available: true}
	require.NoError(t, repo.Add(&item))

	next := addNamed(t, repo, "Vada", 70)
	assert.Equal(t, 8, next.ID)
}

func TestUpdateAppliesOnlyNonNilFields(t *testing.T) {
	repo := NewInMemoryRepository()
	item := addNamed(t, repo, "Samosa", 50)

	price := 60.0
	require.NoError(t, repo.Update(item.ID, ItemUpdate{Price: &price}))

	got, err := repo.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Samosa", got.Name)
	assert.Equal(t, 60.0, got.Price)
	assert.True(t, got.Available)
}

func TestUpdateUnknownID(t *testing.T) {
	repo := NewInMemoryRepository()

	name := "Pakora"
	err := repo.Update(42, ItemUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrItemNotFound)
}
