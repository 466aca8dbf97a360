package menu

import "errors"

var ErrItemNotFound = errors.New("menu item not found")

// Repository defines all catalog data-access operations.
// Service depends ONLY on this interface.
type Repository interface {

	// Add appends an item to the catalog, preserving insertion order.
	// An item with ID 0 gets the next id from a monotonic counter.
	Add(item *Item) error

	// Remove deletes the item with the given id.
	// Removing an unknown id is a silent no-op, never an error.
	Remove(itemID int) error

	// Update applies the non-nil fields of upd to the item with the
	// given id. Returns ErrItemNotFound for an unknown id.
	Update(itemID int, upd ItemUpdate) error

	// Get returns a copy of the item with the given id,
	// or ErrItemNotFound.
	Get(itemID int) (Item, error)

	// List returns copies of all items in insertion order.
	List() ([]Item, error)
}
