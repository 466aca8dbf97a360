package menu

import "sync"

// InMemoryRepository keeps the catalog as an insertion-ordered slice.
// nextID is monotonic and independent of the slice length, so ids are
// never reused after a removal.
type InMemoryRepository struct {
	mu     sync.RWMutex
	items  []Item
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items:  make([]Item, 0),
		nextID: 1,
	}
}

func (r *InMemoryRepository) Add(item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Assign an id if not already set
	if item.ID == 0 {
		item.ID = r.nextID
	}
	if item.ID >= r.nextID {
		r.nextID = item.ID + 1
	}

	r.items = append(r.items, *item)
	return nil
}

func (r *InMemoryRepository) Remove(itemID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	for _, it := range r.items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}

func (r *InMemoryRepository) Update(itemID int, upd ItemUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID != itemID {
			continue
		}
		if upd.Name != nil {
			r.items[i].Name = *upd.Name
		}
		if upd.Price != nil {
			r.items[i].Price = *upd.Price
		}
		if upd.Available != nil {
			r.items[i].Available = *upd.Available
		}
		return nil
	}
	return ErrItemNotFound
}

func (r *InMemoryRepository) Get(itemID int) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == itemID {
			return it, nil
		}
	}
	return Item{}, ErrItemNotFound
}

func (r *InMemoryRepository) List() ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}
