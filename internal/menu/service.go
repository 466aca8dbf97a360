package menu

import "strings"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Admin: add item (id assigned by the repository)
// --------------------------------------------------
func (s *Service) AddItem(name string, price float64) (Item, error) {
	if err := validateName(name); err != nil {
		return Item{}, err
	}
	if err := validatePrice(price); err != nil {
		return Item{}, err
	}

	item := Item{
		Name:      name,
		Price:     price,
		Available: true,
	}
	if err := s.repo.Add(&item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// --------------------------------------------------
// Admin: partial update (nil field = no change)
// --------------------------------------------------
func (s *Service) UpdateItem(itemID int, upd ItemUpdate) error {
	if err := upd.Validate(); err != nil {
		return err
	}
	return s.repo.Update(itemID, upd)
}

// --------------------------------------------------
// Admin: remove item (no-op for unknown ids)
// --------------------------------------------------
func (s *Service) RemoveItem(itemID int) error {
	return s.repo.Remove(itemID)
}

func (s *Service) GetItem(itemID int) (Item, error) {
	return s.repo.Get(itemID)
}

// ListItems returns the catalog in insertion order.
func (s *Service) ListItems() ([]Item, error) {
	return s.repo.List()
}

// SearchItems filters the catalog by a case-insensitive substring of
// the item name. An empty query returns everything.
func (s *Service) SearchItems(query string) ([]Item, error) {
	items, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return items, nil
	}

	q := strings.ToLower(query)
	matched := make([]Item, 0)
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			matched = append(matched, it)
		}
	}
	return matched, nil
}
