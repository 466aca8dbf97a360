package menu

import "errors"

// Item is a single catalog record. Ids are assigned by the repository;
// everything else is mutated only through the update operation.
type Item struct {
	ID        int     `json:"item_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// ItemUpdate carries a partial update. Nil fields are left unchanged,
// so "" and 0 are expressible values rather than skip markers.
type ItemUpdate struct {
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
	Available *bool    `json:"available"`
}

var (
	ErrEmptyName    = errors.New("item name must not be empty")
	ErrInvalidPrice = errors.New("item price must be greater than 0")
)

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	return nil
}

func validatePrice(price float64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Validate checks the fields an update would change.
func (u ItemUpdate) Validate() error {
	if u.Name != nil {
		if err := validateName(*u.Name); err != nil {
			return err
		}
	}
	if u.Price != nil {
		if err := validatePrice(*u.Price); err != nil {
			return err
		}
	}
	return nil
}
