package order

import (
	"errors"
	"sync"
	"time"

	"github.com/sailakshmimedida/Menu-Management/internal/billing"
	"github.com/sailakshmimedida/Menu-Management/internal/menu"
)

// MaxQuantity caps a single add; matches the quantity picker's range.
const MaxQuantity = 10

var (
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 10")
	ErrItemUnavailable = errors.New("item is not available")
)

// Catalog is the slice of the menu an order needs: item lookup only.
type Catalog interface {
	GetItem(itemID int) (menu.Item, error)
}

// Service accumulates order lines for one session. Lines are
// append-only; the same item ordered twice stays two separate lines.
type Service struct {
	catalog Catalog

	mu    sync.Mutex
	lines []Line
}

func NewService(catalog Catalog) *Service {
	return &Service{
		catalog: catalog,
		lines:   make([]Line, 0),
	}
}

// --------------------------------------------------
// Add a line (quantity and availability checked here)
// --------------------------------------------------
func (s *Service) Add(itemID, quantity int) (Line, error) {
	if quantity < 1 || quantity > MaxQuantity {
		return Line{}, ErrInvalidQuantity
	}

	item, err := s.catalog.GetItem(itemID)
	if err != nil {
		return Line{}, err
	}
	if !item.Available {
		return Line{}, ErrItemUnavailable
	}

	line := Line{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: quantity,
	}

	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()

	return line, nil
}

// Lines returns a copy of the accumulated lines in insertion order.
func (s *Service) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// --------------------------------------------------
// Summary: formatted lines + grand total, one pass
// --------------------------------------------------
func (s *Service) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := Summary{Lines: make([]string, 0, len(s.lines))}
	for _, l := range s.lines {
		summary.Lines = append(summary.Lines, l.String())
		summary.Total += l.Subtotal()
	}
	return summary
}

func (s *Service) Total() float64 {
	return s.Summary().Total
}

// Bill applies the day-of-week discount policy to the current total.
func (s *Service) Bill(day time.Weekday) billing.Bill {
	return billing.Compute(s.Total(), day)
}
