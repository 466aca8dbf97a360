package order

import (
	"fmt"
	"strconv"
)

// Line is one order entry. Name and price are snapshots taken when the
// line was added, so later catalog updates never change a placed line.
type Line struct {
	ItemID   int     `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// String renders the line in bill form: "Pizza x 2 = 700".
func (l Line) String() string {
	return fmt.Sprintf("%s x %d = %s", l.Name, l.Quantity, formatAmount(l.Subtotal()))
}

// Summary is the one-pass rendering of an order: formatted lines in
// insertion order plus the grand total.
type Summary struct {
	Lines []string `json:"lines"`
	Total float64  `json:"total"`
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
