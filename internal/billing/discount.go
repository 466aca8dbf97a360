package billing

import "time"

const (
	// DiscountThreshold is the order total above which the
	// day-of-week discount can apply.
	DiscountThreshold = 2500

	// DiscountRate is the fraction taken off a qualifying total.
	DiscountRate = 0.10
)

// DiscountNote is shown when a total qualifies by amount but not by day.
const DiscountNote = "discount is available only on Sunday and Wednesday"

// Clock supplies the current time so the weekday check stays testable.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Bill is the outcome of the discount policy for one order total.
// Amounts are raw numbers; display rounding is the client's concern.
type Bill struct {
	Total       float64 `json:"total"`
	Weekday     string  `json:"weekday"`
	Discounted  bool    `json:"discounted"`
	Discount    float64 `json:"discount,omitempty"`
	FinalAmount float64 `json:"final_amount"`
	Note        string  `json:"note,omitempty"`
}

func discountDay(day time.Weekday) bool {
	return day == time.Sunday || day == time.Wednesday
}

// Compute applies the day-of-week discount policy: totals above the
// threshold get 10% off on Sunday and Wednesday. Pure function of
// (total, day).
func Compute(total float64, day time.Weekday) Bill {
	bill := Bill{
		Total:       total,
		Weekday:     day.String(),
		FinalAmount: total,
	}

	if total <= DiscountThreshold {
		return bill
	}

	if !discountDay(day) {
		bill.Note = DiscountNote
		return bill
	}

	bill.Discounted = true
	bill.Discount = total * DiscountRate
	bill.FinalAmount = total - bill.Discount
	return bill
}
