package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		total      float64
		day        time.Weekday
		discounted bool
		discount   float64
		final      float64
		note       string
	}{
		{"qualifying total on Sunday", 3000, time.Sunday, true, 300, 2700, ""},
		{"qualifying total on Wednesday", 3000, time.Wednesday, true, 300, 2700, ""},
		{"qualifying total on Monday", 3000, time.Monday, false, 0, 3000, DiscountNote},
		{"qualifying total on Saturday", 2501, time.Saturday, false, 0, 2501, DiscountNote},
		{"small total on Sunday", 2000, time.Sunday, false, 0, 2000, ""},
		{"threshold exactly on Sunday", 2500, time.Sunday, false, 0, 2500, ""},
		{"empty order", 0, time.Wednesday, false, 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := Compute(tt.total, tt.day)

			assert.Equal(t, tt.total, bill.Total)
			assert.Equal(t, tt.day.String(), bill.Weekday)
			assert.Equal(t, tt.discounted, bill.Discounted)
			assert.InDelta(t, tt.discount, bill.Discount, 1e-9)
			assert.InDelta(t, tt.final, bill.FinalAmount, 1e-9)
			assert.Equal(t, tt.note, bill.Note)
		})
	}
}

func TestComputeIsPure(t *testing.T) {
	first := Compute(3000, time.Sunday)
	second := Compute(3000, time.Sunday)
	require.Equal(t, first, second)
}

func TestSystemClockReadsWallClock(t *testing.T) {
	now := SystemClock{}.Now()
	require.WithinDuration(t, time.Now(), now, time.Minute)
}
