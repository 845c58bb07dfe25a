package report

import (
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// fixed format value with scale decimal places, rounded from the exact binary value.
// 0.925 is stored as 0.92500000000000004 and prints as 0.93.
func fixed(value float64, scale int) string {
	return strconv.FormatFloat(value, 'f', scale, 64)
}

// whole format value truncated to an integer
func whole(value float64) string {
	value = math.Trunc(value)

	d, err := decimal.NewFromFloat64(value)
	if err != nil {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}

	return d.Rescale(0).String()
}
