package grid

import "math"

// LotSize share lot size, buy and sell numbers are snapped to it
const LotSize = 100

// RoundToHundred snap share count to the nearest lot.
// Values whose rounded integer is already a whole lot are returned untouched.
// Negative values are not share counts; they follow math.Round and are not clamped to zero.
func RoundToHundred(value float64) float64 {
	if int64(math.Round(value))%LotSize == 0 {
		return value
	}

	return math.Round(value/LotSize) * LotSize
}
