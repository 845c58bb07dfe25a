package grid

import (
	"errors"
	"math"
)

var (
	// ErrInvalidSpacing spacing out of range (0, 1)
	ErrInvalidSpacing = errors.New("grid spacing out of range")
	// ErrInvalidFloor gear floor is negative or not a number
	ErrInvalidFloor = errors.New("gear floor out of range")
	// ErrInvalidStart start index is negative
	ErrInvalidStart = errors.New("start index out of range")
)

// Ladder define the rows of one instrument for one grid spacing
type Ladder struct {
	Spacing float64 `json:"spacing"`
	Start   int     `json:"start"`
	Floor   float64 `json:"floor"`
	Rows    []Row   `json:"rows"`
}

// ValidSpacing check spacing is in (0, 1)
func ValidSpacing(spacing float64) bool {
	return spacing > 0 && spacing < 1
}

// BuildLadder build rows from start index downwards until the gear drops below floor.
//
// Two checks stop the walk: a running gear starting at 1.0 and decremented by
// spacing per accepted row, and the gear of each computed row. Both must hold
// for a row to be emitted. The checks run in single precision so a gear
// landing on the floor is kept or dropped the same way the published ladders
// are; row values stay in double precision. A row whose gear reached zero is
// never emitted.
func BuildLadder(instrument Instrument, spacing float64, start int, floor float64) ([]Row, error) {
	if !ValidSpacing(spacing) {
		return nil, ErrInvalidSpacing
	}

	if floor < 0 || math.IsNaN(floor) {
		return nil, ErrInvalidFloor
	}

	if start < 0 {
		return nil, ErrInvalidStart
	}

	step := float32(spacing)
	bound := float32(floor)

	rows := make([]Row, 0, int(1/spacing)+1)
	index := start
	for gear := float32(1); gear > bound; gear = float32(gear - step) {
		boundary := BoundaryGear(index, spacing)
		if boundary < bound || boundary <= 0 {
			break
		}

		row := instrument.NthRow(index, spacing)
		if row.Gear <= 0 {
			break
		}

		rows = append(rows, row)
		index++
	}

	return rows, nil
}

// BoundaryGear gear of the nth row in single precision, compared against the floor
func BoundaryGear(index int, spacing float64) float32 {
	offset := float32(float32(index) * float32(spacing))
	return float32(1 - offset)
}

// Ladder build ladder for spacing
func (i Instrument) Ladder(spacing float64, start int, floor float64) (Ladder, error) {
	rows, err := BuildLadder(i, spacing, start, floor)
	if err != nil {
		return Ladder{}, err
	}

	return Ladder{
		Spacing: spacing,
		Start:   start,
		Floor:   floor,
		Rows:    rows,
	}, nil
}
