package grid

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Config define instrument config, one record of the input file
type Config struct {
	Name         string  `csv:"name" toml:"name" yaml:"name" json:"name"`
	Code         string  `csv:"code" toml:"code" yaml:"code" json:"code"`
	StartPrice   float64 `csv:"start_price" toml:"start_price" yaml:"start_price" json:"start_price"`
	StartNumbers float64 `csv:"start_numbers" toml:"start_numbers" yaml:"start_numbers" json:"start_numbers"`
	SmallGrid    float64 `csv:"small_grid" toml:"small_grid" yaml:"small_grid" json:"small_grid"`
	MediumGrid   float64 `csv:"medium_grid" toml:"medium_grid" yaml:"medium_grid" json:"medium_grid"`
	LargeGrid    float64 `csv:"large_grid" toml:"large_grid" yaml:"large_grid" json:"large_grid"`
}

// Spacings return small, medium and large grid spacing
func (c Config) Spacings() [3]float64 {
	return [3]float64{c.SmallGrid, c.MediumGrid, c.LargeGrid}
}

// Valid validate config
func (c Config) Valid() error {
	if strings.TrimSpace(c.Code) == "" {
		return errors.New("code undefined")
	}

	if !(c.StartPrice > 0) {
		return fmt.Errorf("start_price must be positive: %v", c.StartPrice)
	}

	if !(c.StartNumbers > 0) {
		return fmt.Errorf("start_numbers must be positive: %v", c.StartNumbers)
	}

	names := [3]string{"small_grid", "medium_grid", "large_grid"}
	for index, spacing := range c.Spacings() {
		if !ValidSpacing(spacing) {
			return fmt.Errorf("%s out of range (0, 1): %v", names[index], spacing)
		}
	}

	return nil
}

// Instrument define tradable instrument, the root of all gear computations
type Instrument struct {
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	StartPrice   float64 `json:"start_price"`
	StartNumbers float64 `json:"start_numbers"`
}

// NewInstrument create instrument from config
func NewInstrument(config Config) Instrument {
	return Instrument{
		Name:         config.Name,
		Code:         config.Code,
		StartPrice:   config.StartPrice,
		StartNumbers: config.StartNumbers,
	}
}

// Invested cumulative money invested once gear index is bought
func (i Instrument) Invested(index int, spacing float64) float64 {
	return i.StartPrice * i.StartNumbers * (1 + float64(index)*spacing)
}

// NthRow compute gear row by index.
// The result is not meaningful once 1 - index*spacing drops to zero or below.
func (i Instrument) NthRow(index int, spacing float64) Row {
	gear := 1 - float64(index)*spacing
	buyPrice := i.StartPrice * gear

	return Row{
		Gear:       gear,
		BuyPrice:   buyPrice,
		BuyNumbers: RoundToHundred(i.Invested(index, spacing) / buyPrice),
	}
}

// Fields zap fields for logging
func (i Instrument) Fields() []zap.Field {
	return []zap.Field{
		zap.String("name", i.Name),
		zap.String("code", i.Code),
		zap.Float64("startPrice", i.StartPrice),
		zap.Float64("startNumbers", i.StartNumbers),
	}
}
