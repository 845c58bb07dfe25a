package sources

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/linshaoyong/griddle/constants"
	"github.com/linshaoyong/griddle/grid"
	"go.uber.org/zap"
)

// Source define instrument config source
type Source interface {
	// Instruments load instrument configs
	Instruments() ([]grid.Config, error)
}

// Parse parse source argument, the file extension picks the source.
// Excel files accept a sheet name after '#', eg: griddle.xlsx#ETF
func Parse(arg string) (Source, error) {
	path, sheet, _ := strings.Cut(arg, "#")

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSV(path), nil
	case ".xlsx":
		return NewExcel(path, sheet), nil
	case ".toml":
		return NewTOML(path), nil
	default:
		zap.L().Error("source type invalid", zap.String("arg", arg))
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownSource, arg)
	}
}

// Inline instruments defined in config file
type Inline []grid.Config

// Instruments load instrument configs
func (s Inline) Instruments() ([]grid.Config, error) {
	for index, config := range s {
		err := config.Valid()
		if err != nil {
			zap.L().Error("invalid inline instrument", zap.Error(err), zap.Int("index", index))
			return nil, fmt.Errorf("instrument %d: %w", index, err)
		}
	}

	return s, nil
}
