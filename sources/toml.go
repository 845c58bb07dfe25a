package sources

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/linshaoyong/griddle/constants"
	"github.com/linshaoyong/griddle/grid"
	"go.uber.org/zap"
)

// TOML toml file source with [[instruments]] tables
type TOML struct {
	path string
}

// NewTOML create toml source
func NewTOML(path string) *TOML {
	return &TOML{path: path}
}

// Instruments load instrument configs
func (s TOML) Instruments() ([]grid.Config, error) {
	var document struct {
		Instruments []grid.Config `toml:"instruments"`
	}

	_, err := toml.DecodeFile(s.path, &document)
	if err != nil {
		zap.L().Error("decode toml failed", zap.Error(err), zap.String("path", s.path))
		return nil, err
	}

	if len(document.Instruments) == 0 {
		return nil, constants.ErrNoInstruments
	}

	for index, config := range document.Instruments {
		err = config.Valid()
		if err != nil {
			zap.L().Error("invalid instrument", zap.Error(err), zap.String("path", s.path), zap.Int("index", index))
			return nil, fmt.Errorf("instruments[%d]: %w", index, err)
		}
	}

	return document.Instruments, nil
}
