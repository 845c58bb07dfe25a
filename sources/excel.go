package sources

import (
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/linshaoyong/griddle/grid"
	"go.uber.org/zap"
)

// Excel xlsx file source, reads the named sheet or the first one
type Excel struct {
	path  string
	sheet string
}

// NewExcel create excel source
func NewExcel(path, sheet string) *Excel {
	return &Excel{path: path, sheet: sheet}
}

// Instruments load instrument configs
func (s Excel) Instruments() ([]grid.Config, error) {
	xlsx, err := excelize.OpenFile(s.path)
	if err != nil {
		zap.L().Error("open xlsx failed", zap.Error(err), zap.String("path", s.path))
		return nil, err
	}

	sheet := s.sheet
	if sheet == "" {
		sheet = xlsx.GetSheetName(1)
	}

	if xlsx.GetSheetIndex(sheet) == 0 {
		zap.L().Error("sheet not found", zap.String("path", s.path), zap.String("sheet", sheet))
		return nil, fmt.Errorf("sheet %q not found in %s", sheet, s.path)
	}

	configs, err := decodeRecords(xlsx.GetRows(sheet))
	if err != nil {
		zap.L().Error("decode xlsx failed", zap.Error(err), zap.String("path", s.path), zap.String("sheet", sheet))
		return nil, err
	}

	zap.L().Debug("load xlsx success",
		zap.String("path", s.path),
		zap.String("sheet", sheet),
		zap.Int("instruments", len(configs)))

	return configs, nil
}
