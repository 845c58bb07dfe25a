package sources

import (
	"encoding/csv"
	"os"

	"github.com/linshaoyong/griddle/grid"
	"go.uber.org/zap"
)

// CSV csv file source, the first line names the columns
type CSV struct {
	path string
}

// NewCSV create csv source
func NewCSV(path string) *CSV {
	return &CSV{path: path}
}

// Instruments load instrument configs
func (s CSV) Instruments() ([]grid.Config, error) {
	file, err := os.Open(s.path)
	if err != nil {
		zap.L().Error("open csv failed", zap.Error(err), zap.String("path", s.path))
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		zap.L().Error("read csv failed", zap.Error(err), zap.String("path", s.path))
		return nil, err
	}

	configs, err := decodeRecords(records)
	if err != nil {
		zap.L().Error("decode csv failed", zap.Error(err), zap.String("path", s.path))
		return nil, err
	}

	zap.L().Debug("load csv success", zap.String("path", s.path), zap.Int("instruments", len(configs)))

	return configs, nil
}
