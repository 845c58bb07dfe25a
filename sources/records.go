package sources

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/linshaoyong/griddle/constants"
	"github.com/linshaoyong/griddle/grid"
)

var (
	columns = []string{"name", "code", "start_price", "start_numbers", "small_grid", "medium_grid", "large_grid"}
)

// header map column name to index
type header map[string]int

func parseHeader(record []string) (header, error) {
	h := make(header, len(record))
	for index, column := range record {
		column = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(column, "\uFEFF")))
		if column == "" {
			continue
		}

		h[column] = index
	}

	for _, column := range columns {
		if _, found := h[column]; !found {
			return nil, fmt.Errorf("%w: %s", constants.ErrMissingColumn, column)
		}
	}

	return h, nil
}

func (h header) get(record []string, column string) string {
	index := h[column]
	if index >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[index])
}

func (h header) float(record []string, column string) (float64, error) {
	value, err := strconv.ParseFloat(h.get(record, column), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s failed: %w", column, err)
	}

	return value, nil
}

// decode convert record to instrument config
func (h header) decode(record []string) (grid.Config, error) {
	config := grid.Config{
		Name: h.get(record, "name"),
		Code: h.get(record, "code"),
	}

	targets := []*float64{&config.StartPrice, &config.StartNumbers, &config.SmallGrid, &config.MediumGrid, &config.LargeGrid}
	for index, column := range columns[2:] {
		value, err := h.float(record, column)
		if err != nil {
			return config, err
		}

		*targets[index] = value
	}

	return config, config.Valid()
}

func blank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// decodeRecords decode all records after the header, line numbers start from 1
func decodeRecords(records [][]string) ([]grid.Config, error) {
	if len(records) == 0 {
		return nil, constants.ErrNoInstruments
	}

	h, err := parseHeader(records[0])
	if err != nil {
		return nil, err
	}

	configs := make([]grid.Config, 0, len(records)-1)
	for index, record := range records[1:] {
		if blank(record) {
			continue
		}

		config, err := h.decode(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", index+2, err)
		}

		configs = append(configs, config)
	}

	if len(configs) == 0 {
		return nil, constants.ErrNoInstruments
	}

	return configs, nil
}
