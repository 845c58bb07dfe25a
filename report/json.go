package report

import (
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/linshaoyong/griddle/grid"
)

// JSON render tables as a json document
type JSON struct{}

// Document json output
type Document struct {
	ID          string          `json:"id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Tables      []TableDocument `json:"tables"`
}

// TableDocument json output of one instrument
type TableDocument struct {
	Instrument grid.Instrument `json:"instrument"`
	Floor      float64         `json:"floor"`
	Sorted     bool            `json:"sorted"`
	Lines      []Line          `json:"lines"`
}

// Render render tables
func (j JSON) Render(w io.Writer, tables []*Table) error {
	document := Document{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now(),
		Tables:      make([]TableDocument, 0, len(tables)),
	}

	for _, table := range tables {
		document.Tables = append(document.Tables, TableDocument{
			Instrument: table.Instrument,
			Floor:      table.Floor,
			Sorted:     table.Sorted,
			Lines:      table.Lines(),
		})
	}

	encoder := sonic.ConfigStd.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(document)
}
