package command

import (
	"context"
	"fmt"

	"github.com/linshaoyong/griddle/grid"
	"github.com/linshaoyong/griddle/report"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func init() {
	RegisterCommand(&ShowRow{})
}

// ShowRow print one gear of an instrument
type ShowRow struct{}

func (c ShowRow) Command() *cli.Command {
	return &cli.Command{
		Name:    "row",
		Aliases: []string{"r"},
		Usage:   "print the nth gear of one grid",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "price",
				Usage: "start price",
				Value: 1.0,
			},
			&cli.FloatFlag{
				Name:  "numbers",
				Usage: "start numbers",
				Value: 10000,
			},
			&cli.FloatFlag{
				Name:  "spacing",
				Usage: "grid spacing, in (0, 1)",
				Value: 0.05,
				Validator: func(spacing float64) error {
					if !grid.ValidSpacing(spacing) {
						return fmt.Errorf("%w: %v", grid.ErrInvalidSpacing, spacing)
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:  "index",
				Usage: "gear index, 0 is the start price",
				Validator: func(index int) error {
					if index < 0 {
						return fmt.Errorf("%w: %d", grid.ErrInvalidStart, index)
					}
					return nil
				},
			},
		},
		Action: c.run,
	}
}

func (c ShowRow) run(ctx context.Context, cmd *cli.Command) error {
	instrument := grid.Instrument{
		StartPrice:   cmd.Float("price"),
		StartNumbers: cmd.Float("numbers"),
	}
	spacing := cmd.Float("spacing")
	index := cmd.Int("index")

	row := instrument.NthRow(index, spacing)
	if !(row.Gear > 0) {
		zap.L().Error("gear is not positive", zap.Int("index", index), zap.Float64("spacing", spacing), zap.Float64("gear", row.Gear))
		return fmt.Errorf("%w: gear of index %d with spacing %v is %v", grid.ErrInvalidStart, index, spacing, row.Gear)
	}

	table := &report.Table{
		Instrument: instrument,
		Entries: []report.Entry{
			{Grid: fmt.Sprintf("%v", spacing), Spacing: spacing, Row: row},
		},
	}

	return report.Markdown{}.Render(cmd.Root().Writer, []*report.Table{table})
}
