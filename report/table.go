package report

import (
	"fmt"
	"sort"

	"github.com/linshaoyong/griddle/grid"
	"go.uber.org/zap"
)

// GridPlan define how one grid spacing of an instrument is laid out
type GridPlan struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Color string `json:"color" toml:"color" yaml:"color"`
	Start int    `json:"start" toml:"start" yaml:"start"`
}

// DefaultGridPlans small, medium and large grid plans
func DefaultGridPlans() []GridPlan {
	return []GridPlan{
		{Name: "小网", Color: "black", Start: 0},
		{Name: "中网", Color: "blue", Start: 1},
		{Name: "大网", Color: "green", Start: 1},
	}
}

// Options define table build options
type Options struct {
	// Floor lowest gear of every ladder
	Floor float64
	// Sort merge all ladders and sort them by buy price
	Sort bool
	// Plans small, medium and large grid plans, default plans when empty
	Plans []GridPlan
}

// Entry one row of a table
type Entry struct {
	Grid    string   `json:"grid"`
	Color   string   `json:"color"`
	Spacing float64  `json:"spacing"`
	Row     grid.Row `json:"row"`
}

// Line values printed for an entry
type Line struct {
	Grid             string  `json:"grid"`
	Color            string  `json:"color"`
	Spacing          float64 `json:"spacing"`
	Gear             float64 `json:"gear"`
	BuyTriggerPrice  float64 `json:"buy_trigger_price"`
	BuyPrice         float64 `json:"buy_price"`
	BuyMoney         float64 `json:"buy_money"`
	BuyNumbers       float64 `json:"buy_numbers"`
	SellTriggerPrice float64 `json:"sell_trigger_price"`
	SellPrice        float64 `json:"sell_price"`
	SellNumbers      float64 `json:"sell_numbers"`
	SellMoney        float64 `json:"sell_money"`
}

// Line compute printed values
func (e Entry) Line() Line {
	return Line{
		Grid:             e.Grid,
		Color:            e.Color,
		Spacing:          e.Spacing,
		Gear:             e.Row.Gear,
		BuyTriggerPrice:  e.Row.BuyTriggerPrice(),
		BuyPrice:         e.Row.BuyPrice,
		BuyMoney:         e.Row.BuyMoney(),
		BuyNumbers:       e.Row.BuyNumbers,
		SellTriggerPrice: e.Row.SellTriggerPrice(e.Spacing),
		SellPrice:        e.Row.SellPrice(e.Spacing),
		SellNumbers:      e.Row.SellNumbers(e.Spacing),
		SellMoney:        e.Row.SellMoney(e.Spacing),
	}
}

// Table all gears of one instrument
type Table struct {
	Instrument grid.Instrument
	Floor      float64
	Sorted     bool
	Entries    []Entry
}

// Lines compute printed values of all entries
func (t Table) Lines() []Line {
	lines := make([]Line, 0, len(t.Entries))
	for _, entry := range t.Entries {
		lines = append(lines, entry.Line())
	}

	return lines
}

// Build build the small, medium and large ladders of an instrument
func Build(config grid.Config, options Options) (*Table, error) {
	plans := options.Plans
	if len(plans) == 0 {
		plans = DefaultGridPlans()
	}

	if len(plans) != 3 {
		return nil, fmt.Errorf("expect 3 grid plans, got %d", len(plans))
	}

	instrument := grid.NewInstrument(config)
	table := &Table{
		Instrument: instrument,
		Floor:      options.Floor,
		Sorted:     options.Sort,
	}

	for index, spacing := range config.Spacings() {
		plan := plans[index]
		ladder, err := instrument.Ladder(spacing, plan.Start, options.Floor)
		if err != nil {
			zap.L().Error("build ladder failed",
				append(instrument.Fields(),
					zap.Error(err),
					zap.String("grid", plan.Name),
					zap.Float64("spacing", spacing),
					zap.Int("start", plan.Start),
					zap.Float64("floor", options.Floor))...)
			return nil, fmt.Errorf("%s %s: %w", instrument.Code, plan.Name, err)
		}

		for _, row := range ladder.Rows {
			table.Entries = append(table.Entries, Entry{
				Grid:    plan.Name,
				Color:   plan.Color,
				Spacing: spacing,
				Row:     row,
			})
		}
	}

	if options.Sort {
		sort.SliceStable(table.Entries, func(i, j int) bool {
			return table.Entries[i].Row.BuyPrice < table.Entries[j].Row.BuyPrice
		})
	}

	zap.L().Debug("build table success", append(instrument.Fields(), zap.Int("entries", len(table.Entries)))...)

	return table, nil
}
