package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Markdown render tables as markdown, one section per instrument
type Markdown struct {
	// Colors wrap grid name in a colored span
	Colors bool
}

// Render render tables
func (m Markdown) Render(w io.Writer, tables []*Table) error {
	bw := bufio.NewWriter(w)

	for _, table := range tables {
		fmt.Fprintf(bw, "#### %s（%s）\n\n\n", table.Instrument.Name, table.Instrument.Code)
		fmt.Fprintf(bw, "| %s |\n", strings.Join(Headers, " | "))
		fmt.Fprintln(bw, "| ---- | ---- | ---------- | ------ | -------- | ------ | ---------- | ------ | :----- |")

		for _, line := range table.Lines() {
			fmt.Fprintln(bw, m.row(line))
		}

		fmt.Fprint(bw, "\n\n")
	}

	return bw.Flush()
}

func (m Markdown) row(line Line) string {
	label := fmt.Sprintf(" %s ", line.Grid)
	if m.Colors && line.Color != "" {
		label = fmt.Sprintf("<span style=\"color:%s\"> %s </span>", line.Color, line.Grid)
	}

	return fmt.Sprintf("|%s| %s | %s | %s | %s | %s | %s | %s | %s |",
		label,
		fixed(line.Gear, 2),
		fixed(line.BuyTriggerPrice, 3),
		fixed(line.BuyPrice, 3),
		whole(line.BuyMoney),
		whole(line.BuyNumbers),
		fixed(line.SellTriggerPrice, 3),
		fixed(line.SellPrice, 3),
		whole(line.SellNumbers))
}
