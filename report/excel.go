package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"
	"go.uber.org/zap"
)

// SellMoneyHeader extra xlsx column after the printed columns
const SellMoneyHeader = "卖出金额"

var (
	// colors palette of named grid colors
	colors = map[string]string{
		"black":  "#000000",
		"blue":   "#0000FF",
		"green":  "#008000",
		"red":    "#FF0000",
		"orange": "#FFA500",
		"purple": "#800080",
		"gray":   "#808080",
	}
)

// Excel render tables as a xlsx workbook, one sheet per instrument
type Excel struct{}

// Render render tables
func (e Excel) Render(w io.Writer, tables []*Table) error {
	xlsx := excelize.NewFile()
	styles := make(map[string]int)

	for index, table := range tables {
		sheet := sheetName(xlsx, table.Instrument.Code)
		if index == 0 {
			xlsx.SetSheetName(xlsx.GetSheetName(1), sheet)
		} else {
			xlsx.NewSheet(sheet)
		}

		header := make([]interface{}, 0, len(Headers)+1)
		for _, title := range Headers {
			header = append(header, title)
		}
		header = append(header, SellMoneyHeader)
		xlsx.SetSheetRow(sheet, "A1", &header)
		xlsx.SetColWidth(sheet, "A", "J", 12)

		for offset, line := range table.Lines() {
			row := offset + 2
			values := []interface{}{
				line.Grid,
				line.Gear,
				line.BuyTriggerPrice,
				line.BuyPrice,
				int64(math.Trunc(line.BuyMoney)),
				int64(math.Trunc(line.BuyNumbers)),
				line.SellTriggerPrice,
				line.SellPrice,
				int64(math.Trunc(line.SellNumbers)),
				int64(math.Trunc(line.SellMoney)),
			}
			xlsx.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values)

			style, err := e.style(xlsx, styles, line.Color)
			if err != nil {
				zap.L().Error("create cell style failed", zap.Error(err), zap.String("color", line.Color))
				return err
			}

			if style != 0 {
				axis := fmt.Sprintf("A%d", row)
				xlsx.SetCellStyle(sheet, axis, axis, style)
			}
		}
	}

	xlsx.SetActiveSheet(1)

	return xlsx.Write(w)
}

func (e Excel) style(xlsx *excelize.File, styles map[string]int, color string) (int, error) {
	if color == "" {
		return 0, nil
	}

	if id, found := styles[color]; found {
		return id, nil
	}

	rgb := color
	if !strings.HasPrefix(rgb, "#") {
		named, found := colors[strings.ToLower(color)]
		if !found {
			zap.L().Warn("unknown grid color", zap.String("color", color))
			return 0, nil
		}
		rgb = named
	}

	id, err := xlsx.NewStyle(fmt.Sprintf(`{"font":{"color":"%s"}}`, rgb))
	if err != nil {
		return 0, err
	}

	styles[color] = id

	return id, nil
}

// sheetName unique sheet name of an instrument
func sheetName(xlsx *excelize.File, code string) string {
	name := code
	if name == "" {
		name = "Sheet"
	}

	if runes := []rune(name); len(runes) > 28 {
		name = string(runes[:28])
	}

	candidate := name
	for index := 2; xlsx.GetSheetIndex(candidate) != 0; index++ {
		candidate = fmt.Sprintf("%s_%d", name, index)
	}

	return candidate
}
