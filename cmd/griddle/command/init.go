package command

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/linshaoyong/griddle/config"
	"github.com/linshaoyong/griddle/constants"
	"github.com/linshaoyong/griddle/grid"
	"github.com/linshaoyong/griddle/utils"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func init() {
	RegisterCommand(&Init{})
}

var (
	sampleInstruments = []grid.Config{
		{Name: "中概互联", Code: "513050", StartPrice: 1.0, StartNumbers: 10000, SmallGrid: 0.05, MediumGrid: 0.15, LargeGrid: 0.30},
		{Name: "证券ETF", Code: "512880", StartPrice: 1.0, StartNumbers: 10000, SmallGrid: 0.05, MediumGrid: 0.15, LargeGrid: 0.30},
	}
)

// Init write sample config and instrument files
type Init struct{}

func (c Init) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "write sample config and instrument files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "target directory",
				Value: ".",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "overwrite existing files",
			},
		},
		Action: c.run,
	}
}

func (c Init) run(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.String("dir")
	force := cmd.Bool("force")

	err := utils.EnsureDir(dir)
	if err != nil {
		zap.L().Error("ensure dir failed", zap.Error(err), zap.String("dir", dir))
		return err
	}

	configPath := filepath.Join(dir, constants.DefaultConfigFile)
	inputPath := filepath.Join(dir, constants.DefaultInputFile)
	for _, path := range []string{configPath, inputPath} {
		if _, err = os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
	}

	err = config.Write(configPath, config.Default())
	if err != nil {
		return err
	}

	err = writeSampleCSV(inputPath, sampleInstruments)
	if err != nil {
		return err
	}

	zap.L().Info("sample files written", zap.String("config", configPath), zap.String("input", inputPath))

	return nil
}

// writeSampleCSV write instruments with a header line
func writeSampleCSV(path string, instruments []grid.Config) error {
	file, err := os.Create(path)
	if err != nil {
		zap.L().Error("create csv failed", zap.Error(err), zap.String("path", path))
		return err
	}
	defer file.Close()

	format := func(value float64) string {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	writer := csv.NewWriter(file)
	records := [][]string{{"name", "code", "start_price", "start_numbers", "small_grid", "medium_grid", "large_grid"}}
	for _, instrument := range instruments {
		records = append(records, []string{
			instrument.Name,
			instrument.Code,
			format(instrument.StartPrice),
			format(instrument.StartNumbers),
			format(instrument.SmallGrid),
			format(instrument.MediumGrid),
			format(instrument.LargeGrid),
		})
	}

	err = writer.WriteAll(records)
	if err != nil {
		zap.L().Error("write csv failed", zap.Error(err), zap.String("path", path))
		return err
	}

	return nil
}
