package command

import (
	"context"
	"os"

	"github.com/linshaoyong/griddle/config"
	"github.com/linshaoyong/griddle/constants"
	"github.com/linshaoyong/griddle/grid"
	"github.com/linshaoyong/griddle/report"
	"github.com/linshaoyong/griddle/sources"
	"github.com/linshaoyong/griddle/utils"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func init() {
	RegisterCommand(&Ladder{})
}

// Ladder print grid ladders of all instruments
type Ladder struct{}

func (c Ladder) Command() *cli.Command {
	return &cli.Command{
		Name:    "ladder",
		Aliases: []string{"l"},
		Usage:   "print grid ladders of instruments",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path, toml or yaml",
				Value:   constants.DefaultConfigFile,
				Sources: cli.EnvVars(constants.ConfigEnvKey),
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "instrument file, csv, xlsx[#sheet] or toml",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file, stdout when empty",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format, markdown, xlsx or json",
			},
			&cli.FloatFlag{
				Name:  "floor",
				Usage: "lowest gear of every ladder",
			},
			&cli.BoolFlag{
				Name:  "sort",
				Usage: "merge all grids and sort by buy price",
			},
			&cli.BoolFlag{
				Name:  "colors",
				Usage: "color grid names in markdown",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print debug logs",
			},
		},
		Action: c.run,
	}
}

func (c Ladder) run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	err = setupLogger(cfg.Log, cmd.Bool("verbose"))
	if err != nil {
		return err
	}

	instruments, err := loadInstruments(cfg)
	if err != nil {
		return err
	}

	renderer, err := report.NewRenderer(cfg.Format, cfg.Colors)
	if err != nil {
		zap.L().Error("create renderer failed", zap.Error(err), zap.String("format", cfg.Format))
		return err
	}

	options := cfg.ReportOptions()
	tables := make([]*report.Table, 0, len(instruments))
	for _, instrument := range instruments {
		if err = ctx.Err(); err != nil {
			return err
		}

		table, err := report.Build(instrument, options)
		if err != nil {
			return err
		}

		tables = append(tables, table)
	}

	output, err := utils.OpenOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer output.Close()

	err = renderer.Render(output, tables)
	if err != nil {
		zap.L().Error("render tables failed", zap.Error(err), zap.String("format", cfg.Format))
		return err
	}

	zap.L().Debug("render tables success",
		zap.Int("tables", len(tables)),
		zap.String("format", cfg.Format),
		zap.String("output", cfg.Output))

	return nil
}

// loadConfig parse config file then apply command line overrides.
// A missing config file falls back to defaults unless it was named explicitly.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")

	var cfg *config.Config
	_, err := os.Stat(path)
	switch {
	case err == nil:
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	case os.IsNotExist(err) && !cmd.IsSet("config"):
		zap.L().Debug("config file not found, use default config", zap.String("path", path))
		cfg = config.Default()
	default:
		zap.L().Error("stat config file failed", zap.Error(err), zap.String("path", path))
		return nil, err
	}

	if cmd.IsSet("input") {
		cfg.Input = cmd.String("input")
	}

	if cmd.IsSet("output") {
		cfg.Output = cmd.String("output")
	}

	if cmd.IsSet("format") {
		cfg.Format = cmd.String("format")
	}

	if cmd.IsSet("floor") {
		cfg.Floor = cmd.Float("floor")
	}

	if cmd.IsSet("sort") {
		cfg.Sort = cmd.Bool("sort")
	}

	if cmd.IsSet("colors") {
		cfg.Colors = cmd.Bool("colors")
	}

	err = cfg.Valid()
	if err != nil {
		zap.L().Error("invalid config", zap.Error(err), zap.String("path", path))
		return nil, err
	}

	return cfg, nil
}

// loadInstruments load instruments from input file, then append inline instruments
func loadInstruments(cfg *config.Config) ([]grid.Config, error) {
	var instruments []grid.Config

	if cfg.Input != "" {
		source, err := sources.Parse(cfg.Input)
		if err != nil {
			return nil, err
		}

		instruments, err = source.Instruments()
		if err != nil {
			return nil, err
		}
	}

	inline, err := sources.Inline(cfg.Instruments).Instruments()
	if err != nil {
		return nil, err
	}

	instruments = append(instruments, inline...)
	if len(instruments) == 0 {
		return nil, constants.ErrNoInstruments
	}

	return instruments, nil
}
