package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/linshaoyong/griddle/constants"
	"github.com/linshaoyong/griddle/grid"
	"github.com/linshaoyong/griddle/report"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Grid define how one of the three spacings of an instrument is laid out
type Grid = report.GridPlan

// Log define log output
type Log struct {
	Level      string `toml:"level" yaml:"level"`
	File       string `toml:"file" yaml:"file"`
	MaxSize    int    `toml:"max_size" yaml:"max_size"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
	MaxAge     int    `toml:"max_age" yaml:"max_age"`
}

// Config global config
type Config struct {
	Input       string        `toml:"input" yaml:"input"`
	Output      string        `toml:"output" yaml:"output"`
	Format      string        `toml:"format" yaml:"format"`
	Floor       float64       `toml:"floor" yaml:"floor"`
	Sort        bool          `toml:"sort" yaml:"sort"`
	Colors      bool          `toml:"colors" yaml:"colors"`
	Grids       []Grid        `toml:"grids" yaml:"grids"`
	Log         Log           `toml:"log" yaml:"log"`
	Instruments []grid.Config `toml:"instruments" yaml:"instruments"`
}

// Default config used when no config file exists
func Default() *Config {
	c := &Config{
		Input:  constants.DefaultInputFile,
		Floor:  constants.DefaultGearFloor,
		Sort:   true,
		Colors: true,
	}
	c.fillDefaults()

	return c
}

func (c *Config) fillDefaults() {
	if strings.TrimSpace(c.Format) == "" {
		c.Format = constants.DefaultFormat
	}

	if len(c.Grids) == 0 {
		c.Grids = report.DefaultGridPlans()
	}

	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = constants.DefaultLogLevel
	}

	if c.Log.MaxSize <= 0 {
		c.Log.MaxSize = constants.DefaultLogMaxSize
	}

	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = constants.DefaultLogMaxBackups
	}

	if c.Log.MaxAge <= 0 {
		c.Log.MaxAge = constants.DefaultLogMaxAge
	}
}

// Valid validate config
func (c Config) Valid() error {
	if strings.TrimSpace(c.Input) == "" && len(c.Instruments) == 0 {
		return errors.New("input undefined")
	}

	if c.Floor < 0 || c.Floor >= 1 {
		return fmt.Errorf("floor out of range [0, 1): %v", c.Floor)
	}

	switch strings.ToLower(c.Format) {
	case "markdown", "md", "xlsx", "excel", "json":
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownFormat, c.Format)
	}

	if len(c.Grids) != 3 {
		return fmt.Errorf("grids must define small, medium and large grid, got %d", len(c.Grids))
	}

	for index, g := range c.Grids {
		if g.Start < 0 {
			return fmt.Errorf("grids[%d].start is negative: %d", index, g.Start)
		}
	}

	for index, instrument := range c.Instruments {
		err := instrument.Valid()
		if err != nil {
			return fmt.Errorf("instruments[%d]: %w", index, err)
		}
	}

	return nil
}

// ReportOptions table build options of config
func (c Config) ReportOptions() report.Options {
	return report.Options{
		Floor: c.Floor,
		Sort:  c.Sort,
		Plans: c.Grids,
	}
}

// Load decode config from toml or yaml file and fill defaults
func Load(filePath string) (*Config, error) {
	config := &Config{Floor: constants.DefaultGearFloor, Sort: true, Colors: true}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		buffer, err := os.ReadFile(filePath)
		if err != nil {
			zap.L().Error("read config file failed", zap.Error(err), zap.String("path", filePath))
			return nil, err
		}

		err = yaml.Unmarshal(buffer, config)
		if err != nil {
			zap.L().Error("unmarshal yaml config failed", zap.Error(err), zap.String("path", filePath))
			return nil, err
		}
	default:
		_, err := toml.DecodeFile(filePath, config)
		if err != nil {
			zap.L().Error("decode toml config failed", zap.Error(err), zap.String("path", filePath))
			return nil, err
		}
	}

	config.fillDefaults()

	return config, nil
}

// Write encode config as toml
func Write(filePath string, config *Config) error {
	file, err := os.Create(filePath)
	if err != nil {
		zap.L().Error("create config file failed", zap.Error(err), zap.String("path", filePath))
		return err
	}
	defer file.Close()

	err = toml.NewEncoder(file).Encode(config)
	if err != nil {
		zap.L().Error("encode config failed", zap.Error(err), zap.String("path", filePath))
		return err
	}

	return nil
}
