package command

import (
	"github.com/linshaoyong/griddle/config"
	"github.com/linshaoyong/griddle/utils"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

type Commander interface {
	Command() *cli.Command
}

var Commands = []Commander{}

func RegisterCommand(cmd Commander) {
	Commands = append(Commands, cmd)
}

// setupLogger replace global logger with config log options
func setupLogger(options config.Log, verbose bool) error {
	level := options.Level
	if verbose {
		level = "debug"
	}

	logger, err := utils.NewLogger(utils.LogOptions{
		Level:      level,
		File:       options.File,
		MaxSize:    options.MaxSize,
		MaxBackups: options.MaxBackups,
		MaxAge:     options.MaxAge,
	})
	if err != nil {
		zap.L().Error("create logger failed", zap.Error(err), zap.String("level", level))
		return err
	}

	zap.ReplaceGlobals(logger)

	return nil
}
