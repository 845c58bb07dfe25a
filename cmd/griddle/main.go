package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/linshaoyong/griddle/cmd/griddle/command"
	"github.com/linshaoyong/griddle/constants"
	"github.com/linshaoyong/griddle/utils"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	logger, err := utils.NewLogger(utils.LogOptions{Level: constants.DefaultLogLevel})
	if err != nil {
		panic(err)
	}
	defer func() { _ = zap.L().Sync() }()

	undo := zap.ReplaceGlobals(logger)
	defer undo()

	err = godotenv.Load()
	if err != nil {
		zap.L().Debug("no .env file loaded", zap.Error(err))
	}

	app := &cli.Command{
		Name:    "griddle",
		Usage:   "grid trading ladder calculator",
		Version: constants.Version,
	}

	for _, command := range command.Commands {
		app.Commands = append(app.Commands, command.Command())
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		zap.L().Fatal(err.Error())
	}
}
