/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/livercheck/cmd"
	"github.com/humaidq/livercheck/logging"
)

func main() {
	logging.Init()
	logger := logging.Logger(logging.SourceApp)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Failed to load .env file", "error", err)
	}

	app := &cli.Command{
		Name:  "livercheck",
		Usage: "Liver disease prediction from routine lab values",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdPredict,
			cmd.CmdModel,
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		logger.Error("Command failed", "error", err)
		stop()
		os.Exit(1)
	}
}
