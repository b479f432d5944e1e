// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the scrawl command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/scrawl"
	"github.com/matt-FFFFFF/scrawl/cmd/scrawl/commands"
	"github.com/matt-FFFFFF/scrawl/cmd/scrawl/config"
	"github.com/matt-FFFFFF/scrawl/cmd/scrawl/serve"
	"github.com/matt-FFFFFF/scrawl/cmd/scrawl/settings"
	"github.com/matt-FFFFFF/scrawl/internal/ctxlog"
	"github.com/matt-FFFFFF/scrawl/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		commands.CommandsCmd,
		config.ConfigCmd,
	},
	Flags:     settings.Flags(),
	Arguments: serve.Arguments(),
	Action:    serve.Action,
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "scrawl",
	Description: `Scrawl is the native backend of a small text editor. It serves file
read/write and file dialog commands to the editor UI over a loopback
WebSocket, and hands a file named on the command line to the main window.`,
	Usage:     "scrawl [FILE]",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", scrawl.Version, scrawl.Commit)

	if err := rootCmd.Run(ctx, os.Args); err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Info("shut down")
	}
}
