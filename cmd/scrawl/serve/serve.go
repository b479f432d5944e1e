// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package serve runs the editor backend until interrupted.
package serve

import (
	"context"

	"github.com/matt-FFFFFF/scrawl/cmd/scrawl/settings"
	"github.com/matt-FFFFFF/scrawl/internal/app"
	"github.com/matt-FFFFFF/scrawl/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

// FileArg is the optional file to open at startup.
const FileArg = "file"

// Arguments returns the positional arguments of the root command.
// The file name is passed on exactly as given.
func Arguments() []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{
			Name:      FileArg,
			UsageText: "[FILE]",
		},
	}
}

// Action serves the command surface to the UI.
func Action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := settings.Resolve(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ctx, err = settings.ConfigureLogging(ctx, cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	a, err := app.New(ctx, cfg, cmd.StringArg(FileArg))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ctxlog.Info(ctx, "serving",
		"addr", cfg.Addr,
		"dialog", a.Dialogs.Backend().Name(),
		"commands", a.Registry.Names(),
	)

	if err := a.Run(ctx); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}
