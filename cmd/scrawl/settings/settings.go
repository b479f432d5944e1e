// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package settings holds the global flags and resolves them, together with
// the config file, into the effective configuration.
package settings

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/scrawl/internal/config"
	"github.com/matt-FFFFFF/scrawl/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

// Flag names.
const (
	AddrFlag      = "addr"
	DialogFlag    = "dialog"
	UIDirFlag     = "ui-dir"
	ConfigFlag    = "config"
	LogLevelFlag  = "log-level"
	LogFormatFlag = "log-format"
)

// Flags returns the flags shared by every command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    AddrFlag,
			Usage:   "Loopback address the UI connects to",
			Value:   config.DefaultAddr,
			Sources: cli.EnvVars("SCRAWL_ADDR"),
		},
		&cli.StringFlag{
			Name:    DialogFlag,
			Usage:   "Dialog backend: auto, zenity, kdialog, tui, prompt or none",
			Value:   "auto",
			Sources: cli.EnvVars("SCRAWL_DIALOG"),
		},
		&cli.StringFlag{
			Name:      UIDirFlag,
			Usage:     "Directory of static UI assets served at /",
			TakesFile: true,
			Sources:   cli.EnvVars("SCRAWL_UI_DIR"),
		},
		&cli.StringFlag{
			Name:      ConfigFlag,
			Aliases:   []string{"c"},
			Usage:     "Config file (.yaml, .yml or .hcl)",
			TakesFile: true,
			Sources:   cli.EnvVars("SCRAWL_CONFIG"),
		},
		&cli.StringFlag{
			Name:    LogLevelFlag,
			Usage:   "Log level: debug, info, warn or error",
			Value:   "info",
			Sources: cli.EnvVars(ctxlog.EnvLogLevel),
		},
		&cli.StringFlag{
			Name:    LogFormatFlag,
			Usage:   "Log format: pretty or json",
			Value:   ctxlog.FormatPretty,
			Sources: cli.EnvVars("SCRAWL_LOG_FORMAT"),
		},
	}
}

// Resolve loads the config file and applies any flags that were set.
func Resolve(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String(ConfigFlag))
	if err != nil {
		return nil, err
	}

	override := func(flag string, dst *string) {
		if cmd.IsSet(flag) {
			*dst = cmd.String(flag)
		}
	}

	override(AddrFlag, &cfg.Addr)
	override(DialogFlag, &cfg.Dialog)
	override(UIDirFlag, &cfg.UIDir)
	override(LogLevelFlag, &cfg.LogLevel)
	override(LogFormatFlag, &cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigureLogging installs the logger described by cfg on the context.
func ConfigureLogging(ctx context.Context, cfg *config.Config) (context.Context, error) {
	level, err := ctxlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return ctx, err
	}

	ctxlog.LevelVar.Set(level)

	logger, err := ctxlog.NewLogger(cfg.LogFormat, os.Stderr)
	if err != nil {
		return ctx, fmt.Errorf("configure logging: %w", err)
	}

	return ctxlog.New(ctx, logger), nil
}
