// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the scrawl configuration. Values come from built-in
// defaults, then an optional YAML or HCL file, then command line flags.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/scrawl/internal/ctxlog"
	"github.com/matt-FFFFFF/scrawl/internal/dialog"
)

// DefaultAddr is the loopback address the host listens on.
const DefaultAddr = "127.0.0.1:7373"

// DefaultMainWindow is the window label that receives the startup file.
const DefaultMainWindow = "main"

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrEmptyValue is returned for a required value that is empty.
	ErrEmptyValue = errors.New("value must not be empty")
	// ErrEmptyFilter is returned for a filter without extensions.
	ErrEmptyFilter = errors.New("filter has no extensions")
)

// Config is the effective configuration.
type Config struct {
	Addr        string          `json:"addr"`
	Dialog      string          `json:"dialog"`
	MainWindow  string          `json:"main_window"`
	UIDir       string          `json:"ui_dir,omitempty"`
	LogLevel    string          `json:"log_level"`
	LogFormat   string          `json:"log_format"`
	OpenFilters []dialog.Filter `json:"open_filters"`
	SaveFilters []dialog.Filter `json:"save_filters"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:        DefaultAddr,
		Dialog:      dialog.BackendAuto,
		MainWindow:  DefaultMainWindow,
		LogLevel:    "info",
		LogFormat:   ctxlog.FormatPretty,
		OpenFilters: dialog.DefaultOpenFilters(),
		SaveFilters: dialog.DefaultSaveFilters(),
	}
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Addr == "" {
		result = multierror.Append(result, fmt.Errorf("addr: %w", ErrEmptyValue))
	}

	if c.MainWindow == "" {
		result = multierror.Append(result, fmt.Errorf("main_window: %w", ErrEmptyValue))
	}

	if !slices.Contains(dialog.BackendNames, c.Dialog) {
		result = multierror.Append(result, fmt.Errorf("dialog: %w: %q", dialog.ErrUnknownBackend, c.Dialog))
	}

	if _, err := ctxlog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("log_level: %w", err))
	}

	if c.LogFormat != ctxlog.FormatPretty && c.LogFormat != ctxlog.FormatJSON {
		result = multierror.Append(result, fmt.Errorf("log_format: %w: %q", ctxlog.ErrUnknownFormat, c.LogFormat))
	}

	for _, f := range append(slices.Clone(c.OpenFilters), c.SaveFilters...) {
		if len(f.Extensions) == 0 {
			result = multierror.Append(result, fmt.Errorf("filter %q: %w", f.Name, ErrEmptyFilter))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}
