// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/matt-FFFFFF/scrawl/internal/dialog"
	"github.com/spf13/afero"
)

var (
	// ErrReadConfig is returned when the config file cannot be read.
	ErrReadConfig = errors.New("failed to read config file")
	// ErrParseConfig is returned when the config file cannot be decoded.
	ErrParseConfig = errors.New("failed to parse config file")
	// ErrUnsupportedFormat is returned for an unknown config file extension.
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)

// FsFactory returns the filesystem config files are read from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// userConfigDir is replaced in tests.
var userConfigDir = os.UserConfigDir

// file is the on-disk shape. Unset fields keep the value below them.
type file struct {
	Addr        *string         `yaml:"addr" hcl:"addr,optional"`
	Dialog      *string         `yaml:"dialog" hcl:"dialog,optional"`
	MainWindow  *string         `yaml:"main_window" hcl:"main_window,optional"`
	UIDir       *string         `yaml:"ui_dir" hcl:"ui_dir,optional"`
	LogLevel    *string         `yaml:"log_level" hcl:"log_level,optional"`
	LogFormat   *string         `yaml:"log_format" hcl:"log_format,optional"`
	OpenFilters []dialog.Filter `yaml:"open_filters" hcl:"open_filter,block"`
	SaveFilters []dialog.Filter `yaml:"save_filters" hcl:"save_filter,block"`
}

// DefaultPath returns <user config dir>/scrawl/config.yaml.
func DefaultPath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "scrawl", "config.yaml"), nil
}

// Load returns the defaults overlaid with the file at path.
// An empty path means the default location. A missing file is only an error
// when the path was given explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""

	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil //nolint:nilerr
		}

		path = p
	}

	fs := FsFactory()

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, errors.Join(ErrReadConfig, err)
	}

	f, err := decode(path, content)
	if err != nil {
		return nil, err
	}

	f.apply(cfg)

	return cfg, nil
}

func decode(path string, content []byte) (*file, error) {
	var f file

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &f); err != nil {
			return nil, errors.Join(ErrParseConfig, err)
		}
	case ".hcl":
		// hclsimple picks the syntax from the file name, so it must end in .hcl.
		if err := hclsimple.Decode(filepath.Base(path), content, nil, &f); err != nil {
			var (
				result *multierror.Error
				diags  hcl.Diagnostics
			)

			if errors.As(err, &diags) {
				result = multierror.Append(result, diags.Errs()...)
			} else {
				result = multierror.Append(result, err)
			}

			return nil, errors.Join(ErrParseConfig, result.ErrorOrNil())
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	return &f, nil
}

func (f *file) apply(cfg *Config) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&cfg.Addr, f.Addr)
	set(&cfg.Dialog, f.Dialog)
	set(&cfg.MainWindow, f.MainWindow)
	set(&cfg.UIDir, f.UIDir)
	set(&cfg.LogLevel, f.LogLevel)
	set(&cfg.LogFormat, f.LogFormat)

	if len(f.OpenFilters) > 0 {
		cfg.OpenFilters = f.OpenFilters
	}

	if len(f.SaveFilters) > 0 {
		cfg.SaveFilters = f.SaveFilters
	}
}
