// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/scrawl/cmd/scrawl/settings"
	"github.com/matt-FFFFFF/scrawl/internal/color"
	"github.com/urfave/cli/v3"
)

// ConfigCmd prints the effective configuration.
var ConfigCmd = &cli.Command{
	Name:   "config",
	Usage:  "Print the effective configuration as JSON",
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	cfg, err := settings.Resolve(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	f.DisabledColor = !color.Enabled()

	out, err := f.Marshal(obj)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, string(out))

	return err
}
