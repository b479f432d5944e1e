// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/scrawl/internal/app"
	"github.com/urfave/cli/v3"
)

// CommandsCmd lists the commands the UI can invoke.
var CommandsCmd = &cli.Command{
	Name:  "commands",
	Usage: "List the commands available to the UI",
	Action: func(_ context.Context, cmd *cli.Command) error {
		w := cmd.Root().Writer

		fmt.Fprintf(w, "Available commands:\n\n") //nolint:errcheck

		for _, name := range app.Commands() {
			fmt.Fprintf(w, "- %s\n", name) //nolint:errcheck
		}

		return nil
	},
}
