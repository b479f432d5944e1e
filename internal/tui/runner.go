// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrUnexpectedModel is returned if the program finishes with a foreign model.
var ErrUnexpectedModel = errors.New("tui: unexpected final model")

// programOptions is replaced in tests to run without a terminal.
var programOptions = func(ctx context.Context) []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	}
}

// Run shows the dialog on the terminal and blocks until it closes.
func Run(ctx context.Context, opts Options) (string, bool, error) {
	m := NewModel(opts)

	final, err := tea.NewProgram(m, programOptions(ctx)...).Run()
	if err != nil {
		return "", false, fmt.Errorf("tui: %w", err)
	}

	fm, ok := final.(*Model)
	if !ok {
		return "", false, ErrUnexpectedModel
	}

	path, confirmed := fm.Result()

	return path, confirmed, nil
}
