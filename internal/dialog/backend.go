// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dialog

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/scrawl/internal/tui"
	"golang.org/x/term"
)

// Backend names accepted by ForName.
const (
	BackendAuto    = "auto"
	BackendZenity  = "zenity"
	BackendKDialog = "kdialog"
	BackendTUI     = "tui"
	BackendPrompt  = "prompt"
	BackendNone    = "none"
)

// BackendNames lists every name ForName accepts.
var BackendNames = []string{BackendAuto, BackendZenity, BackendKDialog, BackendTUI, BackendPrompt, BackendNone}

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Terminal shows dialogs with the bubbletea picker on the controlling terminal.
type Terminal struct{}

// Name implements Backend.
func (Terminal) Name() string { return BackendTUI }

// Show implements Backend.
func (Terminal) Show(ctx context.Context, req Request) (string, bool, error) {
	exts := DottedExtensions(req.Filters)
	if AllowsAny(req.Filters) {
		exts = nil
	}

	path, ok, err := tui.Run(ctx, tui.Options{
		Title:       req.Title,
		Save:        req.Mode == ModeSave,
		Directory:   req.Directory,
		Extensions:  exts,
		FilterLabel: describeFilters(req.Filters),
	})
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return path, ok, nil
}

// ForName returns the backend with the given name. "auto" prefers zenity,
// then kdialog, then the terminal picker when stdin is a terminal, and
// falls back to Unavailable.
func ForName(name string) (Backend, error) {
	switch name {
	case BackendAuto, "":
		return detect(), nil
	case BackendZenity, BackendKDialog:
		path := findInPath(name)
		if path == "" {
			return nil, fmt.Errorf("%w: %s not found on PATH", ErrNoBackend, name)
		}

		if name == BackendZenity {
			return NewZenity(path), nil
		}

		return NewKDialog(path), nil
	case BackendTUI:
		return Terminal{}, nil
	case BackendPrompt:
		return NewPrompt(), nil
	case BackendNone:
		return Unavailable{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

func detect() Backend {
	if p := findInPath(BackendZenity); p != "" {
		return NewZenity(p)
	}

	if p := findInPath(BackendKDialog); p != "" {
		return NewKDialog(p)
	}

	if stdinIsTerminal() {
		return Terminal{}
	}

	return Unavailable{}
}
