// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package launch forwards a file named on the command line to the UI.
package launch

import (
	"context"
	"path/filepath"

	"github.com/matt-FFFFFF/scrawl/internal/ctxlog"
	"github.com/spf13/afero"
)

// EventOpenFile is emitted with the absolute path of the startup file.
const EventOpenFile = "open-file"

// Host is the part of the IPC host the startup hook needs.
type Host interface {
	Emit(label, event string, payload any) bool
	OnWindowReady(label string, fn func(ctx context.Context))
}

// ResolveArg returns the absolute form of arg if it names an existing path.
func ResolveArg(fsys afero.Fs, arg string) (string, bool) {
	if arg == "" {
		return "", false
	}

	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", false
	}

	if ok, err := afero.Exists(fsys, abs); err != nil || !ok {
		return "", false
	}

	return abs, true
}

// Install arranges for a single open-file event to reach window once it
// connects. It reports whether an event was scheduled.
func Install(ctx context.Context, host Host, fsys afero.Fs, window, arg string) bool {
	path, ok := ResolveArg(fsys, arg)
	if !ok {
		if arg != "" {
			ctxlog.Warn(ctx, "startup file not found, ignoring", "path", arg)
		}

		return false
	}

	ctxlog.Debug(ctx, "startup file scheduled", "path", path, "window", window)

	host.OnWindowReady(window, func(ctx context.Context) {
		if !host.Emit(window, EventOpenFile, path) {
			ctxlog.Warn(ctx, "open-file event not delivered", "path", path)
		}
	})

	return true
}
