// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/scrawl/internal/ctxlog"
)

// ForceExitCode is the process exit code used when a second signal arrives
// before a graceful shutdown finished.
const ForceExitCode = 130

// exit is replaced in tests.
var exit = os.Exit

// Watch cancels the context on the first signal so the host can shut down
// gracefully. A second signal of the same type exits the process immediately,
// which releases anything stuck behind an open dialog.
// Watch returns when sigCh is closed or the process is forced to exit.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Logger(ctx).Warn("watchdog", "detail", "received second signal of type, forcefully terminating", "signal", sig.String())
			exit(ForceExitCode)

			return
		}

		ctxlog.Logger(ctx).Info("watchdog", "detail", "received signal, shutting down", "signal", sig.String())

		seen[sig] = struct{}{}

		cancel()
	}
}
