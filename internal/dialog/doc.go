// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dialog presents native file pickers.
//
// A Service owns one Backend and shows at most one dialog at a time. Each call
// returns a Future that resolves exactly once, when the user confirms or
// cancels, or when the backend fails. Cancellation is a successful result
// with no path.
//
// Backends: zenity and kdialog (external programs found on PATH), tui (a
// bubbletea picker on the controlling terminal) and prompt (a readline-style
// prompt).
package dialog
