// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package surface is the set of commands the editor UI can invoke:
// readFile, writeFile, openFileDialog and saveFileDialog.
//
// Each command is independent and stateless. Failures are reported as
// *IoError or *DialogError, whose messages are what the UI displays.
// Cancelling a dialog is not a failure; it yields a nil path.
package surface
