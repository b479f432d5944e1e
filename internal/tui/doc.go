// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui implements a terminal file dialog with bubbletea.
//
// Open mode browses the filesystem with the bubbles file picker, restricted to
// the allowed extensions. Save mode asks for a file name in a text input.
// Esc or ctrl+c cancels either mode.
package tui
