// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/matt-FFFFFF/scrawl/internal/fileio"
)

// IoError is a filesystem failure from readFile or writeFile.
type IoError struct {
	Op   string // "read" or "write"
	Path string
	Kind fileio.Kind
	Err  error
}

// Error implements error. The message embeds the OS error text.
func (e *IoError) Error() string {
	return fmt.Sprintf("Failed to %s file: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *IoError) Unwrap() error {
	return e.Err
}

func newIoError(op, path string, err error) *IoError {
	return &IoError{Op: op, Path: path, Kind: fileio.Classify(err), Err: err}
}

// DialogError is a failure of the dialog subsystem itself.
type DialogError struct {
	Err error
}

// Error implements error.
func (e *DialogError) Error() string {
	return fmt.Sprintf("Dialog error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DialogError) Unwrap() error {
	return e.Err
}
