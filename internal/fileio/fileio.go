// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fileio reads and writes whole text files.
// All access goes through an afero.Fs so tests can run against memory.
package fileio

import (
	"context"
	"errors"
	"io/fs"
	"unicode/utf8"

	"github.com/matt-FFFFFF/scrawl/internal/ctxlog"
	"github.com/spf13/afero"
)

// sixFourFour is the mode given to files created by Write.
const sixFourFour = 0o644

// ErrInvalidText is returned by Read when the file is not valid UTF-8.
var ErrInvalidText = errors.New("stream did not contain valid UTF-8")

// Kind classifies a filesystem failure.
type Kind string

const (
	// KindNotFound means the path or one of its parents does not exist.
	KindNotFound Kind = "not-found"
	// KindPermission means the OS denied access.
	KindPermission Kind = "permission"
	// KindEncoding means the content was not valid text.
	KindEncoding Kind = "encoding"
	// KindOther covers everything else (is a directory, disk full, ...).
	KindOther Kind = "other"
)

// Classify maps an error returned by this package to its Kind.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidText):
		return KindEncoding
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	default:
		return KindOther
	}
}

// FsFactory returns the filesystem used by Default.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Store reads and writes files on one filesystem. It holds no other state
// and is safe for concurrent use; concurrent access to the same path races
// exactly as the filesystem allows.
type Store struct {
	fs afero.Fs
}

// New returns a Store backed by fsys.
func New(fsys afero.Fs) *Store {
	return &Store{fs: fsys}
}

// Default returns a Store on the filesystem from FsFactory.
func Default() *Store {
	return New(FsFactory())
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs {
	return s.fs
}

// Read returns the entire content of path as text.
func (s *Store) Read(ctx context.Context, path string) (string, error) {
	b, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", ErrInvalidText
	}

	ctxlog.Debug(ctx, "file read", "path", path, "bytes", len(b))

	return string(b), nil
}

// Write replaces the content of path, creating the file if needed.
// The parent directory must already exist. The write is not atomic.
func (s *Store) Write(ctx context.Context, path, content string) error {
	if err := afero.WriteFile(s.fs, path, []byte(content), sixFourFour); err != nil {
		return err
	}

	ctxlog.Debug(ctx, "file written", "path", path, "bytes", len(content))

	return nil
}

// Exists reports whether path names an existing file or directory.
func (s *Store) Exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)

	return err == nil && ok
}
