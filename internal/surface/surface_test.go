// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package surface

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/scrawl/internal/dialog"
	"github.com/matt-FFFFFF/scrawl/internal/fileio"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// stubBackend answers every dialog the same way.
type stubBackend struct {
	path string
	ok   bool
	err  error
	last dialog.Request
}

func (b *stubBackend) Name() string { return "stub" }

func (b *stubBackend) Show(_ context.Context, req dialog.Request) (string, bool, error) {
	b.last = req
	return b.path, b.ok, b.err
}

func newSurface(fsys afero.Fs, b dialog.Backend) *Surface {
	return New(fileio.New(fsys), dialog.NewService(b))
}

func TestWriteThenReadScenario(t *testing.T) {
	ctx := context.Background()
	s := newSurface(afero.NewMemMapFs(), dialog.Unavailable{})

	require.NoError(t, s.WriteFile(ctx, "/tmp/x.txt", "hello"))

	got, err := s.ReadFile(ctx, "/tmp/x.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestReadMissingFileIsIoError(t *testing.T) {
	s := newSurface(afero.NewMemMapFs(), dialog.Unavailable{})

	_, err := s.ReadFile(context.Background(), "/tmp/does-not-exist.txt")

	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.Equal(t, fileio.KindNotFound, ioErr.Kind)
	assert.Equal(t, "/tmp/does-not-exist.txt", ioErr.Path)
	assert.Contains(t, err.Error(), "Failed to read file: ")
	assert.Contains(t, err.Error(), "does-not-exist.txt")
}

func TestWriteUnderMissingDirectoryIsIoError(t *testing.T) {
	s := newSurface(afero.NewOsFs(), dialog.Unavailable{})
	p := filepath.Join(t.TempDir(), "no", "such", "dir", "x.txt")

	err := s.WriteFile(context.Background(), p, "anything")

	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)
	assert.Equal(t, fileio.KindNotFound, ioErr.Kind)
	assert.Contains(t, err.Error(), "Failed to write file: ")
}

func TestReadInvalidTextIsIoError(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/blob", []byte{0xc3, 0x28}, 0o644))

	_, err := newSurface(fsys, dialog.Unavailable{}).ReadFile(context.Background(), "/blob")

	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, fileio.KindEncoding, ioErr.Kind)
	assert.ErrorIs(t, err, fileio.ErrInvalidText)
}

func TestOpenFileDialog(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("confirmed", func(t *testing.T) {
		b := &stubBackend{path: "/home/u/a.md", ok: true}
		got, err := newSurface(afero.NewMemMapFs(), b).OpenFileDialog(context.Background())

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "/home/u/a.md", *got)
		assert.Equal(t, dialog.DefaultOpenFilters(), b.last.Filters)
	})

	t.Run("cancel yields nothing", func(t *testing.T) {
		got, err := newSurface(afero.NewMemMapFs(), &stubBackend{}).OpenFileDialog(context.Background())

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("backend failure is DialogError", func(t *testing.T) {
		b := &stubBackend{err: errors.New("no display")}
		_, err := newSurface(afero.NewMemMapFs(), b).OpenFileDialog(context.Background())

		var dErr *DialogError
		require.ErrorAs(t, err, &dErr)
		assert.Equal(t, "Dialog error: no display", err.Error())
	})
}

func TestSaveFileDialogDoesNotWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	fsys := afero.NewMemMapFs()
	b := &stubBackend{path: "/tmp/new.txt", ok: true}

	got, err := newSurface(fsys, b).SaveFileDialog(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "/tmp/new.txt", *got)
	assert.Equal(t, dialog.DefaultSaveFilters(), b.last.Filters)
	assert.Equal(t, dialog.ModeSave, b.last.Mode)

	exists, err := afero.Exists(fsys, "/tmp/new.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

// gateBackend blocks every dialog until release is closed.
type gateBackend struct {
	release chan struct{}
}

func (b *gateBackend) Name() string { return "gate" }

func (b *gateBackend) Show(context.Context, dialog.Request) (string, bool, error) {
	<-b.release
	return "", false, nil
}

func TestDialogWaitInterruptedByContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := &gateBackend{release: make(chan struct{})}
	defer close(b.release)

	s := newSurface(afero.NewMemMapFs(), b)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := s.OpenFileDialog(ctx)
	assert.Nil(t, got)
	require.ErrorIs(t, err, context.Canceled)

	var dErr *DialogError
	assert.False(t, errors.As(err, &dErr))
}
