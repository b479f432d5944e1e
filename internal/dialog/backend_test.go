// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dialog

import (
	"runtime"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForName(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bits")
	}

	dir := t.TempDir()
	zenity := writeExecutable(t, dir, "zenity", "exit 0")
	t.Setenv("PATH", dir)

	b, err := ForName(BackendZenity)
	require.NoError(t, err)
	assert.Equal(t, "zenity", b.Name())
	assert.Equal(t, zenity, b.(*Program).Path())

	_, err = ForName(BackendKDialog)
	require.ErrorIs(t, err, ErrNoBackend)

	b, err = ForName(BackendTUI)
	require.NoError(t, err)
	assert.Equal(t, "tui", b.Name())

	b, err = ForName(BackendPrompt)
	require.NoError(t, err)
	assert.Equal(t, "prompt", b.Name())

	b, err = ForName(BackendNone)
	require.NoError(t, err)
	assert.Equal(t, "none", b.Name())

	_, err = ForName("gtk4")
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestForName_AutoDetection(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bits")
	}

	t.Run("prefers zenity", func(t *testing.T) {
		dir := t.TempDir()
		writeExecutable(t, dir, "zenity", "exit 0")
		writeExecutable(t, dir, "kdialog", "exit 0")
		t.Setenv("PATH", dir)

		b, err := ForName(BackendAuto)
		require.NoError(t, err)
		assert.Equal(t, "zenity", b.Name())
	})

	t.Run("falls back to kdialog", func(t *testing.T) {
		dir := t.TempDir()
		writeExecutable(t, dir, "kdialog", "exit 0")
		t.Setenv("PATH", dir)

		b, err := ForName("")
		require.NoError(t, err)
		assert.Equal(t, "kdialog", b.Name())
	})

	t.Run("terminal when interactive", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		stubs := gostub.Stub(&stdinIsTerminal, func() bool { return true })
		defer stubs.Reset()

		b, err := ForName(BackendAuto)
		require.NoError(t, err)
		assert.Equal(t, "tui", b.Name())
	})

	t.Run("unavailable otherwise", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		stubs := gostub.Stub(&stdinIsTerminal, func() bool { return false })
		defer stubs.Reset()

		b, err := ForName(BackendAuto)
		require.NoError(t, err)
		assert.Equal(t, "none", b.Name())
	})
}
