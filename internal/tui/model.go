// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Options configures one dialog.
type Options struct {
	Title       string
	Save        bool
	Directory   string
	Extensions  []string // dotted, e.g. ".txt"; empty allows every file
	FilterLabel string   // shown under the title
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	filterStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var cancelKeys = key.NewBinding(key.WithKeys("esc", "ctrl+c"))

// Model is the bubbletea model for a single file dialog.
type Model struct {
	opts      Options
	picker    filepicker.Model
	input     textinput.Model
	result    string
	confirmed bool
	done      bool
	errMsg    string
}

// NewModel creates a dialog model. A missing directory falls back to the
// working directory.
func NewModel(opts Options) *Model {
	dir := opts.Directory
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		} else {
			dir = "."
		}
	}

	opts.Directory = dir

	m := &Model{opts: opts}

	if opts.Save {
		ti := textinput.New()
		ti.Placeholder = "file name"
		ti.Prompt = "> "
		ti.CharLimit = 4096
		ti.Focus()
		m.input = ti

		return m
	}

	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = opts.Extensions
	fp.FileAllowed = true
	fp.DirAllowed = false
	fp.ShowHidden = false
	// esc cancels the dialog instead of walking up a directory.
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))
	m.picker = fp

	return m
}

// Result returns the chosen path and whether the user confirmed.
func (m *Model) Result() (string, bool) {
	if !m.confirmed {
		return "", false
	}

	return m.result, true
}

// Done reports whether the dialog has been closed.
func (m *Model) Done() bool {
	return m.done
}

func (m *Model) resolve(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.opts.Directory, path)
	}

	return filepath.Clean(path)
}
