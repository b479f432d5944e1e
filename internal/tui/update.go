// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.opts.Save {
		return textinput.Blink
	}

	return m.picker.Init()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, cancelKeys) {
		m.done = true
		m.confirmed = false

		return m, tea.Quit
	}

	if m.opts.Save {
		return m.updateSave(msg)
	}

	return m.updateOpen(msg)
}

func (m *Model) updateOpen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.result = m.resolve(path)
		m.confirmed = true
		m.done = true

		return m, tea.Quit
	}

	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.errMsg = path + " is not allowed by the filter"
		return m, cmd
	}

	return m, cmd
}

func (m *Model) updateSave(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.errMsg = "enter a file name"
			return m, nil
		}

		m.result = m.resolve(name)
		m.confirmed = true
		m.done = true

		return m, tea.Quit
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.errMsg = ""

	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.opts.Title))
	b.WriteString("\n")

	if m.opts.FilterLabel != "" {
		b.WriteString(filterStyle.Render(m.opts.FilterLabel))
		b.WriteString("\n")
	}

	b.WriteString(filterStyle.Render(m.opts.Directory))
	b.WriteString("\n\n")

	if m.opts.Save {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.picker.View())
	}

	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	if m.opts.Save {
		b.WriteString(helpStyle.Render("enter: save • esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("enter: open • h/l: navigate • esc: cancel"))
	}

	b.WriteString("\n")

	return b.String()
}
