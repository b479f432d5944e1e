// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dialog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/afero"
)

// lineReader is the part of *liner.State used by Prompt.
type lineReader interface {
	Prompt(prompt string) (string, error)
	SetCtrlCAborts(aborts bool)
	SetCompleter(f liner.Completer)
	Close() error
}

// newLineReader is replaced in tests.
var newLineReader = func() lineReader {
	return liner.NewLiner()
}

// Prompt asks for a path on the terminal, with tab completion.
// An empty line, Ctrl+C or end of input cancels.
type Prompt struct {
	Fs  afero.Fs
	Out io.Writer
}

// NewPrompt returns a Prompt on the OS filesystem writing hints to stderr.
func NewPrompt() *Prompt {
	return &Prompt{Fs: afero.NewOsFs(), Out: os.Stderr}
}

// Name implements Backend.
func (p *Prompt) Name() string { return "prompt" }

// Show implements Backend.
func (p *Prompt) Show(_ context.Context, req Request) (string, bool, error) {
	line := newLineReader()
	defer line.Close() //nolint:errcheck

	line.SetCtrlCAborts(true)
	line.SetCompleter(p.complete)

	fmt.Fprintf(p.Out, "%s [%s]\n", req.Title, describeFilters(req.Filters)) //nolint:errcheck

	for {
		input, err := line.Prompt(req.Mode.String() + "> ")

		switch {
		case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
			return "", false, nil
		case err != nil:
			return "", false, fmt.Errorf("%w: prompt: %w", ErrBackend, err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			return "", false, nil
		}

		path := p.resolve(req.Directory, input)

		if req.Mode == ModeOpen {
			if ok, _ := afero.Exists(p.Fs, path); !ok {
				fmt.Fprintf(p.Out, "%s does not exist\n", path) //nolint:errcheck
				continue
			}
		}

		if !Matches(path, req.Filters) {
			fmt.Fprintf(p.Out, "%s is not allowed by the filter\n", path) //nolint:errcheck
			continue
		}

		return path, true, nil
	}
}

func (p *Prompt) resolve(dir, input string) string {
	if input == "~" || strings.HasPrefix(input, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			input = filepath.Join(home, strings.TrimPrefix(input, "~"))
		}
	}

	if !filepath.IsAbs(input) && dir != "" {
		input = filepath.Join(dir, input)
	}

	if abs, err := filepath.Abs(input); err == nil {
		return abs
	}

	return filepath.Clean(input)
}

// complete lists entries in the directory of line whose names start with
// the last path element. Directories get a trailing separator.
func (p *Prompt) complete(line string) []string {
	dir, prefix := filepath.Split(line)

	readDir := dir
	if readDir == "" {
		readDir = "."
	}

	entries, err := afero.ReadDir(p.Fs, readDir)
	if err != nil {
		return nil
	}

	var out []string

	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), prefix) {
			continue
		}

		c := dir + e.Name()
		if e.IsDir() {
			c += string(filepath.Separator)
		}

		out = append(out, c)
	}

	return out
}

func describeFilters(filters []Filter) string {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Name, strings.Join(f.Patterns(), " ")))
	}

	return strings.Join(parts, ", ")
}
