// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dialog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// cancelExitCode is what zenity and kdialog return when the user cancels.
const cancelExitCode = 1

// execResult is the outcome of running a dialog program to completion.
type execResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runProgram runs a dialog program. It is replaced in tests.
var runProgram = func(ctx context.Context, path string, args ...string) (execResult, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		err = nil
	}

	if err != nil {
		return execResult{}, err
	}

	return execResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}

// Program is a backend that shells out to an external dialog program.
type Program struct {
	name string
	path string
	args func(Request) []string
}

// Name implements Backend.
func (p *Program) Name() string {
	return p.name
}

// Path returns the program's absolute path.
func (p *Program) Path() string {
	return p.path
}

// Show implements Backend.
func (p *Program) Show(ctx context.Context, req Request) (string, bool, error) {
	res, err := runProgram(ctx, p.path, p.args(req)...)
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %w", ErrBackend, p.name, err)
	}

	switch res.ExitCode {
	case 0:
		path := strings.TrimRight(res.Stdout, "\r\n")
		if path == "" {
			return "", false, nil
		}

		return path, true, nil
	case cancelExitCode:
		return "", false, nil
	default:
		detail := strings.TrimSpace(res.Stderr)
		if detail == "" {
			detail = "no output"
		}

		return "", false, fmt.Errorf("%w: %s exited with code %d: %s", ErrBackend, p.name, res.ExitCode, detail)
	}
}

// NewZenity returns a GTK dialog backend using the zenity program at path.
func NewZenity(path string) *Program {
	return &Program{name: "zenity", path: path, args: zenityArgs}
}

// NewKDialog returns a KDE dialog backend using the kdialog program at path.
func NewKDialog(path string) *Program {
	return &Program{name: "kdialog", path: path, args: kdialogArgs}
}

func zenityArgs(req Request) []string {
	args := []string{"--file-selection", "--title=" + req.Title}

	if req.Mode == ModeSave {
		args = append(args, "--save")
	}

	if req.Directory != "" {
		args = append(args, "--filename="+withTrailingSeparator(req.Directory))
	}

	for _, f := range req.Filters {
		args = append(args, fmt.Sprintf("--file-filter=%s | %s", f.Name, strings.Join(f.Patterns(), " ")))
	}

	return args
}

func kdialogArgs(req Request) []string {
	op := "--getopenfilename"
	if req.Mode == ModeSave {
		op = "--getsavefilename"
	}

	dir := req.Directory
	if dir == "" {
		dir = "."
	}

	filters := make([]string, 0, len(req.Filters))
	for _, f := range req.Filters {
		filters = append(filters, strings.Join(f.Patterns(), " ")+"|"+f.Name)
	}

	args := []string{"--title", req.Title, op, dir}
	if len(filters) > 0 {
		args = append(args, strings.Join(filters, "\n"))
	}

	return args
}

func withTrailingSeparator(dir string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir
	}

	return dir + string(filepath.Separator)
}

// findInPath returns the full path of an executable named command found on
// PATH, or "" if there is none.
func findInPath(command string) string {
	if command == "" {
		return ""
	}

	for _, p := range filepath.SplitList(os.Getenv("PATH")) {
		if p == "" {
			continue
		}

		candidate := filepath.Join(p, command)

		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}

		if runtime.GOOS != "windows" && info.Mode()&0o111 == 0 {
			continue
		}

		return candidate
	}

	return ""
}
