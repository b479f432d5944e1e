// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package surface

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/matt-FFFFFF/scrawl/internal/ctxlog"
)

// Command names as invoked by the UI.
const (
	CmdReadFile       = "readFile"
	CmdWriteFile      = "writeFile"
	CmdOpenFileDialog = "openFileDialog"
	CmdSaveFileDialog = "saveFileDialog"
)

var (
	// ErrUnknownCommand is returned when no handler is registered for a name.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrDuplicateCommand is returned when a name is registered twice.
	ErrDuplicateCommand = errors.New("command already registered")
	// ErrBadArguments is returned when a payload cannot be decoded.
	ErrBadArguments = errors.New("invalid command arguments")
	// ErrEncodeResult is returned when a result cannot be encoded.
	ErrEncodeResult = errors.New("failed to encode command result")
)

// Handler runs one command. payload is the raw JSON arguments, possibly empty.
type Handler func(ctx context.Context, payload json.RawMessage) (any, error)

// Registry maps command names to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under name.
func (r *Registry) Register(name string, h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}

	r.handlers[name] = h

	return nil
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.handlers))
}

// Invoke runs the named command and returns its JSON-encoded result.
func (r *Registry) Invoke(ctx context.Context, name string, payload json.RawMessage) (json.RawMessage, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	logger := ctxlog.Logger(ctx).With("command", name)
	start := time.Now()

	logger.Debug("command invoked")

	result, err := h(ctx, payload)
	if err != nil {
		logger.Warn("command failed", "error", err, "duration", time.Since(start))
		return nil, err
	}

	b, err := json.Marshal(result)
	if err != nil {
		return nil, errors.Join(ErrEncodeResult, err)
	}

	logger.Debug("command completed", "duration", time.Since(start))

	return b, nil
}

type readFileArgs struct {
	Path *string `json:"path"`
}

type writeFileArgs struct {
	Path    *string `json:"path"`
	Content *string `json:"content"`
}

func decodeArgs(payload json.RawMessage, v any) error {
	if len(payload) == 0 {
		return fmt.Errorf("%w: missing payload", ErrBadArguments)
	}

	if err := json.Unmarshal(payload, v); err != nil {
		return errors.Join(ErrBadArguments, err)
	}

	return nil
}

func missing(key string) error {
	return fmt.Errorf("%w: missing required key %s", ErrBadArguments, key)
}

// Register adds the four commands of s to r.
func (s *Surface) Register(r *Registry) error {
	return errors.Join(
		r.Register(CmdReadFile, func(ctx context.Context, payload json.RawMessage) (any, error) {
			var args readFileArgs
			if err := decodeArgs(payload, &args); err != nil {
				return nil, err
			}

			if args.Path == nil {
				return nil, missing("path")
			}

			return s.ReadFile(ctx, *args.Path)
		}),
		r.Register(CmdWriteFile, func(ctx context.Context, payload json.RawMessage) (any, error) {
			var args writeFileArgs
			if err := decodeArgs(payload, &args); err != nil {
				return nil, err
			}

			if args.Path == nil {
				return nil, missing("path")
			}

			if args.Content == nil {
				return nil, missing("content")
			}

			return nil, s.WriteFile(ctx, *args.Path, *args.Content)
		}),
		r.Register(CmdOpenFileDialog, func(ctx context.Context, _ json.RawMessage) (any, error) {
			return s.OpenFileDialog(ctx)
		}),
		r.Register(CmdSaveFileDialog, func(ctx context.Context, _ json.RawMessage) (any, error) {
			return s.SaveFileDialog(ctx)
		}),
	)
}
