// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dialog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/matt-FFFFFF/scrawl/internal/ctxlog"
)

var (
	// ErrNoBackend is returned when no dialog program or terminal is available.
	ErrNoBackend = errors.New("no dialog backend available")
	// ErrBackend wraps a failure of the dialog subsystem itself.
	ErrBackend = errors.New("dialog backend failed")
	// ErrUnknownBackend is returned by ForName for an unrecognised name.
	ErrUnknownBackend = errors.New("unknown dialog backend")
)

// Mode selects between picking an existing file and choosing a save target.
type Mode int

const (
	// ModeOpen picks an existing file.
	ModeOpen Mode = iota
	// ModeSave chooses a path to save to. The file is not created.
	ModeSave
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeOpen:
		return "open"
	case ModeSave:
		return "save"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Request describes one dialog.
type Request struct {
	Mode      Mode
	Title     string
	Filters   []Filter
	Directory string
}

// Backend shows a dialog and blocks until it closes.
// ok is false on cancellation; err is reserved for backend failures.
type Backend interface {
	Name() string
	Show(ctx context.Context, req Request) (path string, ok bool, err error)
}

// Service shows dialogs one at a time on a Backend.
type Service struct {
	backend     Backend
	openFilters []Filter
	saveFilters []Filter
	directory   string
	mu          sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithOpenFilters replaces the filters offered by Open.
func WithOpenFilters(f []Filter) Option {
	return func(s *Service) {
		if len(f) > 0 {
			s.openFilters = f
		}
	}
}

// WithSaveFilters replaces the filters offered by Save.
func WithSaveFilters(f []Filter) Option {
	return func(s *Service) {
		if len(f) > 0 {
			s.saveFilters = f
		}
	}
}

// WithDirectory sets the directory dialogs start in.
func WithDirectory(dir string) Option {
	return func(s *Service) {
		s.directory = dir
	}
}

// NewService returns a Service using backend and the default filters.
func NewService(backend Backend, opts ...Option) *Service {
	s := &Service{
		backend:     backend,
		openFilters: DefaultOpenFilters(),
		saveFilters: DefaultSaveFilters(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Backend returns the backend in use.
func (s *Service) Backend() Backend {
	return s.backend
}

// Open shows a file picker restricted to the open filters.
func (s *Service) Open(ctx context.Context) *Future {
	return s.Show(ctx, Request{
		Mode:      ModeOpen,
		Title:     "Open File",
		Filters:   s.openFilters,
		Directory: s.directory,
	})
}

// Save shows a save-target picker restricted to the save filters.
func (s *Service) Save(ctx context.Context) *Future {
	return s.Show(ctx, Request{
		Mode:      ModeSave,
		Title:     "Save File",
		Filters:   s.saveFilters,
		Directory: s.directory,
	})
}

// Show runs req on the backend in its own goroutine and returns a Future
// for the outcome. The backend sees a context that is never cancelled:
// once shown, a dialog stays up until the user closes it.
func (s *Service) Show(ctx context.Context, req Request) *Future {
	f := NewFuture()
	bctx := context.WithoutCancel(ctx)

	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		defer func() {
			if r := recover(); r != nil {
				f.Reject(fmt.Errorf("%w: %s: panic: %v", ErrBackend, s.backend.Name(), r))
			}
		}()

		ctxlog.Debug(bctx, "dialog shown", "backend", s.backend.Name(), "mode", req.Mode.String())

		path, ok, err := s.backend.Show(bctx, req)
		if err != nil {
			ctxlog.Warn(bctx, "dialog failed", "backend", s.backend.Name(), "error", err)
			f.Reject(err)

			return
		}

		ctxlog.Debug(bctx, "dialog closed", "backend", s.backend.Name(), "confirmed", ok)
		f.Resolve(Result{Path: path, OK: ok && path != ""})
	}()

	return f
}

// Unavailable is the backend used when nothing else can show a dialog.
type Unavailable struct{}

// Name implements Backend.
func (Unavailable) Name() string { return "none" }

// Show implements Backend.
func (Unavailable) Show(context.Context, Request) (string, bool, error) {
	return "", false, ErrNoBackend
}
