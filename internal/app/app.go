// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package app assembles the command surface, the dialog service and the IPC
// host from a configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/scrawl/internal/config"
	"github.com/matt-FFFFFF/scrawl/internal/ctxlog"
	"github.com/matt-FFFFFF/scrawl/internal/dialog"
	"github.com/matt-FFFFFF/scrawl/internal/fileio"
	"github.com/matt-FFFFFF/scrawl/internal/ipc"
	"github.com/matt-FFFFFF/scrawl/internal/launch"
	"github.com/matt-FFFFFF/scrawl/internal/surface"
	"github.com/spf13/afero"
)

var (
	// ErrDialogBackend is returned when the configured dialog backend cannot be used.
	ErrDialogBackend = errors.New("failed to initialise dialog backend")
	// ErrUIDir is returned when the UI directory is not a readable directory.
	ErrUIDir = errors.New("ui directory is not usable")
)

// App is a ready-to-run editor backend.
type App struct {
	Registry *surface.Registry
	Server   *ipc.Server
	Dialogs  *dialog.Service

	startupScheduled bool
}

// New builds the application. startupFile is the optional file named on the
// command line.
func New(ctx context.Context, cfg *config.Config, startupFile string) (*App, error) {
	backend, err := dialog.ForName(cfg.Dialog)
	if err != nil {
		return nil, errors.Join(ErrDialogBackend, err)
	}

	ctxlog.Debug(ctx, "dialog backend selected", "backend", backend.Name())

	store := fileio.Default()

	opts := []dialog.Option{
		dialog.WithOpenFilters(cfg.OpenFilters),
		dialog.WithSaveFilters(cfg.SaveFilters),
	}

	if wd, err := os.Getwd(); err == nil {
		opts = append(opts, dialog.WithDirectory(wd))
	}

	dialogs := dialog.NewService(backend, opts...)

	registry := surface.NewRegistry()
	if err := surface.New(store, dialogs).Register(registry); err != nil {
		return nil, err
	}

	var serverOpts []ipc.Option

	if cfg.UIDir != "" {
		ui, err := uiFs(store.Fs(), cfg.UIDir)
		if err != nil {
			return nil, err
		}

		serverOpts = append(serverOpts, ipc.WithUI(ui))
	}

	server := ipc.NewServer(registry, cfg.Addr, serverOpts...)

	return &App{
		Registry:         registry,
		Server:           server,
		Dialogs:          dialogs,
		startupScheduled: launch.Install(ctx, server, store.Fs(), cfg.MainWindow, startupFile),
	}, nil
}

// StartupScheduled reports whether an open-file event is pending.
func (a *App) StartupScheduled() bool {
	return a.startupScheduled
}

// Run serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	return a.Server.Start(ctx)
}

// Commands lists the command names exposed to the UI.
func Commands() []string {
	registry := surface.NewRegistry()

	// Registering into an empty registry cannot collide.
	_ = surface.New(fileio.Default(), dialog.NewService(dialog.Unavailable{})).Register(registry)

	return registry.Names()
}

func uiFs(fs afero.Fs, dir string) (afero.Fs, error) {
	ok, err := afero.DirExists(fs, dir)
	if err != nil {
		return nil, errors.Join(ErrUIDir, err)
	}

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUIDir, dir)
	}

	return afero.NewReadOnlyFs(afero.NewBasePathFs(fs, dir)), nil
}
