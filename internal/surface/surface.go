// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package surface

import (
	"context"

	"github.com/matt-FFFFFF/scrawl/internal/dialog"
	"github.com/matt-FFFFFF/scrawl/internal/fileio"
)

// Surface implements the four commands on a file store and a dialog service.
type Surface struct {
	files   *fileio.Store
	dialogs *dialog.Service
}

// New returns a Surface.
func New(files *fileio.Store, dialogs *dialog.Service) *Surface {
	return &Surface{files: files, dialogs: dialogs}
}

// ReadFile returns the whole content of path.
func (s *Surface) ReadFile(ctx context.Context, path string) (string, error) {
	content, err := s.files.Read(ctx, path)
	if err != nil {
		return "", newIoError("read", path, err)
	}

	return content, nil
}

// WriteFile replaces the content of path, creating it if needed.
func (s *Surface) WriteFile(ctx context.Context, path, content string) error {
	if err := s.files.Write(ctx, path, content); err != nil {
		return newIoError("write", path, err)
	}

	return nil
}

// OpenFileDialog asks the user for a file to open.
// It returns nil when the user cancels.
func (s *Surface) OpenFileDialog(ctx context.Context) (*string, error) {
	return await(ctx, s.dialogs.Open(ctx))
}

// SaveFileDialog asks the user for a path to save to. It does not write
// anything. It returns nil when the user cancels.
func (s *Surface) SaveFileDialog(ctx context.Context) (*string, error) {
	return await(ctx, s.dialogs.Save(ctx))
}

func await(ctx context.Context, f *dialog.Future) (*string, error) {
	res, err := f.Wait(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, &DialogError{Err: err}
	}

	if !res.OK {
		return nil, nil
	}

	return &res.Path, nil
}
