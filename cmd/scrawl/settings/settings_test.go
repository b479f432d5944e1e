// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package settings

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/scrawl/internal/config"
	"github.com/matt-FFFFFF/scrawl/internal/ctxlog"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func resolveArgs(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()

	var (
		cfg *config.Config
		err error
	)

	cmd := &cli.Command{
		Name:  "scrawl",
		Flags: Flags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err = Resolve(cmd)
			return nil
		},
	}

	require.NoError(t, cmd.Run(context.Background(), append([]string{"scrawl"}, args...)))

	return cfg, err
}

func stubConfigFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	stubs := gostub.Stub(&config.FsFactory, func() afero.Fs { return fs })
	t.Cleanup(stubs.Reset)

	return fs
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	fs := stubConfigFs(t)
	require.NoError(t, afero.WriteFile(fs, "/cfg.yaml", []byte("addr: 127.0.0.1:9000\ndialog: prompt\n"), 0o644))

	cfg, err := resolveArgs(t, "--config", "/cfg.yaml", "--dialog", "tui", "--log-format", "json")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "tui", cfg.Dialog)
	assert.Equal(t, ctxlog.FormatJSON, cfg.LogFormat)
}

func TestResolveDefaults(t *testing.T) {
	stubConfigFs(t)

	cfg, err := resolveArgs(t, "--config", "")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAddr, cfg.Addr)
}

func TestResolveInvalid(t *testing.T) {
	stubConfigFs(t)

	_, err := resolveArgs(t, "--dialog", "finder")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestResolveMissingExplicitConfig(t *testing.T) {
	stubConfigFs(t)

	_, err := resolveArgs(t, "--config", "/nope.yaml")
	require.ErrorIs(t, err, config.ErrReadConfig)
}

func TestConfigureLogging(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.LogFormat = ctxlog.FormatJSON

	ctx, err := ConfigureLogging(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotSame(t, ctxlog.DefaultLogger, ctxlog.Logger(ctx))
	assert.True(t, ctxlog.Logger(ctx).Enabled(ctx, -4))

	cfg.LogFormat = "xml"
	_, err = ConfigureLogging(context.Background(), cfg)
	require.ErrorIs(t, err, ctxlog.ErrUnknownFormat)
}
