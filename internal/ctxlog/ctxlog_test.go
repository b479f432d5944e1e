// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(os.Stdout, nil))

	assert.Same(t, custom, Logger(New(context.Background(), custom)))
	assert.Same(t, DefaultLogger, Logger(New(context.Background(), nil)))
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		setupContext  func() context.Context
		expectDefault bool
	}{
		{
			name: "context with logger",
			setupContext: func() context.Context {
				logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
				return New(context.Background(), logger)
			},
			expectDefault: false,
		},
		{
			name:          "context without logger",
			setupContext:  context.Background,
			expectDefault: true,
		},
		{
			name: "context with nil logger value",
			setupContext: func() context.Context {
				return context.WithValue(context.Background(), loggerKey{}, nil)
			},
			expectDefault: true,
		},
		{
			name: "context with wrong type value",
			setupContext: func() context.Context {
				return context.WithValue(context.Background(), loggerKey{}, "not a logger")
			},
			expectDefault: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Logger(tt.setupContext())
			require.NotNil(t, logger)

			if tt.expectDefault {
				assert.Same(t, DefaultLogger, logger)
			} else {
				assert.NotSame(t, DefaultLogger, logger)
			}
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx := New(context.Background(), logger)

	tests := []struct {
		name     string
		logFunc  func(context.Context, string, ...any)
		expected string
	}{
		{name: "Info logging", logFunc: Info, expected: "INFO"},
		{name: "Debug logging", logFunc: Debug, expected: "DEBUG"},
		{name: "Warn logging", logFunc: Warn, expected: "WARN"},
		{name: "Error logging", logFunc: Error, expected: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, "a message", "key", "value")

			output := buf.String()
			assert.Contains(t, output, tt.expected)
			assert.Contains(t, output, "a message")
			assert.Contains(t, output, "key=value")
		})
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer

	ctx := New(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))
	ctx = With(ctx, "conn", "01ABC")

	Info(ctx, "hello")
	assert.Contains(t, buf.String(), "conn=01ABC")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: " Warn ", want: slog.LevelWarn},
		{in: "", want: slog.LevelWarn},
		{in: "ERROR", want: slog.LevelError},
		{in: "TRACE", want: slog.LevelWarn, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownLevel)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	prev := LevelVar.Level()
	t.Cleanup(func() { LevelVar.Set(prev) })
	LevelVar.Set(slog.LevelInfo)

	var buf bytes.Buffer

	logger, err := NewLogger(FormatJSON, &buf)
	require.NoError(t, err)
	logger.Info("json line", "n", 1)
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"msg":"json line"`)

	buf.Reset()

	logger, err = NewLogger(FormatPretty, &buf)
	require.NoError(t, err)
	logger.Info("pretty line")
	assert.Contains(t, buf.String(), "INFO:")
	assert.Contains(t, buf.String(), "pretty line")

	_, err = NewLogger("xml", &buf)
	require.ErrorIs(t, err, ErrUnknownFormat)
}
