// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/matt-FFFFFF/scrawl/internal/config"
	"github.com/matt-FFFFFF/scrawl/internal/dialog"
	"github.com/matt-FFFFFF/scrawl/internal/fileio"
	"github.com/matt-FFFFFF/scrawl/internal/ipc"
	"github.com/matt-FFFFFF/scrawl/internal/launch"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Addr = "127.0.0.1:0"
	cfg.Dialog = dialog.BackendNone

	return cfg
}

func stubFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	stubs := gostub.Stub(&fileio.FsFactory, func() afero.Fs { return fs })
	t.Cleanup(stubs.Reset)

	return fs
}

func TestCommands(t *testing.T) {
	assert.Equal(t, []string{"openFileDialog", "readFile", "saveFileDialog", "writeFile"}, Commands())
}

func TestNewUnknownBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Dialog = "finder"

	_, err := New(context.Background(), cfg, "")
	require.ErrorIs(t, err, ErrDialogBackend)
}

func TestNewMissingUIDir(t *testing.T) {
	stubFs(t)

	cfg := testConfig()
	cfg.UIDir = "/srv/ui"

	_, err := New(context.Background(), cfg, "")
	require.ErrorIs(t, err, ErrUIDir)
}

func TestNewStartupFile(t *testing.T) {
	fs := stubFs(t)
	require.NoError(t, afero.WriteFile(fs, "/tmp/x.txt", []byte("hello"), 0o644))

	a, err := New(context.Background(), testConfig(), "/tmp/x.txt")
	require.NoError(t, err)
	assert.True(t, a.StartupScheduled())

	a, err = New(context.Background(), testConfig(), "/tmp/missing.txt")
	require.NoError(t, err)
	assert.False(t, a.StartupScheduled())
}

func TestRunEndToEnd(t *testing.T) {
	fs := stubFs(t)
	require.NoError(t, afero.WriteFile(fs, "/tmp/x.txt", []byte("hello"), 0o644))

	a, err := New(context.Background(), testConfig(), "/tmp/x.txt")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	go func() { errCh <- a.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		<-errCh
	})

	select {
	case <-a.Server.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	dialCtx, dialCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer dialCancel()

	conn, _, err := websocket.Dial(dialCtx, "ws://"+a.Server.Addr()+ipc.Path+"?window=main", nil)
	require.NoError(t, err)

	defer conn.Close(websocket.StatusNormalClosure, "")

	conn.SetReadLimit(-1)

	var event ipc.Frame
	require.NoError(t, wsjson.Read(dialCtx, conn, &event))
	assert.Equal(t, ipc.FrameTypeEvent, event.Type)
	assert.Equal(t, launch.EventOpenFile, event.Event)
	assert.JSONEq(t, `"/tmp/x.txt"`, string(event.Payload))

	call := func(id uint64, method string, args any) ipc.Frame {
		var payload json.RawMessage
		if args != nil {
			b, err := json.Marshal(args)
			require.NoError(t, err)

			payload = b
		}

		require.NoError(t, wsjson.Write(dialCtx, conn, ipc.Frame{Type: ipc.FrameTypeRequest, ID: id, Method: method, Payload: payload}))

		var resp ipc.Frame
		require.NoError(t, wsjson.Read(dialCtx, conn, &resp))
		require.Equal(t, id, resp.ID)

		return resp
	}

	resp := call(1, "writeFile", map[string]string{"path": "/tmp/y.txt", "content": "world"})
	assert.Empty(t, resp.Error)

	resp = call(2, "readFile", map[string]string{"path": "/tmp/y.txt"})
	assert.Empty(t, resp.Error)
	assert.JSONEq(t, `"world"`, string(resp.Payload))

	big := strings.Repeat("scrawl\n", 20*1024)

	resp = call(6, "writeFile", map[string]string{"path": "/tmp/big.txt", "content": big})
	assert.Empty(t, resp.Error)

	resp = call(7, "readFile", map[string]string{"path": "/tmp/big.txt"})
	require.Empty(t, resp.Error)

	var got string
	require.NoError(t, json.Unmarshal(resp.Payload, &got))
	assert.Equal(t, big, got)

	resp = call(3, "readFile", map[string]string{"path": "/tmp/does-not-exist.txt"})
	assert.Contains(t, resp.Error, "Failed to read file")

	resp = call(4, "openFileDialog", nil)
	assert.Contains(t, resp.Error, "Dialog error")

	resp = call(5, "renameFile", nil)
	assert.Contains(t, resp.Error, "unknown command")
}
