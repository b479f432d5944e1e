// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ipc is the host the editor UI connects to. Each UI window opens a
// WebSocket to /ipc under a label, sends command requests and receives
// responses and events.
package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/scrawl/internal/ctxlog"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	// DefaultWindow is the label used when a connection does not name one.
	DefaultWindow = "main"
	// Path is the WebSocket endpoint.
	Path = "/ipc"

	sendQueueSize   = 64
	writeTimeout    = 5 * time.Second
	shutdownTimeout = 5 * time.Second
)

// ErrListen is returned when the listen address cannot be bound.
var ErrListen = errors.New("ipc: listen failed")

// Dispatcher runs a named command with raw JSON arguments.
type Dispatcher interface {
	Invoke(ctx context.Context, name string, payload json.RawMessage) (json.RawMessage, error)
}

// window is one connected UI window.
type window struct {
	label     string
	id        string
	ws        *websocket.Conn
	sendCh    chan Frame
	done      chan struct{}
	closeOnce sync.Once
}

func (w *window) close() {
	w.closeOnce.Do(func() { close(w.done) })
}

// Server accepts window connections and routes their requests to a Dispatcher.
type Server struct {
	dispatcher Dispatcher
	addr       string
	ui         afero.Fs
	logger     *slog.Logger

	mu      sync.Mutex
	windows map[string]*window
	hooks   map[string][]func(context.Context)

	httpSrv   *http.Server
	ready     chan struct{}
	boundAddr string
	stopping  chan struct{}
	stopOnce  sync.Once
}

// Option configures a Server.
type Option func(*Server)

// WithUI serves the given filesystem read-only at "/".
func WithUI(fsys afero.Fs) Option {
	return func(s *Server) {
		s.ui = fsys
	}
}

// NewServer creates a server that will listen on addr.
func NewServer(d Dispatcher, addr string, opts ...Option) *Server {
	s := &Server{
		dispatcher: d,
		addr:       addr,
		logger:     ctxlog.DefaultLogger,
		windows:    make(map[string]*window),
		hooks:      make(map[string][]func(context.Context)),
		ready:      make(chan struct{}),
		stopping:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler returns the HTTP handler serving the IPC endpoint and the UI.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, s.handleUpgrade)

	if s.ui != nil {
		mux.Handle("/", http.FileServer(afero.NewHttpFs(afero.NewReadOnlyFs(s.ui)).Dir("/")))
	}

	return mux
}

// Start listens and serves until ctx is cancelled or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	s.logger = ctxlog.Logger(ctx)

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrListen, err)
	}

	s.httpSrv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.mu.Lock()
	s.boundAddr = listener.Addr().String()
	s.mu.Unlock()
	close(s.ready)

	s.logger.Info("ipc server started", "addr", listener.Addr().String())

	stopped := make(chan error, 1)

	go func() {
		select {
		case <-ctx.Done():
			stopped <- s.Stop(context.Background())
		case <-s.stopping:
			stopped <- nil
		}
	}()

	if err := s.httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ipc serve: %w", err)
	}

	return <-stopped
}

// Ready is closed once Start has bound its listener.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address. It is empty until Ready is closed.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.boundAddr
}

// Stop closes every window and shuts the HTTP server down.
func (s *Server) Stop(ctx context.Context) error {
	var result *multierror.Error

	s.stopOnce.Do(func() { close(s.stopping) })

	s.mu.Lock()
	windows := slices.Collect(maps.Values(s.windows))
	clear(s.windows)
	s.mu.Unlock()

	for _, w := range windows {
		w.close()

		if err := w.ws.Close(websocket.StatusGoingAway, "host shutting down"); err != nil && !isClosed(err) {
			result = multierror.Append(result, fmt.Errorf("close window %s: %w", w.label, err))
		}
	}

	if s.httpSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// Windows returns the labels of the connected windows, sorted.
func (s *Server) Windows() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Sorted(maps.Keys(s.windows))
}

// Emit queues an event for the window with the given label. It is
// best-effort: false means the window is not connected or is not keeping up,
// and the event is dropped.
func (s *Server) Emit(label, event string, payload any) bool {
	b, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("ipc: cannot encode event payload", "event", event, "error", err)
		return false
	}

	s.mu.Lock()
	w, ok := s.windows[label]
	s.mu.Unlock()

	if !ok {
		s.logger.Debug("ipc: event dropped, window not connected", "window", label, "event", event)
		return false
	}

	select {
	case w.sendCh <- Frame{Type: FrameTypeEvent, Event: event, Payload: b}:
		return true
	case <-w.done:
		return false
	default:
		s.logger.Warn("ipc: event dropped for slow window", "window", label, "event", event)
		return false
	}
}

// OnWindowReady runs fn once, the first time a window with label connects.
// If such a window is already connected fn runs immediately.
// fn runs on the connection's goroutine and must not block.
func (s *Server) OnWindowReady(label string, fn func(ctx context.Context)) {
	s.mu.Lock()
	_, connected := s.windows[label]

	if !connected {
		s.hooks[label] = append(s.hooks[label], fn)
	}
	s.mu.Unlock()

	if connected {
		fn(ctxlog.New(context.Background(), s.logger))
	}
}

func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("window")
	if label == "" {
		label = DefaultWindow
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{
			"localhost",
			"localhost:*",
			"127.0.0.1",
			"127.0.0.1:*",
			"[::1]",
			"[::1]:*",
		},
	})
	if err != nil {
		s.logger.Warn("websocket accept failed", "error", err)
		return
	}

	// File content travels inside a single message and has no size cap.
	ws.SetReadLimit(-1)

	win := &window{
		label:  label,
		id:     ulid.Make().String(),
		ws:     ws,
		sendCh: make(chan Frame, sendQueueSize),
		done:   make(chan struct{}),
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	ctx = ctxlog.New(ctx, s.logger.With("window", label, "conn_id", win.id))

	old, hooks := s.register(win)
	if old != nil {
		ctxlog.Info(ctx, "replacing window connection", "old_conn_id", old.id)
		old.close()
		old.ws.Close(websocket.StatusPolicyViolation, "replaced by a newer connection") //nolint:errcheck
	}

	ctxlog.Info(ctx, "window connected")

	go s.writeLoop(win)

	for _, fn := range hooks {
		fn(ctx)
	}

	s.readLoop(ctx, win)

	win.close()
	s.unregister(win)
	ws.Close(websocket.StatusNormalClosure, "") //nolint:errcheck
	ctxlog.Info(ctx, "window disconnected")
}

// register records win under its label. It returns the connection it
// replaced, if any, and the pending ready hooks for the label.
func (s *Server) register(win *window) (*window, []func(context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.windows[win.label]
	s.windows[win.label] = win

	hooks := s.hooks[win.label]
	delete(s.hooks, win.label)

	return old, hooks
}

func (s *Server) unregister(win *window) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.windows[win.label]; ok && cur == win {
		delete(s.windows, win.label)
	}
}

func (s *Server) readLoop(ctx context.Context, win *window) {
	for {
		var frame Frame
		if err := wsjson.Read(ctx, win.ws, &frame); err != nil {
			return
		}

		if frame.Type != FrameTypeRequest {
			continue
		}

		go s.dispatch(ctx, win, frame)
	}
}

func (s *Server) writeLoop(win *window) {
	for {
		select {
		case <-win.done:
			return
		case frame := <-win.sendCh:
			ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := wsjson.Write(ctx, win.ws, frame)

			cancel()

			if err != nil {
				win.close()
				return
			}
		}
	}
}

func (s *Server) dispatch(ctx context.Context, win *window, req Frame) {
	ctx = ctxlog.With(ctx, "request_id", req.ID)

	result, err := s.dispatcher.Invoke(ctx, req.Method, req.Payload)

	resp := Frame{Type: FrameTypeResponse, ID: req.ID, Payload: result}
	if err != nil {
		resp.Payload = nil
		resp.Error = err.Error()
	}

	select {
	case win.sendCh <- resp:
	case <-win.done:
		ctxlog.Debug(ctx, "response dropped, window closed", "method", req.Method)
	}
}

func isClosed(err error) bool {
	return errors.Is(err, net.ErrClosed) || websocket.CloseStatus(err) != -1
}
