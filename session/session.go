package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/gogpu/hostbridge"
	"github.com/gogpu/hostbridge/bridge"
	"github.com/gogpu/hostbridge/command"
	"github.com/gogpu/hostbridge/platform"
	"github.com/gogpu/hostbridge/resource"
)

// Session lifecycle errors.
var (
	// ErrStarted is returned by Start on a session that was already started.
	ErrStarted = errors.New("session: already started")

	// ErrNotStarted is returned when sending before Start.
	ErrNotStarted = errors.New("session: not started")
)

// UploadHook is called for every TextureUploadResult the platform sends.
// It runs on the goroutine that issued the upload, before the upload call
// returns.
type UploadHook func(command.UploadResult)

// Option configures a Session during creation.
type Option func(*options)

type options struct {
	logger *slog.Logger
	hook   UploadHook
}

// WithLogger sets the logger for the session, its bridge, and forwarded
// platform log lines. By default the session uses hostbridge.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithUploadHook sets a function called with every upload result.
func WithUploadHook(h UploadHook) Option {
	return func(o *options) {
		o.hook = h
	}
}

// Session is the simulation side of a bridge. It installs the client table,
// sends host commands with typed arguments, and records upload results.
type Session struct {
	log  *slog.Logger
	hook UploadHook

	mu       sync.Mutex
	bridge   *bridge.Bridge
	platform string
	started  bool
	closed   bool
	results  map[uuid.UUID]bool
}

// New creates a session with its own bridge.
func New(opts ...Option) *Session {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	l := o.logger
	if l == nil {
		l = hostbridge.Logger()
	}
	return &Session{
		bridge:  bridge.New(bridge.WithLogger(l)),
		log:     l,
		hook:    o.hook,
		results: make(map[uuid.UUID]bool),
	}
}

// Bridge returns the session's bridge. A failed Start replaces it.
func (s *Session) Bridge() *bridge.Bridge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bridge
}

// Start binds the platform to the session's bridge and begins a session.
// If binding or BeginSession fails, the half-bound bridge is closed and the
// session returns to its unstarted state with a fresh bridge, so Start may
// be called again.
func (s *Session) Start(p bridge.Platform) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return bridge.ErrClosed
	}
	if s.started {
		s.mu.Unlock()
		return ErrStarted
	}
	s.started = true
	name := fmt.Sprintf("%T", p)
	if n, ok := p.(interface{ Name() string }); ok {
		name = n.Name()
	}
	s.platform = name
	b := s.bridge
	s.mu.Unlock()

	if err := begin(b, p, s.table()); err != nil {
		_ = b.Close()
		s.mu.Lock()
		s.started = false
		s.platform = ""
		s.bridge = bridge.New(bridge.WithLogger(s.log))
		s.mu.Unlock()
		s.log.Warn("session: start failed", "platform", name, "err", err)
		return err
	}
	s.log.Info("session: started", "platform", name)
	return nil
}

func begin(b *bridge.Bridge, p bridge.Platform, client bridge.Table) error {
	if err := b.Bind(p, client); err != nil {
		return fmt.Errorf("session: bind: %w", err)
	}
	if err := b.SendTowardHost(command.BeginSession, nil); err != nil {
		return fmt.Errorf("session: begin: %w", err)
	}
	return nil
}

// StartDefault starts the session on the highest priority available
// platform.
func (s *Session) StartDefault() error {
	p, err := platform.Default()
	if err != nil {
		return err
	}
	return s.Start(p)
}

// Platform returns the name of the platform the session started on.
func (s *Session) Platform() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.platform
}

// UploadTexture creates or updates a texture asset from CPU memory. The
// image data is only read during the call.
func (s *Session) UploadTexture(id uuid.UUID, img resource.ImageReference) error {
	if err := img.Validate(); err != nil {
		return err
	}
	up := command.TextureUpload{Asset: id, Image: img}
	args, err := up.Args()
	if err != nil {
		return err
	}
	return s.send(command.CreateOrUpdateTextureAsset, args)
}

// ShareTexture points a texture asset at a GPU texture the simulation owns.
// The texture must stay alive until the asset is deleted or replaced.
func (s *Session) ShareTexture(id uuid.UUID, tex resource.SharedTexture) error {
	if err := tex.Validate(); err != nil {
		return err
	}
	nt := command.NativeTextureUpload{Asset: id, Texture: tex}
	args, err := nt.Args()
	if err != nil {
		return err
	}
	return s.send(command.CreateOrUpdateNativeTextureAsset, args)
}

// DeleteAsset releases an asset on the platform.
func (s *Session) DeleteAsset(id uuid.UUID) error {
	if err := s.send(command.DeleteAsset, command.DeleteAssetArgs(id)); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.results, id)
	s.mu.Unlock()
	return nil
}

// Result returns the last upload result reported for an asset.
func (s *Session) Result(id uuid.UUID) (success, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	success, ok = s.results[id]
	return success, ok
}

// Close ends the session and closes the bridge. Close is idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	started := s.started
	b := s.bridge
	s.mu.Unlock()

	var err error
	if started && b.Installed(bridge.TowardHost) {
		err = b.SendTowardHost(command.EndSession, nil)
	}
	if cerr := b.Close(); err == nil {
		err = cerr
	}
	s.log.Info("session: closed", "platform", s.Platform())
	return err
}

func (s *Session) send(cmd bridge.HostCommand, args bridge.Args) error {
	s.mu.Lock()
	started := s.started
	b := s.bridge
	s.mu.Unlock()
	if !started {
		return ErrNotStarted
	}
	return b.SendTowardHost(cmd, args)
}

// table returns the client table installed at Start.
func (s *Session) table() bridge.Table {
	return command.ClientHandlers{
		command.LogMessage:          s.logMessage,
		command.TextureUploadResult: s.uploadResult,
	}
}

func (s *Session) logMessage(args bridge.Args) error {
	l, err := command.DecodeLog(args)
	if err != nil {
		return err
	}
	s.log.Log(context.Background(), l.Level, l.Text, "source", "platform")
	return nil
}

func (s *Session) uploadResult(args bridge.Args) error {
	r, err := command.DecodeUploadResult(args)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.results[r.Asset] = r.Success
	s.mu.Unlock()

	if !r.Success {
		s.log.Warn("session: texture upload failed", "asset", r.Asset)
	}
	if s.hook != nil {
		s.hook(r)
	}
	return nil
}
