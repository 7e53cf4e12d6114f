package session

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/gogpu/hostbridge/bridge"
	"github.com/gogpu/hostbridge/command"
	"github.com/gogpu/hostbridge/compositor"
	"github.com/gogpu/hostbridge/format"
	"github.com/gogpu/hostbridge/resource"
)

// echoPlatform records host commands and can send client commands back.
type echoPlatform struct {
	ep   bridge.Endpoint
	cmds []bridge.HostCommand
}

func (p *echoPlatform) NativeTable(ep bridge.Endpoint) bridge.Table {
	p.ep = ep
	return bridge.TableFunc(func(id uint16, _ bridge.Args) error {
		p.cmds = append(p.cmds, bridge.HostCommand(id))
		return nil
	})
}

func image2x2() resource.ImageReference {
	return resource.ImageReference{
		Format: format.R8G8B8A8_UNorm,
		Width:  2,
		Height: 2,
		Pitch:  8,
		Data:   bytes.Repeat([]byte{255}, 16),
	}
}

func TestStart(t *testing.T) {
	p := &echoPlatform{}
	s := New()
	if err := s.Start(p); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if len(p.cmds) != 1 || p.cmds[0] != command.BeginSession {
		t.Errorf("commands = %v, want [BeginSession]", p.cmds)
	}
	if err := s.Start(p); !errors.Is(err, ErrStarted) {
		t.Errorf("second Start() error = %v, want ErrStarted", err)
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if p.cmds[len(p.cmds)-1] != command.EndSession {
		t.Errorf("last command = %v, want EndSession", p.cmds[len(p.cmds)-1])
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if s.Bridge().Installed(bridge.TowardHost) {
		t.Error("host table still installed after Close")
	}
}

// brokenPlatform fails the startup handshake.
type brokenPlatform struct {
	nilTable bool
}

func (p brokenPlatform) NativeTable(bridge.Endpoint) bridge.Table {
	if p.nilTable {
		return nil
	}
	return bridge.TableFunc(func(uint16, bridge.Args) error {
		return errors.New("begin refused")
	})
}

func TestStart_FailureResets(t *testing.T) {
	tests := []struct {
		name    string
		p       brokenPlatform
		wantErr error
	}{
		{"nil table", brokenPlatform{nilTable: true}, bridge.ErrNilTable},
		{"begin refused", brokenPlatform{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			failed := s.Bridge()
			err := s.Start(tt.p)
			if err == nil {
				t.Fatal("Start() succeeded on a broken platform")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Start() error = %v, want %v", err, tt.wantErr)
			}
			if failed.Installed(bridge.TowardHost) || failed.Installed(bridge.TowardClient) {
				t.Error("failed bridge left with tables installed")
			}
			if s.Platform() != "" {
				t.Errorf("Platform() = %q after failed Start", s.Platform())
			}
			if err := s.DeleteAsset(uuid.New()); !errors.Is(err, ErrNotStarted) {
				t.Errorf("DeleteAsset() error = %v, want ErrNotStarted", err)
			}

			p := &echoPlatform{}
			if err := s.Start(p); err != nil {
				t.Fatalf("Start() after failure error = %v", err)
			}
			defer s.Close()
			if s.Bridge() == failed {
				t.Error("session kept the failed bridge")
			}
			if len(p.cmds) != 1 || p.cmds[0] != command.BeginSession {
				t.Errorf("commands = %v, want [BeginSession]", p.cmds)
			}
		})
	}
}

func TestStart_AfterClose(t *testing.T) {
	s := New()
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(&echoPlatform{}); !errors.Is(err, bridge.ErrClosed) {
		t.Errorf("Start() after Close error = %v, want ErrClosed", err)
	}
}

func TestSendBeforeStart(t *testing.T) {
	s := New()
	if err := s.UploadTexture(uuid.New(), image2x2()); !errors.Is(err, ErrNotStarted) {
		t.Errorf("UploadTexture() error = %v, want ErrNotStarted", err)
	}
	if err := s.DeleteAsset(uuid.New()); !errors.Is(err, ErrNotStarted) {
		t.Errorf("DeleteAsset() error = %v, want ErrNotStarted", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestUploadTexture_InvalidImage(t *testing.T) {
	p := &echoPlatform{}
	s := New()
	if err := s.Start(p); err != nil {
		t.Fatal(err)
	}
	img := image2x2()
	img.Data = img.Data[:4]
	if err := s.UploadTexture(uuid.New(), img); !errors.Is(err, resource.ErrInvalidDescriptor) {
		t.Errorf("UploadTexture() error = %v, want ErrInvalidDescriptor", err)
	}
	if len(p.cmds) != 1 {
		t.Errorf("invalid image was sent: %v", p.cmds)
	}
}

func TestLogForwarding(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := &echoPlatform{}
	s := New(WithLogger(l))
	if err := s.Start(p); err != nil {
		t.Fatal(err)
	}

	msg := command.Log{Level: slog.LevelWarn, Text: "swapchain recreated"}
	if err := p.ep.SendTowardClient(command.LogMessage, msg.Args()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, `msg="swapchain recreated"`) {
		t.Errorf("log output = %q", out)
	}
	if !strings.Contains(out, "source=platform") {
		t.Errorf("log output missing source: %q", out)
	}
}

func TestEndToEnd(t *testing.T) {
	var hooked []command.UploadResult
	store := compositor.NewMemoryStore()
	c := compositor.New(compositor.WithTextureCreator(store))
	s := New(WithUploadHook(func(r command.UploadResult) {
		hooked = append(hooked, r)
	}))
	if err := s.Start(c); err != nil {
		t.Fatal(err)
	}
	if s.Platform() != compositor.HeadlessName {
		t.Errorf("Platform() = %q", s.Platform())
	}

	good, bad, shared := uuid.New(), uuid.New(), uuid.New()
	if err := s.UploadTexture(good, image2x2()); err != nil {
		t.Fatalf("UploadTexture() error = %v", err)
	}
	if ok, found := s.Result(good); !found || !ok {
		t.Errorf("Result(good) = %t, %t", ok, found)
	}

	astc := resource.ImageReference{Format: format.RGBA_ASTC4X4_SRGB, Width: 4, Height: 4, Pitch: 16, Data: make([]byte, 16)}
	err := s.UploadTexture(bad, astc)
	var he *bridge.HandlerError
	if !errors.As(err, &he) || !errors.Is(err, format.ErrNoDecoder) {
		t.Errorf("UploadTexture(astc) error = %v, want handler error wrapping ErrNoDecoder", err)
	}
	if ok, found := s.Result(bad); !found || ok {
		t.Errorf("Result(bad) = %t, %t", ok, found)
	}

	tex := resource.SharedTexture{
		Handle: 7, Width: 16, Height: 16, ImageSize: 16 * 16 * 4,
		ImageCount: 1, MipCount: 5, Format: format.B8G8R8A8_SRGB,
	}
	if err := s.ShareTexture(shared, tex); err != nil {
		t.Fatal(err)
	}
	if len(hooked) != 3 {
		t.Fatalf("hook called %d times, want 3", len(hooked))
	}
	if c.Len() != 2 {
		t.Errorf("compositor has %d assets, want 2", c.Len())
	}

	if err := s.DeleteAsset(good); err != nil {
		t.Fatal(err)
	}
	if _, found := s.Result(good); found {
		t.Error("result kept after DeleteAsset")
	}
	if store.Live() != 0 {
		t.Errorf("Live() = %d after delete", store.Live())
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if c.SessionActive() || c.Len() != 0 {
		t.Error("compositor session not ended by Close")
	}
	if err := s.UploadTexture(good, image2x2()); !errors.Is(err, bridge.ErrNotInstalled) {
		t.Errorf("UploadTexture() after Close error = %v, want ErrNotInstalled", err)
	}

	stats := s.Bridge().Stats()
	if stats.TowardHost.Failed != 1 || stats.TowardClient.Dispatched != 3 {
		t.Errorf("Stats() = %+v", stats)
	}
}

func TestStartDefault(t *testing.T) {
	s := New()
	if err := s.StartDefault(); err != nil {
		t.Fatalf("StartDefault() error = %v", err)
	}
	defer s.Close()
	if s.Platform() != compositor.HeadlessName {
		t.Errorf("Platform() = %q, want %q", s.Platform(), compositor.HeadlessName)
	}
}
