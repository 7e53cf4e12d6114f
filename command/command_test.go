package command

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/gogpu/hostbridge/bridge"
	"github.com/gogpu/hostbridge/format"
	"github.com/gogpu/hostbridge/resource"
)

func TestCommandNames(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{BeginSession.String(), "BeginSession"},
		{CreateOrUpdateNativeTextureAsset.String(), "CreateOrUpdateNativeTextureAsset"},
		{DeleteAsset.String(), "DeleteAsset"},
		{LogMessage.String(), "LogMessage"},
		{TextureUploadResult.String(), "TextureUploadResult"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestCheckArgs(t *testing.T) {
	tests := []struct {
		name    string
		check   func() error
		wantErr error
	}{
		{"begin ok", func() error { return CheckHostArgs(BeginSession, nil) }, nil},
		{"begin extra", func() error { return CheckHostArgs(BeginSession, bridge.Args{{1}}) }, ErrArgCount},
		{"delete ok", func() error { return CheckHostArgs(DeleteAsset, bridge.Args{{}}) }, nil},
		{"upload short", func() error { return CheckHostArgs(CreateOrUpdateTextureAsset, bridge.Args{{}}) }, ErrArgCount},
		{"unknown host", func() error { return CheckHostArgs(99, nil) }, ErrUnknownCommand},
		{"log ok", func() error { return CheckClientArgs(LogMessage, bridge.Args{{}, {}}) }, nil},
		{"unknown client", func() error { return CheckClientArgs(99, nil) }, ErrUnknownCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.check(); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTextureUpload(t *testing.T) {
	in := TextureUpload{
		Asset: uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
		Image: resource.ImageReference{
			Format: format.R8G8B8A8_SRGB,
			Width:  1,
			Height: 1,
			Pitch:  4,
			Data:   []byte{10, 20, 30, 255},
		},
	}
	args, err := in.Args()
	if err != nil {
		t.Fatal(err)
	}
	if len(args) != 2 || len(args[0]) != 16 {
		t.Fatalf("args = %v", args)
	}

	out, err := DecodeTextureUpload(args)
	if err != nil {
		t.Fatal(err)
	}
	if out.Asset != in.Asset || out.Image.Format != in.Image.Format || string(out.Image.Data) != string(in.Image.Data) {
		t.Errorf("decoded %+v", out)
	}

	if _, err := DecodeTextureUpload(args[:1]); !errors.Is(err, ErrArgCount) {
		t.Errorf("one argument error = %v", err)
	}
	for _, id := range [][]byte{args[0][:15], append(append([]byte(nil), args[0]...), 0)} {
		if _, err := DecodeTextureUpload(bridge.Args{id, args[1]}); !errors.Is(err, ErrArgSize) {
			t.Errorf("%d-byte id error = %v, want ErrArgSize", len(id), err)
		}
	}
}

func TestNativeTextureUpload(t *testing.T) {
	in := NativeTextureUpload{
		Asset: uuid.New(),
		Texture: resource.SharedTexture{
			Handle: 42, Width: 64, Height: 64, ImageSize: 64 * 64 * 4,
			ImageCount: 1, MipCount: 7, Format: format.B8G8R8A8_SRGB,
		},
	}
	args, err := in.Args()
	if err != nil {
		t.Fatal(err)
	}
	out, err := DecodeNativeTextureUpload(args)
	if err != nil {
		t.Fatal(err)
	}
	if out.Asset != in.Asset || out.Texture.Handle != 42 || out.Texture.MipCount != 7 {
		t.Errorf("decoded %+v", out)
	}
}

func TestDeleteAsset(t *testing.T) {
	id := uuid.New()
	got, err := DecodeDeleteAsset(DeleteAssetArgs(id))
	if err != nil || got != id {
		t.Errorf("DecodeDeleteAsset() = %v, %v", got, err)
	}
}

func TestLog(t *testing.T) {
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		in := Log{Level: level, Text: "texture cache flushed"}
		out, err := DecodeLog(in.Args())
		if err != nil {
			t.Fatal(err)
		}
		if out != in {
			t.Errorf("DecodeLog() = %+v, want %+v", out, in)
		}
	}
	if _, err := DecodeLog(bridge.Args{{1}, nil}); !errors.Is(err, ErrArgSize) {
		t.Errorf("short level error = %v", err)
	}
}

func TestUploadResult(t *testing.T) {
	for _, ok := range []bool{true, false} {
		in := UploadResult{Asset: uuid.New(), Success: ok}
		out, err := DecodeUploadResult(in.Args())
		if err != nil || out != in {
			t.Errorf("DecodeUploadResult() = %+v, %v, want %+v", out, err, in)
		}
	}
}

func TestHostHandlers(t *testing.T) {
	var deleted uuid.UUID
	h := HostHandlers{
		DeleteAsset: func(args bridge.Args) error {
			id, err := DecodeDeleteAsset(args)
			deleted = id
			return err
		},
	}
	id := uuid.New()

	if err := h.Handle(uint16(DeleteAsset), DeleteAssetArgs(id)); err != nil {
		t.Fatal(err)
	}
	if deleted != id {
		t.Errorf("deleted %v, want %v", deleted, id)
	}
	if err := h.Handle(uint16(DeleteAsset), nil); !errors.Is(err, ErrArgCount) {
		t.Errorf("missing argument error = %v", err)
	}
	if err := h.Handle(uint16(BeginSession), nil); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("unhandled command error = %v", err)
	}
}

func TestClientHandlers_OverBridge(t *testing.T) {
	var got []string
	client := ClientHandlers{
		LogMessage: func(args bridge.Args) error {
			l, err := DecodeLog(args)
			got = append(got, l.Text)
			return err
		},
	}
	b := bridge.New()
	if err := b.InstallTable(bridge.TowardClient, client); err != nil {
		t.Fatal(err)
	}

	for _, text := range []string{"a", "b"} {
		l := Log{Level: slog.LevelInfo, Text: text}
		if err := b.SendTowardClient(LogMessage, l.Args()); err != nil {
			t.Fatal(err)
		}
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got %v", got)
	}

	err := b.SendTowardClient(TextureUploadResult, nil)
	var he *bridge.HandlerError
	if !errors.As(err, &he) || !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("unhandled command error = %v", err)
	}
}
