package command

import (
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gogpu/hostbridge/bridge"
	"github.com/gogpu/hostbridge/resource"
)

// TextureUpload is the payload of CreateOrUpdateTextureAsset.
type TextureUpload struct {
	Asset uuid.UUID
	Image resource.ImageReference
}

// Args encodes the payload.
func (p *TextureUpload) Args() (bridge.Args, error) {
	img, err := p.Image.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return bridge.Args{p.Asset[:], img}, nil
}

// DecodeTextureUpload decodes CreateOrUpdateTextureAsset arguments.
// The image data aliases args.
func DecodeTextureUpload(args bridge.Args) (TextureUpload, error) {
	if err := CheckHostArgs(CreateOrUpdateTextureAsset, args); err != nil {
		return TextureUpload{}, err
	}
	id, err := decodeAssetID(args[0])
	if err != nil {
		return TextureUpload{}, err
	}
	img, err := resource.DecodeImageReference(args[1])
	if err != nil {
		return TextureUpload{}, err
	}
	return TextureUpload{Asset: id, Image: img}, nil
}

// NativeTextureUpload is the payload of CreateOrUpdateNativeTextureAsset.
type NativeTextureUpload struct {
	Asset   uuid.UUID
	Texture resource.SharedTexture
}

// Args encodes the payload.
func (p *NativeTextureUpload) Args() (bridge.Args, error) {
	tex, err := p.Texture.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return bridge.Args{p.Asset[:], tex}, nil
}

// DecodeNativeTextureUpload decodes CreateOrUpdateNativeTextureAsset
// arguments. The texture data aliases args.
func DecodeNativeTextureUpload(args bridge.Args) (NativeTextureUpload, error) {
	if err := CheckHostArgs(CreateOrUpdateNativeTextureAsset, args); err != nil {
		return NativeTextureUpload{}, err
	}
	id, err := decodeAssetID(args[0])
	if err != nil {
		return NativeTextureUpload{}, err
	}
	tex, err := resource.DecodeSharedTexture(args[1])
	if err != nil {
		return NativeTextureUpload{}, err
	}
	return NativeTextureUpload{Asset: id, Texture: tex}, nil
}

// DeleteAssetArgs encodes the DeleteAsset payload.
func DeleteAssetArgs(id uuid.UUID) bridge.Args {
	return bridge.Args{id[:]}
}

// DecodeDeleteAsset decodes DeleteAsset arguments.
func DecodeDeleteAsset(args bridge.Args) (uuid.UUID, error) {
	if err := CheckHostArgs(DeleteAsset, args); err != nil {
		return uuid.Nil, err
	}
	return decodeAssetID(args[0])
}

// Log is the payload of LogMessage.
type Log struct {
	Level slog.Level
	Text  string
}

// Args encodes the payload.
func (p *Log) Args() bridge.Args {
	return bridge.Args{
		binary.LittleEndian.AppendUint32(nil, uint32(int32(p.Level))),
		[]byte(p.Text),
	}
}

// DecodeLog decodes LogMessage arguments. The text is copied.
func DecodeLog(args bridge.Args) (Log, error) {
	if err := CheckClientArgs(LogMessage, args); err != nil {
		return Log{}, err
	}
	if len(args[0]) != 4 {
		return Log{}, fmt.Errorf("%w: log level is %d bytes, want 4", ErrArgSize, len(args[0]))
	}
	level := slog.Level(int32(binary.LittleEndian.Uint32(args[0])))
	return Log{Level: level, Text: string(args[1])}, nil
}

// UploadResult is the payload of TextureUploadResult.
type UploadResult struct {
	Asset   uuid.UUID
	Success bool
}

// Args encodes the payload.
func (p *UploadResult) Args() bridge.Args {
	ok := byte(0)
	if p.Success {
		ok = 1
	}
	return bridge.Args{p.Asset[:], {ok}}
}

// DecodeUploadResult decodes TextureUploadResult arguments.
func DecodeUploadResult(args bridge.Args) (UploadResult, error) {
	if err := CheckClientArgs(TextureUploadResult, args); err != nil {
		return UploadResult{}, err
	}
	id, err := decodeAssetID(args[0])
	if err != nil {
		return UploadResult{}, err
	}
	if len(args[1]) != 1 {
		return UploadResult{}, fmt.Errorf("%w: success flag is %d bytes, want 1", ErrArgSize, len(args[1]))
	}
	return UploadResult{Asset: id, Success: args[1][0] != 0}, nil
}

func decodeAssetID(b []byte) (uuid.UUID, error) {
	if len(b) != len(uuid.UUID{}) {
		return uuid.Nil, fmt.Errorf("%w: asset id is %d bytes, want %d", ErrArgSize, len(b), len(uuid.UUID{}))
	}
	var id uuid.UUID
	copy(id[:], b)
	return id, nil
}
