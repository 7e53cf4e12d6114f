package command

import (
	"errors"
	"fmt"

	"github.com/gogpu/hostbridge/bridge"
)

// Host commands, handled by the platform.
const (
	// BeginSession starts mirroring. No arguments.
	BeginSession bridge.HostCommand = iota + 1

	// EndSession stops mirroring and releases every asset. No arguments.
	EndSession

	// CreateOrUpdateTextureAsset uploads an image from CPU memory.
	// Arguments: asset id, ImageReference. See TextureUpload.
	CreateOrUpdateTextureAsset

	// CreateOrUpdateNativeTextureAsset points an asset at a GPU texture the
	// simulation owns. Arguments: asset id, SharedTexture. See NativeTextureUpload.
	CreateOrUpdateNativeTextureAsset

	// DeleteAsset releases an asset. Arguments: asset id.
	DeleteAsset
)

// Client commands, handled by the simulation.
const (
	// LogMessage forwards a platform log line. Arguments: level, text.
	LogMessage bridge.ClientCommand = iota + 1

	// TextureUploadResult reports the outcome of a texture upload.
	// Arguments: asset id, success flag.
	TextureUploadResult
)

// Spec describes the arguments of one command.
type Spec struct {
	Name string
	Args int
}

var hostSpecs = map[bridge.HostCommand]Spec{
	BeginSession:                     {"BeginSession", 0},
	EndSession:                       {"EndSession", 0},
	CreateOrUpdateTextureAsset:       {"CreateOrUpdateTextureAsset", 2},
	CreateOrUpdateNativeTextureAsset: {"CreateOrUpdateNativeTextureAsset", 2},
	DeleteAsset:                      {"DeleteAsset", 1},
}

var clientSpecs = map[bridge.ClientCommand]Spec{
	LogMessage:          {"LogMessage", 2},
	TextureUploadResult: {"TextureUploadResult", 2},
}

func init() {
	for id, s := range hostSpecs {
		bridge.RegisterHostCommand(id, s.Name)
	}
	for id, s := range clientSpecs {
		bridge.RegisterClientCommand(id, s.Name)
	}
}

// Errors returned by argument checks.
var (
	// ErrUnknownCommand is returned for command ids with no schema or no handler.
	ErrUnknownCommand = errors.New("command: unknown command")

	// ErrArgCount is returned when a command receives the wrong number of
	// arguments.
	ErrArgCount = errors.New("command: wrong argument count")

	// ErrArgSize is returned when a fixed-size argument, such as an asset id,
	// has the wrong length.
	ErrArgSize = errors.New("command: wrong argument size")
)

// HostSpec returns the schema of a host command.
func HostSpec(cmd bridge.HostCommand) (Spec, bool) {
	s, ok := hostSpecs[cmd]
	return s, ok
}

// ClientSpec returns the schema of a client command.
func ClientSpec(cmd bridge.ClientCommand) (Spec, bool) {
	s, ok := clientSpecs[cmd]
	return s, ok
}

// CheckHostArgs validates the argument count of a host command.
func CheckHostArgs(cmd bridge.HostCommand, args bridge.Args) error {
	s, ok := hostSpecs[cmd]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownCommand, cmd)
	}
	return checkCount(cmd.String(), s.Args, len(args))
}

// CheckClientArgs validates the argument count of a client command.
func CheckClientArgs(cmd bridge.ClientCommand, args bridge.Args) error {
	s, ok := clientSpecs[cmd]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownCommand, cmd)
	}
	return checkCount(cmd.String(), s.Args, len(args))
}

func checkCount(name string, want, got int) error {
	if got != want {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArgCount, name, want, got)
	}
	return nil
}
