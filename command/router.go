package command

import (
	"fmt"

	"github.com/gogpu/hostbridge/bridge"
)

// HostHandlers is a bridge.Table that routes host commands to per-command
// functions after checking the argument count.
type HostHandlers map[bridge.HostCommand]func(args bridge.Args) error

// Handle implements bridge.Table.
func (h HostHandlers) Handle(id uint16, args bridge.Args) error {
	cmd := bridge.HostCommand(id)
	fn, ok := h[cmd]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownCommand, cmd)
	}
	if err := CheckHostArgs(cmd, args); err != nil {
		return err
	}
	return fn(args)
}

// ClientHandlers is a bridge.Table that routes client commands to
// per-command functions after checking the argument count.
type ClientHandlers map[bridge.ClientCommand]func(args bridge.Args) error

// Handle implements bridge.Table.
func (h ClientHandlers) Handle(id uint16, args bridge.Args) error {
	cmd := bridge.ClientCommand(id)
	fn, ok := h[cmd]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownCommand, cmd)
	}
	if err := CheckClientArgs(cmd, args); err != nil {
		return err
	}
	return fn(args)
}
