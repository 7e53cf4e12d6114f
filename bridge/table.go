package bridge

import (
	"fmt"
	"sync"
)

// Args is the ordered list of opaque argument buffers of one command.
// The length of each buffer is its size; the bridge never looks inside.
type Args [][]byte

// Len returns the number of arguments.
func (a Args) Len() int { return len(a) }

// Size returns the total number of argument bytes.
func (a Args) Size() int {
	n := 0
	for _, b := range a {
		n += len(b)
	}
	return n
}

// Table is the single dispatch entry point installed for one direction.
// The meaning of id depends on the direction: HostCommand values toward the
// host and ClientCommand values toward the client.
type Table interface {
	Handle(id uint16, args Args) error
}

// TableFunc adapts an ordinary function to the Table interface.
type TableFunc func(id uint16, args Args) error

// Handle calls f(id, args).
func (f TableFunc) Handle(id uint16, args Args) error { return f(id, args) }

// Direction selects which side of the bridge handles a command.
type Direction uint8

const (
	// TowardHost carries commands from the simulation to the platform.
	TowardHost Direction = iota

	// TowardClient carries commands from the platform to the simulation.
	TowardClient

	directionCount
)

func (d Direction) String() string {
	switch d {
	case TowardHost:
		return "host"
	case TowardClient:
		return "client"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// HostCommand identifies a command handled by the platform.
type HostCommand uint16

// ClientCommand identifies a command handled by the simulation.
type ClientCommand uint16

// commandNames holds display names registered by command schemas.
var commandNames struct {
	mu     sync.RWMutex
	host   map[HostCommand]string
	client map[ClientCommand]string
}

// RegisterHostCommand sets the display name of a host command.
// It is meant to be called from the init function of the package that
// defines the command.
func RegisterHostCommand(id HostCommand, name string) {
	commandNames.mu.Lock()
	defer commandNames.mu.Unlock()
	if commandNames.host == nil {
		commandNames.host = make(map[HostCommand]string)
	}
	commandNames.host[id] = name
}

// RegisterClientCommand sets the display name of a client command.
func RegisterClientCommand(id ClientCommand, name string) {
	commandNames.mu.Lock()
	defer commandNames.mu.Unlock()
	if commandNames.client == nil {
		commandNames.client = make(map[ClientCommand]string)
	}
	commandNames.client[id] = name
}

func (c HostCommand) String() string {
	commandNames.mu.RLock()
	name, ok := commandNames.host[c]
	commandNames.mu.RUnlock()
	if ok {
		return name
	}
	return fmt.Sprintf("HostCommand(%d)", uint16(c))
}

func (c ClientCommand) String() string {
	commandNames.mu.RLock()
	name, ok := commandNames.client[c]
	commandNames.mu.RUnlock()
	if ok {
		return name
	}
	return fmt.Sprintf("ClientCommand(%d)", uint16(c))
}

// commandName formats id as a command of direction d.
func commandName(d Direction, id uint16) string {
	switch d {
	case TowardHost:
		return HostCommand(id).String()
	case TowardClient:
		return ClientCommand(id).String()
	default:
		return fmt.Sprintf("%d", id)
	}
}
