package bridge

import (
	"fmt"
	"unsafe"
)

// Platform is a host implementation that can be bound to a bridge.
type Platform interface {
	// NativeTable returns the table that handles host commands. ep is the
	// bridge the table is being installed on; the platform keeps it to send
	// commands toward the client.
	NativeTable(ep Endpoint) Table
}

// nativeAPI mirrors the structure exchanged with the engine at registration:
// one entry point per direction.
type nativeAPI struct {
	sendHostCommand   uintptr
	sendClientCommand uintptr
}

// TableSize is the structure size an externally provided implementation
// must declare to SetNativeImplementation.
const TableSize = int(unsafe.Sizeof(nativeAPI{}))

// Bind performs the startup handshake: it asks p for its host table,
// installs it toward the host, and installs client toward the client.
// Bind must run before any command flows. If the client table is rejected
// the host table stays installed; the bridge should then be closed.
func (b *Bridge) Bind(p Platform, client Table) error {
	if p == nil {
		return fmt.Errorf("%w: nil platform", ErrNilTable)
	}
	host := p.NativeTable(b)
	if err := b.InstallTable(TowardHost, host); err != nil {
		return err
	}
	if err := b.InstallTable(TowardClient, client); err != nil {
		return err
	}
	b.log.Info("bridge: bound", "platform", fmt.Sprintf("%T", p))
	return nil
}

// SetNativeImplementation installs an externally provided host table whose
// provider declared its structure size. A size other than TableSize means the
// two sides were built against different layouts, and the table is rejected.
func (b *Bridge) SetNativeImplementation(t Table, size int) error {
	if size != TableSize {
		b.log.Warn("bridge: native implementation rejected", "size", size, "want", TableSize)
		return fmt.Errorf("%w: declared %d, want %d", ErrTableSize, size, TableSize)
	}
	if err := b.InstallTable(TowardHost, t); err != nil {
		return err
	}
	b.log.Info("bridge: native implementation installed")
	return nil
}
