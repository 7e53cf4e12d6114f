package bridge

import (
	"errors"
	"fmt"
)

// Configuration errors. These indicate a broken setup rather than a failing
// command and are not expected to go away on retry.
var (
	// ErrNotInstalled is returned when dispatching toward a direction that
	// has no table.
	ErrNotInstalled = errors.New("bridge: table not installed")

	// ErrAlreadyInstalled is returned when a direction already has a table.
	// The first table stays installed.
	ErrAlreadyInstalled = errors.New("bridge: table already installed")

	// ErrNilTable is returned when installing a nil table.
	ErrNilTable = errors.New("bridge: nil table")

	// ErrTableSize is returned by SetNativeImplementation when the declared
	// size does not match TableSize.
	ErrTableSize = errors.New("bridge: table size mismatch")

	// ErrClosed is returned when installing a table on a closed bridge.
	ErrClosed = errors.New("bridge: closed")

	// ErrInvalidDirection is returned for directions other than TowardHost
	// and TowardClient.
	ErrInvalidDirection = errors.New("bridge: invalid direction")
)

// HandlerError reports a failure inside an installed table. The bridge
// itself worked; the command did not.
type HandlerError struct {
	Direction Direction
	ID        uint16
	Err       error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("bridge: %s command %s: %v", e.Direction, commandName(e.Direction, e.ID), e.Err)
}

func (e *HandlerError) Unwrap() error { return e.Err }
