package bridge

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Endpoint sends commands across the bridge. Both sides hold the same
// Endpoint; the command type selects the receiving side.
type Endpoint interface {
	SendTowardHost(cmd HostCommand, args Args) error
	SendTowardClient(cmd ClientCommand, args Args) error
}

// installed wraps a Table so it can be stored in an atomic.Pointer.
type installed struct {
	table Table
}

type counters struct {
	dispatched atomic.Uint64
	failed     atomic.Uint64
}

// Bridge is a synchronous two-way command channel between the simulation and
// the platform. Each direction has at most one Table, installed once.
//
// Dispatch runs the handler on the calling goroutine and returns when it
// does. Calls made in sequence from one goroutine reach the handler in the
// same order. Nothing is ordered between directions or across goroutines;
// handlers that accept concurrent calls synchronize themselves.
//
// A Bridge is safe for concurrent use.
type Bridge struct {
	tables [directionCount]atomic.Pointer[installed]
	stats  [directionCount]counters
	closed atomic.Bool
	log    *slog.Logger
}

var _ Endpoint = (*Bridge)(nil)

// New creates a bridge with no tables installed.
func New(opts ...Option) *Bridge {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Bridge{log: o.resolveLogger()}
}

// InstallTable installs t as the handler for commands sent toward dir.
// Each direction accepts exactly one table. A second call leaves the first
// table in place and returns ErrAlreadyInstalled.
func (b *Bridge) InstallTable(dir Direction, t Table) error {
	if dir >= directionCount {
		return fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}
	if t == nil {
		return fmt.Errorf("%w: toward %v", ErrNilTable, dir)
	}
	if b.closed.Load() {
		return ErrClosed
	}
	in := &installed{table: t}
	if !b.tables[dir].CompareAndSwap(nil, in) {
		b.log.Warn("bridge: duplicate table install ignored", "direction", dir)
		return fmt.Errorf("%w: toward %v", ErrAlreadyInstalled, dir)
	}
	// Close may have cleared the tables between the check above and the swap.
	if b.closed.Load() {
		b.tables[dir].CompareAndSwap(in, nil)
		return ErrClosed
	}
	b.log.Debug("bridge: table installed", "direction", dir)
	return nil
}

// Installed reports whether dir has a table.
func (b *Bridge) Installed(dir Direction) bool {
	return dir < directionCount && b.tables[dir].Load() != nil
}

// Dispatch calls the table installed for dir with id and args and returns
// when the handler returns. Arguments are passed through untouched.
//
// It returns ErrNotInstalled when dir has no table, and a *HandlerError
// wrapping the handler's error when the handler fails. Dispatch never
// retries: a handler may have had side effects before failing.
func (b *Bridge) Dispatch(dir Direction, id uint16, args Args) error {
	if dir >= directionCount {
		return fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}
	in := b.tables[dir].Load()
	if in == nil {
		return fmt.Errorf("%w: toward %v (command %s)", ErrNotInstalled, dir, commandName(dir, id))
	}

	b.stats[dir].dispatched.Add(1)
	b.log.Debug("bridge: dispatch",
		"direction", dir,
		"command", commandName(dir, id),
		"args", len(args),
		"bytes", args.Size())

	if err := in.table.Handle(id, args); err != nil {
		b.stats[dir].failed.Add(1)
		return &HandlerError{Direction: dir, ID: id, Err: err}
	}
	return nil
}

// SendTowardHost dispatches a command to the platform.
func (b *Bridge) SendTowardHost(cmd HostCommand, args Args) error {
	return b.Dispatch(TowardHost, uint16(cmd), args)
}

// SendTowardClient dispatches a command to the simulation.
func (b *Bridge) SendTowardClient(cmd ClientCommand, args Args) error {
	return b.Dispatch(TowardClient, uint16(cmd), args)
}

// Close uninstalls both tables. Later dispatches fail with ErrNotInstalled
// and later installs with ErrClosed. Calls already running complete
// normally. Close is idempotent.
func (b *Bridge) Close() error {
	if b.closed.Swap(true) {
		return nil
	}
	for i := range b.tables {
		b.tables[i].Store(nil)
	}
	b.log.Info("bridge: closed")
	return nil
}

// DirectionStats counts dispatches in one direction.
type DirectionStats struct {
	Dispatched uint64
	Failed     uint64
}

// Stats is a snapshot of the bridge counters. Dispatches rejected with
// ErrNotInstalled are not counted.
type Stats struct {
	TowardHost   DirectionStats
	TowardClient DirectionStats
}

// Stats returns a snapshot of the dispatch counters.
func (b *Bridge) Stats() Stats {
	load := func(d Direction) DirectionStats {
		return DirectionStats{
			Dispatched: b.stats[d].dispatched.Load(),
			Failed:     b.stats[d].failed.Load(),
		}
	}
	return Stats{TowardHost: load(TowardHost), TowardClient: load(TowardClient)}
}
