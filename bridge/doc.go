// Package bridge implements the synchronous command channel between the
// simulation and the platform host.
//
// A [Bridge] carries commands in two directions. Commands toward the host are
// identified by [HostCommand] and handled by the platform; commands toward
// the client are identified by [ClientCommand] and handled by the
// simulation. Each direction has a single [Table] installed once, normally by
// [Bridge.Bind] at startup:
//
//	b := bridge.New()
//	if err := b.Bind(platform, clientTable); err != nil {
//		return err
//	}
//	defer b.Close()
//
//	err := b.SendTowardHost(command.BeginSession, nil)
//
// Arguments are an ordered list of byte buffers ([Args]). The bridge does
// not interpret them; encoding and decoding belong to the package that
// defines the command ids.
//
// Dispatch is a plain function call on the caller's goroutine. There are no
// queues, no retries and no timeouts. A missing table is reported as
// [ErrNotInstalled]; a failing handler as [*HandlerError].
package bridge
