// Package command defines the commands exchanged over the bridge and the
// encoding of their arguments.
//
// Each command id lives next to its payload type. Producers build the
// arguments with the payload's Args method; handlers decode them with the
// matching Decode function, which first checks the argument count against
// the command's [Spec]. The bridge itself never inspects arguments.
//
// Asset ids are UUIDs sent as 16 raw bytes.
package command
