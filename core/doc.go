// Package core defines the shared types used across logline.
//
// It provides the Level type (Off through Trace, ordered by verbosity),
// the Record type that represents a single log event handed over by a
// host logging framework, and the Field type that host adapters use to
// render structured attributes into a displayable message.
//
// A Record carries optional metadata: Module, Line and Thread may be
// left at their zero values and formatters substitute "<unnamed>", 0
// and "unnamed" respectively. Nothing in a Record is ever an error.
//
// Record objects are pooled via sync.Pool. Adapters get a Record with
// GetRecord and return it with PutRecord once the formatter has
// consumed it.
//
// Goroutines carry no names, so the thread name is attached to a
// context with WithThread, or passed as an attribute keyed ThreadKey.
package core
