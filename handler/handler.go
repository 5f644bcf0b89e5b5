package handler

import "github.com/philipp01105/logline/core"

// Handler defines the interface for binding a formatter to a sink
type Handler interface {
	// Handle formats a record and writes it as one line
	Handle(rec *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}
