package handler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/philipp01105/logline/core"
	"github.com/philipp01105/logline/formatter"
)

// DefaultLineEnding terminates every line written by a WriterHandler
const DefaultLineEnding = "\n"

// WriterConfig holds configuration for a writer handler
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: plain ConsoleFormatter)
	Formatter formatter.BufferFormatter
	// LineEnding appended after each line (default: "\n")
	LineEnding string
}

// WriterHandler formats records into a handler-owned buffer and writes
// each line with a single Write call. Writes are serialized with a
// mutex so that lines from concurrent callers never interleave.
type WriterHandler struct {
	writer     io.Writer
	formatter  formatter.BufferFormatter
	lineEnding string
	mu         sync.Mutex // protects buf and writer
	buf        bytes.Buffer
	stats      *Stats
	closed     chan struct{}
}

// NewWriterHandler creates a handler that writes formatted lines to cfg.Writer
func NewWriterHandler(cfg WriterConfig) *WriterHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewConsoleFormatter(formatter.Config{})
	}
	if cfg.LineEnding == "" {
		cfg.LineEnding = DefaultLineEnding
	}

	h := &WriterHandler{
		writer:     cfg.Writer,
		formatter:  cfg.Formatter,
		lineEnding: cfg.LineEnding,
		stats:      NewStats(),
		closed:     make(chan struct{}),
	}
	h.buf.Grow(256)
	return h
}

// Handle formats and writes a record. A write failure is returned
// wrapped; errors.Cause yields the writer's original error. Nothing is
// retried or buffered for replay.
func (h *WriterHandler) Handle(rec *core.Record) error {
	h.mu.Lock()
	h.buf.Reset()
	h.formatter.FormatEntry(rec, &h.buf)
	h.buf.WriteString(h.lineEnding)
	_, err := h.writer.Write(h.buf.Bytes())
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementFailed()
		return errors.Wrap(err, "write log line")
	}
	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *WriterHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the underlying writer if it is an io.Closer other than
// stdout or stderr. Calling Close more than once is a no-op.
func (h *WriterHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}

	if h.writer == os.Stdout || h.writer == os.Stderr {
		return nil
	}
	if c, ok := h.writer.(io.Closer); ok {
		return errors.Wrap(c.Close(), "close log writer")
	}
	return nil
}
