package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/logline/core"
)

// Formatter defines the interface for log line formatters
type Formatter interface {
	// Format renders a record into a newly allocated byte slice
	Format(rec *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo renders a record and writes it to w with a single Write call
	FormatTo(rec *core.Record, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatEntry appends the rendered record to buf.
	FormatEntry(rec *core.Record, buf *bytes.Buffer)
}

// Timestamp layouts, equivalent to %H:%M:%S%.3f and %Y-%m-%d %H:%M:%S%.3f.
const (
	ConsoleTimeLayout = "15:04:05.000"
	FileTimeLayout    = "2006-01-02 15:04:05.000"
)

// Config holds console formatter configuration
type Config struct {
	// Color selects the rendering strategy (default: ColorOff).
	// An unresolved ColorAuto renders without color.
	Color ColorMode
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// format renders rec with fn into a pooled buffer and returns a copy
func format(rec *core.Record, fn func(*core.Record, *bytes.Buffer)) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	fn(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// formatTo renders rec with fn and issues one Write to w
func formatTo(rec *core.Record, w io.Writer, fn func(*core.Record, *bytes.Buffer)) error {
	buf := getBuffer()

	fn(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}
