// Package formatter renders a single log record into a single text line.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which appends to a caller-owned bytes.Buffer. Host
// adapters check for the richer interfaces at construction time and
// prefer them when available.
//
// Two formatters are provided. ConsoleFormatter writes
//
//	09:30:00.125 INFO  app.server:42 T{main} listening on :8080
//
// with a fixed-width level label so that columns line up, and can wrap
// the timestamp, label, location and thread in ANSI colors. FileFormatter
// writes
//
//	[2024-01-15 09:30:00.125] INFO listening on :8080
//
// with or without the level name, and is never colored.
//
// Formatters hold no mutable state and take no locks; concurrent calls
// are independent. They never fail on incomplete metadata. The only
// error they return is the writer's own error from FormatTo. No line
// terminator is written: the caller appends it.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
