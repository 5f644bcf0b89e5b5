package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/logline/core"
)

// FileFormatter renders lines for durable file output:
//
//	[YYYY-MM-DD HH:MM:SS.mmm] LEVEL message
//	[YYYY-MM-DD HH:MM:SS.mmm] message
//
// The level, when present, is the plain unpadded name. File output is
// never colored.
type FileFormatter struct {
	includeLevel bool
}

// NewFileFormatterWithLevel creates a file formatter that writes the level name
func NewFileFormatterWithLevel() *FileFormatter {
	return &FileFormatter{includeLevel: true}
}

// NewFileFormatterWithoutLevel creates a file formatter for sinks where the
// level is implied by the destination.
func NewFileFormatterWithoutLevel() *FileFormatter {
	return &FileFormatter{}
}

// IncludeLevel reports whether the level field is written
func (f *FileFormatter) IncludeLevel() bool {
	return f.includeLevel
}

// Format formats a record as a file line
func (f *FileFormatter) Format(rec *core.Record) ([]byte, error) {
	return format(rec, f.FormatEntry), nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *FileFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	return formatTo(rec, w, f.FormatEntry)
}

// FormatEntry formats a record into the given buffer (implements BufferFormatter).
func (f *FileFormatter) FormatEntry(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), FileTimeLayout))
	buf.WriteString("] ")

	if f.includeLevel {
		buf.WriteString(rec.Level.String())
		buf.WriteByte(' ')
	}

	buf.WriteString(rec.Message)
}
