package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/philipp01105/logline/core"
)

// ConsoleFormatter renders one line for a live terminal:
//
//	HH:MM:SS.mmm LEVEL module:line T{thread} message
//
// Fields are separated by single spaces and the message comes last,
// verbatim. No line terminator is written.
type ConsoleFormatter struct {
	Config
	timeColor   *color.Color
	locColor    *color.Color
	threadColor *color.Color
}

// NewConsoleFormatter creates a console formatter. The color strategy
// is fixed here. The formatter does not know its sink, so an unresolved
// ColorAuto means no color; resolve it first with ResolveColorMode.
func NewConsoleFormatter(cfg Config) *ConsoleFormatter {
	if cfg.Color != ColorOn {
		cfg.Color = ColorOff
	}
	f := &ConsoleFormatter{Config: cfg}
	if cfg.Color == ColorOn {
		f.timeColor = forcedColor(color.FgHiBlack)
		f.locColor = forcedColor(color.FgMagenta)
		f.threadColor = forcedColor(color.FgCyan)
	}
	return f
}

// Format formats a record as a console line
func (f *ConsoleFormatter) Format(rec *core.Record) ([]byte, error) {
	return format(rec, f.FormatEntry), nil
}

// FormatTo formats a record and writes it directly to the writer
func (f *ConsoleFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	return formatTo(rec, w, f.FormatEntry)
}

// FormatEntry formats a record into the given buffer (implements BufferFormatter).
func (f *ConsoleFormatter) FormatEntry(rec *core.Record, buf *bytes.Buffer) {
	var scratch [32]byte

	// Timestamp
	stamp := rec.Time.AppendFormat(scratch[:0], ConsoleTimeLayout)
	if f.timeColor != nil {
		buf.WriteString(f.timeColor.Sprint(string(stamp)))
	} else {
		buf.Write(stamp)
	}
	buf.WriteByte(' ')

	// Level - fixed width, pre-rendered per mode
	buf.WriteString(LevelLabel(rec.Level, f.Color))
	buf.WriteByte(' ')

	// Source location
	if f.locColor != nil {
		buf.WriteString(f.locColor.Sprint(rec.ModuleOrDefault() + ":" + strconv.Itoa(rec.LineOrDefault())))
	} else {
		buf.WriteString(rec.ModuleOrDefault())
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.LineOrDefault()), 10))
	}
	buf.WriteByte(' ')

	// Thread
	if f.threadColor != nil {
		buf.WriteString(f.threadColor.Sprint("T{" + rec.ThreadOrDefault() + "}"))
	} else {
		buf.WriteString("T{")
		buf.WriteString(rec.ThreadOrDefault())
		buf.WriteByte('}')
	}
	buf.WriteByte(' ')

	// Message
	buf.WriteString(rec.Message)
}
