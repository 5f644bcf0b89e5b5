package core

import "strings"

// Level represents the severity of a log record. Levels are ordered by
// verbosity: OffLevel is the least verbose, TraceLevel the most.
type Level int8

const (
	// OffLevel marks a record that is not meant to be shown
	OffLevel Level = iota
	// ErrorLevel for error messages
	ErrorLevel
	// WarnLevel for warning messages
	WarnLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for the most verbose diagnostics
	TraceLevel
)

// String returns the plain, unpadded name of the level
func (l Level) String() string {
	switch l {
	case OffLevel:
		return "OFF"
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the six defined levels
func (l Level) Valid() bool {
	return l >= OffLevel && l <= TraceLevel
}

// ParseLevel converts a string to a Level. Unknown names map to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "OFF":
		return OffLevel
	case "ERROR":
		return ErrorLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "INFO":
		return InfoLevel
	case "DEBUG":
		return DebugLevel
	case "TRACE":
		return TraceLevel
	default:
		return InfoLevel
	}
}
