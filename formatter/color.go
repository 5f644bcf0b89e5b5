package formatter

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// ColorMode selects between the plain and the ANSI-colored rendering
// strategy. It is chosen once at startup, never per record.
type ColorMode uint8

const (
	// ColorOff renders plain text
	ColorOff ColorMode = iota
	// ColorOn wraps labels and metadata fields in ANSI color sequences
	ColorOn
	// ColorAuto enables color when the output is a terminal
	ColorAuto
)

// ErrInvalidColorMode is returned by ParseColorMode for unknown values
var ErrInvalidColorMode = errors.New("invalid color mode")

// String returns the configuration spelling of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorOff:
		return "off"
	case ColorOn:
		return "on"
	case ColorAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseColorMode converts a configuration value to a ColorMode.
// An empty string means off.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off", "false", "no", "0":
		return ColorOff, nil
	case "on", "true", "yes", "1":
		return ColorOn, nil
	case "auto":
		return ColorAuto, nil
	default:
		return ColorOff, errors.Wrapf(ErrInvalidColorMode, "%q", s)
	}
}

// ResolveColorMode turns ColorAuto into ColorOn or ColorOff for the given
// output. Color is used only when w is a terminal, NO_COLOR is unset and
// TERM is not "dumb". Other modes are returned unchanged.
func ResolveColorMode(m ColorMode, w io.Writer) ColorMode {
	if m != ColorAuto {
		return m
	}
	if v, ok := os.LookupEnv("NO_COLOR"); ok && v != "" {
		return ColorOff
	}
	if os.Getenv("TERM") == "dumb" {
		return ColorOff
	}
	if isTerminal(w) {
		return ColorOn
	}
	return ColorOff
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
