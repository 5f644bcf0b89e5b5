package formatter

import (
	"github.com/fatih/color"

	"github.com/philipp01105/logline/core"
)

// unknownLabel is rendered for values outside the six defined levels
const unknownLabel = "UNKNOWN"

// plainLabels are padded to five columns so console lines align
var plainLabels = [...]string{
	core.OffLevel:   "OFF",
	core.ErrorLevel: "ERROR",
	core.WarnLevel:  "WARN ",
	core.InfoLevel:  "INFO ",
	core.DebugLevel: "DEBUG",
	core.TraceLevel: "TRACE",
}

// labelColors holds the color of each level label. Off uses the
// 256-color palette entry 8 (dim gray).
var labelColors = [...]*color.Color{
	core.OffLevel:   forcedColor(38, 5, 8),
	core.ErrorLevel: forcedColor(color.FgRed),
	core.WarnLevel:  forcedColor(color.FgYellow),
	core.InfoLevel:  forcedColor(color.FgGreen),
	core.DebugLevel: forcedColor(color.FgBlue),
	core.TraceLevel: forcedColor(color.FgMagenta),
}

var coloredLabels = func() (labels [len(plainLabels)]string) {
	for i, text := range plainLabels {
		labels[i] = labelColors[i].Sprint(text)
	}
	return labels
}()

// forcedColor returns a color that ignores NO_COLOR and terminal
// detection; that decision is made once by ResolveColorMode.
func forcedColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// LevelLabel maps a level to its fixed-width display label. With ColorOn
// the label is wrapped in the level's ANSI color; any other mode yields
// the plain label. Stripping the escape sequences from a colored label
// gives back the plain label.
func LevelLabel(level core.Level, mode ColorMode) string {
	if !level.Valid() {
		return unknownLabel
	}
	if mode == ColorOn {
		return coloredLabels[level]
	}
	return plainLabels[level]
}
