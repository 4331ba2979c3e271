package logging

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

// Level is the severity of a record. Levels order from Debug to Error.
type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
)

type levelInfo struct {
	name    string
	display string
	icon    string
	tint    color.RGBA
	console lipgloss.Color
	json    zerolog.Level
}

var levels = map[Level]levelInfo{
	Error: {
		name: "ERROR", display: "Error", icon: "ma-error-black",
		tint: color.RGBA{R: 255, A: 255}, console: lipgloss.Color("9"), json: zerolog.ErrorLevel,
	},
	Warning: {
		name: "WARNING", display: "Warning", icon: "ma-warning-black",
		tint: color.RGBA{R: 255, G: 150, A: 255}, console: lipgloss.Color("11"), json: zerolog.WarnLevel,
	},
	Info: {
		name: "INFO", display: "Info", icon: "ma-info-black",
		tint: color.RGBA{G: 200, A: 255}, console: lipgloss.Color("10"), json: zerolog.InfoLevel,
	},
	Debug: {
		name: "DEBUG", display: "Debug", icon: "ma-terminal-black",
		tint: color.RGBA{G: 200, B: 255, A: 255}, console: lipgloss.Color("12"), json: zerolog.DebugLevel,
	},
}

// Levels lists every level from most to least severe.
func Levels() []Level { return []Level{Error, Warning, Info, Debug} }

func (l Level) info() levelInfo {
	if info, ok := levels[l]; ok {
		return info
	}
	return levels[Info]
}

// String returns the upper case name written to sinks.
func (l Level) String() string { return l.info().name }

// DisplayName returns the name shown in tables.
func (l Level) DisplayName() string { return l.info().display }

// Icon returns the icon catalog name of the level.
func (l Level) Icon() string { return l.info().icon }

// Tint returns the colour the level icon is drawn in.
func (l Level) Tint() color.RGBA { return l.info().tint }

// ParseLevel reads a level name in any case. "warn" is accepted for
// Warning.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARN" {
		return Warning, nil
	}
	for level, info := range levels {
		if info.name == name {
			return level, nil
		}
	}
	return Info, uierrors.NewValueError("level", "unknown log level %q", s)
}
