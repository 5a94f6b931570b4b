package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorMode controls whether styles emit ANSI sequences.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto, always or never.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

// SetColorMode picks the termenv profile lipgloss renders with.
func SetColorMode(m ColorMode) {
	switch m {
	case ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
	}
}

// Fail prints msg as an error line on stderr.
func Fail(msg string) {
	fmt.Fprintln(os.Stderr, current.Error.Render("✖ "+msg))
}
