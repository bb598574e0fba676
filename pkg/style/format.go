package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/diinject/pkg/errors"
)

// Format selects how snapshots are rendered
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// Formats lists every supported format
var Formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat parses a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown format %q", name).
		WithDetail("format", name)
}

// ColorMode controls ANSI styling
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses a color mode name, case-insensitively
func ParseColorMode(name string) (ColorMode, error) {
	m := ColorMode(strings.ToLower(strings.TrimSpace(name)))
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown color mode %q", name).
		WithDetail("color", name)
}

// ColorEnabled resolves a mode against the given file: auto means the file
// is a terminal and NO_COLOR is not set.
func ColorEnabled(mode ColorMode, f *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if f == nil || termenv.EnvNoColor() {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ApplyColor switches pterm and lipgloss styling on or off process-wide
func ApplyColor(enabled bool) {
	if enabled {
		pterm.EnableColor()
		lipgloss.SetColorProfile(termenv.ANSI256)
		return
	}
	pterm.DisableColor()
	lipgloss.SetColorProfile(termenv.Ascii)
}
