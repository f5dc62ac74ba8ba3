// Package termtheme queries the controlling terminal's foreground and
// background colors over OSC 10/11 and classifies the terminal as dark
// or light from their perceived lightness.
package termtheme

import (
	"time"

	"github.com/go-termtheme/termtheme/internal/colormath"
	"github.com/go-termtheme/termtheme/internal/queryengine"
)

// Color is a 16-bit-per-channel RGB color as reported by the terminal,
// with an alpha channel present only for terminals that answer with the
// rxvt-unicode rgba: extension (0xFFFF otherwise).
type Color struct {
	Red, Green, Blue, Alpha uint16
}

func fromInternal(c colormath.Color) Color {
	return Color{Red: c.Red, Green: c.Green, Blue: c.Blue, Alpha: c.Alpha}
}

func (c Color) toInternal() colormath.Color {
	return colormath.Color{Red: c.Red, Green: c.Green, Blue: c.Blue, Alpha: c.Alpha}
}

// PerceivedLightness returns c's CIELAB L*, normalized to [0, 1], computed
// from its sRGB channels via gamma-corrected relative luminance.
func (c Color) PerceivedLightness() float64 {
	return colormath.PerceivedLightness(c.toInternal())
}

// Palette holds a terminal's foreground and background colors, queried
// together in a single raw-mode session.
type Palette struct {
	Foreground Color
	Background Color
}

func fromInternalPalette(p queryengine.Palette) Palette {
	return Palette{Foreground: fromInternal(p.Foreground), Background: fromInternal(p.Background)}
}

func (p Palette) toInternal() queryengine.Palette {
	return queryengine.Palette{Foreground: p.Foreground.toInternal(), Background: p.Background.toInternal()}
}

// Mode is the terminal's overall color scheme.
type Mode int

const (
	Dark Mode = iota
	Light
)

func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

func fromInternalMode(m queryengine.ThemeMode) Mode {
	if m == queryengine.Light {
		return Light
	}
	return Dark
}

// Classify applies the perceived-lightness classifier directly to an
// already-known palette, without touching the terminal.
func Classify(p Palette) Mode {
	return fromInternalMode(queryengine.Classify(p.toInternal()))
}

// QueryOptions configures a single terminal query. The zero value is a
// usable default: a 1s timeout and no precondition on stdout.
type QueryOptions struct {
	// Timeout bounds the query's entire read phase as a single wall-clock
	// budget, shared across however many reads it takes to collect a
	// complete reply. Zero means DefaultTimeout.
	Timeout time.Duration

	// RequireStdoutTTY fails the query with an error of kind
	// NotATerminal unless stdout is itself a terminal.
	RequireStdoutTTY bool

	// ProhibitStdoutPipe fails the query with an error of kind
	// NotATerminal when stdout is a named pipe, mitigating races with
	// pagers that might also be reading the terminal.
	ProhibitStdoutPipe bool

	// RequireForeground fails the query with an error of kind
	// NotATerminal unless the process is in its controlling terminal's
	// foreground process group. No-op on platforms without POSIX job
	// control.
	RequireForeground bool
}

// DefaultTimeout is used whenever QueryOptions.Timeout is left at its
// zero value.
const DefaultTimeout = queryengine.DefaultTimeout

func (o QueryOptions) toInternal() queryengine.Options {
	return queryengine.Options{
		Timeout:            o.Timeout,
		RequireStdoutTTY:   o.RequireStdoutTTY,
		ProhibitStdoutPipe: o.ProhibitStdoutPipe,
		RequireForeground:  o.RequireForeground,
	}
}

// ForegroundColor queries the terminal's foreground (text) color.
func ForegroundColor(opts QueryOptions) (Color, error) {
	c, err := queryengine.Foreground(opts.toInternal())
	if err != nil {
		return Color{}, wrapError(err)
	}
	return fromInternal(c), nil
}

// BackgroundColor queries the terminal's background color.
func BackgroundColor(opts QueryOptions) (Color, error) {
	c, err := queryengine.Background(opts.toInternal())
	if err != nil {
		return Color{}, wrapError(err)
	}
	return fromInternal(c), nil
}

// ColorPalette queries both foreground and background in one raw-mode
// session.
func ColorPalette(opts QueryOptions) (Palette, error) {
	p, err := queryengine.ColorPalette(opts.toInternal())
	if err != nil {
		return Palette{}, wrapError(err)
	}
	return fromInternalPalette(p), nil
}

// ColorScheme queries the palette and classifies it in one call.
func ColorScheme(opts QueryOptions) (Mode, error) {
	m, err := queryengine.ColorScheme(opts.toInternal())
	if err != nil {
		return Dark, wrapError(err)
	}
	return fromInternalMode(m), nil
}
