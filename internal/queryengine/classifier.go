package queryengine

import "github.com/go-termtheme/termtheme/internal/colormath"

// ThemeMode is the terminal's overall color scheme, classified from its
// palette's perceived lightness.
type ThemeMode int

const (
	Dark ThemeMode = iota
	Light
)

func (m ThemeMode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// Classify applies the perceived-lightness classifier: background darker
// than foreground is Dark; background lighter than foreground, or
// background alone lighter than middle grey, is Light. The fg==bg tie
// resolves to Dark unless both are above middle grey, biasing the
// ambiguous case toward Dark except when clearly light-on-light.
func Classify(p Palette) ThemeMode {
	fg := colormath.PerceivedLightness(p.Foreground)
	bg := colormath.PerceivedLightness(p.Background)

	switch {
	case bg < fg:
		return Dark
	case bg > fg || bg > 0.5:
		return Light
	default:
		return Dark
	}
}

// ColorScheme queries the palette and classifies it in one call.
func ColorScheme(opts Options) (ThemeMode, error) {
	palette, err := ColorPalette(opts)
	if err != nil {
		return Dark, err
	}
	return Classify(palette), nil
}
