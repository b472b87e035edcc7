// Package apptheme provides the app's dark and light colour schemes.
package apptheme

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Mode selects one of the two colour schemes
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ParseMode accepts "dark" or "light" in any case. Anything else is light,
// the scheme the app starts with.
func ParseMode(name string) Mode {
	if strings.EqualFold(strings.TrimSpace(name), string(ModeDark)) {
		return ModeDark
	}
	return ModeLight
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// Variant maps the mode to a fyne theme variant
func (m Mode) Variant() fyne.ThemeVariant {
	if m == ModeLight {
		return theme.VariantLight
	}
	return theme.VariantDark
}

// Palette holds the colours the views paint directly
type Palette struct {
	Background color.NRGBA
	Surface    color.NRGBA
	Primary    color.NRGBA
	Accent     color.NRGBA
	Text       color.NRGBA
	Muted      color.NRGBA
	Border     color.NRGBA
	Error      color.NRGBA
	Success    color.NRGBA
}

var (
	brandBlue   = color.NRGBA{R: 0x00, G: 0x47, B: 0xab, A: 0xff}
	brandOrange = color.NRGBA{R: 0xff, G: 0x66, B: 0x00, A: 0xff}
	errorRed    = color.NRGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff}

	lightPalette = Palette{
		Background: color.NRGBA{R: 0xf0, G: 0xf2, B: 0xf5, A: 0xff},
		Surface:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Primary:    brandBlue,
		Accent:     brandOrange,
		Text:       color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff},
		Muted:      color.NRGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff},
		Border:     color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
		Error:      errorRed,
		Success:    color.NRGBA{R: 0x00, G: 0x9e, B: 0x4d, A: 0xff},
	}

	darkPalette = Palette{
		Background: color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff},
		Surface:    color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff},
		Primary:    brandBlue,
		Accent:     brandOrange,
		Text:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Muted:      color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff},
		Border:     color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		Error:      errorRed,
		Success:    color.NRGBA{R: 0x32, G: 0xcd, B: 0x32, A: 0xff},
	}
)

// PaletteFor returns the colours of mode
func PaletteFor(mode Mode) Palette {
	if mode == ModeLight {
		return lightPalette
	}
	return darkPalette
}

// Theme wraps the default fyne theme with a fixed variant and the app palette
type Theme struct {
	base    fyne.Theme
	mode    Mode
	palette Palette
}

// New creates a theme for mode
func New(mode Mode) *Theme {
	return &Theme{
		base:    theme.DefaultTheme(),
		mode:    mode,
		palette: PaletteFor(mode),
	}
}

// Mode returns the scheme this theme paints
func (t *Theme) Mode() Mode {
	return t.mode
}

// Color overrides the named colours the app cares about and ignores the
// requested variant in favour of the theme's own.
func (t *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return t.palette.Background
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return t.palette.Surface
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return t.palette.Primary
	case theme.ColorNameForeground:
		return t.palette.Text
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return t.palette.Muted
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return t.palette.Border
	case theme.ColorNameError:
		return t.palette.Error
	case theme.ColorNameSuccess:
		return t.palette.Success
	default:
		return t.base.Color(name, t.mode.Variant())
	}
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size enlarges text slightly for the single-purpose window
func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameInputRadius:
		return 6
	default:
		return t.base.Size(name)
	}
}
