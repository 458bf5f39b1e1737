package styles

import (
	"fmt"
	"strings"
)

// Style identifies one of the built-in themes, or a palette loaded from a file.
type Style int

const (
	StyleNight Style = iota
	StyleDay
	StyleDeepSea
	StyleMonAmour
	StyleCustom
)

var styleNames = map[Style]string{
	StyleNight:    "night",
	StyleDay:      "day",
	StyleDeepSea:  "deep_sea",
	StyleMonAmour: "mon_amour",
	StyleCustom:   "custom",
}

// BuiltinStyles lists the styles that carry their own palette.
func BuiltinStyles() []Style {
	return []Style{StyleNight, StyleDay, StyleDeepSea, StyleMonAmour}
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// ParseStyle maps a configuration name such as "deep_sea" to its Style.
func ParseStyle(name string) (Style, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for style, candidate := range styleNames {
		if candidate == normalized {
			return style, nil
		}
	}
	return StyleNight, fmt.Errorf("unknown style %q", name)
}

// Palette is the set of named colors every widget appearance is built from.
type Palette struct {
	Primary     Color
	Secondary   Color
	TextBody    Color
	TextHeaders Color
	Starred     Color
}

// CustomPalette is a user supplied palette, usually loaded from a style file.
type CustomPalette struct {
	Palette Palette
	Buttons Color
	Nightly bool
}

// ThemeState is the host's current theme selection. It is read, never mutated,
// by the resolver.
type ThemeState struct {
	Style   Style
	Nightly bool
	Custom  *CustomPalette
}

// NewThemeState selects a built-in style with its default nightly flag.
func NewThemeState(style Style) ThemeState {
	return ThemeState{Style: style, Nightly: builtinFor(style).nightly}
}

// NewCustomThemeState selects a custom palette.
func NewCustomThemeState(custom CustomPalette) ThemeState {
	return ThemeState{Style: StyleCustom, Nightly: custom.Nightly, Custom: &custom}
}

// IsNightly reports the alternate-palette flag used for gradient selection.
func (t ThemeState) IsNightly() bool {
	return t.Nightly
}

func (t ThemeState) String() string {
	if t.Nightly {
		return t.Style.String() + " (nightly)"
	}
	return t.Style.String()
}

type builtinPalette struct {
	palette          Palette
	buttons          Color
	nightly          bool
	containerAlpha   float32
	roundBorderAlpha float32
}

// Starred accent shared by every built-in style.
var starredGold = RGB8(245, 193, 39)

const (
	darkContainerAlpha  float32 = 0.15
	darkBorderAlpha     float32 = 0.35
	lightContainerAlpha float32 = 0.2
	lightBorderAlpha    float32 = 0.45
)

var builtinPalettes = map[Style]builtinPalette{
	StyleNight: {
		palette: Palette{
			Primary:     RGB(0.2, 0.2, 0.2),
			Secondary:   RGB(0.7, 0.35, 0),
			TextBody:    White,
			TextHeaders: Black,
			Starred:     starredGold,
		},
		buttons:          RGB(0.1, 0.1, 0.1),
		nightly:          true,
		containerAlpha:   darkContainerAlpha,
		roundBorderAlpha: darkBorderAlpha,
	},
	StyleDay: {
		palette: Palette{
			Primary:     White,
			Secondary:   RGB(0, 0.35, 0.7),
			TextBody:    Black,
			TextHeaders: White,
			Starred:     starredGold,
		},
		buttons:          RGB(0.8, 0.8, 0.8),
		nightly:          false,
		containerAlpha:   lightContainerAlpha,
		roundBorderAlpha: lightBorderAlpha,
	},
	StyleDeepSea: {
		palette: Palette{
			Primary:     RGB8(28, 49, 94),
			Secondary:   RGB8(55, 181, 255),
			TextBody:    White,
			TextHeaders: Black,
			Starred:     starredGold,
		},
		buttons:          RGB8(48, 71, 135),
		nightly:          true,
		containerAlpha:   darkContainerAlpha,
		roundBorderAlpha: darkBorderAlpha,
	},
	StyleMonAmour: {
		palette: Palette{
			Primary:     RGB8(242, 190, 209),
			Secondary:   RGB8(67, 44, 122),
			TextBody:    Black,
			TextHeaders: White,
			Starred:     starredGold,
		},
		buttons:          RGB8(255, 205, 219),
		nightly:          false,
		containerAlpha:   lightContainerAlpha,
		roundBorderAlpha: lightBorderAlpha,
	},
}

// builtinFor returns the built-in palette for style, falling back to Night so
// every ThemeState resolves to a complete palette.
func builtinFor(style Style) builtinPalette {
	if p, ok := builtinPalettes[style]; ok {
		return p
	}
	return builtinPalettes[StyleNight]
}

// ResolvePalette returns the named colors of the theme. Custom styles without
// a custom palette resolve like Night.
func ResolvePalette(theme ThemeState) Palette {
	if theme.Style == StyleCustom && theme.Custom != nil {
		return theme.Custom.Palette
	}
	return builtinFor(theme.Style).palette
}

// ButtonsColor is the resting fill shared by plain buttons.
func ButtonsColor(theme ThemeState) Color {
	if theme.Style == StyleCustom && theme.Custom != nil {
		return theme.Custom.Buttons
	}
	return builtinFor(theme.Style).buttons
}

// RoundContainerAlpha is the alpha used to soften filled pill surfaces.
func RoundContainerAlpha(theme ThemeState) float32 {
	if theme.Style == StyleCustom && theme.Custom != nil {
		if theme.Custom.Nightly {
			return darkContainerAlpha
		}
		return lightContainerAlpha
	}
	return builtinFor(theme.Style).containerAlpha
}

// RoundBorderAlpha is the alpha used to soften outlined pill surfaces.
func RoundBorderAlpha(theme ThemeState) float32 {
	if theme.Style == StyleCustom && theme.Custom != nil {
		if theme.Custom.Nightly {
			return darkBorderAlpha
		}
		return lightBorderAlpha
	}
	return builtinFor(theme.Style).roundBorderAlpha
}
