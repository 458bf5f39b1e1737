package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) RGBA color with channels in [0,1].
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

var (
	Transparent = Color{}
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
)

// RGB builds an opaque color from channels in [0,1].
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGB8 builds an opaque color from 8-bit channels.
func RGB8(r, g, b uint8) Color {
	return Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: 1}
}

// Mix returns the midpoint of a and b. Every channel, alpha included, is the
// mean of both inputs, so Mix(a, b) == Mix(b, a) bit for bit.
func Mix(a, b Color) Color {
	return Color{
		R: (a.R + b.R) / 2,
		G: (a.G + b.G) / 2,
		B: (a.B + b.B) / 2,
		A: (a.A + b.A) / 2,
	}
}

// MixWeighted moves from a towards b by weight w (clamped to [0,1]).
// A weight of 0.5 is not guaranteed to equal Mix bit for bit; use Mix when
// symmetry matters.
func MixWeighted(a, b Color, w float32) Color {
	w = clampUnit(w)
	keep := 1 - w
	return Color{
		R: a.R*keep + b.R*w,
		G: a.G*keep + b.G*w,
		B: a.B*keep + b.B*w,
		A: a.A*keep + b.A*w,
	}
}

// WithAlpha returns c with its alpha replaced by a, clamped to [0,1].
func WithAlpha(c Color, a float32) Color {
	c.A = clampUnit(a)
	return c
}

// Over composites fg onto bg (source-over) and returns the result.
func Over(fg, bg Color) Color {
	fa := clampUnit(fg.A)
	ba := clampUnit(bg.A)
	outA := fa + ba*(1-fa)
	if outA == 0 {
		return Transparent
	}
	blend := func(f, b float32) float32 {
		return (f*fa + b*ba*(1-fa)) / outA
	}
	return Color{
		R: blend(fg.R, bg.R),
		G: blend(fg.G, bg.G),
		B: blend(fg.B, bg.B),
		A: outA,
	}
}

// ParseHex decodes "#rrggbb", "#rgb" or "#rrggbbaa".
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := float32(1)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		alpha = float32(a) / 255
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: alpha}, nil
}

// MustParseHex is ParseHex for package-level constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex encodes the color as "#rrggbb", appending an alpha byte when the color
// is not fully opaque.
func (c Color) Hex() string {
	hex := c.colorful().Hex()
	if a := clampUnit(c.A); a < 1 {
		hex += fmt.Sprintf("%02x", uint8(a*255+0.5))
	}
	return hex
}

// Lipgloss converts the opaque part of the color for terminal rendering.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.colorful().Hex())
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped()
}

func clampUnit(v float32) float32 {
	switch {
	case v != v: // NaN
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
