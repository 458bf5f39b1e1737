package styles

import (
	"fmt"
	"math"
)

// GradientKind selects one of the predefined button gradients. GradientNone is
// a flat fill and never reaches the gradient builder.
type GradientKind int

const (
	GradientNone GradientKind = iota
	GradientMild
	GradientWild
)

func (k GradientKind) String() string {
	switch k {
	case GradientNone:
		return "none"
	case GradientMild:
		return "mild"
	case GradientWild:
		return "wild"
	default:
		return fmt.Sprintf("gradient(%d)", int(k))
	}
}

// Stop is one color stop of a gradient; Offset is in [0,1].
type Stop struct {
	Offset float32
	Color  Color
}

// Gradient is a linear gradient. Angle is in radians, π/2 running left to right.
type Gradient struct {
	Angle float32
	Stops []Stop
}

const buttonGradientAngle = float32(math.Pi / 2)

// ActiveGradient builds the resting gradient for kind. opacity scales the
// alpha of every stop and is clamped to [0,1].
func ActiveGradient(palette Palette, kind GradientKind, nightly bool, opacity float32) Gradient {
	start, end := gradientEnds(palette, kind, nightly)
	opacity = clampUnit(opacity)
	return Gradient{
		Angle: buttonGradientAngle,
		Stops: []Stop{
			{Offset: 0, Color: WithAlpha(start, start.A*opacity)},
			{Offset: 1, Color: WithAlpha(end, end.A*opacity)},
		},
	}
}

// HoveredGradient builds the hovered gradient for kind: the resting stops with
// their colors swapped, at full opacity.
func HoveredGradient(palette Palette, kind GradientKind, nightly bool) Gradient {
	start, end := gradientEnds(palette, kind, nightly)
	return Gradient{
		Angle: buttonGradientAngle,
		Stops: []Stop{
			{Offset: 0, Color: end},
			{Offset: 1, Color: start},
		},
	}
}

func gradientEnds(palette Palette, kind GradientKind, nightly bool) (Color, Color) {
	tint := White
	if nightly {
		tint = Black
	}
	switch kind {
	case GradientMild:
		return palette.Secondary, Mix(tint, palette.Secondary)
	case GradientWild:
		return palette.Secondary, Mix(tint, palette.Primary)
	default:
		return palette.Secondary, palette.Secondary
	}
}

// ColorAt samples the gradient at t in [0,1]. Colors are interpolated in RGB;
// alpha is interpolated linearly.
func (g Gradient) ColorAt(t float32) Color {
	if len(g.Stops) == 0 {
		return Transparent
	}
	t = clampUnit(t)
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		prev, next := g.Stops[i-1], g.Stops[i]
		if t > next.Offset {
			continue
		}
		span := next.Offset - prev.Offset
		if span <= 0 {
			return next.Color
		}
		w := (t - prev.Offset) / span
		blended := prev.Color.colorful().BlendRgb(next.Color.colorful(), float64(w))
		return Color{
			R: float32(blended.R),
			G: float32(blended.G),
			B: float32(blended.B),
			A: prev.Color.A + (next.Color.A-prev.Color.A)*w,
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

// MaxAlpha returns the highest stop alpha.
func (g Gradient) MaxAlpha() float32 {
	var highest float32
	for _, stop := range g.Stops {
		if stop.Color.A > highest {
			highest = stop.Color.A
		}
	}
	return highest
}
