package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveGradientStops(t *testing.T) {
	t.Parallel()

	palette := ResolvePalette(NewThemeState(StyleNight))
	g := ActiveGradient(palette, GradientMild, true, 1)

	require.Len(t, g.Stops, 2)
	assert.Equal(t, float32(0), g.Stops[0].Offset)
	assert.Equal(t, float32(1), g.Stops[1].Offset)
	assert.Equal(t, palette.Secondary, g.Stops[0].Color)
	assert.Equal(t, Mix(Black, palette.Secondary), g.Stops[1].Color)
}

func TestNightlyFlagChangesGradient(t *testing.T) {
	t.Parallel()

	palette := ResolvePalette(NewThemeState(StyleDay))
	for _, kind := range []GradientKind{GradientMild, GradientWild} {
		night := ActiveGradient(palette, kind, true, 1)
		day := ActiveGradient(palette, kind, false, 1)
		assert.NotEqual(t, night, day, "kind %s", kind)
	}
}

func TestHoveredGradientSwapsStops(t *testing.T) {
	t.Parallel()

	for _, theme := range allThemes() {
		palette := ResolvePalette(theme)
		for _, kind := range []GradientKind{GradientMild, GradientWild} {
			active := ActiveGradient(palette, kind, theme.IsNightly(), 1)
			hovered := HoveredGradient(palette, kind, theme.IsNightly())

			require.Len(t, hovered.Stops, 2)
			assert.Equal(t, active.Stops[1].Color, hovered.Stops[0].Color)
			assert.Equal(t, active.Stops[0].Color, hovered.Stops[1].Color)
			assert.NotEqual(t, active.Stops[0].Color, hovered.Stops[0].Color, "%s %s", theme, kind)
		}
	}
}

func TestGradientOpacityScalesAlpha(t *testing.T) {
	t.Parallel()

	palette := ResolvePalette(NewThemeState(StyleDeepSea))
	full := ActiveGradient(palette, GradientWild, true, 1)
	faded := ActiveGradient(palette, GradientWild, true, 0.25)
	clamped := ActiveGradient(palette, GradientWild, true, 4)

	for i := range full.Stops {
		assert.InDelta(t, full.Stops[i].Color.A*0.25, faded.Stops[i].Color.A, 1e-6)
		assert.Equal(t, full.Stops[i].Color.R, faded.Stops[i].Color.R)
	}
	assert.Equal(t, full, clamped)
}

func TestGradientNoneIsUniform(t *testing.T) {
	t.Parallel()

	palette := ResolvePalette(NewThemeState(StyleDay))
	g := ActiveGradient(palette, GradientNone, false, 1)
	require.Len(t, g.Stops, 2)
	assert.Equal(t, g.Stops[0].Color, g.Stops[1].Color)
}

func TestColorAt(t *testing.T) {
	t.Parallel()

	g := Gradient{Stops: []Stop{{Offset: 0, Color: Black}, {Offset: 1, Color: WithAlpha(White, 0)}}}

	assert.Equal(t, Black, g.ColorAt(0))
	assert.Equal(t, WithAlpha(White, 0), g.ColorAt(1))
	assert.Equal(t, Black, g.ColorAt(-1))

	mid := g.ColorAt(0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-6)
	assert.InDelta(t, 0.5, mid.A, 1e-6)

	assert.Equal(t, Transparent, Gradient{}.ColorAt(0.3))
}
