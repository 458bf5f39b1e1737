package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allThemes() []ThemeState {
	themes := make([]ThemeState, 0, 8)
	for _, style := range BuiltinStyles() {
		theme := NewThemeState(style)
		themes = append(themes, theme)
		theme.Nightly = !theme.Nightly
		themes = append(themes, theme)
	}
	themes = append(themes, testCustomTheme(), ThemeState{Style: StyleCustom})
	return themes
}

func testCustomTheme() ThemeState {
	return NewCustomThemeState(CustomPalette{
		Palette: Palette{
			Primary:     RGB8(16, 24, 32),
			Secondary:   RGB8(200, 60, 90),
			TextBody:    White,
			TextHeaders: Black,
			Starred:     RGB8(255, 215, 0),
		},
		Buttons: RGB8(40, 48, 60),
		Nightly: true,
	})
}

func TestResolvePaletteIsComplete(t *testing.T) {
	t.Parallel()

	for _, theme := range allThemes() {
		p := ResolvePalette(theme)
		for name, c := range map[string]Color{
			"primary":      p.Primary,
			"secondary":    p.Secondary,
			"text_body":    p.TextBody,
			"text_headers": p.TextHeaders,
			"starred":      p.Starred,
		} {
			assert.NotEqual(t, float32(0), c.A, "%s: %s must be set", theme, name)
		}
		assert.NotEqual(t, float32(0), ButtonsColor(theme).A, "%s: buttons must be set", theme)
	}
}

func TestRoundAlphasAreUnitScalars(t *testing.T) {
	t.Parallel()

	for _, theme := range allThemes() {
		for _, alpha := range []float32{RoundContainerAlpha(theme), RoundBorderAlpha(theme)} {
			assert.GreaterOrEqual(t, alpha, float32(0))
			assert.LessOrEqual(t, alpha, float32(1))
		}
	}
}

func TestRoundAlphasIgnoreNightlyOverride(t *testing.T) {
	t.Parallel()

	day := NewThemeState(StyleDay)
	flipped := day
	flipped.Nightly = true

	assert.Equal(t, RoundContainerAlpha(day), RoundContainerAlpha(flipped))
	assert.Equal(t, RoundBorderAlpha(day), RoundBorderAlpha(flipped))
}

func TestCustomPaletteOverridesBuiltin(t *testing.T) {
	t.Parallel()

	theme := testCustomTheme()
	assert.Equal(t, RGB8(200, 60, 90), ResolvePalette(theme).Secondary)
	assert.Equal(t, RGB8(40, 48, 60), ButtonsColor(theme))
	assert.True(t, theme.IsNightly())
	assert.Equal(t, darkContainerAlpha, RoundContainerAlpha(theme))
}

func TestCustomStyleWithoutPaletteFallsBackToNight(t *testing.T) {
	t.Parallel()

	theme := ThemeState{Style: StyleCustom}
	assert.Equal(t, ResolvePalette(NewThemeState(StyleNight)), ResolvePalette(theme))
}

func TestNightlyDefaults(t *testing.T) {
	t.Parallel()

	assert.True(t, NewThemeState(StyleNight).IsNightly())
	assert.True(t, NewThemeState(StyleDeepSea).IsNightly())
	assert.False(t, NewThemeState(StyleDay).IsNightly())
	assert.False(t, NewThemeState(StyleMonAmour).IsNightly())
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	style, err := ParseStyle("Deep-Sea")
	require.NoError(t, err)
	assert.Equal(t, StyleDeepSea, style)

	style, err = ParseStyle("mon_amour")
	require.NoError(t, err)
	assert.Equal(t, StyleMonAmour, style)

	_, err = ParseStyle("solarized")
	assert.Error(t, err)

	assert.Equal(t, "style(42)", Style(42).String())
}
