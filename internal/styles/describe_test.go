package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppearanceString(t *testing.T) {
	t.Parallel()

	a := Appearance{
		Background:  Flat{Color: WithAlpha(White, 0.5)},
		Radius:      UniformRadius(ButtonRadius),
		BorderWidth: BorderWidth,
		Shadow:      Vector{X: 0, Y: 2},
		TextColor:   Black,
		BorderColor: AlertRed,
	}
	assert.Equal(t, "bg=#ffffff80 border=2 #cc2626 radius=8 text=#000000 shadow=0,2", a.String())
}

func TestRadiusString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12", UniformRadius(12).String())
	assert.Equal(t, "0,0,30,30", tabRadius.String())
}

func TestDescribeBackground(t *testing.T) {
	t.Parallel()

	g := Gradient{Stops: []Stop{{Offset: 0, Color: Black}, {Offset: 1, Color: White}}}
	assert.Equal(t, "gradient(#000000>#ffffff)", describeBackground(g))
	assert.Equal(t, "none", describeBackground(nil))
}

func TestDescribeCoversEveryVariantAndState(t *testing.T) {
	t.Parallel()

	for _, theme := range allThemes() {
		lines := strings.Split(strings.TrimSuffix(Describe(theme), "\n"), "\n")
		require.Len(t, lines, len(AllButtonStyles())*len(InteractionStates()))
		assert.True(t, strings.HasPrefix(lines[0], "standard/active: bg="))
		assert.Equal(t, Describe(theme), Describe(theme))
	}
}
