package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeManagerReturnsCopies(t *testing.T) {
	t.Parallel()

	custom := testCustomTheme()
	manager := NewThemeManager(custom)

	snapshot := manager.Theme()
	snapshot.Custom.Palette.Secondary = White

	assert.Equal(t, custom.Custom.Palette.Secondary, manager.Theme().Custom.Palette.Secondary)
}

func TestSetCurrentTheme(t *testing.T) {
	original := CurrentTheme()
	t.Cleanup(func() { SetTheme(original) })

	SetTheme(NewThemeState(StyleMonAmour))
	assert.Equal(t, StyleMonAmour, CurrentTheme().Style)
	assert.False(t, CurrentTheme().IsNightly())
}

func TestDefaultThemeManagerBacksCurrentTheme(t *testing.T) {
	original := CurrentTheme()
	t.Cleanup(func() { SetTheme(original) })

	DefaultThemeManager().Set(NewThemeState(StyleDeepSea))
	assert.Equal(t, StyleDeepSea, CurrentTheme().Style)
}
