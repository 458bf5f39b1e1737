package styles

import "sync"

// ThemeManager coordinates access to the host's ThemeState. Resolution never
// reads it; callers snapshot the theme once per redraw and pass it along.
type ThemeManager struct {
	mu    sync.RWMutex
	theme ThemeState
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme ThemeState) *ThemeManager {
	return &ThemeManager{theme: cloneThemeState(theme)}
}

// Set replaces the managed theme.
func (m *ThemeManager) Set(theme ThemeState) {
	m.mu.Lock()
	m.theme = cloneThemeState(theme)
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() ThemeState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneThemeState(m.theme)
}

// cloneThemeState detaches the custom palette so callers cannot mutate the
// managed copy.
func cloneThemeState(theme ThemeState) ThemeState {
	if theme.Custom != nil {
		custom := *theme.Custom
		theme.Custom = &custom
	}
	return theme
}

var defaultThemeManager = NewThemeManager(NewThemeState(StyleNight))

// SetTheme sets the process-wide theme.
func SetTheme(theme ThemeState) {
	defaultThemeManager.Set(theme)
}

// CurrentTheme returns the process-wide theme.
func CurrentTheme() ThemeState {
	return defaultThemeManager.Theme()
}

// DefaultThemeManager returns the manager behind SetTheme and CurrentTheme.
func DefaultThemeManager() *ThemeManager {
	return defaultThemeManager
}
