package gallery

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/netlens/internal/logger"
	"github.com/alexisbeaulieu97/netlens/internal/styles"
	"github.com/alexisbeaulieu97/netlens/internal/translations"
)

// Options configures a gallery Model.
type Options struct {
	Theme    styles.ThemeState
	Language translations.Language
	// Manager, when set, receives every theme change made in the gallery.
	Manager *styles.ThemeManager
	Logger  *logger.Logger
}

// Model is the interactive variant gallery. The row under the cursor is
// shown hovered; every other row is shown at rest unless disabled is on.
type Model struct {
	variants []styles.ButtonStyle
	cursor   int
	offset   int
	disabled bool

	cycle    []styles.Style
	custom   *styles.CustomPalette
	theme    styles.ThemeState
	language translations.Language

	manager *styles.ThemeManager
	log     *logger.Logger

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates a gallery showing every button variant under opts.Theme.
func NewModel(opts Options) Model {
	cycle := styles.BuiltinStyles()
	if opts.Theme.Custom != nil {
		cycle = append(cycle, styles.StyleCustom)
	}

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return Model{
		variants: styles.AllButtonStyles(),
		cycle:    cycle,
		custom:   opts.Theme.Custom,
		theme:    opts.Theme,
		language: opts.Language,
		manager:  opts.Manager,
		log:      log,
		keys:     newKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the theme currently shown.
func (m Model) Theme() styles.ThemeState {
	return m.theme
}

// Language returns the language used for the title.
func (m Model) Language() translations.Language {
	return m.language
}

// Selected returns the variant under the cursor.
func (m Model) Selected() styles.ButtonStyle {
	return m.variants[m.cursor]
}

// Disabled reports whether every row is shown disabled.
func (m Model) Disabled() bool {
	return m.disabled
}

// stateFor returns the interaction state a row is drawn in.
func (m Model) stateFor(row int) styles.InteractionState {
	switch {
	case m.disabled:
		return styles.StateDisabled
	case row == m.cursor:
		return styles.StateHovered
	default:
		return styles.StateActive
	}
}

func (m *Model) moveCursor(delta int) {
	n := len(m.variants)
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.clampOffset()
}

// visibleRows is how many variants fit below the header and above the help line.
func (m Model) visibleRows() int {
	rows := (m.height - chromeHeight) / rowHeight
	if rows < 1 {
		return 1
	}
	if rows > len(m.variants) {
		return len(m.variants)
	}
	return rows
}

func (m *Model) clampOffset() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if maxOffset := len(m.variants) - visible; m.offset > maxOffset {
		m.offset = maxOffset
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) nextStyle() {
	current := 0
	for i, s := range m.cycle {
		if s == m.theme.Style {
			current = i
			break
		}
	}
	next := m.cycle[(current+1)%len(m.cycle)]
	if next == styles.StyleCustom && m.custom != nil {
		m.setTheme(styles.NewCustomThemeState(*m.custom))
		return
	}
	m.setTheme(styles.NewThemeState(next))
}

func (m *Model) toggleNightly() {
	theme := m.theme
	theme.Nightly = !theme.Nightly
	m.setTheme(theme)
}

func (m *Model) nextLanguage() {
	langs := translations.Languages()
	m.language = langs[(int(m.language)+1)%len(langs)]
	m.log.WithFields(map[string]any{"language": m.language.Code()}).Debug("language changed")
}

func (m *Model) setTheme(theme styles.ThemeState) {
	m.theme = theme
	if m.manager != nil {
		m.manager.Set(theme)
	}
	m.log.WithTheme(theme).Debug("theme changed")
}
