package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/netlens/internal/styles"
)

const previewLabelWidth = 24

var (
	previewHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	previewLabelStyle  = lipgloss.NewStyle().Width(previewLabelWidth)
)

// PreviewRow renders one variant in every interaction state, side by side.
func PreviewRow(theme styles.ThemeState, style styles.ButtonStyle, label string) string {
	group := NewButtonGroup()
	for _, state := range styles.InteractionStates() {
		group.AddButton(NewButton(label, ButtonOptions{Style: style, State: state, Width: 10}))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		previewLabelStyle.Render(style.String()),
		group.View(theme),
	)
}

// Preview renders every variant of the engine under theme.
func Preview(theme styles.ThemeState, title, label string) string {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		previewLabelStyle.Render(previewHeaderStyle.Render(title)),
		stateHeader(),
	)

	rows := []string{header}
	for _, style := range styles.AllButtonStyles() {
		rows = append(rows, PreviewRow(theme, style, label))
	}
	return strings.Join(rows, "\n")
}

func stateHeader() string {
	cells := make([]string, 0, 3)
	for _, state := range styles.InteractionStates() {
		cells = append(cells, lipgloss.NewStyle().Width(16).Render(state.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
