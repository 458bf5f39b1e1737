package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/netlens/internal/components"
	"github.com/alexisbeaulieu97/netlens/internal/styles"
	"github.com/alexisbeaulieu97/netlens/internal/translations"
)

const (
	// rowHeight covers the bordered button plus its shadow row.
	rowHeight    = 4
	chromeHeight = 4
	buttonWidth  = 18
	nameWidth    = 20
)

var (
	nameStyle     = lipgloss.NewStyle().Width(nameWidth).PaddingTop(1)
	selectedStyle = nameStyle.Bold(true)
	statusStyle   = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model.
func (m Model) View() string {
	palette := styles.ResolvePalette(m.theme)
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextHeaders.Lipgloss()).
		Background(palette.Secondary.Lipgloss()).
		Padding(0, 1).
		Render("Netlens · " + translations.Lookup(translations.CustomStyle, m.language))

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(m.status()))
	sb.WriteString("\n\n")

	end := m.offset + m.visibleRows()
	for i := m.offset; i < end && i < len(m.variants); i++ {
		sb.WriteString(m.renderRow(i))
		sb.WriteString("\n")
	}

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) renderRow(i int) string {
	variant := m.variants[i]
	label := nameStyle
	marker := "  "
	if i == m.cursor {
		label = selectedStyle
		marker = "› "
	}

	button := components.NewButton(variant.String(), components.ButtonOptions{
		Style: variant,
		State: m.stateFor(i),
		Width: buttonWidth,
	})
	return lipgloss.JoinHorizontal(lipgloss.Top,
		label.Render(marker+variant.String()),
		button.View(m.theme),
	)
}

func (m Model) status() string {
	state := m.stateFor(m.cursor)
	return fmt.Sprintf("%s · %s · %s · %d/%d",
		m.theme, m.language, state, m.cursor+1, len(m.variants))
}
