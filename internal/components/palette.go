package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/netlens/internal/styles"
)

var (
	paletteTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	paletteNameStyle  = lipgloss.NewStyle().Width(14)
	paletteHexStyle   = lipgloss.NewStyle().Faint(true).Width(11)
)

// Swatch renders a solid block of c.
func Swatch(c styles.Color, width int) string {
	return lipgloss.NewStyle().Background(c.Lipgloss()).Render(strings.Repeat(" ", width))
}

// PaletteCard lists the resolved colors of theme with a swatch each.
func PaletteCard(theme styles.ThemeState) string {
	p := styles.ResolvePalette(theme)
	rows := []struct {
		name  string
		color styles.Color
	}{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"buttons", styles.ButtonsColor(theme)},
		{"text body", p.TextBody},
		{"text headers", p.TextHeaders},
		{"starred", p.Starred},
	}

	lines := []string{paletteTitleStyle.Render(theme.String())}
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			paletteNameStyle.Render(row.name),
			paletteHexStyle.Render(row.color.Hex()),
			Swatch(row.color, 6),
		))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("round container alpha  %.2f", styles.RoundContainerAlpha(theme)),
		fmt.Sprintf("round border alpha     %.2f", styles.RoundBorderAlpha(theme)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
