package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/netlens/internal/styles"
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Style styles.ButtonStyle
	State styles.InteractionState
	// Width is the minimum inner width; labels are centred within it.
	Width int
}

// Button renders a resolved button appearance in the terminal.
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{
		label:   label,
		options: opts,
	}
}

// WithStyle sets the button variant
func (b *Button) WithStyle(style styles.ButtonStyle) *Button {
	b.options.Style = style
	return b
}

// WithState sets the interaction state
func (b *Button) WithState(state styles.InteractionState) *Button {
	b.options.State = state
	return b
}

// WithWidth sets the minimum inner width
func (b *Button) WithWidth(width int) *Button {
	b.options.Width = width
	return b
}

// Appearance resolves the button under theme.
func (b *Button) Appearance(theme styles.ThemeState) styles.Appearance {
	return styles.Resolve(theme, b.options.Style, b.options.State)
}

// View renders the button on top of the theme's primary surface.
func (b *Button) View(theme styles.ThemeState) string {
	appearance := b.Appearance(theme)
	surface := styles.ResolvePalette(theme).Primary

	content := " " + padCenter(b.label, b.options.Width) + " "
	text := styles.Over(appearance.TextColor, surface)

	var body string
	switch bg := appearance.Background.(type) {
	case styles.Gradient:
		body = renderGradient(content, bg, text, surface)
	case styles.Flat:
		body = lipgloss.NewStyle().
			Background(styles.Over(bg.Color, surface).Lipgloss()).
			Foreground(text.Lipgloss()).
			Render(content)
	default:
		body = lipgloss.NewStyle().Foreground(text.Lipgloss()).Render(content)
	}

	framed := lipgloss.NewStyle().
		Border(borderFor(appearance)).
		BorderForeground(styles.Over(appearance.BorderColor, surface).Lipgloss()).
		BorderBackground(surface.Lipgloss()).
		Render(body)

	shadow := renderShadow(appearance.Shadow, lipgloss.Width(framed), surface)
	if shadow == "" {
		return framed
	}
	return lipgloss.JoinVertical(lipgloss.Left, framed, shadow)
}

// renderGradient colours every cell of content with the gradient sampled at
// the cell position.
func renderGradient(content string, g styles.Gradient, text, surface styles.Color) string {
	cells := []rune(content)
	var sb strings.Builder
	for i, r := range cells {
		t := float32(0)
		if len(cells) > 1 {
			t = float32(i) / float32(len(cells)-1)
		}
		bg := styles.Over(g.ColorAt(t), surface)
		sb.WriteString(lipgloss.NewStyle().
			Background(bg.Lipgloss()).
			Foreground(text.Lipgloss()).
			Render(string(r)))
	}
	return sb.String()
}

// borderFor maps border width and corner radii onto box drawing characters:
// no width hides the border, a wider border is drawn thick, and every rounded
// corner gets an arc.
func borderFor(a styles.Appearance) lipgloss.Border {
	if a.BorderWidth <= 0 {
		return lipgloss.HiddenBorder()
	}
	if a.BorderWidth > styles.BorderWidth {
		return lipgloss.ThickBorder()
	}

	border := lipgloss.NormalBorder()
	rounded := lipgloss.RoundedBorder()
	if a.Radius[0] > 0 {
		border.TopLeft = rounded.TopLeft
	}
	if a.Radius[1] > 0 {
		border.TopRight = rounded.TopRight
	}
	if a.Radius[2] > 0 {
		border.BottomRight = rounded.BottomRight
	}
	if a.Radius[3] > 0 {
		border.BottomLeft = rounded.BottomLeft
	}
	return border
}

const shadowCellWidth = 3

// renderShadow draws a one row drop shadow under a block of the given width,
// shifted right by the horizontal offset.
func renderShadow(offset styles.Vector, width int, surface styles.Color) string {
	if offset.Y <= 0 || width <= 0 {
		return ""
	}
	shift := int(offset.X) / shadowCellWidth
	shade := styles.MixWeighted(surface, styles.Black, 0.45)
	return strings.Repeat(" ", shift) + lipgloss.NewStyle().
		Foreground(shade.Lipgloss()).
		Render(strings.Repeat("▀", width))
}

func padCenter(label string, width int) string {
	gap := width - lipgloss.Width(label)
	if gap <= 0 {
		return label
	}
	left := gap / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", gap-left)
}

// ButtonGroup represents a horizontal group of buttons
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a new button group
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{
		buttons: buttons,
		spacing: 2,
	}
}

// WithSpacing sets the spacing between buttons
func (bg *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	bg.spacing = spacing
	return bg
}

// AddButton adds a button to the group
func (bg *ButtonGroup) AddButton(button *Button) *ButtonGroup {
	bg.buttons = append(bg.buttons, button)
	return bg
}

// View renders the button group
func (bg *ButtonGroup) View(theme styles.ThemeState) string {
	if len(bg.buttons) == 0 {
		return ""
	}

	views := make([]string, 0, len(bg.buttons)*2)
	spacer := strings.Repeat(" ", bg.spacing)
	for i, button := range bg.buttons {
		if i > 0 && bg.spacing > 0 {
			views = append(views, spacer)
		}
		views = append(views, button.View(theme))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
