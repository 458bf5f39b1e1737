package styles

import (
	"fmt"
	"strings"
)

// String describes the appearance on one line, e.g.
// "bg=#1e1e2e border=2 #c83c5a radius=8 text=#ffffff shadow=0,2".
func (a Appearance) String() string {
	var sb strings.Builder
	sb.WriteString("bg=")
	sb.WriteString(describeBackground(a.Background))
	fmt.Fprintf(&sb, " border=%g %s", a.BorderWidth, a.BorderColor.Hex())
	sb.WriteString(" radius=")
	sb.WriteString(a.Radius.String())
	fmt.Fprintf(&sb, " text=%s shadow=%g,%g", a.TextColor.Hex(), a.Shadow.X, a.Shadow.Y)
	return sb.String()
}

func (r Radius) String() string {
	if r[0] == r[1] && r[1] == r[2] && r[2] == r[3] {
		return fmt.Sprintf("%g", r[0])
	}
	return fmt.Sprintf("%g,%g,%g,%g", r[0], r[1], r[2], r[3])
}

func describeBackground(bg Background) string {
	switch bg := bg.(type) {
	case Flat:
		return bg.Color.Hex()
	case Gradient:
		stops := make([]string, 0, len(bg.Stops))
		for _, stop := range bg.Stops {
			stops = append(stops, stop.Color.Hex())
		}
		return "gradient(" + strings.Join(stops, ">") + ")"
	default:
		return "none"
	}
}

// Describe lists the appearance of every variant in every state under theme,
// one "variant/state: appearance" line each.
func Describe(theme ThemeState) string {
	var sb strings.Builder
	for _, style := range AllButtonStyles() {
		for _, state := range InteractionStates() {
			fmt.Fprintf(&sb, "%s/%s: %s\n", style, state, Resolve(theme, style, state))
		}
	}
	return sb.String()
}
