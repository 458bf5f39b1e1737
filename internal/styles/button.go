package styles

import "fmt"

// ButtonKind is the semantic role of a button.
type ButtonKind int

const (
	ButtonStandard ButtonKind = iota
	ButtonBorderedRound
	ButtonBorderedRoundSelected
	ButtonTabActive
	ButtonTabInactive
	ButtonStarred
	ButtonNotStarred
	ButtonNeutral
	ButtonAlert
	ButtonBadge
	ButtonGradient

	buttonKindCount
)

var buttonKindNames = [buttonKindCount]string{
	ButtonStandard:              "standard",
	ButtonBorderedRound:         "bordered_round",
	ButtonBorderedRoundSelected: "bordered_round_selected",
	ButtonTabActive:             "tab_active",
	ButtonTabInactive:           "tab_inactive",
	ButtonStarred:               "starred",
	ButtonNotStarred:            "not_starred",
	ButtonNeutral:               "neutral",
	ButtonAlert:                 "alert",
	ButtonBadge:                 "badge",
	ButtonGradient:              "gradient",
}

func (k ButtonKind) String() string {
	if k >= 0 && k < buttonKindCount {
		return buttonKindNames[k]
	}
	return fmt.Sprintf("button(%d)", int(k))
}

// ButtonStyle is a button variant. Gradient is only read when Kind is
// ButtonGradient.
type ButtonStyle struct {
	Kind     ButtonKind
	Gradient GradientKind
}

// Button returns the style for a non-gradient kind.
func Button(kind ButtonKind) ButtonStyle {
	return ButtonStyle{Kind: kind}
}

// GradientButton returns a gradient style; GradientNone yields a flat fill.
func GradientButton(kind GradientKind) ButtonStyle {
	return ButtonStyle{Kind: ButtonGradient, Gradient: kind}
}

func (s ButtonStyle) String() string {
	if s.Kind == ButtonGradient {
		return fmt.Sprintf("gradient(%s)", s.Gradient)
	}
	return s.Kind.String()
}

// AllButtonStyles enumerates every variant, gradient kinds included.
func AllButtonStyles() []ButtonStyle {
	out := make([]ButtonStyle, 0, int(buttonKindCount)+2)
	for kind := ButtonKind(0); kind < buttonKindCount; kind++ {
		if kind == ButtonGradient {
			for _, g := range []GradientKind{GradientNone, GradientMild, GradientWild} {
				out = append(out, GradientButton(g))
			}
			continue
		}
		out = append(out, Button(kind))
	}
	return out
}

// InteractionState selects which appearance the host asks for.
type InteractionState int

const (
	StateActive InteractionState = iota
	StateHovered
	StateDisabled
)

// InteractionStates lists every state in rendering order.
func InteractionStates() []InteractionState {
	return []InteractionState{StateActive, StateHovered, StateDisabled}
}

func (s InteractionState) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateHovered:
		return "hovered"
	case StateDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Background is either a Flat color or a Gradient.
type Background interface {
	isBackground()
}

// Flat is a solid background.
type Flat struct {
	Color Color
}

func (Flat) isBackground()     {}
func (Gradient) isBackground() {}

// Radius holds corner radii: top-left, top-right, bottom-right, bottom-left.
type Radius [4]float32

// UniformRadius rounds every corner by r.
func UniformRadius(r float32) Radius {
	return Radius{r, r, r, r}
}

// Vector is a 2D offset.
type Vector struct {
	X float32
	Y float32
}

// Appearance is the full visual description of a button in one state.
type Appearance struct {
	Background  Background
	Radius      Radius
	BorderWidth float32
	Shadow      Vector
	TextColor   Color
	BorderColor Color
}

const (
	BorderWidth  float32 = 2
	ButtonRadius float32 = 8

	roundRadius  float32 = 12
	pillRadius   float32 = 100
	tabCornerRad float32 = 30
)

// AlertRed is the border of alert buttons under every theme.
var AlertRed = Color{R: 0.8, G: 0.15, B: 0.15, A: 1}

// StarredInk is the text of starred buttons under every theme.
var StarredInk = Black

var tabRadius = Radius{0, 0, tabCornerRad, tabCornerRad}

// swatch is everything a row needs from the theme, resolved once per call.
type swatch struct {
	palette        Palette
	buttons        Color
	nightly        bool
	containerAlpha float32
	borderAlpha    float32
	gradient       GradientKind
}

func newSwatch(theme ThemeState, style ButtonStyle) swatch {
	return swatch{
		palette:        ResolvePalette(theme),
		buttons:        ButtonsColor(theme),
		nightly:        theme.IsNightly(),
		containerAlpha: RoundContainerAlpha(theme),
		borderAlpha:    RoundBorderAlpha(theme),
		gradient:       style.Gradient,
	}
}

// selected is the tint shared by hovered and selected surfaces.
func (s swatch) selected() Color {
	return Mix(s.palette.Primary, s.buttons)
}

type appearanceFunc func(swatch) Appearance

type buttonRow struct {
	active   appearanceFunc
	hovered  appearanceFunc
	disabled appearanceFunc
}

// staticRow is a row whose disabled appearance is its active appearance.
func staticRow(active, hovered appearanceFunc) buttonRow {
	return buttonRow{active: active, hovered: hovered, disabled: active}
}

func baseActive(s swatch) Appearance {
	return Appearance{
		Background:  Flat{Color: s.buttons},
		Radius:      UniformRadius(ButtonRadius),
		BorderWidth: BorderWidth,
		TextColor:   s.palette.TextBody,
		BorderColor: s.palette.Secondary,
	}
}

func baseHovered(s swatch) Appearance {
	return Appearance{
		Background:  Flat{Color: s.selected()},
		Radius:      UniformRadius(ButtonRadius),
		BorderWidth: BorderWidth,
		Shadow:      Vector{X: 0, Y: 2},
		TextColor:   s.palette.TextBody,
		BorderColor: s.palette.Secondary,
	}
}

func tabActive(s swatch) Appearance {
	a := baseActive(s)
	a.Radius = tabRadius
	a.BorderWidth = 0
	a.Shadow = Vector{X: 3, Y: 2}
	return a
}

func tabHovered(s swatch) Appearance {
	a := baseHovered(s)
	a.Radius = tabRadius
	a.BorderWidth = 0
	a.Shadow = Vector{X: 3, Y: 3}
	return a
}

func roundHovered(s swatch) Appearance {
	a := baseHovered(s)
	a.Radius = UniformRadius(roundRadius)
	return a
}

func starredAppearance(s swatch, hovered bool) Appearance {
	a := baseActive(s)
	if hovered {
		a = baseHovered(s)
	}
	a.Background = Flat{Color: s.palette.Starred}
	a.Radius = UniformRadius(pillRadius)
	a.BorderWidth = 0
	a.TextColor = StarredInk
	return a
}

// buttonRows is indexed by kind. Every kind must have a row; init panics
// otherwise.
var buttonRows = [buttonKindCount]buttonRow{
	ButtonStandard: staticRow(baseActive, baseHovered),

	ButtonBorderedRound: staticRow(
		func(s swatch) Appearance {
			a := baseActive(s)
			a.Background = Flat{Color: WithAlpha(s.buttons, s.containerAlpha)}
			a.Radius = UniformRadius(roundRadius)
			a.BorderWidth = BorderWidth * 2
			a.BorderColor = WithAlpha(s.buttons, s.borderAlpha)
			return a
		},
		func(s swatch) Appearance {
			a := roundHovered(s)
			a.BorderWidth = 0
			a.BorderColor = WithAlpha(s.buttons, s.borderAlpha)
			return a
		},
	),

	ButtonBorderedRoundSelected: staticRow(
		func(s swatch) Appearance {
			a := baseActive(s)
			a.Background = Flat{Color: s.selected()}
			a.Radius = UniformRadius(roundRadius)
			return a
		},
		roundHovered,
	),

	ButtonTabActive: staticRow(
		func(s swatch) Appearance {
			a := tabActive(s)
			a.Background = Flat{Color: s.selected()}
			return a
		},
		tabHovered,
	),

	ButtonTabInactive: staticRow(tabActive, tabHovered),

	ButtonStarred: staticRow(
		func(s swatch) Appearance { return starredAppearance(s, false) },
		func(s swatch) Appearance { return starredAppearance(s, true) },
	),

	ButtonNotStarred: staticRow(
		func(s swatch) Appearance {
			a := baseActive(s)
			a.Background = Flat{Color: Transparent}
			a.Radius = UniformRadius(pillRadius)
			a.BorderWidth = 0
			return a
		},
		func(s swatch) Appearance {
			a := baseHovered(s)
			a.Radius = UniformRadius(pillRadius)
			a.BorderColor = WithAlpha(s.buttons, s.borderAlpha)
			return a
		},
	),

	ButtonNeutral: staticRow(
		func(s swatch) Appearance {
			a := baseActive(s)
			a.Background = Flat{Color: Transparent}
			a.Radius = Radius{}
			a.BorderWidth = 0
			return a
		},
		func(s swatch) Appearance {
			a := baseHovered(s)
			a.Background = Flat{Color: WithAlpha(s.buttons, s.borderAlpha)}
			a.Radius = Radius{}
			a.Shadow = Vector{}
			a.BorderColor = s.buttons
			return a
		},
	),

	ButtonAlert: staticRow(
		func(s swatch) Appearance {
			a := baseActive(s)
			a.BorderColor = AlertRed
			return a
		},
		func(s swatch) Appearance {
			a := baseHovered(s)
			a.BorderColor = AlertRed
			return a
		},
	),

	ButtonBadge: staticRow(
		func(s swatch) Appearance {
			a := baseActive(s)
			a.Background = Flat{Color: s.palette.Secondary}
			a.BorderWidth = 0
			a.TextColor = s.palette.TextHeaders
			return a
		},
		baseHovered,
	),

	ButtonGradient: {
		active: func(s swatch) Appearance {
			a := baseActive(s)
			a.TextColor = s.palette.TextHeaders
			if s.gradient == GradientNone {
				a.Background = Flat{Color: s.palette.Secondary}
				return a
			}
			a.Background = ActiveGradient(s.palette, s.gradient, s.nightly, 1)
			return a
		},
		hovered: func(s swatch) Appearance {
			a := baseHovered(s)
			a.TextColor = s.palette.TextHeaders
			if s.gradient == GradientNone {
				a.Background = Flat{Color: Mix(s.palette.Primary, s.palette.Secondary)}
				return a
			}
			a.Background = HoveredGradient(s.palette, s.gradient, s.nightly)
			return a
		},
		disabled: func(s swatch) Appearance {
			a := baseActive(s)
			a.TextColor = s.palette.TextHeaders
			a.BorderColor = WithAlpha(s.palette.Secondary, s.borderAlpha)
			if s.gradient == GradientNone {
				a.Background = Flat{Color: WithAlpha(s.palette.Secondary, s.containerAlpha)}
				return a
			}
			a.Background = ActiveGradient(s.palette, s.gradient, s.nightly, s.containerAlpha)
			return a
		},
	},
}

func init() {
	for kind, row := range buttonRows {
		if row.active == nil || row.hovered == nil || row.disabled == nil {
			panic(fmt.Sprintf("styles: button kind %s has no complete appearance row", ButtonKind(kind)))
		}
	}
}

func rowFor(style ButtonStyle) (buttonRow, ButtonStyle) {
	if style.Kind < 0 || style.Kind >= buttonKindCount {
		style = Button(ButtonStandard)
	}
	if style.Kind == ButtonGradient && (style.Gradient < GradientNone || style.Gradient > GradientWild) {
		style.Gradient = GradientNone
	}
	return buttonRows[style.Kind], style
}

// Active returns the resting appearance of style under theme.
func Active(theme ThemeState, style ButtonStyle) Appearance {
	row, style := rowFor(style)
	return row.active(newSwatch(theme, style))
}

// Hovered returns the hovered appearance of style under theme.
func Hovered(theme ThemeState, style ButtonStyle) Appearance {
	row, style := rowFor(style)
	return row.hovered(newSwatch(theme, style))
}

// Disabled returns the disabled appearance of style under theme. Only
// gradient buttons get a dedicated treatment; every other kind is drawn as
// when active.
func Disabled(theme ThemeState, style ButtonStyle) Appearance {
	row, style := rowFor(style)
	return row.disabled(newSwatch(theme, style))
}

// Resolve dispatches to Active, Hovered or Disabled. Unknown states resolve
// as active.
func Resolve(theme ThemeState, style ButtonStyle, state InteractionState) Appearance {
	switch state {
	case StateHovered:
		return Hovered(theme, style)
	case StateDisabled:
		return Disabled(theme, style)
	default:
		return Active(theme, style)
	}
}
