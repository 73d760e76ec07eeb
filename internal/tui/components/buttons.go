package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/claritypath/themedeck/internal/tui/styles"
)

// Button is a labelled button drawn in a palette role.
type Button struct {
	Label   string
	Role    Role
	Outline bool
}

// DefaultButtons is the button showcase of the preview.
func DefaultButtons() []Button {
	return []Button{
		{Label: "Primary Button", Role: RolePrimary},
		{Label: "Secondary Button", Role: RoleSecondary},
		{Label: "Outline Button", Role: RolePrimary, Outline: true},
		{Label: "Accent Button", Role: RoleAccent},
	}
}

// RenderButton renders a single button.
func RenderButton(styleSet styles.Styles, b Button, width int) string {
	color := roleColor(styleSet, b.Role)
	if b.Outline {
		style := styleSet.Outline(color)
		if width > 4 {
			style = style.Copy().Width(width - 2).Align(lipgloss.Center)
		}
		return style.Render(b.Label)
	}
	style := styleSet.Filled(color)
	if width > 0 {
		style = style.Copy().Width(width).Align(lipgloss.Center)
	}
	return style.Render(b.Label)
}

// RenderButtonPanel renders the showcase buttons stacked, followed by a row of
// status buttons.
func RenderButtonPanel(styleSet styles.Styles, buttons []Button, width int) string {
	lines := []string{styleSet.Heading.Render("Button Styles")}
	for _, b := range buttons {
		lines = append(lines, RenderButton(styleSet, b, width))
	}

	third := width / 3
	status := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderButton(styleSet, Button{Label: "Success", Role: RoleSuccess}, third),
		RenderButton(styleSet, Button{Label: "Warning", Role: RoleWarning}, third),
		RenderButton(styleSet, Button{Label: "Error", Role: RoleError}, width-2*third),
	)
	lines = append(lines, status)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
