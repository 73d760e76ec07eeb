package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/claritypath/themedeck/internal/tui/styles"
)

// Field is a labelled form input.
type Field struct {
	Label       string
	Value       string
	Placeholder string
	Focused     bool
}

// RenderForm renders fields under a heading.
func RenderForm(styleSet styles.Styles, title string, fields []Field, width int) string {
	lines := []string{styleSet.Heading.Render(title)}
	inner := width - 4
	if inner < 4 {
		inner = 4
	}
	for _, f := range fields {
		box := styleSet.Input
		if f.Focused {
			box = styleSet.Focus
		}
		content := styleSet.Text.Render(fit(f.Value, inner))
		if f.Value == "" {
			content = styleSet.Muted.Render(fit(f.Placeholder, inner))
		}
		lines = append(lines,
			styleSet.Label.Render(f.Label),
			box.Copy().Width(inner+2).Render(content),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
