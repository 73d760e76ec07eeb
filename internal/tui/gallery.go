package tui

import (
	"fmt"
	"strings"

	"github.com/claritypath/themedeck/internal/tui/components"
)

// galleryView lists every registered theme with the cursor and current theme marked.
func (m model) galleryView(width int) string {
	lines := []string{
		m.styles.Title.Render("Theme Gallery"),
		m.styles.Muted.Render(fmt.Sprintf("%d themes · j/k move · enter apply · g close", m.store.Registry().Len())),
		"",
	}

	nameWidth := max(20, min(width-40, 48))
	for i, t := range m.store.Themes() {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Primary.Render("> ")
		}
		marker := " "
		if t.ID == m.theme.ID {
			marker = m.styles.Success.Render("●")
		}
		name := t.Name
		if len(name) > nameWidth {
			name = name[:nameWidth-1] + "…"
		}
		lines = append(lines, fmt.Sprintf("%s%s %s %-*s %s",
			cursor,
			marker,
			components.RenderSwatchStrip(t.Colors),
			nameWidth, name,
			m.styles.Muted.Render("radius "+t.Design.Radius.Base),
		))
	}
	return strings.Join(lines, "\n")
}

// variablesView shows the propagated styling environment.
func (m model) variablesView() string {
	if m.env == nil || m.env.Len() == 0 {
		return components.EmptyVariables().Render(m.styles)
	}

	vars := m.env.Vars()
	nameWidth := 0
	for _, v := range vars {
		nameWidth = max(nameWidth, len(v.Name))
	}

	lines := []string{m.styles.Title.Render("Styling Environment"), ""}
	for _, v := range vars {
		swatch := "  "
		if strings.HasPrefix(v.Value, "#") {
			swatch = components.RenderSwatch(v.Value)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			swatch,
			m.styles.Label.Render(fmt.Sprintf("%-*s", nameWidth, v.Name)),
			m.styles.Text.Render(v.Value),
		))
	}
	return strings.Join(lines, "\n")
}
