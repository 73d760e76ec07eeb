package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/claritypath/themedeck/internal/theme"
	"github.com/claritypath/themedeck/internal/tui/styles"
)

// RenderSwatch renders a two-cell block of color.
func RenderSwatch(color string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
}

// RenderSwatchStrip renders the five headline colors of a palette.
func RenderSwatchStrip(c theme.Colors) string {
	return RenderSwatch(c.Primary) + RenderSwatch(c.Secondary) + RenderSwatch(c.Accent) +
		RenderSwatch(c.Background) + RenderSwatch(c.Surface)
}

// RenderColorTable lists every color role of c with its swatch and hex value.
func RenderColorTable(styleSet styles.Styles, c theme.Colors) string {
	lines := []string{styleSet.Heading.Render("Color Palette")}
	c.Each(func(name, value string) {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			RenderSwatch(value),
			styleSet.Muted.Render(fit(name, 14)),
			styleSet.Text.Render(value),
		))
	})
	return strings.Join(lines, "\n")
}

// RenderPaletteSelector renders a selectable card per palette. Digits are the
// direct-select keys.
func RenderPaletteSelector(styleSet styles.Styles, current theme.PaletteID, width int) string {
	lines := []string{styleSet.Heading.Render("Color Palette") + styleSet.Muted.Render("  p/P or 1-3")}
	for i, id := range theme.Palettes() {
		p, _ := theme.LookupPalette(id)
		body := lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("%d %s", i+1, p.Name),
			styleSet.Muted.Render(p.ShortName+" · "+p.Description),
			RenderSwatchStrip(p.Colors),
		)
		lines = append(lines, selectorCard(styleSet, body, id == current, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderStyleSelector renders a selectable card per design style.
func RenderStyleSelector(styleSet styles.Styles, current theme.StyleID, width int) string {
	lines := []string{styleSet.Heading.Render("Design Style") + styleSet.Muted.Render("  s/S")}
	for _, id := range theme.Styles() {
		s, _ := theme.LookupStyle(id)
		body := lipgloss.JoinVertical(lipgloss.Left,
			s.Name,
			styleSet.Muted.Render(s.ShortName+" · "+s.Description),
			styleSet.Muted.Render("radius "+s.Design.Radius.Base),
		)
		lines = append(lines, selectorCard(styleSet, body, id == current, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func selectorCard(styleSet styles.Styles, body string, active bool, width int) string {
	card := styleSet.Panel
	if active {
		card = styleSet.Focus
	}
	if width > 4 {
		card = card.Copy().Width(width - 2)
	}
	return card.Render(body)
}
