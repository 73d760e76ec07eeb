package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/claritypath/themedeck/internal/tui/styles"
)

// Header is the top bar of the preview dashboard.
type Header struct {
	Initials string
	Brand    string
	Subtitle string
}

// RenderHeader renders the brand block on the left and the header buttons on the right.
func RenderHeader(styleSet styles.Styles, h Header, width int) string {
	colors := styleSet.Theme.Colors

	logo := styleSet.Filled(colors.Primary).Render(h.Initials)
	brand := lipgloss.JoinVertical(lipgloss.Left,
		styleSet.Heading.Render(h.Brand),
		styleSet.Muted.Render(h.Subtitle),
	)
	left := lipgloss.JoinHorizontal(lipgloss.Center, logo, " ", brand)

	right := lipgloss.JoinHorizontal(lipgloss.Center,
		styleSet.Outline(colors.TextSecondary).Render("Settings"),
		" ",
		styleSet.Filled(colors.Primary).Render("New Session"),
	)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}
