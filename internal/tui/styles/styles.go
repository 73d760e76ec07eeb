// Package styles maps a resolved theme onto lipgloss styles.
package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/claritypath/themedeck/internal/theme"
)

// Radii at or below this many pixels render with square corners.
const squareRadiusMax = 4

// Bold is used for weights at or above this value.
const boldWeight = 600

// Styles contains lipgloss styles derived from a theme.
type Styles struct {
	Theme theme.Theme

	Page     lipgloss.Style
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Label    lipgloss.Style
	Primary  lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Panel    lipgloss.Style
	Card     lipgloss.Style
	Elevated lipgloss.Style
	Input    lipgloss.Style
	Focus    lipgloss.Style

	// Corner is the border matching the theme's base radius.
	Corner lipgloss.Border
}

// Default builds styles for the default theme.
func Default() Styles {
	return Build(theme.Default())
}

// Build converts a theme into lipgloss styles.
func Build(t theme.Theme) Styles {
	c := t.Colors
	w := t.Design.Weights
	corner := BorderFor(t.Design.Radius.Base)
	elevated := ElevatedBorder(corner, t.Design.Shadow.Elevated)

	text := lipgloss.NewStyle().Foreground(lipgloss.Color(c.TextPrimary))
	return Styles{
		Theme:    t,
		Page:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.TextPrimary)),
		Title:    text.Copy().Bold(IsBold(w.Bold)),
		Heading:  text.Copy().Bold(IsBold(w.Semibold)),
		Text:     text,
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.TextSecondary)),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.TextSecondary)).Bold(IsBold(w.Medium)),
		Primary:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Primary)).Bold(IsBold(w.Semibold)),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Success)),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Warning)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)),
		Panel:    lipgloss.NewStyle().Border(corner).BorderForeground(lipgloss.Color(c.TextSecondary)).Padding(0, 1),
		Card:     lipgloss.NewStyle().Border(corner).BorderForeground(lipgloss.Color(c.Secondary)).Padding(0, 1),
		Elevated: lipgloss.NewStyle().Border(elevated).BorderForeground(lipgloss.Color(c.Primary)).Padding(0, 1),
		Input:    lipgloss.NewStyle().Border(corner).BorderForeground(lipgloss.Color(c.TextSecondary)).Padding(0, 1),
		Focus:    lipgloss.NewStyle().Border(corner).BorderForeground(lipgloss.Color(c.Primary)).Padding(0, 1),
		Corner:   corner,
	}
}

// Filled returns a solid block style in color, with text in the page background.
func (s Styles) Filled(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Theme.Colors.Background)).
		Background(lipgloss.Color(color)).
		Bold(IsBold(s.Theme.Design.Weights.Medium)).
		Padding(0, 1)
}

// Outline returns a bordered style in color.
func (s Styles) Outline(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Border(s.Corner).
		BorderForeground(lipgloss.Color(color)).
		Padding(0, 1)
}

// Colored returns a foreground style in color.
func (s Styles) Colored(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// BorderFor picks square corners for small radii and rounded corners otherwise.
func BorderFor(radius string) lipgloss.Border {
	if Pixels(radius) <= squareRadiusMax {
		return lipgloss.NormalBorder()
	}
	return lipgloss.RoundedBorder()
}

// ElevatedBorder thickens the bottom and right edges of base to suggest a
// drop shadow. An empty or "none" shadow leaves base unchanged.
func ElevatedBorder(base lipgloss.Border, shadow string) lipgloss.Border {
	shadow = strings.TrimSpace(shadow)
	if shadow == "" || shadow == "none" {
		return base
	}
	base.Right = "┃"
	base.Bottom = "━"
	base.BottomRight = "┛"
	base.TopRight = "┒"
	base.BottomLeft = "┕"
	return base
}

// Pixels parses a CSS pixel length ("12px"); unparsable values count as 0.
func Pixels(length string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(length), "px"))
	if err != nil {
		return 0
	}
	return n
}

// IsBold reports whether a numeric font weight renders bold in a terminal.
func IsBold(weight int) bool {
	return weight >= boldWeight
}
