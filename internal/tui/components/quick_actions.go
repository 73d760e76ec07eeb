package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/claritypath/themedeck/internal/tui/styles"
)

// QuickAction represents a keyboard-triggered action.
type QuickAction struct {
	Key     string // Keyboard key (e.g., "p", "tab")
	Label   string // Display label (e.g., "Palette", "Panel")
	Enabled bool   // Whether the action is available
}

// PreviewActions returns the key bindings of the preview screen.
func PreviewActions(galleryOpen bool) []QuickAction {
	return []QuickAction{
		{Key: "p/P", Label: "Palette", Enabled: true},
		{Key: "s/S", Label: "Style", Enabled: true},
		{Key: "1-3", Label: "Pick palette", Enabled: true},
		{Key: "tab", Label: "Panel", Enabled: !galleryOpen},
		{Key: "v", Label: "Variables", Enabled: !galleryOpen},
		{Key: "g", Label: "Gallery", Enabled: true},
		{Key: "q", Label: "Quit", Enabled: true},
	}
}

// RenderQuickActionBar renders a horizontal bar of available quick actions.
// Format: "p/P:Palette  s/S:Style  q:Quit"
func RenderQuickActionBar(styleSet styles.Styles, actions []QuickAction) string {
	var parts []string
	for _, action := range actions {
		if !action.Enabled {
			continue
		}
		keyStyle := styleSet.Accent.Copy().Bold(true)
		parts = append(parts, fmt.Sprintf("%s:%s", keyStyle.Render(action.Key), styleSet.Muted.Render(action.Label)))
	}
	return strings.Join(parts, "  ")
}

// ActionCard is a call-to-action tile.
type ActionCard struct {
	Title       string
	Description string
	CTA         string
	Role        Role
}

// RenderActionCards renders cards side by side, stacking them when narrow.
func RenderActionCards(styleSet styles.Styles, cards []ActionCard, width int) string {
	if len(cards) == 0 {
		return ""
	}
	cardWidth := width/len(cards) - 2
	stack := cardWidth < 20
	if stack {
		cardWidth = width - 2
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		color := roleColor(styleSet, c.Role)
		body := lipgloss.JoinVertical(lipgloss.Left,
			styleSet.Colored(color).Copy().Bold(true).Render(c.Title),
			styleSet.Muted.Copy().Width(cardWidth-2).Render(c.Description),
			styleSet.Colored(color).Render(c.CTA+" →"),
		)
		rendered = append(rendered, styleSet.Outline(color).Copy().Width(cardWidth).Render(body))
	}
	if stack {
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
