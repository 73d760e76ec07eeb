package components

import (
	"strings"

	"github.com/claritypath/themedeck/internal/tui/styles"
)

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Icon   string
	Label  string
	Active bool
}

// RenderNav renders items as a horizontal tab bar.
func RenderNav(styleSet styles.Styles, items []NavItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		label := item.Label
		if item.Icon != "" {
			label = item.Icon + " " + label
		}
		if item.Active {
			parts = append(parts, styleSet.Filled(styleSet.Theme.Colors.Primary).Render(label))
			continue
		}
		parts = append(parts, styleSet.Muted.Copy().Padding(0, 1).Render(label))
	}
	return strings.Join(parts, " ")
}
