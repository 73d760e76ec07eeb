// Package components renders the dashboard widgets of the theme preview.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/claritypath/themedeck/internal/theme"
	"github.com/claritypath/themedeck/internal/tui/styles"
)

// Role names a palette color by purpose, so sample data stays theme independent.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleAccent    Role = "accent"
	RoleSuccess   Role = "success"
	RoleWarning   Role = "warning"
	RoleError     Role = "error"
	RoleMuted     Role = "muted"
)

// Color returns the hex value of r in c.
func (r Role) Color(c theme.Colors) string {
	switch r {
	case RoleSecondary:
		return c.Secondary
	case RoleAccent:
		return c.Accent
	case RoleSuccess:
		return c.Success
	case RoleWarning:
		return c.Warning
	case RoleError:
		return c.Error
	case RoleMuted:
		return c.TextSecondary
	default:
		return c.Primary
	}
}

func roleColor(styleSet styles.Styles, r Role) string {
	return r.Color(styleSet.Theme.Colors)
}

// fit pads or truncates plain text s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w <= width {
		return s + strings.Repeat(" ", width-w)
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
