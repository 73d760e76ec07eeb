package components

import (
	"strings"

	"github.com/claritypath/themedeck/internal/tui/styles"
)

// StatusRole maps a session or client status label onto a palette role.
func StatusRole(status string) Role {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "completed", "active", "done":
		return RoleSuccess
	case "in progress", "pending":
		return RoleWarning
	case "cancelled", "canceled", "overdue":
		return RoleError
	case "scheduled", "new":
		return RolePrimary
	default:
		return RoleMuted
	}
}

// RenderBadge renders label as a small filled tag in role's color.
func RenderBadge(styleSet styles.Styles, label string, role Role) string {
	return styleSet.Filled(roleColor(styleSet, role)).Render(label)
}

// RenderStatusBadge renders a status label colored by StatusRole.
func RenderStatusBadge(styleSet styles.Styles, status string) string {
	return styleSet.Colored(roleColor(styleSet, StatusRole(status))).Render("● " + status)
}

// RenderBadgeRow renders the badge showcase.
func RenderBadgeRow(styleSet styles.Styles) string {
	badges := []struct {
		label string
		role  Role
	}{
		{"Active", RoleSuccess},
		{"Pending", RoleWarning},
		{"Urgent", RoleError},
		{"New", RolePrimary},
		{"Featured", RoleAccent},
	}
	parts := make([]string, 0, len(badges))
	for _, b := range badges {
		parts = append(parts, RenderBadge(styleSet, b.label, b.role))
	}
	return styleSet.Heading.Render("Badges & Status") + "\n" + strings.Join(parts, " ")
}
