package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/claritypath/themedeck/internal/tui/styles"
)

// SessionRow is one row of the recent sessions table.
type SessionRow struct {
	Client string
	Type   string
	Status string
}

// RenderSessionTable renders rows under a Client/Type/Status header.
func RenderSessionTable(styleSet styles.Styles, rows []SessionRow) string {
	headers := []string{"Client", "Type", "Status"}
	widths := []int{len(headers[0]), len(headers[1]), len(headers[2]) + 2}
	for _, row := range rows {
		widths[0] = max(widths[0], lipgloss.Width(row.Client))
		widths[1] = max(widths[1], lipgloss.Width(row.Type))
		widths[2] = max(widths[2], lipgloss.Width(row.Status)+2)
	}

	var head []string
	for i, h := range headers {
		head = append(head, styleSet.Label.Render(fit(h, widths[i])))
	}
	lines := []string{
		styleSet.Heading.Render("Recent Sessions"),
		strings.Join(head, "  "),
		styleSet.Muted.Render(strings.Repeat("─", widths[0]+widths[1]+widths[2]+4)),
	}
	for _, row := range rows {
		lines = append(lines, strings.Join([]string{
			styleSet.Text.Render(fit(row.Client, widths[0])),
			styleSet.Muted.Render(fit(row.Type, widths[1])),
			RenderStatusBadge(styleSet, row.Status),
		}, "  "))
	}
	return strings.Join(lines, "\n")
}
