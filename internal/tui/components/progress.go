package components

import (
	"fmt"
	"strings"

	"github.com/claritypath/themedeck/internal/tui/styles"
)

// ProgressItem is a labelled percentage.
type ProgressItem struct {
	Label string
	Value int
	Role  Role
}

// RenderProgressBar renders a bar of width cells filled to percent.
func RenderProgressBar(styleSet styles.Styles, percent, width int, role Role) string {
	if width <= 0 {
		return ""
	}
	percent = max(0, min(100, percent))
	filled := percent * width / 100
	return styleSet.Colored(roleColor(styleSet, role)).Render(strings.Repeat("█", filled)) +
		styleSet.Muted.Render(strings.Repeat("░", width-filled))
}

// RenderProgress renders every item as a label line followed by its bar.
func RenderProgress(styleSet styles.Styles, title string, items []ProgressItem, width int) string {
	lines := []string{styleSet.Heading.Render(title)}
	for _, item := range items {
		pct := fmt.Sprintf("%d%%", item.Value)
		label := fit(item.Label, max(1, width-len(pct)))
		lines = append(lines,
			styleSet.Muted.Render(label)+styleSet.Text.Render(pct),
			RenderProgressBar(styleSet, item.Value, width, item.Role),
		)
	}
	return strings.Join(lines, "\n")
}
