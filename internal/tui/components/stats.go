package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/claritypath/themedeck/internal/tui/styles"
)

// Stat is one dashboard summary card.
type Stat struct {
	Icon   string
	Label  string
	Value  string
	Change string
}

const statCardMinWidth = 18

// RenderStats lays the cards out in a row, wrapping when width is too small.
func RenderStats(styleSet styles.Styles, stats []Stat, width int) string {
	if len(stats) == 0 {
		return ""
	}

	perRow := len(stats)
	for perRow > 1 && width/perRow < statCardMinWidth {
		perRow--
	}
	// border (2) + padding (2) per card
	cardWidth := width/perRow - 4
	if cardWidth < 8 {
		cardWidth = 8
	}

	var rows []string
	for start := 0; start < len(stats); start += perRow {
		end := min(start+perRow, len(stats))
		var cards []string
		for _, stat := range stats[start:end] {
			cards = append(cards, renderStat(styleSet, stat, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderStat(styleSet styles.Styles, stat Stat, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styleSet.Muted.Render(fit(stat.Label, width)),
		styleSet.Title.Render(fit(stat.Value, width-3))+" "+stat.Icon,
		styleSet.Success.Render(fit(stat.Change, width)),
	)
	return styleSet.Elevated.Copy().Width(width + 2).Render(body)
}
