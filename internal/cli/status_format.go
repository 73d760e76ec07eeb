package cli

import (
	"fmt"
	"strings"

	"github.com/claritypath/themedeck/internal/models"
)

func formatEventType(eventType models.EventType) string {
	label, color := statusLabelForEvent(eventType)
	return colorize(formatStatusLabel(label, string(eventType)), color)
}

func formatChanged(changed bool) string {
	if changed {
		return colorize("OK changed", colorGreen)
	}
	return colorize("SKIP unchanged", colorDim)
}

func statusLabelForEvent(eventType models.EventType) (string, string) {
	switch eventType {
	case models.EventTypeThemeChanged:
		return "SET", colorCyan
	case models.EventTypeThemeFallback:
		return "WARN", colorYellow
	case models.EventTypeSessionStarted:
		return "OPEN", colorGreen
	case models.EventTypeSessionEnded:
		return "DONE", colorMagenta
	default:
		return "INFO", ""
	}
}

func formatStatusLabel(label, status string) string {
	normalized := strings.TrimSpace(status)
	if normalized != "" {
		normalized = strings.ReplaceAll(normalized, "_", " ")
	}
	if normalized == "" {
		return label
	}
	return fmt.Sprintf("%s %s", label, normalized)
}
