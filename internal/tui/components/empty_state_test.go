package components

import (
	"strings"
	"testing"

	"github.com/claritypath/themedeck/internal/tui/styles"
)

func TestEmptyStateRender(t *testing.T) {
	styleSet := styles.Default()

	t.Run("basic empty state", func(t *testing.T) {
		es := EmptyState{Title: "No items found"}
		result := es.Render(styleSet)
		if !strings.Contains(result, "No items found") {
			t.Errorf("Expected title in output, got: %s", result)
		}
	})

	t.Run("empty state with icon and subtitle", func(t *testing.T) {
		es := EmptyState{Icon: "🎨", Title: "Nothing here", Subtitle: "Check back later"}
		result := es.Render(styleSet)
		for _, want := range []string{"🎨", "Nothing here", "Check back later"} {
			if !strings.Contains(result, want) {
				t.Errorf("Expected %q in output, got: %s", want, result)
			}
		}
	})

	t.Run("empty state with suggestions", func(t *testing.T) {
		es := EmptyState{
			Title:       "No variables",
			Suggestions: []Suggestion{{Command: "themedeck css", Description: "print them"}},
		}
		result := es.Render(styleSet)
		if !strings.Contains(result, "Try:") {
			t.Errorf("Expected 'Try:' header, got: %s", result)
		}
		if !strings.Contains(result, "themedeck css") || !strings.Contains(result, "# print them") {
			t.Errorf("Expected command and description in output, got: %s", result)
		}
	})
}

func TestEmptyStateRenderCompact(t *testing.T) {
	styleSet := styles.Default()

	es := EmptyState{Title: "Empty", Suggestions: []Suggestion{{Command: "add item"}}}
	result := es.RenderCompact(styleSet)
	if !strings.Contains(result, "Try: add item") {
		t.Errorf("Expected suggestion hint in compact output, got: %s", result)
	}
}

func TestEmptyVariables(t *testing.T) {
	result := EmptyVariables().Render(styles.Default())
	for _, want := range []string{"No styling variables", "themedeck css"} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in output, got: %s", want, result)
		}
	}
}

func TestTerminalTooSmallCompact(t *testing.T) {
	result := TerminalTooSmall(60, 15).RenderCompact(styles.Default())
	for _, want := range []string{"Resize to at least 60x15.", "Try: q"} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in output, got: %s", want, result)
		}
	}
}
