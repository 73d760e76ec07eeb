package components

import (
	"strings"

	"github.com/claritypath/themedeck/internal/tui/styles"
)

// Toggle is a labelled on/off switch or checkbox.
type Toggle struct {
	Label string
	On    bool
}

// RenderSwitches renders toggles as sliding switches with the label on the left.
func RenderSwitches(styleSet styles.Styles, title string, toggles []Toggle, width int) string {
	lines := []string{styleSet.Heading.Render(title)}
	for _, t := range toggles {
		knob := styleSet.Muted.Render("(●   )")
		if t.On {
			knob = styleSet.Primary.Render("(   ●)")
		}
		lines = append(lines, styleSet.Text.Render(fit(t.Label, max(1, width-6)))+knob)
	}
	return strings.Join(lines, "\n")
}

// RenderCheckboxes renders toggles as checkboxes.
func RenderCheckboxes(styleSet styles.Styles, title string, toggles []Toggle) string {
	lines := []string{styleSet.Heading.Render(title)}
	for _, t := range toggles {
		box := styleSet.Muted.Render("[ ]")
		if t.On {
			box = styleSet.Primary.Render("[✓]")
		}
		lines = append(lines, box+" "+styleSet.Text.Render(t.Label))
	}
	return strings.Join(lines, "\n")
}
