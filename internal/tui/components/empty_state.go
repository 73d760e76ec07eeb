package components

import (
	"fmt"
	"strings"

	"github.com/claritypath/themedeck/internal/tui/styles"
)

// EmptyState represents an empty state message with optional suggestions.
type EmptyState struct {
	// Icon is an optional icon to display (e.g., "🎨").
	Icon string
	// Title is the main empty state message.
	Title string
	// Subtitle is an optional secondary message.
	Subtitle string
	// Suggestions are keys or commands the user can try.
	Suggestions []Suggestion
}

// Suggestion represents a suggested command with description.
type Suggestion struct {
	// Command is the key or CLI command (e.g., "themedeck css").
	Command string
	// Description explains what the command does.
	Description string
}

// Render renders the empty state with the given styles.
func (e EmptyState) Render(styleSet styles.Styles) string {
	titleLine := e.Title
	if e.Icon != "" {
		titleLine = e.Icon + "  " + titleLine
	}
	lines := []string{styleSet.Muted.Render(titleLine)}

	if e.Subtitle != "" {
		lines = append(lines, styleSet.Muted.Render(e.Subtitle))
	}

	if len(e.Suggestions) > 0 {
		lines = append(lines, "", styleSet.Text.Render("Try:"))
		for _, s := range e.Suggestions {
			cmdLine := "  " + styleSet.Accent.Render(s.Command)
			if s.Description != "" {
				cmdLine += styleSet.Muted.Render(fmt.Sprintf("  # %s", s.Description))
			}
			lines = append(lines, cmdLine)
		}
	}

	return strings.Join(lines, "\n")
}

// RenderCompact renders a compact single-line empty state.
func (e EmptyState) RenderCompact(styleSet styles.Styles) string {
	line := e.Title
	if e.Icon != "" {
		line = e.Icon + " " + line
	}
	if len(e.Suggestions) > 0 {
		line += fmt.Sprintf(" Try: %s", e.Suggestions[0].Command)
	}
	return styleSet.Muted.Render(line)
}

// EmptyVariables is shown when no styling environment is attached.
func EmptyVariables() EmptyState {
	return EmptyState{
		Icon:     "🎨",
		Title:    "No styling variables yet",
		Subtitle: "The environment fills in once a theme has been propagated.",
		Suggestions: []Suggestion{
			{Command: "themedeck css", Description: "print the variables for the current theme"},
		},
	}
}

// TerminalTooSmall is shown in place of the preview below the minimum size.
func TerminalTooSmall(minWidth, minHeight int) EmptyState {
	return EmptyState{
		Title: fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight),
		Suggestions: []Suggestion{
			{Command: "q", Description: "quit"},
		},
	}
}
