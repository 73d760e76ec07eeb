package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/claritypath/themedeck/internal/store"
	"github.com/claritypath/themedeck/internal/theme"
)

// SubscriberID is the id the TUI bridge registers with the store.
const SubscriberID = "tui"

// ThemeChangedMsg carries a store change into the program loop.
type ThemeChangedMsg struct {
	Previous theme.Theme
	Current  theme.Theme
}

// sender is the part of *tea.Program the bridge needs.
type sender interface {
	Send(msg tea.Msg)
}

// storeBridge forwards store changes to a running program.
type storeBridge struct {
	program sender
}

// OnThemeChange implements store.Subscriber. Keys mutate the store from
// inside Update, where a blocking Send would deadlock the program loop, so
// delivery happens on its own goroutine.
func (b *storeBridge) OnThemeChange(change store.Change) {
	if b.program == nil {
		return
	}
	msg := ThemeChangedMsg{Previous: change.Previous, Current: change.Current}
	go b.program.Send(msg)
}

func cyclePalette(s *store.Store, forward bool) error {
	return s.Update(func(sel store.Selection) store.Selection {
		if forward {
			sel.Palette = sel.Palette.Next()
		} else {
			sel.Palette = sel.Palette.Prev()
		}
		return sel
	})
}

func cycleStyle(s *store.Store, forward bool) error {
	return s.Update(func(sel store.Selection) store.Selection {
		if forward {
			sel.Style = sel.Style.Next()
		} else {
			sel.Style = sel.Style.Prev()
		}
		return sel
	})
}

func selectTheme(s *store.Store, t theme.Theme) error {
	return s.SetTheme(t.Palette, t.Style)
}
