// Package tui implements the interactive theme preview.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/claritypath/themedeck/internal/cssvars"
	"github.com/claritypath/themedeck/internal/store"
	"github.com/claritypath/themedeck/internal/theme"
	"github.com/claritypath/themedeck/internal/tui/components"
	"github.com/claritypath/themedeck/internal/tui/styles"
)

// Options configure the preview program.
type Options struct {
	Store *store.Store
	// Env is the styling environment kept current by a cssvars.Sink. Optional.
	Env       *cssvars.Environment
	Gallery   bool
	SidePanel bool
	Logger    zerolog.Logger
}

// Run launches the preview and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return errors.New("store is required")
	}

	program := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if err := opts.Store.Subscribe(SubscriberID, &storeBridge{program: program}); err != nil {
		return fmt.Errorf("subscribe preview: %w", err)
	}
	defer func() {
		_ = opts.Store.Unsubscribe(SubscriberID)
	}()

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

type viewID int

const (
	viewDashboard viewID = iota
	viewGallery
	viewVariables
)

const (
	minWidth       = 60
	minHeight      = 15
	sidePanelWidth = 36
)

type model struct {
	store  *store.Store
	env    *cssvars.Environment
	logger zerolog.Logger

	theme  theme.Theme
	styles styles.Styles

	width     int
	height    int
	view      viewID
	sidePanel bool
	cursor    int
	lastErr   error
}

func newModel(opts Options) model {
	current := opts.Store.Theme()
	m := model{
		store:     opts.Store,
		env:       opts.Env,
		logger:    opts.Logger,
		theme:     current,
		styles:    styles.Build(current),
		sidePanel: opts.SidePanel,
		view:      viewDashboard,
	}
	if opts.Gallery {
		m.view = viewGallery
		m.cursor = m.galleryIndex(current.ID)
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case ThemeChangedMsg:
		// Messages can arrive after later changes were applied; the store
		// is authoritative.
		m = m.sync()
		m.logger.Debug().Str("theme", m.theme.ID).Msg("preview restyled")
	}
	return m, nil
}

// apply runs a store mutation and restyles from the result before the next
// message is handled.
func (m model) apply(mutation func() error) model {
	if err := mutation(); err != nil {
		m.lastErr = err
		m.logger.Warn().Err(err).Msg("theme change rejected")
		return m
	}
	m.lastErr = nil
	return m.sync()
}

func (m model) sync() model {
	current := m.store.Theme()
	if current != m.theme {
		m.theme = current
		m.styles = styles.Build(current)
	}
	return m
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		if m.view != viewDashboard {
			m.view = viewDashboard
			return m, nil
		}
		return m, tea.Quit
	case "p":
		return m.apply(func() error { return cyclePalette(m.store, true) }), nil
	case "P":
		return m.apply(func() error { return cyclePalette(m.store, false) }), nil
	case "s":
		return m.apply(func() error { return cycleStyle(m.store, true) }), nil
	case "S":
		return m.apply(func() error { return cycleStyle(m.store, false) }), nil
	case "1", "2", "3":
		palettes := theme.Palettes()
		idx := int(key[0] - '1')
		if idx < len(palettes) {
			return m.apply(func() error { return m.store.SetPalette(palettes[idx]) }), nil
		}
	case "tab":
		m.sidePanel = !m.sidePanel
	case "g":
		if m.view == viewGallery {
			m.view = viewDashboard
		} else {
			m.view = viewGallery
			m.cursor = m.galleryIndex(m.theme.ID)
		}
	case "v":
		if m.view == viewVariables {
			m.view = viewDashboard
		} else {
			m.view = viewVariables
		}
	case "up", "k":
		if m.view == viewGallery && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.view == viewGallery && m.cursor < m.store.Registry().Len()-1 {
			m.cursor++
		}
	case "enter":
		if m.view == viewGallery {
			themes := m.store.Themes()
			if m.cursor >= 0 && m.cursor < len(themes) {
				t := themes[m.cursor]
				return m.apply(func() error { return selectTheme(m.store, t) }), nil
			}
		}
	}
	return m, nil
}

func (m model) galleryIndex(id string) int {
	for i, t := range m.store.Themes() {
		if t.ID == id {
			return i
		}
	}
	return 0
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return strings.Join(m.smallViewLines(), "\n") + "\n"
	}

	width := m.width
	if width <= 0 {
		width = 100
	}

	var body string
	switch m.view {
	case viewGallery:
		body = m.galleryView(width)
	case viewVariables:
		body = m.variablesView()
	default:
		body = m.dashboardView(width)
	}

	lines := []string{body, ""}
	if m.lastErr != nil {
		lines = append(lines, m.styles.Error.Render("Error: "+m.lastErr.Error()))
	}
	lines = append(lines,
		m.styles.Muted.Render("Theme: ")+m.styles.Text.Render(m.theme.Name),
		components.RenderQuickActionBar(m.styles, components.PreviewActions(m.view == viewGallery)),
	)
	return strings.Join(lines, "\n") + "\n"
}

func (m model) smallViewLines() []string {
	return []string{
		m.styles.Warning.Render(fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)),
		components.TerminalTooSmall(minWidth, minHeight).RenderCompact(m.styles),
	}
}

func (m model) dashboardView(width int) string {
	mainWidth := width
	var side string
	if m.sidePanel && width >= minWidth+sidePanelWidth {
		side = m.sidePanelView()
		mainWidth = width - sidePanelWidth - 1
	}

	p, _ := theme.LookupPalette(m.theme.Palette)
	st, _ := theme.LookupStyle(m.theme.Style)
	header := components.RenderHeader(m.styles, components.Header{
		Initials: "CP",
		Brand:    "Clarity Path",
		Subtitle: p.ShortName + " • " + st.ShortName,
	}, mainWidth)

	colWidth := (mainWidth - 2) / 2
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Card.Copy().Width(colWidth-2).Render(components.RenderButtonPanel(m.styles, components.DefaultButtons(), colWidth-4)),
		m.styles.Card.Copy().Width(colWidth-2).Render(components.RenderForm(m.styles, "Form Elements", sampleFields(), colWidth-4)),
		m.styles.Card.Copy().Width(colWidth-2).Render(components.RenderBadgeRow(m.styles)),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Card.Copy().Width(colWidth-2).Render(components.RenderProgress(m.styles, "Progress Tracking", sampleProgress(), colWidth-4)),
		m.styles.Card.Copy().Width(colWidth-2).Render(components.RenderProgress(m.styles, "Skill Scores", sampleSkills(), colWidth-4)),
		m.styles.Card.Copy().Width(colWidth-2).Render(components.RenderSessionTable(m.styles, sampleSessions())),
	)
	settings := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Card.Copy().Width(colWidth-2).Render(components.RenderSwitches(m.styles, "Preferences", sampleSwitches(), colWidth-4)),
		"  ",
		m.styles.Card.Copy().Width(colWidth-2).Render(components.RenderCheckboxes(m.styles, "Agreements", sampleAgreements())),
	)

	main := lipgloss.JoinVertical(lipgloss.Left,
		header,
		components.RenderNav(m.styles, sampleNav()),
		"",
		components.RenderStats(m.styles, sampleStats(), mainWidth),
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right),
		components.RenderActionCards(m.styles, sampleActionCards(), mainWidth),
		settings,
	)

	if side == "" {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, side, " ", main)
}

func (m model) sidePanelView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		components.RenderPaletteSelector(m.styles, m.theme.Palette, sidePanelWidth),
		components.RenderStyleSelector(m.styles, m.theme.Style, sidePanelWidth),
		components.RenderColorTable(m.styles, m.theme.Colors),
	)
}
