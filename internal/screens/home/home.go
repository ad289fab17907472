package home

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/genesis/internal/router"
	"github.com/abhisek/genesis/internal/screen"
	compatscreen "github.com/abhisek/genesis/internal/screens/compat"
	"github.com/abhisek/genesis/internal/screens/history"
	"github.com/abhisek/genesis/internal/screens/nodemap"
	"github.com/abhisek/genesis/internal/screens/quiz"
	"github.com/abhisek/genesis/internal/screens/results"
	"github.com/abhisek/genesis/internal/session"
	"github.com/abhisek/genesis/internal/ui/components"
	"github.com/abhisek/genesis/internal/ui/theme"
)

const titleCompact = "G · E · N · E · S · I · S"

// Menu positions.
const (
	itemContinue = iota
	itemNodeMap
	itemResults
	itemHistory
	itemCompat
	itemExit
)

// HomeScreen is the main hub of the application.
type HomeScreen struct {
	env    *screen.Env
	menu   components.Menu
	notice string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	cat := h.env.Catalog
	started := len(h.env.Session.History()) > 0

	cont := cat.T("ui.continue")
	if !started {
		cont = cat.T("ui.start")
	}

	return []components.MenuItem{
		itemContinue: {Label: strings.ToUpper(cont), Action: h.continueRun},
		itemNodeMap: {Label: strings.ToUpper(cat.T("ui.dashboard")), Action: func() tea.Cmd {
			return push(nodemap.New(h.env))
		}},
		itemResults: {Label: strings.ToUpper(cat.T("ui.results")), Disabled: !started, Action: func() tea.Cmd {
			h.env.Session.ShowResults(context.Background())
			return push(results.New(h.env))
		}},
		itemHistory: {Label: strings.ToUpper(cat.T("ui.history")), Action: func() tea.Cmd {
			return push(history.New(h.env))
		}},
		itemCompat: {Label: strings.ToUpper(cat.T("ui.compat")), Action: func() tea.Cmd {
			return push(compatscreen.New(h.env))
		}},
		itemExit: {Label: strings.ToUpper(cat.T("ui.quit")), Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

// continueRun resumes at the sequencer's suggestion, or opens the results
// once the run is complete.
func (h *HomeScreen) continueRun() tea.Cmd {
	ctl := h.env.Session
	task, err := ctl.Continue(context.Background())
	if err != nil {
		h.notice = err.Error()
		if errors.Is(err, session.ErrDemoLocked) {
			h.notice = h.env.Catalog.T("ui.demo_locked")
		}
		h.env.Log().Info("continue refused", "error", err)
		return nil
	}
	h.notice = ""

	switch ctl.View() {
	case session.ViewResults:
		return push(results.New(h.env))
	case session.ViewTest:
		return tea.Batch(push(quiz.New(h.env)), screen.Schedule(task))
	}
	return nil
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

// Init rebuilds the menu; it runs again whenever the hub is revealed.
func (h *HomeScreen) Init() tea.Cmd {
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems())
	if selected < len(h.menu.Items) && !h.menu.Items[selected].Disabled {
		h.menu.Selected = selected
	}
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if n, ok := msg.(screen.NoticeMsg); ok {
		h.notice = n.Text
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// sigil picks the art for the current run.
func (h *HomeScreen) sigil() SigilVariant {
	ctl := h.env.Session
	switch {
	case ctl.Glitch():
		return SigilGlitch
	case ctl.Adaptive().IsComplete && len(ctl.History()) > 0:
		return SigilComplete
	case len(ctl.History()) > 0:
		return SigilStable
	default:
		return SigilIdle
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, h.renderTitle(cw, compact))
	if !compact {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(RenderSigil(h.sigil())))
	}
	sections = append(sections, h.renderStatsBar(cw, compact))
	if h.notice != "" {
		sections = append(sections, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(theme.Warning.Render(h.notice)))
	}
	if compact {
		sections = append(sections, components.CompactMenu(h.menu, cw))
	} else {
		sections = append(sections, components.ButtonMenu(h.menu, cw))
	}

	border := theme.Primary
	if h.env.Session.Glitch() {
		border = theme.Glitch
	}
	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height, border)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) renderTitle(cw int, compact bool) string {
	style := theme.Highlight(h.env.Session.Glitch())
	title := titleCompact
	if !compact {
		title = titleCompact + "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.env.Catalog.T("ui.tagline"))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders run progress in a bordered box matching content width.
func (h *HomeScreen) renderStatsBar(cw int, compact bool) string {
	ctl := h.env.Session
	done := len(ctl.CompletedNodes())
	total := ctl.Registry().TotalNodes()
	clarity := ctl.Adaptive().Clarity

	nodeStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	clarityStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	statusStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	status := "NO SCAN"
	if res, ok := ctl.Result(); ok {
		status = string(res.Status)
		if res.Glitch() {
			statusStyle = lipgloss.NewStyle().Foreground(theme.Glitch).Bold(true)
		} else {
			statusStyle = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		}
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			nodeStyle.Render(fmt.Sprintf("◉%d/%d", done, total)),
			clarityStyle.Render(fmt.Sprintf("◐%.0f%%", clarity)),
			statusStyle.Render(status),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			nodeStyle.Render(fmt.Sprintf("◉ %d/%d NODES", done, total)),
			clarityStyle.Render(fmt.Sprintf("◐ %.0f%% CLARITY", clarity)),
			statusStyle.Render(status),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
