package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/genesis/internal/router"
	"github.com/abhisek/genesis/internal/screen"
	"github.com/abhisek/genesis/internal/screens/home"
	"github.com/abhisek/genesis/internal/screens/welcome"
	"github.com/abhisek/genesis/internal/session"
	"github.com/abhisek/genesis/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx    context.Context
	env    *screen.Env
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel that opens on the welcome screen.
func newAppModel(ctx context.Context, env *screen.Env) AppModel {
	homeFactory := func() screen.Screen { return home.New(env) }
	return AppModel{
		ctx:    ctx,
		env:    env,
		router: router.New(welcome.New(homeFactory, env.Catalog.T("ui.tagline"))),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctl := m.env.Session

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.FocusMsg:
		ctl.Resume()
		return m, nil

	case tea.BlurMsg:
		ctl.Pause()
		return m, nil

	case screen.TaskDueMsg:
		next, err := ctl.Fire(m.ctx, msg.Task)
		if err != nil {
			m.env.Log().Warn("task failed", "kind", msg.Task.Kind, "error", err)
		}
		return m, tea.Batch(
			screen.Schedule(next),
			m.router.Update(screen.SessionChangedMsg{}),
		)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				if ctl.View() != session.ViewDashboard {
					ctl.GoDashboard()
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.ReportFocus = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	ctl := m.env.Session
	header := layout.RenderHeader(title, layout.HeaderInfo{
		Completed: len(ctl.CompletedNodes()),
		Total:     ctl.Registry().TotalNodes(),
		Glitch:    ctl.Glitch(),
		Demo:      ctl.Demo(),
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, env *screen.Env) error {
	p := tea.NewProgram(newAppModel(ctx, env), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
