package quiz

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/router"
	"github.com/abhisek/genesis/internal/screen"
	"github.com/abhisek/genesis/internal/screens/results"
	"github.com/abhisek/genesis/internal/session"
	"github.com/abhisek/genesis/internal/ui/components"
	"github.com/abhisek/genesis/internal/ui/layout"
)

// QuizScreen shows the active node, the body-sync prompt and the
// reflection pause. The controller owns all state; the screen mirrors it.
type QuizScreen struct {
	env     *screen.Env
	node    registry.Node
	choices components.ChoiceList
	senses  components.ChoiceList
	sensing bool
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the controller's active node.
func New(env *screen.Env) *QuizScreen {
	s := &QuizScreen{env: env}
	s.loadNode()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	if s.env.Session.View() == session.ViewBodySync {
		return s.env.Catalog.T("ui.body_sync_title")
	}
	return s.env.Catalog.T("domains." + string(s.node.Domain))
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.env.Session.View() {
	case session.ViewReflection:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Dashboard"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-5", Description: "Pick"},
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Dashboard"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.SessionChangedMsg:
		return s, s.sync()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	ctl := s.env.Session

	switch ctl.View() {
	case session.ViewTest:
		s.choices, _ = s.choices.Update(msg)
		if !s.choices.Submitted {
			return s, nil
		}
		task, err := ctl.Choose(ctx, s.choices.ChosenIndex)
		return s, s.after(task, err)

	case session.ViewBodySync:
		if !s.sensing {
			s.loadSenses()
		}
		s.senses, _ = s.senses.Update(msg)
		if !s.senses.Submitted {
			return s, nil
		}
		sensation := profile.AllSensations()[s.senses.ChosenIndex]
		task, err := ctl.ReportSensation(ctx, sensation)
		return s, s.after(task, err)
	}
	return s, nil
}

// after schedules the controller's follow-up task and mirrors the new view.
func (s *QuizScreen) after(task *session.Task, err error) tea.Cmd {
	if err != nil {
		s.errMsg = err.Error()
		s.env.Log().Warn("quiz step failed", "node", s.node.ID, "error", err)
		if errors.Is(err, session.ErrDemoLocked) {
			s.errMsg = s.env.Catalog.T("ui.demo_locked")
		}
		return nil
	}
	s.errMsg = ""
	return tea.Batch(screen.Schedule(task), s.sync())
}

// sync re-reads the controller and leaves the screen when the run moved on.
func (s *QuizScreen) sync() tea.Cmd {
	ctl := s.env.Session
	switch ctl.View() {
	case session.ViewTest:
		if n, ok := ctl.ActiveNode(); ok && (n.ID != s.node.ID || s.choices.Submitted) {
			s.loadNode()
		}
	case session.ViewBodySync:
		if !s.sensing {
			s.loadSenses()
		}
	case session.ViewResults:
		next := results.New(s.env)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case session.ViewDashboard:
		return tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			screen.Notice(s.dashboardNotice()),
		)
	}
	return nil
}

// dashboardNotice explains why the run stopped on the dashboard.
func (s *QuizScreen) dashboardNotice() string {
	ctl := s.env.Session
	done := ctl.CompletedNodes()
	next := 0
	if len(done) > 0 {
		next = done[len(done)-1] + 1
	}
	if ctl.Demo() && next >= session.DemoNodeLimit {
		return s.env.Catalog.T("ui.demo_locked")
	}
	return s.env.Catalog.T("ui.milestone")
}

func (s *QuizScreen) loadNode() {
	n, ok := s.env.Session.ActiveNode()
	if !ok {
		return
	}
	s.node = n
	opts := make([]string, len(n.Choices))
	for i, ch := range n.Choices {
		opts[i] = s.env.Catalog.Choice(ch)
	}
	s.choices = components.NewChoiceList("", opts)
	s.sensing = false
}

func (s *QuizScreen) loadSenses() {
	all := profile.AllSensations()
	opts := make([]string, len(all))
	for i, sn := range all {
		opts[i] = s.env.Catalog.T("sensations." + string(sn))
	}
	s.senses = components.NewChoiceList(s.env.Catalog.T("ui.body_sync_prompt"), opts)
	s.sensing = true
}
