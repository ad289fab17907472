package quiz

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/router"
	"github.com/abhisek/genesis/internal/screen"
	"github.com/abhisek/genesis/internal/screen/screentest"
	"github.com/abhisek/genesis/internal/session"
)

func testEnv(t *testing.T, demo bool) *screen.Env {
	t.Helper()
	return screentest.NewEnv(t, screentest.NewMemStore(), demo)
}

func startNode(t *testing.T, env *screen.Env, id int) *QuizScreen {
	t.Helper()
	if _, err := env.Session.StartNode(context.Background(), id); err != nil {
		t.Fatalf("StartNode(%d): %v", id, err)
	}
	return New(env)
}

func TestQuizScreen_RendersNode(t *testing.T) {
	env := testEnv(t, false)
	s := startNode(t, env, 0)

	view := s.View(100, 30)
	title := env.Catalog.T("scenes.foundation_0.title")
	if !strings.Contains(view, title) {
		t.Errorf("view does not contain node title %q", title)
	}
	if s.Title() != "Foundation" {
		t.Errorf("Title = %q, want %q", s.Title(), "Foundation")
	}
}

func TestQuizScreen_OnboardingAsksForSensation(t *testing.T) {
	env := testEnv(t, false)
	s := startNode(t, env, 0)

	var scr screen.Screen = s
	scr, _ = scr.Update(screentest.KeyPress('1'))
	if got := env.Session.View(); got != session.ViewBodySync {
		t.Fatalf("view after choice = %v, want body_sync", got)
	}
	if !scr.(*QuizScreen).sensing {
		t.Error("expected sensation picker to be loaded")
	}
	if !strings.Contains(scr.View(100, 30), env.Catalog.T("ui.body_sync_prompt")) {
		t.Error("body sync view missing prompt")
	}

	// Neutral sensation advances straight to the next node.
	scr, _ = scr.Update(screentest.KeyPress('1'))
	if got := env.Session.View(); got != session.ViewTest {
		t.Fatalf("view after s0 = %v, want test", got)
	}
	if got := scr.(*QuizScreen).node.ID; got != 1 {
		t.Errorf("node after advance = %d, want 1", got)
	}
	if h := env.Session.History(); len(h) != 1 || h[0].Sensation != profile.SensationNeutral {
		t.Errorf("history = %+v", h)
	}
}

func TestQuizScreen_SensationStartsReflection(t *testing.T) {
	env := testEnv(t, false)
	s := startNode(t, env, 0)

	var scr screen.Screen = s
	scr, _ = scr.Update(screentest.KeyPress('1'))
	scr, cmd := scr.Update(screentest.KeyPress('2'))

	if got := env.Session.View(); got != session.ViewReflection {
		t.Fatalf("view = %v, want reflection", got)
	}
	if cmd == nil {
		t.Error("expected the advance task to be scheduled")
	}
	if !strings.Contains(scr.View(100, 30), env.Catalog.T("ui.reflection")) {
		t.Error("reflection view missing text")
	}
}

func TestQuizScreen_ArrowsAndEnter(t *testing.T) {
	env := testEnv(t, false)
	s := startNode(t, env, 0)

	var scr screen.Screen = s
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if got := env.Session.View(); got != session.ViewBodySync {
		t.Fatalf("view = %v, want body_sync", got)
	}
	if got := scr.(*QuizScreen).choices.ChosenIndex; got != 1 {
		t.Errorf("ChosenIndex = %d, want 1", got)
	}
}

func TestQuizScreen_DemoStopsAtDashboard(t *testing.T) {
	env := testEnv(t, true)
	s := startNode(t, env, 2)

	var scr screen.Screen = s
	scr, _ = scr.Update(screentest.KeyPress('1'))
	_, cmd := scr.Update(screentest.KeyPress('1'))

	if got := env.Session.View(); got != session.ViewDashboard {
		t.Fatalf("view = %v, want dashboard", got)
	}
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if got, want := s.dashboardNotice(), env.Catalog.T("ui.demo_locked"); got != want {
		t.Errorf("notice = %q, want %q", got, want)
	}
}

func TestQuizScreen_LastNodeShowsResults(t *testing.T) {
	env := testEnv(t, false)
	last := env.Session.Registry().TotalNodes() - 1
	s := startNode(t, env, last)

	var scr screen.Screen = s
	scr, cmd := scr.Update(screentest.KeyPress('1'))
	if env.Session.View() == session.ViewBodySync {
		_, cmd = scr.Update(screentest.KeyPress('1'))
	}

	if got := env.Session.View(); got != session.ViewResults {
		t.Fatalf("view = %v, want results", got)
	}
	var replaced bool
	for _, msg := range screentest.Collect(cmd) {
		if r, ok := msg.(router.ReplaceScreenMsg); ok && r.Screen.Title() == env.Catalog.T("ui.results") {
			replaced = true
		}
	}
	if !replaced {
		t.Error("expected ReplaceScreenMsg with the results screen")
	}
}

func TestQuizScreen_StaleSyncKeepsNode(t *testing.T) {
	env := testEnv(t, false)
	s := startNode(t, env, 3)

	scr, cmd := s.Update(screen.SessionChangedMsg{})
	if cmd != nil {
		t.Error("expected no command while the node is unchanged")
	}
	if got := scr.(*QuizScreen).node.ID; got != 3 {
		t.Errorf("node = %d, want 3", got)
	}
}
