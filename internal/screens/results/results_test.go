package results

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/genesis/internal/screen"
	"github.com/abhisek/genesis/internal/screen/screentest"
)

func newResults(t *testing.T, st *screentest.MemStore) (*ResultsScreen, *screen.Env) {
	t.Helper()
	st.Hist = screentest.Answered(12, 1800)
	env := screentest.NewEnv(t, st, false)
	env.Session.ShowResults(context.Background())
	s := New(env)
	for _, msg := range screentest.Collect(s.Init()) {
		s.Update(msg)
	}
	return s, env
}

func TestResultsScreen_NoResult(t *testing.T) {
	env := screentest.NewEnv(t, screentest.NewMemStore(), false)
	s := New(env)

	if !strings.Contains(s.View(100, 30), env.Catalog.T("ui.no_scans")) {
		t.Error("expected the empty-state message")
	}
	// Keys are ignored without a result.
	s.Update(screentest.SpecialKey(tea.KeyDown))
	if s.cursor != 0 {
		t.Errorf("cursor = %d, want 0", s.cursor)
	}
}

func TestResultsScreen_RendersRoadmap(t *testing.T) {
	s, env := newResults(t, screentest.NewMemStore())
	if len(s.result.Roadmap) != 7 {
		t.Fatalf("roadmap has %d steps, want 7", len(s.result.Roadmap))
	}

	lines, cursorLine := s.renderLines(100)
	full := strings.Join(lines, "\n")
	if !strings.Contains(full, env.Catalog.T("ui.roadmap")) {
		t.Error("roadmap heading missing")
	}
	if !strings.Contains(full, s.result.ShareCode) {
		t.Error("share code missing")
	}
	if cursorLine <= 0 || cursorLine >= len(lines) {
		t.Errorf("cursorLine = %d out of %d lines", cursorLine, len(lines))
	}
}

func TestResultsScreen_ToggleDay(t *testing.T) {
	st := screentest.NewMemStore()
	s, _ := newResults(t, st)

	s.Update(screentest.SpecialKey(tea.KeyDown))
	s.Update(screentest.SpecialKey(tea.KeySpace))

	day := s.result.Roadmap[1].Day
	if !s.DayDone(day) {
		t.Errorf("day %d should be done", day)
	}
	if len(st.Days) != 1 || st.Days[0] != day {
		t.Errorf("stored days = %v", st.Days)
	}

	s.Update(screentest.SpecialKey(tea.KeyEnter))
	if s.DayDone(day) {
		t.Errorf("day %d should be toggled off", day)
	}
}

func TestResultsScreen_CursorBounds(t *testing.T) {
	s, _ := newResults(t, screentest.NewMemStore())

	s.Update(screentest.SpecialKey(tea.KeyUp))
	if s.cursor != 0 {
		t.Errorf("cursor = %d, want 0", s.cursor)
	}
	for range 20 {
		s.Update(screentest.SpecialKey(tea.KeyDown))
	}
	if want := len(s.result.Roadmap) - 1; s.cursor != want {
		t.Errorf("cursor = %d, want %d", s.cursor, want)
	}
}

func TestResultsScreen_ToggleError(t *testing.T) {
	st := screentest.NewMemStore()
	s, _ := newResults(t, st)
	st.Err = errors.New("disk full")

	s.Update(screentest.SpecialKey(tea.KeyEnter))
	if s.errMsg != "disk full" {
		t.Errorf("errMsg = %q", s.errMsg)
	}
}

func TestResultsScreen_SafetyMode(t *testing.T) {
	s, env := newResults(t, screentest.NewMemStore())

	s.result.SystemHealth = SafetyThreshold
	if s.SafetyMode() {
		t.Error("safety mode at the threshold")
	}

	s.result.SystemHealth = SafetyThreshold - 1
	if !s.SafetyMode() {
		t.Fatal("expected safety mode below the threshold")
	}
	lines, _ := s.renderLines(100)
	if !strings.Contains(strings.Join(lines, "\n"), env.Catalog.T("ui.safety_title")) {
		t.Error("safety box missing")
	}
}

func TestResultsScreen_ViewScrollsToCursor(t *testing.T) {
	s, _ := newResults(t, screentest.NewMemStore())
	for range len(s.result.Roadmap) {
		s.Update(screentest.SpecialKey(tea.KeyDown))
	}
	_, cursorLine := s.renderLines(100)

	out := s.View(100, 5)
	if got := strings.Count(out, "\n") + 1; got > 5 {
		t.Errorf("view has %d lines, want at most 5", got)
	}
	if s.scrollOffset > cursorLine || cursorLine >= s.scrollOffset+5 {
		t.Errorf("cursor line %d not within offset %d", cursorLine, s.scrollOffset)
	}
}

func TestGlitchText(t *testing.T) {
	if got := glitchText("ARCHIVE"); got != "ΛRCH|VΞ" {
		t.Errorf("glitchText = %q", got)
	}
}
