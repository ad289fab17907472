package compat

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/genesis/internal/screen/screentest"
	"github.com/abhisek/genesis/internal/store"
)

const partnerJSON = `[
  {"beliefKey": "money_is_tool", "sensation": "s2", "latency": 1500, "nodeId": 0, "domain": "foundation"},
  {"beliefKey": "capacity_expansion", "sensation": "s0", "latency": 1700, "nodeId": 1, "domain": "foundation"}
]`

func typeString(s *CompatScreen, text string) {
	for _, r := range text {
		s.Update(screentest.KeyPress(r))
	}
}

func TestCompatScreen_NoOwnProfile(t *testing.T) {
	env := screentest.NewEnv(t, screentest.NewMemStore(), false)
	s := New(env)
	s.Update(ownLoadedMsg{})

	typeString(s, "partner.json")
	s.Update(screentest.SpecialKey(tea.KeyEnter))

	if s.report != nil {
		t.Error("expected no report without an own profile")
	}
	if s.errMsg != env.Catalog.T("ui.no_scans") {
		t.Errorf("errMsg = %q", s.errMsg)
	}
}

func TestCompatScreen_LoadsLatestScan(t *testing.T) {
	st := screentest.NewMemStore()
	env := screentest.NewEnv(t, st, false)
	own := env.Engine.ComputeResult(screentest.Answered(12, 1800))
	st.Scans.Append(store.ScanRecord{ID: "a", Result: own})

	s := New(env)
	var loaded ownLoadedMsg
	for _, msg := range screentest.Collect(s.Init()) {
		if m, ok := msg.(ownLoadedMsg); ok {
			loaded = m
		}
	}
	if !loaded.ok || loaded.result.ArchetypeKey != own.ArchetypeKey {
		t.Fatalf("loaded = %+v", loaded)
	}
}

func TestCompatScreen_Compare(t *testing.T) {
	env := screentest.NewEnv(t, screentest.NewMemStore(), false)
	own := env.Engine.ComputeResult(screentest.Answered(12, 1800))

	path := filepath.Join(t.TempDir(), "partner.json")
	if err := os.WriteFile(path, []byte(partnerJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(env)
	s.Update(ownLoadedMsg{result: own, ok: true})
	s.input.SetValue(path)
	s.Update(screentest.SpecialKey(tea.KeyEnter))

	if s.errMsg != "" {
		t.Fatalf("errMsg = %q", s.errMsg)
	}
	if s.report == nil {
		t.Fatal("expected a report")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, env.Catalog.T("relationships."+s.report.RelationshipType)) {
		t.Error("expected relationship label in view")
	}
}

func TestCompatScreen_BadFile(t *testing.T) {
	env := screentest.NewEnv(t, screentest.NewMemStore(), false)
	own := env.Engine.ComputeResult(nil)

	s := New(env)
	s.Update(ownLoadedMsg{result: own, ok: true})
	s.input.SetValue(filepath.Join(t.TempDir(), "missing.json"))
	s.Update(screentest.SpecialKey(tea.KeyEnter))

	if s.report != nil || s.errMsg == "" {
		t.Errorf("report = %v, errMsg = %q; want error", s.report, s.errMsg)
	}
}

func TestCompatScreen_PrefersCurrentResult(t *testing.T) {
	st := screentest.NewMemStore()
	st.Hist = screentest.Answered(6, 1500)
	env := screentest.NewEnv(t, st, false)
	env.Session.ShowResults(context.Background())

	s := New(env)
	for _, msg := range screentest.Collect(s.Init()) {
		s.Update(msg)
	}
	if !s.hasOwn {
		t.Error("expected the controller's result to be used")
	}
}
