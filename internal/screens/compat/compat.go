package compat

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/genesis/internal/compat"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/screen"
	"github.com/abhisek/genesis/internal/scoring"
	"github.com/abhisek/genesis/internal/ui/components"
	"github.com/abhisek/genesis/internal/ui/layout"
	"github.com/abhisek/genesis/internal/ui/theme"
)

// ownLoadedMsg carries the profile the partner is compared against.
type ownLoadedMsg struct {
	result scoring.AnalysisResult
	ok     bool
	err    error
}

// CompatScreen compares the player's latest profile with a partner file.
type CompatScreen struct {
	env    *screen.Env
	input  components.TextInput
	own    scoring.AnalysisResult
	hasOwn bool
	loaded bool
	report *compat.Report
	errMsg string
}

var _ screen.Screen = (*CompatScreen)(nil)
var _ screen.KeyHintProvider = (*CompatScreen)(nil)

// New creates a CompatScreen.
func New(env *screen.Env) *CompatScreen {
	return &CompatScreen{
		env:   env,
		input: components.NewTextInput("partner profile (.json)", 256),
	}
}

func (s *CompatScreen) Init() tea.Cmd {
	ctl := s.env.Session
	st := s.env.Store
	load := func() tea.Msg {
		if res, ok := ctl.Result(); ok {
			return ownLoadedMsg{result: res, ok: true}
		}
		if st == nil {
			return ownLoadedMsg{}
		}
		h, err := st.ScanHistory(context.Background())
		if err != nil {
			return ownLoadedMsg{err: err}
		}
		if h.Latest == nil {
			return ownLoadedMsg{}
		}
		return ownLoadedMsg{result: h.Latest.Result, ok: true}
	}
	return tea.Batch(load, s.input.Init())
}

func (s *CompatScreen) Title() string {
	return s.env.Catalog.T("ui.compat")
}

func (s *CompatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Compare"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CompatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ownLoadedMsg:
		s.loaded = true
		s.own, s.hasOwn = msg.result, msg.ok
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			s.compare()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// compare loads the partner file named in the input and scores the pair.
func (s *CompatScreen) compare() {
	path := s.input.Value()
	if path == "" {
		return
	}
	if !s.hasOwn {
		s.errMsg = s.env.Catalog.T("ui.no_scans")
		s.input.Submit(false)
		return
	}
	partner, err := compat.LoadProfile(path, s.env.Engine)
	if err != nil {
		s.errMsg = err.Error()
		s.report = nil
		s.input.Submit(false)
		s.env.Log().Debug("partner profile rejected", "path", path, "error", err)
		return
	}
	rep := compat.Analyze(s.own, partner)
	s.report = &rep
	s.errMsg = ""
	s.input.Submit(true)
}

func (s *CompatScreen) View(width, height int) string {
	cat := s.env.Catalog
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")

	if s.loaded && !s.hasOwn {
		b.WriteString(layout.Centered(theme.Hint.Render(cat.T("ui.no_scans")), width))
		b.WriteString("\n\n")
	} else if s.hasOwn {
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim).Render("you: ")+
			theme.Selected.Render(cat.T("archetypes."+string(s.own.ArchetypeKey)+".title")), width))
		b.WriteString("\n\n")
	}

	b.WriteString(layout.Centered(lipgloss.NewStyle().Width(cw).Render(s.input.View()), width))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(lipgloss.NewStyle().Width(cw).Foreground(theme.Error).Render(s.errMsg), width))
		b.WriteString("\n")
	}

	if s.report != nil {
		b.WriteString("\n")
		b.WriteString(s.renderReport(*s.report, width, cw))
	}
	return b.String()
}

func (s *CompatScreen) renderReport(rep compat.Report, width, cw int) string {
	cat := s.env.Catalog

	lines := []string{
		theme.Highlight(rep.OverallScore < 40).Render(cat.T("relationships."+rep.RelationshipType)) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("  · partner: %s", cat.T("archetypes."+string(rep.PartnerArchetype)+".title"))),
		"",
		components.MetricBar("Match", rep.OverallScore, false, min(cw, 56)).View(),
		"",
		"synergy:  " + s.domainList(rep.DomainSynergies, theme.Success),
		"conflict: " + s.domainList(rep.DomainConflicts, theme.Glitch),
		"",
	}
	for _, r := range rep.Recommendations {
		lines = append(lines, lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render("› "+r))
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = layout.Centered(l, width)
	}
	return strings.Join(out, "\n")
}

func (s *CompatScreen) domainList(keys []registry.DomainKey, fg color.Color) string {
	if len(keys) == 0 {
		return theme.Locked.Render("none")
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = s.env.Catalog.T("domains." + string(k))
	}
	return lipgloss.NewStyle().Foreground(fg).Render(strings.Join(names, ", "))
}
