package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/genesis/internal/screen"
	"github.com/abhisek/genesis/internal/scoring"
	"github.com/abhisek/genesis/internal/store"
	"github.com/abhisek/genesis/internal/ui/layout"
	"github.com/abhisek/genesis/internal/ui/theme"
)

type historyLoadedMsg struct {
	History store.ScanHistory
	Err     error
}

// HistoryScreen displays past scans and their evolution trends.
type HistoryScreen struct {
	env      *screen.Env
	history  store.ScanHistory
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(env *screen.Env) *HistoryScreen {
	return &HistoryScreen{
		env:      env,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	st := s.env.Store
	return func() tea.Msg {
		if st == nil {
			return historyLoadedMsg{History: store.EmptyScanHistory()}
		}
		h, err := st.ScanHistory(context.Background())
		return historyLoadedMsg{History: h, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return s.env.Catalog.T("ui.history")
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.history = msg.History
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.history.Scans)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

// scanAt returns the i-th scan in display order, newest first.
func (s *HistoryScreen) scanAt(i int) store.ScanRecord {
	return s.history.Scans[len(s.history.Scans)-1-i]
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.history.Scans) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  " + s.env.Catalog.T("ui.no_scans"))
	}

	var b strings.Builder
	b.WriteString("\n")

	trends := s.history.EvolutionMetrics
	b.WriteString(layout.Centered(renderTrend("Entropy  ", trends.EntropyTrend, theme.Glitch), width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(renderTrend("Integrity", trends.IntegrityTrend, theme.Success), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Divider(width))
	b.WriteString("\n\n")

	for i := range s.history.Scans {
		rec := s.scanAt(i)
		r := rec.Result

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-22s  integrity %3d  entropy %3d",
			prefix,
			rec.SavedAt.Format("Jan 02, 2006"),
			s.env.Catalog.T("archetypes."+string(r.ArchetypeKey)+".title"),
			r.Integrity,
			r.EntropyScore,
		)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(layout.Centered(style.Render(line), width))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, detail := range s.details(r) {
				b.WriteString(layout.Centered(
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+detail), width))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func (s *HistoryScreen) details(r scoring.AnalysisResult) []string {
	cat := s.env.Catalog
	return []string{
		cat.T("verdicts." + string(r.VerdictKey)),
		fmt.Sprintf("%s · health %d · sync %d", cat.T("phases."+string(r.Phase)), r.SystemHealth, r.NeuroSync),
		cat.T("ui.share_code") + ": " + r.ShareCode,
	}
}

// sparkLevels are the glyphs for 0-100 values in eight steps.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws one glyph per value in [0,100].
func Sparkline(values []int) string {
	out := make([]rune, len(values))
	for i, v := range values {
		v = min(max(v, 0), 100)
		out[i] = sparkLevels[v*(len(sparkLevels)-1)/100]
	}
	return string(out)
}

func renderTrend(label string, values []int, fg color.Color) string {
	last := ""
	if len(values) > 0 {
		last = fmt.Sprintf("  %d", values[len(values)-1])
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+"  ") +
		lipgloss.NewStyle().Foreground(fg).Render(Sparkline(values)) +
		lipgloss.NewStyle().Foreground(theme.Text).Render(last)
}
