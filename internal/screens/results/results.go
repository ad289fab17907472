package results

import (
	"context"
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/genesis/internal/screen"
	"github.com/abhisek/genesis/internal/scoring"
	"github.com/abhisek/genesis/internal/ui/layout"
)

// SafetyThreshold is the system health below which the results open with
// the safety notice.
const SafetyThreshold = 25

// roadmapLoadedMsg carries the persisted roadmap completion flags.
type roadmapLoadedMsg struct {
	days []int
}

// ResultsScreen displays the archetype, metrics and the 7-day roadmap.
type ResultsScreen struct {
	env          *screen.Env
	result       scoring.AnalysisResult
	hasResult    bool
	doneDays     []int
	cursor       int
	scrollOffset int
	errMsg       string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the controller's current result.
func New(env *screen.Env) *ResultsScreen {
	res, ok := env.Session.Result()
	return &ResultsScreen{
		env:       env,
		result:    res,
		hasResult: ok,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	st := s.env.Store
	if st == nil {
		return nil
	}
	return func() tea.Msg {
		return roadmapLoadedMsg{days: st.RoadmapDays(context.Background())}
	}
}

func (s *ResultsScreen) Title() string {
	return s.env.Catalog.T("ui.results")
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Roadmap day"},
		{Key: "Space", Description: "Toggle done"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapLoadedMsg:
		s.doneDays = msg.days
		return s, nil

	case tea.KeyMsg:
		if !s.hasResult {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.result.Roadmap)-1 {
				s.cursor++
			}
		case "space", " ", "enter":
			s.toggleDay()
		}
	}
	return s, nil
}

// toggleDay flips the completion flag of the day under the cursor.
func (s *ResultsScreen) toggleDay() {
	if s.env.Store == nil || s.cursor >= len(s.result.Roadmap) {
		return
	}
	day := s.result.Roadmap[s.cursor].Day
	days, err := s.env.Store.ToggleRoadmapDay(context.Background(), day)
	if err != nil {
		s.errMsg = err.Error()
		s.env.Log().Warn("toggle roadmap day failed", "day", day, "error", err)
		return
	}
	s.errMsg = ""
	s.doneDays = days
}

// DayDone reports whether a roadmap day is marked complete.
func (s *ResultsScreen) DayDone(day int) bool {
	return slices.Contains(s.doneDays, day)
}

// SafetyMode reports whether the result is strained enough to lead with the
// safety notice.
func (s *ResultsScreen) SafetyMode() bool {
	return s.hasResult && s.result.SystemHealth < SafetyThreshold
}
