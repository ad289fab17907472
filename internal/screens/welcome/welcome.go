package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/genesis/internal/router"
	"github.com/abhisek/genesis/internal/screen"
	"github.com/abhisek/genesis/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

const sigilArt = `    ╭─────╮
  ╭─┤  ◎  ├─╮
  │ ╰──┬──╯ │
  ╰────┴────╯`

// scanFrames sweep under the sigil while the scanner warms up.
var scanFrames = []string{
	"▰▱▱▱▱▱▱▱",
	"▱▰▱▱▱▱▱▱",
	"▱▱▰▱▱▱▱▱",
	"▱▱▱▰▱▱▱▱",
	"▱▱▱▱▰▱▱▱",
	"▱▱▱▱▱▰▱▱",
	"▱▱▱▱▱▱▰▱",
	"▱▱▱▱▱▱▱▰",
}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home
// screen. Any key skips ahead.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	tagline      string
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen, tagline string) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		tagline:     tagline,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render(sigilArt))

	// Phase 2+: scan sweep
	if w.elapsed >= phase1End {
		frame := scanFrames[w.tickCount%len(scanFrames)]
		sections = append(sections, "", lipgloss.NewStyle().Foreground(theme.Primary).Render(frame))
	}

	// Phase 3+: banner + tagline + hint
	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
