package screen

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/genesis/internal/i18n"
	"github.com/abhisek/genesis/internal/scoring"
	"github.com/abhisek/genesis/internal/session"
	"github.com/abhisek/genesis/internal/store"
)

// ProgressStore is the slice of the store the screens read directly.
// *store.Store satisfies it.
type ProgressStore interface {
	ScanHistory(ctx context.Context) (store.ScanHistory, error)
	RoadmapDays(ctx context.Context) []int
	ToggleRoadmapDay(ctx context.Context, day int) ([]int, error)
}

// Env bundles the dependencies shared by every screen.
type Env struct {
	Session *session.Controller
	Engine  *scoring.Engine
	Catalog *i18n.Catalog
	Store   ProgressStore
	Logger  *slog.Logger
}

// NoticeMsg asks the screen that receives it to show a one-line notice,
// e.g. after the run drops back to the dashboard at a milestone.
type NoticeMsg struct {
	Text string
}

// Notice returns a command delivering a NoticeMsg.
func Notice(text string) tea.Cmd {
	return func() tea.Msg { return NoticeMsg{Text: text} }
}

// Log returns the env logger, or slog.Default when none was set.
func (e *Env) Log() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}
