package screen

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/genesis/internal/session"
	"github.com/abhisek/genesis/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// TaskDueMsg is delivered when a scheduled controller task is due. The app
// root hands it to Controller.Fire.
type TaskDueMsg struct {
	Task session.Task
}

// SessionChangedMsg tells the active screen the controller moved on its own
// (a scheduled task fired) and it should re-read state.
type SessionChangedMsg struct{}

// Schedule turns a controller task into a timer command. A nil task
// schedules nothing.
func Schedule(t *session.Task) tea.Cmd {
	if t == nil {
		return nil
	}
	task := *t
	return tea.Tick(task.Delay, func(time.Time) tea.Msg {
		return TaskDueMsg{Task: task}
	})
}
