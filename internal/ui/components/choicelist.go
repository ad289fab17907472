package components

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/genesis/internal/ui/theme"
)

// ChoiceList is a numbered single-choice picker. Number keys pick and
// submit in one step.
type ChoiceList struct {
	Prompt      string
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int
}

// NewChoiceList creates a picker with the cursor on the first option.
func NewChoiceList(prompt string, options []string) ChoiceList {
	return ChoiceList{
		Prompt:      prompt,
		Options:     options,
		ChosenIndex: -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		if len(c.Options) > 0 {
			c.Submitted = true
			c.ChosenIndex = c.Selected
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(c.Options) {
			c.Selected = n - 1
			c.Submitted = true
			c.ChosenIndex = n - 1
		}
	}

	return c, nil
}

// View renders the picker.
func (c ChoiceList) View() string {
	var s string
	if c.Prompt != "" {
		s = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt) + "\n\n"
	}

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case c.Submitted && i == c.ChosenIndex:
			s += theme.Done.Render(line) + "\n"
		case c.Submitted:
			s += theme.Locked.Render(line) + "\n"
		case i == c.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
