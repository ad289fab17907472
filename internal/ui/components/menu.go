package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/genesis/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Disabled items are skipped by the
// cursor and never run their Action.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical menu. Number keys 1-9 jump to and activate an item.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	if i, ok := m.step(-1, 1); ok {
		m.Selected = i
	}
	return m
}

func (m Menu) Init() tea.Cmd {
	return nil
}

// step returns the next enabled index after from in direction dir.
func (m Menu) step(from, dir int) (int, bool) {
	for i := from + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i, true
		}
	}
	return from, false
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Disabled || item.Action == nil {
		return nil
	}
	return item.Action()
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.Selected, _ = m.step(m.Selected, -1)
	case "down", "j":
		m.Selected, _ = m.step(m.Selected, 1)
	case "home":
		if i, ok := m.step(-1, 1); ok {
			m.Selected = i
		}
	case "end":
		if i, ok := m.step(len(m.Items), -1); ok {
			m.Selected = i
		}
	case "enter":
		return m, m.activate(m.Selected)
	default:
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > len(m.Items) || m.Items[n-1].Disabled {
			return m, nil
		}
		m.Selected = n - 1
		return m, m.activate(m.Selected)
	}
	return m, nil
}

// View renders the menu as a plain list.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + item.Label))
		case i == m.Selected:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ " + item.Label))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("    " + item.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
