package nodemap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/router"
	"github.com/abhisek/genesis/internal/screen"
	"github.com/abhisek/genesis/internal/screens/quiz"
	"github.com/abhisek/genesis/internal/session"
	"github.com/abhisek/genesis/internal/ui/layout"
	"github.com/abhisek/genesis/internal/ui/theme"
)

type rowKind int

const (
	rowDomainHeader rowKind = iota
	rowNode
)

type row struct {
	kind   rowKind
	domain registry.DomainKey
	node   registry.Node
}

// NodeMapScreen lists every node grouped by domain with its dashboard
// status.
type NodeMapScreen struct {
	env          *screen.Env
	rows         []row
	cursor       int
	scrollOffset int
	notice       string
}

var _ screen.Screen = (*NodeMapScreen)(nil)
var _ screen.KeyHintProvider = (*NodeMapScreen)(nil)

// New creates a NodeMapScreen with the cursor on the first open node.
func New(env *screen.Env) *NodeMapScreen {
	reg := env.Session.Registry()

	var rows []row
	for _, d := range reg.Domains() {
		rows = append(rows, row{kind: rowDomainHeader, domain: d.Key})
		for id := d.StartID; id < d.StartID+d.Count; id++ {
			n, _ := reg.Node(id)
			rows = append(rows, row{kind: rowNode, domain: d.Key, node: n})
		}
	}

	s := &NodeMapScreen{env: env, rows: rows}
	s.cursor = s.firstOpenRow()
	return s
}

// firstOpenRow returns the first active node row, falling back to the first
// node row.
func (s *NodeMapScreen) firstOpenRow() int {
	first := -1
	for i, r := range s.rows {
		if r.kind != rowNode {
			continue
		}
		if first < 0 {
			first = i
		}
		if s.env.Session.NodeStatus(r.node.ID) == session.NodeActive {
			return i
		}
	}
	return max(first, 0)
}

func (s *NodeMapScreen) Init() tea.Cmd {
	return nil
}

func (s *NodeMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.NoticeMsg:
		s.notice = msg.Text
		s.cursor = s.firstOpenRow()
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextDomain()
		case "enter":
			return s, s.selectNode()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *NodeMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	var lines []string
	if s.notice != "" {
		lines = append(lines, layout.Centered(theme.Warning.Render(s.notice), width))
		height--
	}

	s.adjustScroll(height)

	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}
		switch r.kind {
		case rowDomainHeader:
			lines = append(lines, s.renderDomainHeader(r.domain, width))
		case rowNode:
			lines = append(lines, s.renderNodeRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *NodeMapScreen) Title() string {
	return s.env.Catalog.T("ui.dashboard")
}

// KeyHints returns the key binding hints for the footer.
func (s *NodeMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Domain"},
		{Key: "Enter", Description: "Start node"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping domain headers.
func (s *NodeMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowNode {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextDomain jumps to the first node of the next domain, wrapping around.
func (s *NodeMapScreen) nextDomain() {
	current := s.rows[s.cursor].domain
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowNode && s.rows[i].domain != current {
			s.cursor = i
			return
		}
	}
	s.cursor = 0
	s.moveCursor(1)
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *NodeMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowDomainHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// selectNode starts the node under the cursor.
func (s *NodeMapScreen) selectNode() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowNode {
		return nil
	}

	ctl := s.env.Session
	if ctl.NodeStatus(r.node.ID) == session.NodeLocked {
		if ctl.Demo() && r.node.ID >= session.DemoNodeLimit {
			s.notice = s.env.Catalog.T("ui.demo_locked")
		} else {
			s.notice = s.env.Catalog.T("ui.locked")
		}
		return nil
	}

	task, err := ctl.StartNode(context.Background(), r.node.ID)
	if err != nil {
		s.notice = err.Error()
		if errors.Is(err, session.ErrDemoLocked) {
			s.notice = s.env.Catalog.T("ui.demo_locked")
		}
		return nil
	}
	s.notice = ""
	next := quiz.New(s.env)
	return tea.Batch(
		func() tea.Msg { return router.PushScreenMsg{Screen: next} },
		screen.Schedule(task),
	)
}

// renderDomainHeader renders a domain section header with its progress.
func (s *NodeMapScreen) renderDomainHeader(key registry.DomainKey, width int) string {
	d, _ := s.env.Session.Registry().Domain(key)
	done := 0
	for id := d.StartID; id < d.StartID+d.Count; id++ {
		if s.env.Session.NodeStatus(id) == session.NodeDone {
			done++
		}
	}
	name := strings.ToUpper(s.env.Catalog.T("domains." + string(key)))
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(fmt.Sprintf("%s  %d/%d", name, done, d.Count))
}

// renderNodeRow renders a single node row.
func (s *NodeMapScreen) renderNodeRow(r row, selected bool, width int) string {
	status := s.env.Session.NodeStatus(r.node.ID)

	padding := 4
	iconWidth := 3
	intensityWidth := 7
	labelWidth := 10
	spacing := 4
	nameWidth := width - padding - iconWidth - intensityWidth - labelWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}

	name := s.env.Catalog.T(r.node.TitleKey)
	if r.node.IsCalibration() {
		name += " ·"
	}
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	var nameStyle, labelStyle lipgloss.Style
	switch {
	case selected:
		nameStyle = theme.Selected
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case status == session.NodeDone:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
	case status == session.NodeActive:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	default:
		nameStyle = theme.Locked
		labelStyle = theme.Locked
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	namePadded := fmt.Sprintf("%-*s", nameWidth, name)
	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		statusIcon(status),
		nameStyle.Render(namePadded),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(intensityBar(r.node.Intensity)),
		labelStyle.Render(fmt.Sprintf("%9s", s.statusLabel(status))),
	)
}

func (s *NodeMapScreen) statusLabel(st session.NodeStatus) string {
	switch st {
	case session.NodeDone:
		return "done"
	case session.NodeActive:
		return "open"
	default:
		return strings.ToLower(s.env.Catalog.T("ui.locked"))
	}
}

func statusIcon(st session.NodeStatus) string {
	switch st {
	case session.NodeDone:
		return "✓"
	case session.NodeActive:
		return "◆"
	default:
		return "·"
	}
}

// intensityBar draws intensity 1-5 as filled blocks.
func intensityBar(n int) string {
	n = min(max(n, 0), 5)
	return strings.Repeat("▮", n) + strings.Repeat("▯", 5-n)
}
