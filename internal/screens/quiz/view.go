package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/genesis/internal/session"
	"github.com/abhisek/genesis/internal/ui/components"
	"github.com/abhisek/genesis/internal/ui/layout"
	"github.com/abhisek/genesis/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch s.env.Session.View() {
	case session.ViewBodySync:
		return s.renderBodySync(width)
	case session.ViewReflection:
		return s.renderReflection(width, height)
	default:
		return s.renderNode(width)
	}
}

// renderInfoLine renders the node position and live clarity.
func (s *QuizScreen) renderInfoLine(width int) string {
	ctl := s.env.Session
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · node %d", strings.ToUpper(s.env.Catalog.T("domains."+string(s.node.Domain))), s.node.ID+1))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d  clarity %.0f%%",
			len(ctl.CompletedNodes()),
			ctl.Registry().TotalNodes(),
			ctl.Adaptive().Clarity,
		))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line + "\n" + lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0)))
}

func (s *QuizScreen) renderNode(width int) string {
	cat := s.env.Catalog
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(cat.T(s.node.TitleKey)))
	b.WriteString("\n\n")

	desc := lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(cat.T(s.node.DescKey))
	b.WriteString(layout.Centered(desc, width))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(lipgloss.NewStyle().Width(cw).Render(s.choices.View()), width))
	b.WriteString(s.renderError(width))
	return b.String()
}

func (s *QuizScreen) renderBodySync(width int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Width(cw).Render(s.senses.View()), width))
	b.WriteString(s.renderError(width))
	return b.String()
}

func (s *QuizScreen) renderReflection(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Secondary).
		Italic(true).
		Render("◌  " + s.env.Catalog.T("ui.reflection") + "  ◌")
}

func (s *QuizScreen) renderError(width int) string {
	if s.errMsg == "" {
		return ""
	}
	return "\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(s.errMsg)
}
