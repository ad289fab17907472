package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/genesis/internal/ui/components"
	"github.com/abhisek/genesis/internal/ui/layout"
	"github.com/abhisek/genesis/internal/ui/theme"
)

func (s *ResultsScreen) View(width, height int) string {
	if !s.hasResult {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n" + s.env.Catalog.T("ui.no_scans"))
	}

	lines, cursorLine := s.renderLines(width)

	// Keep the roadmap cursor on screen.
	if height > 0 {
		if cursorLine < s.scrollOffset {
			s.scrollOffset = cursorLine
		}
		if cursorLine >= s.scrollOffset+height {
			s.scrollOffset = cursorLine - height + 1
		}
	}
	end := min(s.scrollOffset+height, len(lines))
	if s.scrollOffset >= end {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines[s.scrollOffset:end], "\n")
}

// renderLines renders the full result and returns the index of the line
// holding the roadmap cursor.
func (s *ResultsScreen) renderLines(width int) ([]string, int) {
	r := s.result
	cat := s.env.Catalog
	glitch := r.Glitch()
	cw := components.ContentWidth(width)

	var blocks []string
	center := func(str string) string { return layout.Centered(str, width) }
	para := func(str string, style lipgloss.Style) string {
		return center(style.Width(cw).Align(lipgloss.Center).Render(str))
	}

	if s.SafetyMode() {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Width(cw-2).
			Padding(0, 1).
			Render(theme.Warning.Render(cat.T("ui.safety_title")) + "\n" +
				theme.Body.Render(cat.T("ui.safety_desc")) + "\n" +
				theme.Hint.Render(cat.T("ui.safety_help")))
		blocks = append(blocks, center(box), "")
	}

	// Archetype.
	base := "archetypes." + string(r.ArchetypeKey)
	title := strings.ToUpper(cat.T(base + ".title"))
	if glitch {
		title = glitchText(title)
	}
	blocks = append(blocks,
		center(theme.Highlight(glitch).Render(title)),
		center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d%% match · %s", r.ArchetypeMatch, r.Status))),
		para(cat.T(base+".desc"), theme.Body),
		para("› "+cat.T(base+".root_command"), lipgloss.NewStyle().Foreground(theme.Secondary).Italic(true)),
		"",
		layout.Divider(width),
	)

	// Metrics.
	barWidth := min(cw, 56)
	for _, m := range []struct {
		label    string
		value    int
		inverted bool
	}{
		{"Integrity", r.Integrity, false},
		{"Capacity", r.Capacity, false},
		{"Entropy", r.EntropyScore, true},
		{"Sync", r.NeuroSync, false},
		{"Health", r.SystemHealth, false},
		{cat.T("ui.confidence"), r.ConfidenceScore, false},
	} {
		blocks = append(blocks, center(components.MetricBar(m.label, m.value, m.inverted, barWidth).View()))
	}
	blocks = append(blocks,
		"",
		para(cat.T("integrity_audit."+r.IntegrityBreakdown.Description), theme.Hint),
		layout.Divider(width),
	)

	// Verdict and narrative.
	blocks = append(blocks,
		para(cat.T("verdicts."+string(r.VerdictKey)), theme.Warning),
		para(cat.T("synthesis."+r.LifeScript), theme.Body),
		para(cat.T("strategies."+r.InterventionStrategy), lipgloss.NewStyle().Foreground(theme.Primary)),
		para(cat.T("conflicts."+r.CoreConflict), lipgloss.NewStyle().Foreground(theme.TextDim)),
		para(cat.T("directives."+r.ShadowDirective), lipgloss.NewStyle().Foreground(theme.TextDim)),
	)
	if r.InterferenceInsight != "" {
		blocks = append(blocks, para(cat.T("insights."+r.InterferenceInsight), lipgloss.NewStyle().Foreground(theme.Accent)))
	}
	blocks = append(blocks, layout.Divider(width))

	// Roadmap.
	blocks = append(blocks, center(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(
		fmt.Sprintf("%s · %s", cat.T("ui.roadmap"), cat.T("phases."+string(r.Phase))))))

	lines := splitLines(blocks)
	cursorLine := len(lines)
	for i, step := range r.Roadmap {
		if i == s.cursor {
			cursorLine = len(lines)
		}
		for _, l := range strings.Split(s.renderStep(i, cat.T("tasks."+step.TaskKey), step.Day, step.TargetMetric, cw), "\n") {
			lines = append(lines, center(l))
		}
	}

	lines = append(lines, "", center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		cat.T("ui.share_code")+": ")+lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(r.ShareCode)))
	if s.errMsg != "" {
		lines = append(lines, center(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
	}
	return lines, cursorLine
}

func (s *ResultsScreen) renderStep(i int, task string, day int, target string, cw int) string {
	box := "[ ]"
	style := theme.Unselected
	if s.DayDone(day) {
		box = "[x]"
		style = theme.Done
	}
	cursor := "  "
	if i == s.cursor {
		cursor = "▸ "
		style = theme.Selected
	}
	line := fmt.Sprintf("%s%s Day %d  %s", cursor, box, day, task)
	if target != "" {
		line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  (" + target + ")")
	}
	return style.Width(cw).Render(line)
}

func splitLines(blocks []string) []string {
	var out []string
	for _, b := range blocks {
		out = append(out, strings.Split(b, "\n")...)
	}
	return out
}

// glitchText swaps a few letters for look-alike glyphs.
func glitchText(s string) string {
	return strings.NewReplacer("A", "Λ", "E", "Ξ", "O", "Ø", "I", "|").Replace(s)
}
