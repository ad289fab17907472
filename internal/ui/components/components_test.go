package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/genesis/internal/ui/theme"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestChoiceList_NumberKeySubmits(t *testing.T) {
	c := NewChoiceList("Pick", []string{"a", "b", "c"})
	c, _ = c.Update(key('2'))

	if !c.Submitted || c.ChosenIndex != 1 || c.Selected != 1 {
		t.Errorf("got %+v, want option 2 submitted", c)
	}

	// Further keys are ignored once submitted.
	c, _ = c.Update(key('3'))
	if c.ChosenIndex != 1 {
		t.Errorf("ChosenIndex = %d after submit, want 1", c.ChosenIndex)
	}
}

func TestChoiceList_OutOfRangeNumber(t *testing.T) {
	c := NewChoiceList("", []string{"a", "b"})
	for _, r := range []rune{'0', '3', '9'} {
		c, _ = c.Update(key(r))
	}
	if c.Submitted || c.ChosenIndex != -1 {
		t.Errorf("got %+v, want nothing submitted", c)
	}
}

func TestChoiceList_ArrowsAndEnter(t *testing.T) {
	c := NewChoiceList("", []string{"a", "b", "c"})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if c.Selected != 0 {
		t.Errorf("Selected = %d, want 0", c.Selected)
	}
	for range 5 {
		c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if c.Selected != 2 {
		t.Errorf("Selected = %d, want 2", c.Selected)
	}
	c, _ = c.Update(key('k'))
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !c.Submitted || c.ChosenIndex != 1 {
		t.Errorf("got %+v, want option 2 submitted", c)
	}
}

func TestChoiceList_EmptyEnter(t *testing.T) {
	c := NewChoiceList("", nil)
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if c.Submitted {
		t.Error("empty list should not submit")
	}
}

func TestChoiceList_View(t *testing.T) {
	c := NewChoiceList("Question?", []string{"first", "second"})
	v := c.View()
	for _, want := range []string{"Question?", "1)  first", "2)  second", "▸"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q:\n%s", want, v)
		}
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	called := ""
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B", Action: func() tea.Cmd { called = "B"; return nil }},
		{Label: "C", Disabled: true},
		{Label: "D", Action: func() tea.Cmd { called = "D"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("Selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if called != "D" {
		t.Errorf("called = %q, want D", called)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
}

func TestMetricBar(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		inverted bool
		wantGood bool
	}{
		{"healthy", 70, false, true},
		{"low", 20, false, false},
		{"inverted low", 30, true, true},
		{"inverted high", 80, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MetricBar("Metric", tt.value, tt.inverted, 40)
			good := p.Fill == theme.Secondary
			if good != tt.wantGood {
				t.Errorf("fill = %v, want good=%v", p.Fill, tt.wantGood)
			}
			if !strings.Contains(p.View(), "Metric") {
				t.Error("label missing")
			}
		})
	}
}

func TestContentWidth(t *testing.T) {
	tests := map[int]int{200: 64, 70: 64, 50: 44, 10: 20}
	for frame, want := range tests {
		if got := ContentWidth(frame); got != want {
			t.Errorf("ContentWidth(%d) = %d, want %d", frame, got, want)
		}
	}
}

func TestTextInput_TrimsValue(t *testing.T) {
	in := NewTextInput("path", 0)
	in.SetValue("  profile.json ")
	if got := in.Value(); got != "profile.json" {
		t.Errorf("Value = %q", got)
	}
}

func TestMenu_NumberKeyActivates(t *testing.T) {
	called := 0
	m := NewMenu([]MenuItem{
		{Label: "A", Action: func() tea.Cmd { called = 1; return nil }},
		{Label: "B", Disabled: true, Action: func() tea.Cmd { called = 2; return nil }},
		{Label: "C", Action: func() tea.Cmd { called = 3; return nil }},
	})

	m, _ = m.Update(key('2'))
	if called != 0 || m.Selected != 0 {
		t.Errorf("disabled item ran: called=%d selected=%d", called, m.Selected)
	}
	m, _ = m.Update(key('3'))
	if called != 3 || m.Selected != 2 {
		t.Errorf("called=%d selected=%d, want 3, 2", called, m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyHome})
	if m.Selected != 0 {
		t.Errorf("home: Selected = %d, want 0", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnd})
	if m.Selected != 2 {
		t.Errorf("end: Selected = %d, want 2", m.Selected)
	}
}
