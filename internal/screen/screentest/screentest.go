// Package screentest builds screen environments over in-memory storage for
// screen tests.
package screentest

import (
	"context"
	"slices"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/genesis/internal/adaptive"
	"github.com/abhisek/genesis/internal/i18n"
	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/screen"
	"github.com/abhisek/genesis/internal/scoring"
	"github.com/abhisek/genesis/internal/session"
	"github.com/abhisek/genesis/internal/store"
	"github.com/abhisek/genesis/internal/tables"
)

// Now is the fixed clock every test environment runs on.
var Now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// MemStore implements session.Persistence and screen.ProgressStore in
// memory.
type MemStore struct {
	Hist      profile.History
	Completed []int
	Scans     store.ScanHistory
	Days      []int
	Err       error
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{Scans: store.EmptyScanHistory()}
}

func (m *MemStore) History(context.Context) profile.History { return m.Hist }

func (m *MemStore) SaveHistory(_ context.Context, h profile.History) error {
	m.Hist = h
	return nil
}

func (m *MemStore) CompletedNodes(context.Context) []int { return m.Completed }

func (m *MemStore) SaveCompletedNodes(_ context.Context, ids []int) error {
	m.Completed = ids
	return nil
}

func (m *MemStore) HardwareOffset(context.Context) (float64, bool) { return 0, false }

func (m *MemStore) SaveHardwareOffset(context.Context, float64) error { return nil }

func (m *MemStore) SaveScan(_ context.Context, res scoring.AnalysisResult) (store.ScanRecord, error) {
	rec := store.ScanRecord{ID: "scan", SavedAt: Now, Result: res}
	m.Scans.Append(rec)
	return rec, nil
}

func (m *MemStore) Clear(context.Context) error {
	m.Hist, m.Completed, m.Days = nil, nil, nil
	m.Scans = store.EmptyScanHistory()
	return nil
}

func (m *MemStore) ScanHistory(context.Context) (store.ScanHistory, error) {
	return m.Scans, m.Err
}

func (m *MemStore) RoadmapDays(context.Context) []int { return m.Days }

func (m *MemStore) ToggleRoadmapDay(_ context.Context, day int) ([]int, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if i := slices.Index(m.Days, day); i >= 0 {
		m.Days = slices.Delete(m.Days, i, i+1)
	} else {
		m.Days = append(m.Days, day)
		slices.Sort(m.Days)
	}
	return m.Days, nil
}

// NewEnv opens a controller on st with the default catalog and tables.
func NewEnv(t *testing.T, st *MemStore, demo bool) *screen.Env {
	t.Helper()
	reg := registry.Default()
	tbl := tables.Default()
	clock := func() time.Time { return Now }
	engine := scoring.New(tbl, clock, nil)
	ctl := session.New(reg,
		adaptive.NewSequencer(reg, tbl, nil),
		engine,
		st,
		session.Options{Demo: demo, Clock: clock},
	)
	ctl.Open(context.Background())
	return &screen.Env{Session: ctl, Engine: engine, Catalog: i18n.MustLoad("en"), Store: st}
}

// Answered returns a history answering node ids 0..n-1 with their first
// choice and no sensation.
func Answered(n int, latency float64) profile.History {
	reg := registry.Default()
	h := make(profile.History, 0, n)
	for id := range n {
		node, _ := reg.Node(id)
		h = append(h, profile.AnswerEvent{
			NodeID:    id,
			Domain:    node.Domain,
			Belief:    node.Choices[0].Belief,
			Sensation: profile.SensationNeutral,
			Latency:   latency,
		})
	}
	return h
}

// KeyPress builds a printable key press.
func KeyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// SpecialKey builds a non-printable key press such as tea.KeyEnter.
func SpecialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// Collect runs cmd and flattens batches. Only use it with commands that do
// not wait on long timers.
func Collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
