package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:"+uuid.NewString()+"?mode=memory&cache=shared", nil)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"kv", "scans"} {
		var name string
		err := s.DB().QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestOpenWritesVersion(t *testing.T) {
	s := openTestStore(t)
	var v int
	require.NoError(t, s.Load(context.Background(), KeyVersion, &v))
	assert.Equal(t, FormatVersion, v)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, KeyCompletedNodes, []int{0, 1, 2}))
	require.NoError(t, s.Save(ctx, KeyCompletedNodes, []int{0, 1, 2, 3}))

	var got []int
	require.NoError(t, s.Load(ctx, KeyCompletedNodes, &got))
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestLoadMissingKey(t *testing.T) {
	s := openTestStore(t)
	var got []int
	err := s.Load(context.Background(), KeyHistory, &got)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadOrFallsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	assert.Equal(t, []int{7}, LoadOr(ctx, s, KeyCompletedNodes, []int{7}))

	// A value of the wrong shape decodes with an error and falls back.
	require.NoError(t, s.Save(ctx, KeyCompletedNodes, "not a list"))
	assert.Equal(t, []int{7}, LoadOr(ctx, s, KeyCompletedNodes, []int{7}))
}

func TestHistoryPersistence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	assert.Empty(t, s.History(ctx))

	h := profile.History{
		{Belief: registry.BeliefFamilyLoyalty, Sensation: profile.SensationTension, Latency: 1234.5, NodeID: 0, Domain: registry.DomainFoundation},
		{Belief: registry.BeliefMoneyIsTool, Sensation: profile.SensationNeutral, Latency: 2000, NodeID: 25, Domain: registry.DomainMoney},
	}
	require.NoError(t, s.SaveHistory(ctx, h))
	assert.Equal(t, h, s.History(ctx))
}

func TestClearKeepsLanguage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveLanguage(ctx, "en"))
	require.NoError(t, s.SaveCompletedNodes(ctx, []int{0, 1}))
	require.NoError(t, s.SaveHardwareOffset(ctx, 16))
	_, err := s.SaveScan(ctx, scoring.AnalysisResult{ArchetypeKey: scoring.ArchetypeArchitect})
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx))

	assert.Equal(t, "en", s.Language(ctx, "xx"))
	assert.Empty(t, s.CompletedNodes(ctx))
	_, ok := s.HardwareOffset(ctx)
	assert.False(t, ok)

	hist, err := s.ScanHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, hist.Scans)
	assert.Nil(t, hist.Latest)
}

func TestToggleRoadmapDay(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	days, err := s.ToggleRoadmapDay(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, days)

	days, err = s.ToggleRoadmapDay(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, days)

	days, err = s.ToggleRoadmapDay(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, days)
	assert.Equal(t, []int{1}, s.RoadmapDays(ctx))
}

func TestScanHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	empty, err := s.ScanHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.Scans)
	assert.NotNil(t, empty.EvolutionMetrics.Dates)

	day := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	first := scoring.AnalysisResult{Timestamp: day, ArchetypeKey: scoring.ArchetypeDrifter, Integrity: 40, EntropyScore: 30}
	second := scoring.AnalysisResult{Timestamp: day.Add(24 * time.Hour), ArchetypeKey: scoring.ArchetypeArchitect, Integrity: 55, EntropyScore: 22}

	rec1, err := s.SaveScan(ctx, first)
	require.NoError(t, err)
	rec2, err := s.SaveScan(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, rec1.ID, rec2.ID)

	hist, err := s.ScanHistory(ctx)
	require.NoError(t, err)
	require.Len(t, hist.Scans, 2)
	assert.Equal(t, rec1.ID, hist.Scans[0].ID)
	require.NotNil(t, hist.Latest)
	assert.Equal(t, rec2.ID, hist.Latest.ID)
	assert.Equal(t, []int{30, 22}, hist.EvolutionMetrics.EntropyTrend)
	assert.Equal(t, []int{40, 55}, hist.EvolutionMetrics.IntegrityTrend)
	assert.Equal(t, []string{"2026-03-14", "2026-03-15"}, hist.EvolutionMetrics.Dates)

	latest, err := s.LatestScans(ctx, 1)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, scoring.ArchetypeArchitect, latest[0].Result.ArchetypeKey)
}

func TestScanHistorySkipsCorruptRows(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.SaveScan(ctx, scoring.AnalysisResult{ArchetypeKey: scoring.ArchetypeGuardian})
	require.NoError(t, err)
	_, err = s.DB().Exec("INSERT INTO scans (id, created_at, archetype, integrity, entropy_score, share_code, data) VALUES ('bad', 1, 'x', 0, 0, '', '{not json')")
	require.NoError(t, err)

	hist, err := s.ScanHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, hist.Scans, 1)
}
