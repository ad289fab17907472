package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/genesis/internal/compat"
	"github.com/abhisek/genesis/internal/scoring"
)

const historyA = `[
  {"beliefKey": "family_loyalty", "sensation": "s0", "latency": 1500, "nodeId": 0, "domain": "foundation"},
  {"beliefKey": "scarcity_mindset", "sensation": "s1", "latency": 1800, "nodeId": 1, "domain": "foundation"},
  {"beliefKey": "self_permission", "sensation": "s2", "latency": 2100, "nodeId": 2, "domain": "foundation"}
]`

const historyB = `[
  {"beliefKey": "money_is_tool", "sensation": "s2", "latency": 1500, "nodeId": 0, "domain": "foundation"},
  {"beliefKey": "capacity_expansion", "sensation": "s0", "latency": 1700, "nodeId": 1, "domain": "foundation"}
]`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := Execute(context.Background())
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.json", historyA)

	out, err := run(t, "score", path, "--json")
	require.NoError(t, err)

	var got scoring.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got.ArchetypeKey)
	assert.Len(t, got.Roadmap, scoring.RoadmapDays)
	assert.NotEmpty(t, got.ShareCode)
}

func TestScoreCommand_InvalidHistory(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `[{"beliefKey": "family_loyalty"}]`)

	_, err := run(t, "score", path)
	require.Error(t, err)

	_, err = run(t, "score", filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestCompatCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", historyA)
	b := writeFile(t, dir, "b.json", historyB)

	out, err := run(t, "compat", a, b, "--json")
	require.NoError(t, err)

	var rep compat.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.NotEmpty(t, rep.RelationshipType)
	assert.NotEmpty(t, rep.PartnerArchetype)
	assert.GreaterOrEqual(t, rep.OverallScore, 0)
	assert.LessOrEqual(t, rep.OverallScore, 100)
}

func TestHistoryAndReset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "data", "genesis.db")

	out, err := run(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No scans yet")

	out, err = run(t, "reset", "--yes", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Progress cleared.")

	_, err = os.Stat(db)
	assert.NoError(t, err, "store should create the database file")
}

func TestInvalidConfigFlag(t *testing.T) {
	_, err := run(t, "history", "--db", filepath.Join(t.TempDir(), "g.db"), "--log-format", "xml")
	require.Error(t, err)
	rootCmd.PersistentFlags().Set("log-format", "text")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "genesis (devel)\n", out)
}
