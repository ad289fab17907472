// Package tables holds the fixed, hand-authored weight and threshold tables
// that drive scoring and sequencing. A Tables value is immutable once built
// and is passed explicitly to the engines that need it.
package tables

import (
	"maps"
	"slices"

	"github.com/abhisek/genesis/internal/registry"
)

// Weight is the signed contribution of a belief to each state dimension.
type Weight struct {
	F float64 `json:"f"`
	A float64 `json:"a"`
	R float64 `json:"r"`
	E float64 `json:"e"`
}

// Phase selects the task pool that feeds a roadmap.
type Phase string

const (
	PhaseSanitation    Phase = "SANITATION"
	PhaseStabilization Phase = "STABILIZATION"
	PhaseExpansion     Phase = "EXPANSION"
)

// Task is a roadmap task template.
type Task struct {
	Key          string `json:"taskKey"`
	TargetMetric string `json:"targetMetricKey"`
}

// Thresholds are the numeric cut-offs used by the engines.
type Thresholds struct {
	ValidLatencyMin   float64 // exclusive lower bound for scoring latencies
	ValidLatencyMax   float64 // exclusive upper bound for scoring latencies
	BaselineWindow    int     // valid latencies averaged into the scoring baseline
	DefaultBaselineMs float64

	SlowRatio       float64 // latency/baseline above which entropy is amplified
	FastRatio       float64 // latency/baseline below which entropy is damped
	SlowFactor      float64
	FastFactor      float64
	ResonanceStep   float64 // added to the multiplier per prior repeat
	DampenerSpread  float64 // how strongly distance from 50 resists change
	BugRepeats      int     // a belief seen more than this many times is a bug
	ResistanceRatio float64 // correlation: latency > baseline*ratio
	ResistanceNudge float64
	ResonanceRatio  float64 // correlation: s2 and latency < baseline*ratio
	MaxCorrelations int
	SyncPenalty     float64
	SyncAgencyMin   float64

	ConfidenceScale     float64
	LiveConfidenceScale float64
	CoherenceScale      float64

	LatencyMaskRatio      float64
	LatencyMaskSeverity   float64
	SomaticClashSeverity  float64
	ClarityPerNode        float64
	ContradictionPenalty  float64
	SessionCap            int
	ResultClarityPerEvent float64
}

// Config is the mutable input used to build a Tables value.
type Config struct {
	Weights       map[registry.BeliefKey]Weight
	DefaultWeight Weight
	Positive      []registry.BeliefKey
	Pools         map[Phase][]Task
	BugFixes      map[registry.BeliefKey]string
	BugFixMetric  string
	Thresholds    Thresholds
}

// Tables is the immutable lookup object.
type Tables struct {
	weights       map[registry.BeliefKey]Weight
	defaultWeight Weight
	positive      map[registry.BeliefKey]bool
	pools         map[Phase][]Task
	bugFixes      map[registry.BeliefKey]string
	bugFixMetric  string
	thresholds    Thresholds
}

// New copies cfg into an immutable Tables value.
func New(cfg Config) *Tables {
	t := &Tables{
		weights:       maps.Clone(cfg.Weights),
		defaultWeight: cfg.DefaultWeight,
		positive:      make(map[registry.BeliefKey]bool, len(cfg.Positive)),
		pools:         make(map[Phase][]Task, len(cfg.Pools)),
		bugFixes:      maps.Clone(cfg.BugFixes),
		bugFixMetric:  cfg.BugFixMetric,
		thresholds:    cfg.Thresholds,
	}
	for _, b := range cfg.Positive {
		t.positive[b] = true
	}
	for p, tasks := range cfg.Pools {
		t.pools[p] = slices.Clone(tasks)
	}
	return t
}

// Weight returns the weight vector for b, or the default weight for
// unmapped beliefs.
func (t *Tables) Weight(b registry.BeliefKey) Weight {
	if w, ok := t.weights[b]; ok {
		return w
	}
	return t.defaultWeight
}

// IsPositive reports whether b is a stated-positive belief.
func (t *Tables) IsPositive(b registry.BeliefKey) bool {
	return t.positive[b]
}

// Pool returns the round-robin task pool for a phase.
func (t *Tables) Pool(p Phase) []Task {
	return slices.Clone(t.pools[p])
}

// FixTask returns the remediation task mapped to a recurring belief.
func (t *Tables) FixTask(b registry.BeliefKey) (Task, bool) {
	key, ok := t.bugFixes[b]
	if !ok {
		return Task{}, false
	}
	return Task{Key: key, TargetMetric: t.bugFixMetric}, true
}

// Thresholds returns the numeric cut-offs.
func (t *Tables) Thresholds() Thresholds {
	return t.thresholds
}
