package scoring

import (
	"time"

	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/tables"
)

// ArchetypeKey names one of the six fixed personas.
type ArchetypeKey string

const (
	ArchetypeChaosSurfer    ArchetypeKey = "THE_CHAOS_SURFER"
	ArchetypeDrifter        ArchetypeKey = "THE_DRIFTER"
	ArchetypeBurnedHero     ArchetypeKey = "THE_BURNED_HERO"
	ArchetypeGoldenPrisoner ArchetypeKey = "THE_GOLDEN_PRISONER"
	ArchetypeGuardian       ArchetypeKey = "THE_GUARDIAN"
	ArchetypeArchitect      ArchetypeKey = "THE_ARCHITECT"
)

// VerdictKey is the qualitative verdict of a profile.
type VerdictKey string

const (
	VerdictBrilliantSabotage VerdictKey = "BRILLIANT_SABOTAGE"
	VerdictInvisibleCeiling  VerdictKey = "INVISIBLE_CEILING"
	VerdictLeakyBucket       VerdictKey = "LEAKY_BUCKET"
	VerdictHealthyScale      VerdictKey = "HEALTHY_SCALE"
)

// MetricLevel grades system health.
type MetricLevel string

const (
	LevelOptimal   MetricLevel = "OPTIMAL"
	LevelStable    MetricLevel = "STABLE"
	LevelStrained  MetricLevel = "STRAINED"
	LevelDisrupted MetricLevel = "DISRUPTED"
)

// CoarseStatus is the three-step status shown on the dashboard.
type CoarseStatus string

const (
	StatusCritical CoarseStatus = "CRITICAL"
	StatusUnstable CoarseStatus = "UNSTABLE"
	StatusOptimal  CoarseStatus = "OPTIMAL"
)

// ArchetypeScore is one entry of the ranked archetype spectrum.
type ArchetypeScore struct {
	Key   ArchetypeKey `json:"key"`
	Score float64      `json:"score"`
}

// ProtocolStep is one day of the 7-day roadmap.
type ProtocolStep struct {
	Day          int          `json:"day"`
	Phase        tables.Phase `json:"phase"`
	TaskKey      string       `json:"taskKey"`
	TargetMetric string       `json:"targetMetricKey"`
}

// Correlation links a node to a notable latency/sensation signal.
type Correlation struct {
	NodeID         int                `json:"nodeId"`
	Domain         registry.DomainKey `json:"domain"`
	Type           string             `json:"type"`
	DescriptionKey string             `json:"descriptionKey"`
}

// Conflict is a system-level flag raised by the final state.
type Conflict struct {
	Key      string             `json:"key"`
	Severity string             `json:"severity"`
	Domain   registry.DomainKey `json:"domain"`
}

// SomaticProfile summarises the reported body sensations.
type SomaticProfile struct {
	Blocks            int               `json:"blocks"`
	Resources         int               `json:"resources"`
	DominantSensation profile.Sensation `json:"dominantSensation"`
}

// IntegrityBreakdown explains how the integrity figure was reached.
type IntegrityBreakdown struct {
	Coherence   int         `json:"coherence"`
	Sync        int         `json:"sync"`
	Stability   int         `json:"stability"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
	Status      MetricLevel `json:"status"`
}

// Point is a vertex of the state triangle used for rendering.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AnalysisResult is the terminal snapshot of a scored history. It is never
// mutated after creation.
type AnalysisResult struct {
	Timestamp time.Time     `json:"timestamp"`
	State     profile.State `json:"state"`

	UserBaseline    float64 `json:"userBaseline"`
	Integrity       int     `json:"integrity"`
	Capacity        int     `json:"capacity"`
	EntropyScore    int     `json:"entropyScore"`
	NeuroSync       int     `json:"neuroSync"`
	SystemHealth    int     `json:"systemHealth"`
	ConfidenceScore int     `json:"confidenceScore"`
	Clarity         float64 `json:"clarity"`

	Phase                 tables.Phase     `json:"phase"`
	ArchetypeKey          ArchetypeKey     `json:"archetypeKey"`
	SecondaryArchetypeKey ArchetypeKey     `json:"secondaryArchetypeKey"`
	ArchetypeMatch        int              `json:"archetypeMatch"`
	ArchetypeSpectrum     []ArchetypeScore `json:"archetypeSpectrum"`
	VerdictKey            VerdictKey       `json:"verdictKey"`
	LifeScript            string           `json:"lifeScript"`
	Roadmap               []ProtocolStep   `json:"roadmap"`
	GraphPoints           []Point          `json:"graphPoints"`
	Status                CoarseStatus     `json:"status"`

	Bugs               []registry.BeliefKey `json:"bugs"`
	Correlations       []Correlation        `json:"correlations"`
	Conflicts          []Conflict           `json:"conflicts"`
	SomaticProfile     SomaticProfile       `json:"somaticProfile"`
	IntegrityBreakdown IntegrityBreakdown   `json:"integrityBreakdown"`

	InterventionStrategy string `json:"interventionStrategy"`
	CoreConflict         string `json:"coreConflict"`
	ShadowDirective      string `json:"shadowDirective"`
	InterferenceInsight  string `json:"interferenceInsight,omitempty"`

	ShareCode string `json:"shareCode"`
}

// GlitchThreshold is the entropy score above which the UI renders in
// glitch mode.
const GlitchThreshold = 45

// Glitch reports whether the profile is unstable enough for glitch mode.
func (r AnalysisResult) Glitch() bool {
	return r.EntropyScore > GlitchThreshold
}

// HasBug reports whether b was flagged as a recurring belief.
func (r AnalysisResult) HasBug(b registry.BeliefKey) bool {
	for _, bug := range r.Bugs {
		if bug == b {
			return true
		}
	}
	return false
}
