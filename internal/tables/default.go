package tables

import "github.com/abhisek/genesis/internal/registry"

// DefaultConfig returns a fresh copy of the built-in tables. Callers may
// modify it before passing it to New.
func DefaultConfig() Config {
	return Config{
		Weights: map[registry.BeliefKey]Weight{
			registry.BeliefScarcityMindset:   {F: -4, A: -2, R: -3, E: 4},
			registry.BeliefFearOfPunishment:  {F: -3, A: -3, R: -2, E: 4},
			registry.BeliefMoneyIsTool:       {F: 2, A: 4, R: 5, E: -2},
			registry.BeliefSelfPermission:    {F: 0, A: 3, R: 6, E: -3},
			registry.BeliefImposterSyndrome:  {F: -2, A: -6, R: -2, E: 5},
			registry.BeliefFamilyLoyalty:     {F: -6, A: -2, R: -2, E: 3},
			registry.BeliefShameOfSuccess:    {F: -3, A: -4, R: 3, E: 6},
			registry.BeliefBetrayalTrauma:    {F: -2, A: -3, R: 2, E: 8},
			registry.BeliefCapacityExpansion: {F: 3, A: 4, R: 4, E: -3},
			registry.BeliefHardWorkOnly:      {F: 3, A: 2, R: 1, E: 3},
			registry.BeliefBoundaryCollapse:  {F: -4, A: -5, R: -2, E: 6},
			registry.BeliefMoneyIsDanger:     {F: -3, A: -2, R: -6, E: 7},
			registry.BeliefUnconsciousFear:   {F: -3, A: -3, R: -2, E: 4},
			registry.BeliefShortTermBias:     {F: -2, A: 2, R: 3, E: 5},
			registry.BeliefImpulseSpend:      {F: -2, A: 2, R: -4, E: 4},
			registry.BeliefFearOfConflict:    {F: -2, A: -4, R: 0, E: 3},
			registry.BeliefPovertyIsVirtue:   {F: -3, A: -3, R: -3, E: 3},
			registry.BeliefLatencyResistance: {F: 0, A: 0, R: 0, E: 2},
			registry.BeliefResourceToxicity:  {F: -2, A: 0, R: -2, E: 4},
			registry.BeliefBodyMindConflict:  {F: 0, A: -1, R: 0, E: 4},
			registry.BeliefAmbivalenceLoop:   {F: -2, A: -5, R: 0, E: 10},
			registry.BeliefHeroMartyr:        {F: 0, A: 0, R: 0, E: 5},
			registry.BeliefAutopilotMode:     {F: 0, A: -5, R: 0, E: 5},
			registry.BeliefGoldenCage:        {F: 0, A: -5, R: 0, E: 5},
		},
		DefaultWeight: Weight{E: 1},
		Positive: []registry.BeliefKey{
			registry.BeliefMoneyIsTool,
			registry.BeliefSelfPermission,
			registry.BeliefCapacityExpansion,
		},
		Pools: map[Phase][]Task{
			PhaseSanitation: {
				{Key: "sanitation_1", TargetMetric: "Focus +10%"},
				{Key: "sanitation_2", TargetMetric: "Sync +15%"},
				{Key: "sanitation_3", TargetMetric: "Space +15%"},
			},
			PhaseStabilization: {
				{Key: "stabilization_1", TargetMetric: "Foundation +12%"},
				{Key: "stabilization_2", TargetMetric: "Foundation +8%"},
				{Key: "stabilization_3", TargetMetric: "Foundation +15%"},
			},
			PhaseExpansion: {
				{Key: "expansion_1", TargetMetric: "Agency +20%"},
				{Key: "expansion_2", TargetMetric: "Agency +15%"},
				{Key: "expansion_3", TargetMetric: "Agency +25%"},
			},
		},
		BugFixes: map[registry.BeliefKey]string{
			registry.BeliefFamilyLoyalty:    "bug_fix_family",
			registry.BeliefShameOfSuccess:   "bug_fix_family",
			registry.BeliefImposterSyndrome: "bug_fix_imposter",
			registry.BeliefFearOfPunishment: "bug_fix_fear",
			registry.BeliefUnconsciousFear:  "bug_fix_fear",
			registry.BeliefBoundaryCollapse: "bug_fix_boundary",
			registry.BeliefFearOfConflict:   "bug_fix_boundary",
		},
		BugFixMetric: "Recovery",
		Thresholds: Thresholds{
			ValidLatencyMin:   400,
			ValidLatencyMax:   15000,
			BaselineWindow:    3,
			DefaultBaselineMs: 2000,

			SlowRatio:       2.2,
			FastRatio:       0.5,
			SlowFactor:      1.6,
			FastFactor:      0.6,
			ResonanceStep:   0.2,
			DampenerSpread:  0.4,
			BugRepeats:      2,
			ResistanceRatio: 2.5,
			ResistanceNudge: 7,
			ResonanceRatio:  1.2,
			MaxCorrelations: 5,
			SyncPenalty:     6,
			SyncAgencyMin:   2,

			ConfidenceScale:     120,
			LiveConfidenceScale: 140,
			CoherenceScale:      80,

			LatencyMaskRatio:      2.8,
			LatencyMaskSeverity:   0.85,
			SomaticClashSeverity:  0.95,
			ClarityPerNode:        3.0,
			ContradictionPenalty:  2.0,
			SessionCap:            60,
			ResultClarityPerEvent: 2.5,
		},
	}
}

var defaultTables = New(DefaultConfig())

// Default returns the built-in tables.
func Default() *Tables {
	return defaultTables
}
