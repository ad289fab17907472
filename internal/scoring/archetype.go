package scoring

import (
	"sort"

	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/registry"
)

// rankArchetypes scores the six archetypes and sorts them descending. Ties
// keep declaration order.
func rankArchetypes(s profile.State) []ArchetypeScore {
	f, a, r, e := s.Foundation, s.Agency, s.Resource, s.Entropy
	spectrum := []ArchetypeScore{
		{Key: ArchetypeChaosSurfer, Score: e},
		{Key: ArchetypeDrifter, Score: 100 - a},
		{Key: ArchetypeBurnedHero, Score: (a + (100 - r)) / 2},
		{Key: ArchetypeGoldenPrisoner, Score: (r + (100 - a)) / 2},
		{Key: ArchetypeGuardian, Score: (f + (100 - a)) / 2},
		{Key: ArchetypeArchitect, Score: (a + f + r) / 3},
	}
	sort.SliceStable(spectrum, func(i, j int) bool {
		return spectrum[i].Score > spectrum[j].Score
	})
	return spectrum
}

func verdictFor(s profile.State) VerdictKey {
	f, a, r, e := s.Foundation, s.Agency, s.Resource, s.Entropy
	switch {
	case a > 75 && f < 35:
		return VerdictBrilliantSabotage
	case f > 75 && a < 40:
		return VerdictInvisibleCeiling
	case r > 70 && e > 55:
		return VerdictLeakyBucket
	default:
		return VerdictHealthyScale
	}
}

// Life script categories.
const (
	ScriptHighAgencyLowFoundation = "high_agency_low_foundation"
	ScriptHighResourceHighEntropy = "high_resource_high_entropy"
	ScriptLowAgencyHighFoundation = "low_agency_high_foundation"
	ScriptSomaticDissonance       = "somatic_dissonance"
	ScriptHealthyIntegration      = "healthy_integration"
)

// lifeScriptFor picks the narrative category. First matching rule wins.
func lifeScriptFor(s profile.State, neuroSync int) string {
	f, a, r, e := s.Foundation, s.Agency, s.Resource, s.Entropy
	switch {
	case a > 75 && f < 35:
		return ScriptHighAgencyLowFoundation
	case r > 70 && e > 50:
		return ScriptHighResourceHighEntropy
	case a < 40 && f > 70:
		return ScriptLowAgencyHighFoundation
	case neuroSync < 45:
		return ScriptSomaticDissonance
	default:
		return ScriptHealthyIntegration
	}
}

// conflictsFor evaluates each system conflict independently.
func conflictsFor(s profile.State) []Conflict {
	f, a, r, e := s.Foundation, s.Agency, s.Resource, s.Entropy
	out := []Conflict{}
	if a > 75 && f < 35 {
		out = append(out, Conflict{Key: "icarus", Severity: "high", Domain: registry.DomainAgency})
	}
	if r > 70 && e > 55 {
		out = append(out, Conflict{Key: "leaky_bucket", Severity: "medium", Domain: registry.DomainMoney})
	}
	if f > 75 && a < 40 {
		out = append(out, Conflict{Key: "invisible_cage", Severity: "medium", Domain: registry.DomainFoundation})
	}
	return out
}

func interventionFor(s profile.State) string {
	switch {
	case s.Foundation < 40:
		return "stabilize_foundation"
	case s.Entropy > 50:
		return "lower_entropy"
	default:
		return "activate_will"
	}
}

func coreConflictFor(s profile.State) string {
	switch {
	case s.Agency > 75 && s.Foundation < 40:
		return "icarus"
	case s.Resource > 70 && s.Entropy > 55:
		return "leaky_bucket"
	default:
		return "invisible_cage"
	}
}

// graphPoints places the foundation, resource and agency vertices of the
// state triangle on a 100x100 canvas.
func graphPoints(s profile.State) []Point {
	f, a, r := s.Foundation, s.Agency, s.Resource
	return []Point{
		{X: 50, Y: 50 - f/2.5},
		{X: 50 + r/2.2, Y: 50 + r/3.5},
		{X: 50 - a/2.2, Y: 50 + a/3.5},
	}
}
