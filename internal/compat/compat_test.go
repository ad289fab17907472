package compat

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/scoring"
)

func result(f, a, r float64, entropy int, key scoring.ArchetypeKey) scoring.AnalysisResult {
	return scoring.AnalysisResult{
		State:        profile.State{Foundation: f, Agency: a, Resource: r, Entropy: float64(entropy)},
		EntropyScore: entropy,
		ArchetypeKey: key,
	}
}

func TestAnalyze_IdenticalProfiles(t *testing.T) {
	tests := []struct {
		name      string
		f, a, r   float64
		synergies []registry.DomainKey
		score     int
		label     string
	}{
		{"all high", 70, 80, 90, []registry.DomainKey{registry.DomainFoundation, registry.DomainAgency, registry.DomainMoney}, 94, RelationshipSynergy},
		{"one high", 40, 61, 30, []registry.DomainKey{registry.DomainAgency}, 78, RelationshipComplementary},
		{"none high", 60, 10, 0, []registry.DomainKey{}, 70, RelationshipComplementary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := result(tt.f, tt.a, tt.r, 10, scoring.ArchetypeArchitect)
			rep := Analyze(p, p)

			if diff := cmp.Diff(tt.synergies, rep.DomainSynergies); diff != "" {
				t.Errorf("synergies mismatch (-want +got):\n%s", diff)
			}
			if len(rep.DomainConflicts) != 0 {
				t.Errorf("conflicts = %v, want none", rep.DomainConflicts)
			}
			if rep.OverallScore != tt.score {
				t.Errorf("OverallScore = %d, want %d", rep.OverallScore, tt.score)
			}
			if rep.RelationshipType != tt.label {
				t.Errorf("RelationshipType = %s, want %s", rep.RelationshipType, tt.label)
			}
		})
	}
}

func TestAnalyze_Conflicts(t *testing.T) {
	a := result(90, 95, 95, 60, scoring.ArchetypeArchitect)
	b := result(10, 5, 20, 70, scoring.ArchetypeDrifter)

	rep := Analyze(a, b)

	want := []registry.DomainKey{registry.DomainFoundation, registry.DomainAgency, registry.DomainMoney}
	if diff := cmp.Diff(want, rep.DomainConflicts); diff != "" {
		t.Errorf("conflicts mismatch (-want +got):\n%s", diff)
	}
	if rep.OverallScore != 34 {
		t.Errorf("OverallScore = %d, want 34", rep.OverallScore)
	}
	if rep.RelationshipType != RelationshipChallenging {
		t.Errorf("RelationshipType = %s", rep.RelationshipType)
	}
	if rep.PartnerArchetype != scoring.ArchetypeDrifter {
		t.Errorf("PartnerArchetype = %s", rep.PartnerArchetype)
	}
	wantRecs := []string{
		"Define clear decision-making boundaries to avoid power struggles.",
		"Urgent: Both systems lack structural grounding. Implement shared routines.",
	}
	if diff := cmp.Diff(wantRecs, rep.Recommendations); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyze_OpposedProfilesAndDefaultRecommendation(t *testing.T) {
	a := result(100, 0, 100, 0, scoring.ArchetypeGuardian)
	b := result(0, 100, 0, 0, scoring.ArchetypeBurnedHero)
	rep := Analyze(a, b)

	if rep.OverallScore != 34 {
		t.Errorf("OverallScore = %d, want 34", rep.OverallScore)
	}

	neutral := Analyze(result(50, 50, 50, 0, ""), result(50, 50, 50, 0, ""))
	if diff := cmp.Diff([]string{defaultRecommendation}, neutral.Recommendations); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
	if neutral.RelationshipType != RelationshipComplementary {
		t.Errorf("RelationshipType = %s", neutral.RelationshipType)
	}
}

func TestDomainValue_NeutralForUnmappedDomains(t *testing.T) {
	r := result(10, 20, 30, 0, "")
	for d, want := range map[registry.DomainKey]float64{
		registry.DomainFoundation: 10,
		registry.DomainAgency:     20,
		registry.DomainMoney:      30,
		registry.DomainSocial:     50,
		registry.DomainLegacy:     50,
	} {
		if got := DomainValue(r, d); got != want {
			t.Errorf("DomainValue(%s) = %v, want %v", d, got, want)
		}
	}
}
