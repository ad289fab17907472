// Package compat compares two completed profiles.
package compat

import (
	"math"
	"slices"

	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/scoring"
)

// Relationship labels.
const (
	RelationshipSynergy       = "Synergy"
	RelationshipComplementary = "Complementary"
	RelationshipNeutral       = "Neutral"
	RelationshipChallenging   = "Challenging"
)

const (
	baseScore       = 70
	synergyBonus    = 8
	conflictPenalty = 12
	neutralValue    = 50.0

	defaultRecommendation = "Maintain open communication about somatic triggers."
)

// Report is the outcome of comparing two profiles.
type Report struct {
	OverallScore     int                  `json:"overallScore"`
	DomainSynergies  []registry.DomainKey `json:"domainSynergies"`
	DomainConflicts  []registry.DomainKey `json:"domainConflicts"`
	Recommendations  []string             `json:"recommendations"`
	RelationshipType string               `json:"relationshipType"`
	PartnerArchetype scoring.ArchetypeKey `json:"partnerArchetype"`
}

// DomainValue maps a profile onto a single domain. Domains the state vector
// does not carry read as neutral.
func DomainValue(r scoring.AnalysisResult, d registry.DomainKey) float64 {
	switch d {
	case registry.DomainFoundation:
		return r.State.Foundation
	case registry.DomainAgency:
		return r.State.Agency
	case registry.DomainMoney:
		return r.State.Resource
	default:
		return neutralValue
	}
}

// Analyze scores the relationship between profile a and partner b.
func Analyze(a, b scoring.AnalysisResult) Report {
	rep := Report{
		DomainSynergies:  []registry.DomainKey{},
		DomainConflicts:  []registry.DomainKey{},
		PartnerArchetype: b.ArchetypeKey,
	}

	for _, d := range registry.AllDomainKeys() {
		va, vb := DomainValue(a, d), DomainValue(b, d)
		diff := math.Abs(va - vb)
		if diff < 15 && va > 60 {
			rep.DomainSynergies = append(rep.DomainSynergies, d)
		}
		if diff > 40 {
			rep.DomainConflicts = append(rep.DomainConflicts, d)
		}
	}

	score := baseScore + synergyBonus*len(rep.DomainSynergies) - conflictPenalty*len(rep.DomainConflicts)
	rep.OverallScore = max(0, min(100, score))

	if slices.Contains(rep.DomainConflicts, registry.DomainAgency) {
		rep.Recommendations = append(rep.Recommendations, "Define clear decision-making boundaries to avoid power struggles.")
	}
	if slices.Contains(rep.DomainSynergies, registry.DomainFoundation) {
		rep.Recommendations = append(rep.Recommendations, "Leverage your joint stability for high-risk long-term investments.")
	}
	if a.EntropyScore > 50 && b.EntropyScore > 50 {
		rep.Recommendations = append(rep.Recommendations, "Urgent: Both systems lack structural grounding. Implement shared routines.")
	}
	if len(rep.Recommendations) == 0 {
		rep.Recommendations = []string{defaultRecommendation}
	}

	switch {
	case rep.OverallScore > 85:
		rep.RelationshipType = RelationshipSynergy
	case rep.OverallScore > 65:
		rep.RelationshipType = RelationshipComplementary
	case rep.OverallScore < 40:
		rep.RelationshipType = RelationshipChallenging
	default:
		rep.RelationshipType = RelationshipNeutral
	}
	return rep
}
