package registry

// BeliefKey tags the psychological stance a choice expresses.
type BeliefKey string

const (
	BeliefFamilyLoyalty     BeliefKey = "family_loyalty"
	BeliefScarcityMindset   BeliefKey = "scarcity_mindset"
	BeliefSelfPermission    BeliefKey = "self_permission"
	BeliefFearOfPunishment  BeliefKey = "fear_of_punishment"
	BeliefHardWorkOnly      BeliefKey = "hard_work_only"
	BeliefCapacityExpansion BeliefKey = "capacity_expansion"
	BeliefBoundaryCollapse  BeliefKey = "boundary_collapse"
	BeliefImposterSyndrome  BeliefKey = "imposter_syndrome"
	BeliefMoneyIsTool       BeliefKey = "money_is_tool"
	BeliefUnconsciousFear   BeliefKey = "unconscious_fear"
	BeliefFearOfConflict    BeliefKey = "fear_of_conflict"
	BeliefMoneyIsDanger     BeliefKey = "money_is_danger"
	BeliefImpulseSpend      BeliefKey = "impulse_spend"
	BeliefShameOfSuccess    BeliefKey = "shame_of_success"
	BeliefBetrayalTrauma    BeliefKey = "betrayal_trauma"
	BeliefShortTermBias     BeliefKey = "short_term_bias"
	BeliefPovertyIsVirtue   BeliefKey = "poverty_is_virtue"
	BeliefLatencyResistance BeliefKey = "latency_resistance"
	BeliefResourceToxicity  BeliefKey = "resource_toxicity"
	BeliefBodyMindConflict  BeliefKey = "body_mind_conflict"
	BeliefAmbivalenceLoop   BeliefKey = "ambivalence_loop"
	BeliefHeroMartyr        BeliefKey = "hero_martyr"
	BeliefAutopilotMode     BeliefKey = "autopilot_mode"
	BeliefGoldenCage        BeliefKey = "golden_cage"
)

// AllBeliefs returns every known belief key in declaration order.
func AllBeliefs() []BeliefKey {
	return []BeliefKey{
		BeliefFamilyLoyalty, BeliefScarcityMindset, BeliefSelfPermission,
		BeliefFearOfPunishment, BeliefHardWorkOnly, BeliefCapacityExpansion,
		BeliefBoundaryCollapse, BeliefImposterSyndrome, BeliefMoneyIsTool,
		BeliefUnconsciousFear, BeliefFearOfConflict, BeliefMoneyIsDanger,
		BeliefImpulseSpend, BeliefShameOfSuccess, BeliefBetrayalTrauma,
		BeliefShortTermBias, BeliefPovertyIsVirtue, BeliefLatencyResistance,
		BeliefResourceToxicity, BeliefBodyMindConflict,
		BeliefAmbivalenceLoop, BeliefHeroMartyr, BeliefAutopilotMode, BeliefGoldenCage,
	}
}

// IsKnown reports whether b is one of the enumerated belief keys.
func (b BeliefKey) IsKnown() bool {
	for _, k := range AllBeliefs() {
		if k == b {
			return true
		}
	}
	return false
}
