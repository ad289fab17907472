package registry

// NodeConfig is the authored content of one node: how intense it is and
// which belief each of its choices expresses, in display order.
type NodeConfig struct {
	Intensity int
	Beliefs   []BeliefKey
}

// defaultNodeConfig is used for any node key missing from the catalog.
var defaultNodeConfig = NodeConfig{
	Intensity: 3,
	Beliefs:   []BeliefKey{BeliefSelfPermission, BeliefCapacityExpansion, BeliefScarcityMindset},
}

// DefaultNodeConfigs returns the built-in catalog keyed by relative node key
// ("<domain>_<index>").
func DefaultNodeConfigs() map[string]NodeConfig {
	return map[string]NodeConfig{
	// foundation
	"foundation_0": {Intensity: 3, Beliefs: []BeliefKey{BeliefFamilyLoyalty, BeliefScarcityMindset, BeliefSelfPermission}},
	"foundation_1": {Intensity: 4, Beliefs: []BeliefKey{BeliefFearOfPunishment, BeliefHardWorkOnly, BeliefCapacityExpansion}},
	"foundation_2": {Intensity: 5, Beliefs: []BeliefKey{BeliefScarcityMindset, BeliefBoundaryCollapse, BeliefCapacityExpansion}},
	"foundation_3": {Intensity: 3, Beliefs: []BeliefKey{BeliefShameOfSuccess, BeliefFamilyLoyalty, BeliefMoneyIsTool}},
	"foundation_4": {Intensity: 5, Beliefs: []BeliefKey{BeliefImposterSyndrome, BeliefFearOfPunishment, BeliefShortTermBias}},
	"foundation_5": {Intensity: 4, Beliefs: []BeliefKey{BeliefLatencyResistance, BeliefUnconsciousFear, BeliefCapacityExpansion}},
	"foundation_6": {Intensity: 3, Beliefs: []BeliefKey{BeliefBoundaryCollapse, BeliefFearOfConflict, BeliefMoneyIsTool}},
	"foundation_7": {Intensity: 2, Beliefs: []BeliefKey{BeliefUnconsciousFear, BeliefScarcityMindset, BeliefSelfPermission}},
	"foundation_8": {Intensity: 4, Beliefs: []BeliefKey{BeliefBodyMindConflict, BeliefHardWorkOnly, BeliefCapacityExpansion}},
	"foundation_9": {Intensity: 3, Beliefs: []BeliefKey{BeliefPovertyIsVirtue, BeliefImposterSyndrome, BeliefSelfPermission}},
	"foundation_10": {Intensity: 5, Beliefs: []BeliefKey{BeliefHardWorkOnly, BeliefScarcityMindset, BeliefCapacityExpansion}},
	"foundation_11": {Intensity: 4, Beliefs: []BeliefKey{BeliefFamilyLoyalty, BeliefMoneyIsTool, BeliefBoundaryCollapse}},
	"foundation_12": {Intensity: 4, Beliefs: []BeliefKey{BeliefScarcityMindset, BeliefImposterSyndrome, BeliefMoneyIsTool}},
	"foundation_13": {Intensity: 5, Beliefs: []BeliefKey{BeliefHardWorkOnly, BeliefFearOfPunishment, BeliefBodyMindConflict}},
	"foundation_14": {Intensity: 3, Beliefs: []BeliefKey{BeliefImposterSyndrome, BeliefImpulseSpend, BeliefCapacityExpansion}},

	// agency
	"agency_0": {Intensity: 4, Beliefs: []BeliefKey{BeliefFearOfConflict, BeliefUnconsciousFear, BeliefSelfPermission}},
	"agency_1": {Intensity: 5, Beliefs: []BeliefKey{BeliefImposterSyndrome, BeliefFearOfPunishment, BeliefCapacityExpansion}},
	"agency_2": {Intensity: 4, Beliefs: []BeliefKey{BeliefBoundaryCollapse, BeliefFearOfConflict, BeliefSelfPermission}},
	"agency_3": {Intensity: 4, Beliefs: []BeliefKey{BeliefBetrayalTrauma, BeliefUnconsciousFear, BeliefCapacityExpansion}},
	"agency_4": {Intensity: 5, Beliefs: []BeliefKey{BeliefScarcityMindset, BeliefHardWorkOnly, BeliefSelfPermission}},
	"agency_5": {Intensity: 3, Beliefs: []BeliefKey{BeliefShameOfSuccess, BeliefImposterSyndrome, BeliefCapacityExpansion}},
	"agency_6": {Intensity: 4, Beliefs: []BeliefKey{BeliefHardWorkOnly, BeliefScarcityMindset, BeliefMoneyIsTool}},
	"agency_7": {Intensity: 4, Beliefs: []BeliefKey{BeliefScarcityMindset, BeliefBetrayalTrauma, BeliefMoneyIsTool}},
	"agency_8": {Intensity: 5, Beliefs: []BeliefKey{BeliefFearOfConflict, BeliefBoundaryCollapse, BeliefCapacityExpansion}},
	"agency_9": {Intensity: 4, Beliefs: []BeliefKey{BeliefFearOfConflict, BeliefImposterSyndrome, BeliefSelfPermission}},

	// money
	"money_0": {Intensity: 5, Beliefs: []BeliefKey{BeliefMoneyIsDanger, BeliefImpulseSpend, BeliefCapacityExpansion}},
	"money_1": {Intensity: 4, Beliefs: []BeliefKey{BeliefImposterSyndrome, BeliefPovertyIsVirtue, BeliefMoneyIsTool}},
	"money_2": {Intensity: 3, Beliefs: []BeliefKey{BeliefShameOfSuccess, BeliefScarcityMindset, BeliefSelfPermission}},
	"money_3": {Intensity: 5, Beliefs: []BeliefKey{BeliefImpulseSpend, BeliefShortTermBias, BeliefMoneyIsTool}},
	"money_4": {Intensity: 3, Beliefs: []BeliefKey{BeliefBoundaryCollapse, BeliefFearOfConflict, BeliefCapacityExpansion}},
	"money_5": {Intensity: 4, Beliefs: []BeliefKey{BeliefImposterSyndrome, BeliefScarcityMindset, BeliefMoneyIsTool}},
	"money_6": {Intensity: 5, Beliefs: []BeliefKey{BeliefMoneyIsDanger, BeliefImpulseSpend, BeliefCapacityExpansion}},
	"money_7": {Intensity: 3, Beliefs: []BeliefKey{BeliefResourceToxicity, BeliefImpulseSpend, BeliefMoneyIsTool}},
	"money_8": {Intensity: 4, Beliefs: []BeliefKey{BeliefScarcityMindset, BeliefHardWorkOnly, BeliefCapacityExpansion}},
	"money_9": {Intensity: 3, Beliefs: []BeliefKey{BeliefShameOfSuccess, BeliefPovertyIsVirtue, BeliefSelfPermission}},

	// social
	"social_0": {Intensity: 4, Beliefs: []BeliefKey{BeliefShameOfSuccess, BeliefBodyMindConflict, BeliefSelfPermission}},
	"social_1": {Intensity: 5, Beliefs: []BeliefKey{BeliefBoundaryCollapse, BeliefBetrayalTrauma, BeliefCapacityExpansion}},
	"social_2": {Intensity: 3, Beliefs: []BeliefKey{BeliefImposterSyndrome, BeliefFearOfConflict, BeliefSelfPermission}},
	"social_3": {Intensity: 4, Beliefs: []BeliefKey{BeliefFearOfPunishment, BeliefBetrayalTrauma, BeliefCapacityExpansion}},
	"social_4": {Intensity: 4, Beliefs: []BeliefKey{BeliefPovertyIsVirtue, BeliefBoundaryCollapse, BeliefMoneyIsTool}},
	"social_5": {Intensity: 5, Beliefs: []BeliefKey{BeliefScarcityMindset, BeliefBetrayalTrauma, BeliefCapacityExpansion}},
	"social_6": {Intensity: 3, Beliefs: []BeliefKey{BeliefScarcityMindset, BeliefLatencyResistance, BeliefMoneyIsTool}},
	"social_7": {Intensity: 3, Beliefs: []BeliefKey{BeliefImposterSyndrome, BeliefShameOfSuccess, BeliefSelfPermission}},
	"social_8": {Intensity: 4, Beliefs: []BeliefKey{BeliefFearOfConflict, BeliefBetrayalTrauma, BeliefSelfPermission}},
	"social_9": {Intensity: 4, Beliefs: []BeliefKey{BeliefScarcityMindset, BeliefPovertyIsVirtue, BeliefCapacityExpansion}},

	// legacy
	"legacy_0": {Intensity: 5, Beliefs: []BeliefKey{BeliefShortTermBias, BeliefScarcityMindset, BeliefCapacityExpansion}},
	"legacy_1": {Intensity: 5, Beliefs: []BeliefKey{BeliefMoneyIsDanger, BeliefFamilyLoyalty, BeliefSelfPermission}},
	"legacy_2": {Intensity: 4, Beliefs: []BeliefKey{BeliefScarcityMindset, BeliefFamilyLoyalty, BeliefMoneyIsTool}},
	"legacy_3": {Intensity: 4, Beliefs: []BeliefKey{BeliefLatencyResistance, BeliefFearOfPunishment, BeliefCapacityExpansion}},
	"legacy_4": {Intensity: 5, Beliefs: []BeliefKey{BeliefPovertyIsVirtue, BeliefFearOfConflict, BeliefSelfPermission}},
	}
}
