package tables

import (
	"testing"

	"github.com/abhisek/genesis/internal/registry"
)

func TestDefault_CoversEveryBelief(t *testing.T) {
	tb := Default()
	for _, b := range registry.AllBeliefs() {
		if tb.Weight(b) == tb.defaultWeight {
			t.Errorf("belief %q falls back to default weight", b)
		}
	}
}

func TestWeight_UnknownBeliefDefaults(t *testing.T) {
	w := Default().Weight("not_a_belief")
	if w != (Weight{E: 1}) {
		t.Errorf("Weight(unknown) = %+v, want {0 0 0 1}", w)
	}
}

func TestIsPositive(t *testing.T) {
	tb := Default()
	for _, b := range []registry.BeliefKey{registry.BeliefMoneyIsTool, registry.BeliefSelfPermission, registry.BeliefCapacityExpansion} {
		if !tb.IsPositive(b) {
			t.Errorf("IsPositive(%q) = false", b)
		}
	}
	if tb.IsPositive(registry.BeliefScarcityMindset) {
		t.Error("scarcity_mindset should not be positive")
	}
}

func TestFixTask(t *testing.T) {
	tb := Default()
	task, ok := tb.FixTask(registry.BeliefFearOfConflict)
	if !ok || task.Key != "bug_fix_boundary" || task.TargetMetric != "Recovery" {
		t.Errorf("FixTask(fear_of_conflict) = %+v, %v", task, ok)
	}
	if _, ok := tb.FixTask(registry.BeliefHeroMartyr); ok {
		t.Error("hero_martyr should have no fix task")
	}
}

func TestNew_IsolatedFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	tb := New(cfg)

	cfg.Weights[registry.BeliefGoldenCage] = Weight{F: 99}
	cfg.Pools[PhaseExpansion][0].Key = "mutated"

	if tb.Weight(registry.BeliefGoldenCage).F == 99 {
		t.Error("weights aliased to config")
	}
	if tb.Pool(PhaseExpansion)[0].Key != "expansion_1" {
		t.Error("pools aliased to config")
	}

	pool := tb.Pool(PhaseExpansion)
	pool[0].Key = "mutated"
	if tb.Pool(PhaseExpansion)[0].Key != "expansion_1" {
		t.Error("Pool returned shared slice")
	}
}
