package adaptive

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/tables"
)

func newTestSequencer() *Sequencer {
	return NewSequencer(registry.Default(), tables.Default(), nil)
}

func answered(reg *registry.Registry, ids ...int) profile.History {
	h := profile.History{}
	for _, id := range ids {
		dom, _ := reg.DomainOf(id)
		h = append(h, profile.AnswerEvent{
			Belief:    registry.BeliefScarcityMindset,
			Sensation: profile.SensationNeutral,
			Latency:   2000,
			NodeID:    id,
			Domain:    dom,
		})
	}
	return h
}

func TestAdaptiveState_EmptyHistory(t *testing.T) {
	st := newTestSequencer().AdaptiveState(nil, 2000)

	if st.Clarity != 0 {
		t.Errorf("Clarity = %v, want 0", st.Clarity)
	}
	if st.IsComplete {
		t.Error("IsComplete = true, want false")
	}
	if next, ok := st.Next(); !ok || next != 0 {
		t.Errorf("Next() = %d, %v; want 0, true", next, ok)
	}
	if st.ConfidenceScore != 100 {
		t.Errorf("ConfidenceScore = %d, want 100", st.ConfidenceScore)
	}
}

func TestAdaptiveState_MissingLastCalibrationNode(t *testing.T) {
	reg := registry.Default()
	st := newTestSequencer().AdaptiveState(answered(reg, 0, 1), 2000)
	if next, ok := st.Next(); !ok || next != 2 {
		t.Errorf("Next() = %d, %v; want 2, true", next, ok)
	}
}

func TestSelectNext_CalibrationGateBeatsTension(t *testing.T) {
	reg := registry.Default()
	s := newTestSequencer()

	h := answered(reg, 0, 2)
	h = append(h, profile.AnswerEvent{
		Belief: registry.BeliefMoneyIsTool, Sensation: profile.SensationFreeze,
		Latency: 9000, NodeID: 30, Domain: registry.DomainMoney,
	})
	contradictions := s.Detect(h, 2000)
	if len(contradictions) == 0 {
		t.Fatal("expected contradictions for the money node")
	}

	if next, ok := s.SelectNext(h, contradictions); !ok || next != 1 {
		t.Errorf("SelectNext = %d, %v; want 1, true", next, ok)
	}
}

func TestSelectNext_TensionProbing(t *testing.T) {
	reg := registry.Default()
	s := newTestSequencer()

	h := answered(reg, 0, 1, 2)
	h = append(h, profile.AnswerEvent{
		Belief: registry.BeliefSelfPermission, Sensation: profile.SensationTension,
		Latency: 1500, NodeID: 27, Domain: registry.DomainMoney,
	})
	contradictions := s.Detect(h, 2000)

	if next, ok := s.SelectNext(h, contradictions); !ok || next != 25 {
		t.Errorf("SelectNext = %d, %v; want 25 (first money node)", next, ok)
	}

	h = append(h, answered(reg, 25, 26)...)
	if next, _ := s.SelectNext(h, contradictions); next != 28 {
		t.Errorf("SelectNext = %d, want 28", next)
	}
}

func TestSelectNext_ExhaustedDomainFallsBackToLinear(t *testing.T) {
	reg := registry.Default()
	s := newTestSequencer()

	h := answered(reg, 0, 1, 2, 45, 46, 47, 48)
	h = append(h, profile.AnswerEvent{
		Belief: registry.BeliefCapacityExpansion, Sensation: profile.SensationFreeze,
		Latency: 1500, NodeID: 49, Domain: registry.DomainLegacy,
	})
	if next, ok := s.SelectNext(h, s.Detect(h, 2000)); !ok || next != 3 {
		t.Errorf("SelectNext = %d, %v; want 3", next, ok)
	}
}

func TestSelectNext_Linear(t *testing.T) {
	reg := registry.Default()
	s := newTestSequencer()
	if next, ok := s.SelectNext(answered(reg, 0, 1, 2, 3), nil); !ok || next != 4 {
		t.Errorf("SelectNext = %d, %v; want 4", next, ok)
	}
}

func TestAdaptiveState_AllCompleted(t *testing.T) {
	reg := registry.Default()
	ids := make([]int, reg.TotalNodes())
	for i := range ids {
		ids[i] = i
	}
	st := newTestSequencer().AdaptiveState(answered(reg, ids...), 2000)
	if _, ok := st.Next(); ok {
		t.Error("expected no suggestion")
	}
	if !st.IsComplete {
		t.Error("IsComplete = false, want true")
	}
}

func TestAdaptiveState_HardCap(t *testing.T) {
	reg, err := registry.New([]registry.DomainSpec{
		{Key: registry.DomainFoundation, Count: 20},
		{Key: registry.DomainAgency, Count: 20},
		{Key: registry.DomainMoney, Count: 20},
		{Key: registry.DomainSocial, Count: 5},
		{Key: registry.DomainLegacy, Count: 5},
	}, nil)
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}

	ids := make([]int, 0, 61)
	for i := range 59 {
		ids = append(ids, i)
	}
	ids = append(ids, 3, 4)
	h := answered(reg, ids...)

	cfg := tables.DefaultConfig()
	cfg.Thresholds.ClarityPerNode = 1
	for _, tb := range []*tables.Tables{tables.Default(), tables.New(cfg)} {
		st := NewSequencer(reg, tb, nil).AdaptiveState(h, 2000)
		if len(st.Contradictions) != 0 {
			t.Fatalf("unexpected contradictions: %v", st.Contradictions)
		}
		next, ok := st.Next()
		if !ok || next != 59 {
			t.Errorf("Next() = %d, %v; want 59, true", next, ok)
		}
		if !st.IsComplete {
			t.Errorf("IsComplete = false with %d events (clarity %v)", len(h), st.Clarity)
		}
	}
}

func TestAdaptiveState_ClarityMonotonic(t *testing.T) {
	reg := registry.Default()
	s := newTestSequencer()

	clashAt := func(id int) profile.AnswerEvent {
		dom, _ := reg.DomainOf(id)
		return profile.AnswerEvent{Belief: registry.BeliefSelfPermission, Sensation: profile.SensationTension, Latency: 2000, NodeID: id, Domain: dom}
	}

	base := answered(reg, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	prev := s.AdaptiveState(base, 2000).Clarity
	for i := 10; i < 15; i++ {
		withClash := base.Append(clashAt(i))
		withoutClash := base.Append(answered(reg, i)[0])

		c1 := s.AdaptiveState(withClash, 2000).Clarity
		c0 := s.AdaptiveState(withoutClash, 2000).Clarity
		if c1 > c0 {
			t.Errorf("clarity with contradiction %v > without %v", c1, c0)
		}
		if c0 < prev {
			t.Errorf("clarity decreased with longer history: %v -> %v", prev, c0)
		}
		for _, c := range []float64{c0, c1} {
			if c < 0 || c > 100 {
				t.Errorf("clarity %v out of [0,100]", c)
			}
		}
		base, prev = withoutClash, c0
	}

	// Each contradiction subtracts from the per-event gain.
	var clashes profile.History
	for i := 3; i < 10; i++ {
		clashes = append(clashes, clashAt(i))
	}
	if c := s.AdaptiveState(clashes, 2000).Clarity; c != 7 {
		t.Errorf("clarity = %v, want 7 (21 - 14)", c)
	}
}

func TestDetect(t *testing.T) {
	s := newTestSequencer()
	h := profile.History{
		{Belief: registry.BeliefMoneyIsTool, Sensation: profile.SensationFreeze, Latency: 9000, NodeID: 1},
		{Belief: registry.BeliefMoneyIsTool, Sensation: profile.SensationFreeze, Latency: 6000, NodeID: 5},
		{Belief: registry.BeliefScarcityMindset, Sensation: profile.SensationFreeze, Latency: 9000, NodeID: 6},
		{Belief: registry.BeliefCapacityExpansion, Sensation: profile.SensationNeutral, Latency: 5500, NodeID: 7},
		{Belief: registry.BeliefSelfPermission, Sensation: profile.SensationTension, Latency: 100, NodeID: 8},
	}

	want := []Contradiction{
		{Type: LatencyMask, NodeID: 5, Belief: registry.BeliefMoneyIsTool, Severity: 0.85, Description: "High cognitive effort for standard choice"},
		{Type: SomaticClash, NodeID: 5, Belief: registry.BeliefMoneyIsTool, Severity: 0.95, Description: "Physical friction detected"},
		{Type: SomaticClash, NodeID: 8, Belief: registry.BeliefSelfPermission, Severity: 0.95, Description: "Physical friction detected"},
	}
	if diff := cmp.Diff(want, s.Detect(h, 2000)); diff != "" {
		t.Errorf("Detect mismatch (-want +got):\n%s", diff)
	}
}

func TestLiveConfidence(t *testing.T) {
	s := newTestSequencer()
	steady := profile.History{{Latency: 2000}, {Latency: 2000}, {Latency: 300}}
	if got := s.liveConfidence(steady); got != 100 {
		t.Errorf("steady confidence = %d, want 100", got)
	}
	// mean 2000, stddev 1000: 100 - 0.5*140 = 30
	spread := profile.History{{Latency: 1000}, {Latency: 3000}}
	if got := s.liveConfidence(spread); got != 30 {
		t.Errorf("spread confidence = %d, want 30", got)
	}
}
