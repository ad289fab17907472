package registry

import (
	"strings"
	"testing"
)

func TestDefault_DomainsTileIDLine(t *testing.T) {
	r := Default()
	next := 0
	for _, d := range r.Domains() {
		if d.StartID != next {
			t.Errorf("domain %q StartID = %d, want %d", d.Key, d.StartID, next)
		}
		next += d.Count
	}
	if next != r.TotalNodes() {
		t.Errorf("domains cover %d ids, TotalNodes = %d", next, r.TotalNodes())
	}
	if r.TotalNodes() != 50 {
		t.Errorf("TotalNodes = %d, want 50", r.TotalNodes())
	}
}

func TestDefault_NodeIdentity(t *testing.T) {
	r := Default()
	for i, n := range r.Nodes() {
		if n.ID != i {
			t.Fatalf("node at index %d has ID %d", i, n.ID)
		}
		dom, ok := r.DomainOf(n.ID)
		if !ok || dom != n.Domain {
			t.Errorf("DomainOf(%d) = %q, %v; want %q", n.ID, dom, ok, n.Domain)
		}
	}
}

func TestNode_Lookup(t *testing.T) {
	r := Default()

	tests := []struct {
		id        int
		key       string
		domain    DomainKey
		intensity int
		first     BeliefKey
	}{
		{0, "foundation_0", DomainFoundation, 3, BeliefFamilyLoyalty},
		{15, "agency_0", DomainAgency, 4, BeliefFearOfConflict},
		{25, "money_0", DomainMoney, 5, BeliefMoneyIsDanger},
		{35, "social_0", DomainSocial, 4, BeliefShameOfSuccess},
		{49, "legacy_4", DomainLegacy, 5, BeliefPovertyIsVirtue},
	}
	for _, tt := range tests {
		n, ok := r.Node(tt.id)
		if !ok {
			t.Fatalf("Node(%d) not found", tt.id)
		}
		if n.Key != tt.key || n.Domain != tt.domain || n.Intensity != tt.intensity {
			t.Errorf("Node(%d) = {%s %s %d}, want {%s %s %d}", tt.id, n.Key, n.Domain, n.Intensity, tt.key, tt.domain, tt.intensity)
		}
		if len(n.Choices) != 3 || n.Choices[0].Belief != tt.first {
			t.Errorf("Node(%d) first choice = %v, want %q", tt.id, n.Choices, tt.first)
		}
	}
}

func TestNode_TextKeys(t *testing.T) {
	n, _ := Default().Node(17)
	if n.TitleKey != "scenes.agency_2.title" {
		t.Errorf("TitleKey = %q", n.TitleKey)
	}
	if n.Choices[1].ID != "17_c2" || n.Choices[1].TextKey != "scenes.agency_2.c2" {
		t.Errorf("choice = %+v", n.Choices[1])
	}
}

func TestNode_OutOfRange(t *testing.T) {
	r := Default()
	for _, id := range []int{-1, 50, 1000} {
		if _, ok := r.Node(id); ok {
			t.Errorf("Node(%d) should not exist", id)
		}
		if _, ok := r.DomainOf(id); ok {
			t.Errorf("DomainOf(%d) should not exist", id)
		}
	}
}

func TestNew_MissingConfigFallsBack(t *testing.T) {
	r, err := New([]DomainSpec{{Key: DomainLegacy, Count: 2}}, map[string]NodeConfig{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	n, _ := r.Node(1)
	if n.Intensity != 3 || n.Choices[0].Belief != BeliefSelfPermission {
		t.Errorf("fallback node = %+v", n)
	}
}

func TestNew_ValidationErrors(t *testing.T) {
	_, err := New(
		[]DomainSpec{{Key: DomainAgency, Count: 0}, {Key: DomainAgency, Count: 2}},
		map[string]NodeConfig{"agency_0": {Intensity: 1, Beliefs: []BeliefKey{"made_up"}}},
	)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"duplicate domain", "count must be > 0", "unknown belief"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}

func TestIsCalibrationID(t *testing.T) {
	for id, want := range map[int]bool{0: true, 2: true, 3: false, 40: false} {
		if got := IsCalibrationID(id); got != want {
			t.Errorf("IsCalibrationID(%d) = %v, want %v", id, got, want)
		}
	}
}
