package adaptive

import (
	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/registry"
)

// ContradictionType names the rule that produced a contradiction.
type ContradictionType string

const (
	LatencyMask  ContradictionType = "latency_mask"
	SomaticClash ContradictionType = "somatic_clash"
)

// Contradiction is a mismatch between a stated belief and the behavioral
// signal recorded with it.
type Contradiction struct {
	Type        ContradictionType  `json:"type"`
	NodeID      int                `json:"nodeId"`
	Belief      registry.BeliefKey `json:"beliefKey"`
	Severity    float64            `json:"severity"`
	Description string             `json:"description"`
}

// Detect scans the history for contradictions in history order. Both rules
// may fire for one event; calibration events are skipped.
func (s *Sequencer) Detect(h profile.History, baseline float64) []Contradiction {
	th := s.tables.Thresholds()
	out := []Contradiction{}

	for _, ev := range h {
		if ev.IsCalibration() || !s.tables.IsPositive(ev.Belief) {
			continue
		}
		if ev.Latency > baseline*th.LatencyMaskRatio {
			out = append(out, Contradiction{
				Type:        LatencyMask,
				NodeID:      ev.NodeID,
				Belief:      ev.Belief,
				Severity:    th.LatencyMaskSeverity,
				Description: "High cognitive effort for standard choice",
			})
		}
		if ev.Sensation.IsBlock() {
			out = append(out, Contradiction{
				Type:        SomaticClash,
				NodeID:      ev.NodeID,
				Belief:      ev.Belief,
				Severity:    th.SomaticClashSeverity,
				Description: "Physical friction detected",
			})
		}
	}
	return out
}
