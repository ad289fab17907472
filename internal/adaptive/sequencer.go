// Package adaptive detects belief/behavior contradictions and picks the next
// node to present.
package adaptive

import (
	"log/slog"
	"math"

	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/tables"
)

// State is the live, in-progress view of a session.
type State struct {
	Clarity         float64         `json:"clarity"`
	Contradictions  []Contradiction `json:"contradictions"`
	IsComplete      bool            `json:"isComplete"`
	SuggestedNext   *int            `json:"suggestedNextNodeId"`
	ConfidenceScore int             `json:"confidenceScore"`
}

// Next returns the suggested node id, if any.
func (st State) Next() (int, bool) {
	if st.SuggestedNext == nil {
		return 0, false
	}
	return *st.SuggestedNext, true
}

// Sequencer chooses nodes using an injected registry and tables.
type Sequencer struct {
	registry *registry.Registry
	tables   *tables.Tables
	logger   *slog.Logger
}

// NewSequencer creates a Sequencer. A nil logger uses slog.Default().
func NewSequencer(reg *registry.Registry, t *tables.Tables, logger *slog.Logger) *Sequencer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sequencer{registry: reg, tables: t, logger: logger}
}

// SelectNext returns the next node to present, in priority order:
// uncompleted calibration nodes, then the domain of the most recent
// contradiction, then a linear scan from the first non-calibration node.
// ok is false when every node is completed.
func (s *Sequencer) SelectNext(h profile.History, contradictions []Contradiction) (id int, ok bool) {
	done := h.Completed()

	for i := range registry.CalibrationNodes {
		if !done[i] {
			return i, true
		}
	}

	if len(contradictions) > 0 {
		last := contradictions[len(contradictions)-1]
		if ev, found := h.FindNode(last.NodeID); found {
			if d, known := s.registry.Domain(ev.Domain); known {
				for i := d.StartID; i < d.StartID+d.Count; i++ {
					if !done[i] {
						s.logger.Debug("probing tension", "domain", d.Key, "node", i)
						return i, true
					}
				}
			}
		}
	}

	for i := registry.CalibrationNodes; i < s.registry.TotalNodes(); i++ {
		if !done[i] {
			return i, true
		}
	}
	return 0, false
}

// AdaptiveState computes clarity, contradictions, the next node and a live
// confidence estimate for an in-progress history.
func (s *Sequencer) AdaptiveState(h profile.History, baseline float64) State {
	th := s.tables.Thresholds()
	contradictions := s.Detect(h, baseline)

	raw := float64(len(h)) * th.ClarityPerNode
	penalty := float64(len(contradictions)) * th.ContradictionPenalty
	clarity := math.Min(100, math.Max(0, raw-penalty))

	st := State{
		Clarity:         clarity,
		Contradictions:  contradictions,
		ConfidenceScore: s.liveConfidence(h),
	}
	if next, ok := s.SelectNext(h, contradictions); ok {
		st.SuggestedNext = &next
	}
	st.IsComplete = clarity >= 100 || st.SuggestedNext == nil || len(h) >= th.SessionCap
	return st
}

// liveConfidence scores latency consistency over events slower than the
// minimum valid latency. Divisors are floored at 1.
func (s *Sequencer) liveConfidence(h profile.History) int {
	th := s.tables.Thresholds()

	var lat []float64
	for _, ev := range h {
		if ev.Latency > th.ValidLatencyMin {
			lat = append(lat, ev.Latency)
		}
	}
	n := math.Max(1, float64(len(lat)))

	sum := 0.0
	for _, l := range lat {
		sum += l
	}
	avg := sum / n

	sq := 0.0
	for _, l := range lat {
		sq += (l - avg) * (l - avg)
	}
	stddev := math.Sqrt(sq / n)

	conf := math.Max(0, 100-stddev/math.Max(1, avg)*th.LiveConfidenceScale)
	return int(math.Floor(conf + 0.5))
}
