package profile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/genesis/internal/registry"
)

// AnswerEvent is one completed interaction: the chosen belief, the reported
// sensation and the cleaned response latency for a node.
type AnswerEvent struct {
	Belief    registry.BeliefKey `json:"beliefKey"`
	Sensation Sensation          `json:"sensation"`
	Latency   float64            `json:"latency"`
	NodeID    int                `json:"nodeId"`
	Domain    registry.DomainKey `json:"domain"`
}

// IsCalibration reports whether the event only seeds the latency baseline.
func (e AnswerEvent) IsCalibration() bool {
	return registry.IsCalibrationID(e.NodeID)
}

// UnmarshalJSON accepts nodeId as either a JSON number or a numeric string.
func (e *AnswerEvent) UnmarshalJSON(data []byte) error {
	type plain AnswerEvent
	var raw struct {
		plain
		NodeID json.RawMessage `json:"nodeId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = AnswerEvent(raw.plain)

	id, err := parseNodeID(raw.NodeID)
	if err != nil {
		return err
	}
	e.NodeID = id
	return nil
}

func parseNodeID(raw json.RawMessage) (int, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, fmt.Errorf("nodeId is required")
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, fmt.Errorf("decode nodeId: %w", err)
		}
		s = str
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("nodeId %q is not an integer", s)
	}
	return id, nil
}

// History is the append-only, temporally ordered answer log of a session.
type History []AnswerEvent

// Append returns a new history with ev added at the end. The receiver is
// never modified.
func (h History) Append(ev AnswerEvent) History {
	out := make(History, len(h), len(h)+1)
	copy(out, h)
	return append(out, ev)
}

// Completed returns the set of node ids present in the history.
func (h History) Completed() map[int]bool {
	done := make(map[int]bool, len(h))
	for _, ev := range h {
		done[ev.NodeID] = true
	}
	return done
}

// CountBelief returns how many events in the history chose b.
func (h History) CountBelief(b registry.BeliefKey) int {
	n := 0
	for _, ev := range h {
		if ev.Belief == b {
			n++
		}
	}
	return n
}

// Latencies returns every latency in history order.
func (h History) Latencies() []float64 {
	out := make([]float64, len(h))
	for i, ev := range h {
		out[i] = ev.Latency
	}
	return out
}

// FindNode returns the first event recorded for a node id.
func (h History) FindNode(id int) (AnswerEvent, bool) {
	for _, ev := range h {
		if ev.NodeID == id {
			return ev, true
		}
	}
	return AnswerEvent{}, false
}
