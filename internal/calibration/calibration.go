// Package calibration turns raw response timings into clean latencies and
// tracks the live response-time baseline of a session.
package calibration

import (
	"math"
	"time"

	"github.com/abhisek/genesis/internal/profile"
)

const (
	// DefaultBaselineMs is the baseline before any answer is observed.
	DefaultBaselineMs = 2000.0

	// LiveWindow is how many completed nodes feed the live baseline before
	// it freezes.
	LiveWindow = 5

	// ImpulseMs marks answers too fast to carry much signal.
	ImpulseMs = 1000.0

	// OutlierMs marks answers excluded from derived averages.
	OutlierMs = 30000.0
)

// State is the per-session calibration value object. Every method returns a
// new State and leaves the receiver untouched.
type State struct {
	Baseline         float64 `json:"baseline"`
	Samples          int     `json:"samples"`
	HardwareOffset   float64 `json:"hardwareOffset"`
	HardwareMeasured bool    `json:"hardwareMeasured"`
	PausedMs         float64 `json:"pausedMs"`
}

// New returns the initial calibration state.
func New() State {
	return State{Baseline: DefaultBaselineMs}
}

// CleanLatency removes background time and input lag from a raw timing.
func CleanLatency(raw, paused, hardware float64) float64 {
	return math.Max(0, raw-paused-hardware)
}

// Clean applies the state's paused time and hardware offset to raw.
func (s State) Clean(raw time.Duration) float64 {
	return CleanLatency(durationMs(raw), s.PausedMs, s.HardwareOffset)
}

// Observe folds a clean latency into the live baseline while fewer than
// LiveWindow nodes are completed. Afterwards the baseline is frozen.
func (s State) Observe(clean float64, completed int) State {
	if completed < LiveWindow {
		s.Baseline = (s.Baseline + clean) / 2
		s.Samples++
	}
	return s
}

// WithHardwareOffset records the input-lag offset once per session. Later
// calls return the state unchanged.
func (s State) WithHardwareOffset(ms float64) State {
	if s.HardwareMeasured {
		return s
	}
	s.HardwareOffset = math.Max(0, ms)
	s.HardwareMeasured = true
	return s
}

// Pause adds background time spent on the current node.
func (s State) Pause(d time.Duration) State {
	if d > 0 {
		s.PausedMs += durationMs(d)
	}
	return s
}

// ResetNode clears the paused-time accumulator for a new node.
func (s State) ResetNode() State {
	s.PausedMs = 0
	return s
}

// MeasureHardwareOffset is the delay between when a callback was scheduled
// to fire and when it actually fired.
func MeasureHardwareOffset(scheduled, fired time.Time) float64 {
	return math.Max(0, durationMs(fired.Sub(scheduled)))
}

// IsImpulse reports whether a latency is too fast to be deliberate.
func IsImpulse(latency float64) bool {
	return latency < ImpulseMs
}

// IsOutlier reports whether a latency should be excluded from averages.
func IsOutlier(latency float64) bool {
	return latency > OutlierMs
}

// FilterForIndices drops outliers from a latency series. The history itself
// keeps them.
func FilterForIndices(latencies []float64) []float64 {
	out := make([]float64, 0, len(latencies))
	for _, l := range latencies {
		if !IsOutlier(l) {
			out = append(out, l)
		}
	}
	return out
}

// SeedBaseline restores the live baseline from a stored history: the mean
// of the first LiveWindow latencies once that many exist.
func (s State) SeedBaseline(h profile.History) State {
	if len(h) < LiveWindow {
		return s
	}
	sum := 0.0
	for _, ev := range h[:LiveWindow] {
		sum += ev.Latency
	}
	s.Baseline = sum / LiveWindow
	s.Samples = LiveWindow
	return s
}

// LiveBaseline is the baseline used for in-progress adaptive decisions: the
// mean of the first min(LiveWindow, N) latencies, or DefaultBaselineMs.
func LiveBaseline(h profile.History) float64 {
	n := min(LiveWindow, len(h))
	if n == 0 {
		return DefaultBaselineMs
	}
	sum := 0.0
	for _, ev := range h[:n] {
		sum += ev.Latency
	}
	return sum / float64(n)
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
