// Package scoring converts an answer history into an AnalysisResult: the
// state vector, derived indices, archetype ranking and roadmap.
package scoring

import (
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/tables"
)

// Engine scores histories against an injected set of tables.
type Engine struct {
	tables *tables.Tables
	now    func() time.Time
	logger *slog.Logger
}

// New creates an Engine. A nil clock uses time.Now; a nil logger uses
// slog.Default().
func New(t *tables.Tables, clock func() time.Time, logger *slog.Logger) *Engine {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{tables: t, now: clock, logger: logger}
}

// Tables returns the tables the engine was built with.
func (e *Engine) Tables() *tables.Tables {
	return e.tables
}

// latencyStats holds the baseline and spread of the in-range latencies.
type latencyStats struct {
	baseline float64
	avg      float64
	stddev   float64
}

func (e *Engine) latencyStats(h profile.History) latencyStats {
	th := e.tables.Thresholds()

	var valid []float64
	for _, ev := range h {
		if ev.Latency > th.ValidLatencyMin && ev.Latency < th.ValidLatencyMax {
			valid = append(valid, ev.Latency)
		}
	}

	st := latencyStats{baseline: th.DefaultBaselineMs}
	if n := min(th.BaselineWindow, len(valid)); n > 0 {
		st.baseline = mean(valid[:n])
	}

	st.avg = st.baseline
	if len(valid) > 0 {
		st.avg = mean(valid)
	}

	if len(valid) > 1 {
		sq := 0.0
		for _, l := range valid {
			sq += (l - st.avg) * (l - st.avg)
		}
		st.stddev = math.Sqrt(sq / float64(len(valid)))
	}
	return st
}

// dampen applies delta to current with diminishing returns the further
// current sits from the neutral midpoint, clamped to [0,100].
func (e *Engine) dampen(current, delta float64) float64 {
	if delta == 0 {
		return current
	}
	resistance := math.Abs(current-50) / 50
	effective := delta * (1 - resistance*e.tables.Thresholds().DampenerSpread)
	return clamp(current+effective, 0, 100)
}

// ComputeResult scores a history. It is deterministic apart from the
// Timestamp field. Calibration events only contribute to the baseline.
func (e *Engine) ComputeResult(h profile.History) AnalysisResult {
	th := e.tables.Thresholds()
	st := e.latencyStats(h)

	s := profile.InitialState()
	sync := profile.InitialSyncScore

	var (
		bugs         []registry.BeliefKey
		correlations []Correlation
		freqOrder    []profile.Sensation
	)
	somatic := SomaticProfile{DominantSensation: profile.SensationNeutral}
	freq := map[profile.Sensation]int{}

	for i, ev := range h {
		if ev.IsCalibration() {
			continue
		}

		w := e.tables.Weight(ev.Belief)

		factor := 1.0
		switch ratio := ev.Latency / math.Max(1, st.baseline); {
		case ratio > th.SlowRatio:
			factor = th.SlowFactor
		case ratio < th.FastRatio:
			factor = th.FastFactor
		}

		resonance := 1 + th.ResonanceStep*float64(h[:i].CountBelief(ev.Belief))

		s.Foundation = e.dampen(s.Foundation, w.F*resonance)
		s.Agency = e.dampen(s.Agency, w.A*resonance)
		s.Resource = e.dampen(s.Resource, w.R*resonance)
		s.Entropy = e.dampen(s.Entropy, w.E*resonance*factor)

		if ev.Sensation.IsBlock() {
			somatic.Blocks++
		}
		if ev.Sensation.IsResource() {
			somatic.Resources++
		}
		if _, seen := freq[ev.Sensation]; !seen {
			freqOrder = append(freqOrder, ev.Sensation)
		}
		freq[ev.Sensation]++

		if ev.Latency > st.baseline*th.ResistanceRatio {
			correlations = append(correlations, newCorrelation(ev, "resistance"))
			s.Entropy = e.dampen(s.Entropy, th.ResistanceNudge)
		}
		if ev.Sensation.IsResource() && ev.Latency < st.baseline*th.ResonanceRatio {
			correlations = append(correlations, newCorrelation(ev, "resonance"))
		}

		if w.A > th.SyncAgencyMin && ev.Sensation.IsBlock() {
			sync -= th.SyncPenalty
		}
		if h.CountBelief(ev.Belief) > th.BugRepeats {
			bugs = append(bugs, ev.Belief)
		}
	}

	best := 0
	for _, sens := range freqOrder {
		if freq[sens] > best {
			best = freq[sens]
			somatic.DominantSensation = sens
		}
	}

	if len(correlations) > th.MaxCorrelations {
		correlations = correlations[:th.MaxCorrelations]
	}

	avg := math.Max(1, st.avg)
	confidence := clamp(100-st.stddev/avg*th.ConfidenceScale, 0, 100)
	coherence := math.Max(0, 100-st.stddev/avg*th.CoherenceScale)

	f, a, r, en := s.Foundation, s.Agency, s.Resource, s.Entropy
	integrity := int(roundHalfUp((f + a + r) / 3 * (1 - en/130)))
	health := int(roundHalfUp(float64(integrity)*0.55 + sync*0.45))
	stability := roundHalfUp(f*0.65 + a*0.35)
	neuroSync := int(roundHalfUp(sync))
	uniqueBugs := dedupe(bugs)

	spectrum := rankArchetypes(s)
	primary, secondary := spectrum[0], spectrum[1]
	phase := phaseFor(health)

	res := AnalysisResult{
		Timestamp:       e.now(),
		State:           s,
		UserBaseline:    st.baseline,
		Integrity:       integrity,
		Capacity:        int(roundHalfUp((f + r) / 2)),
		EntropyScore:    int(roundHalfUp(en)),
		NeuroSync:       neuroSync,
		SystemHealth:    health,
		ConfidenceScore: int(roundHalfUp(confidence)),
		Clarity:         math.Min(100, float64(len(h))*th.ResultClarityPerEvent),

		Phase:                 phase,
		ArchetypeKey:          primary.Key,
		SecondaryArchetypeKey: secondary.Key,
		ArchetypeMatch:        int(roundHalfUp(primary.Score / math.Max(1, primary.Score+secondary.Score) * 100)),
		ArchetypeSpectrum:     spectrum,
		VerdictKey:            verdictFor(s),
		LifeScript:            lifeScriptFor(s, neuroSync),
		Roadmap:               e.buildRoadmap(phase, uniqueBugs),
		GraphPoints:           graphPoints(s),
		Status:                coarseStatus(health),

		Bugs:               uniqueBugs,
		Correlations:       correlations,
		Conflicts:          conflictsFor(s),
		SomaticProfile:     somatic,
		IntegrityBreakdown: breakdown(health, coherence, sync, stability),

		InterventionStrategy: interventionFor(s),
		CoreConflict:         coreConflictFor(s),
		ShadowDirective:      "integrity_boost",
	}
	if slices.Contains(uniqueBugs, registry.BeliefHeroMartyr) {
		res.ShadowDirective = "self_sabotage_fix"
	}
	if slices.Contains(uniqueBugs, registry.BeliefFamilyLoyalty) {
		res.InterferenceInsight = "family_vs_money"
	}
	res.ShareCode = ShareCode(res.ArchetypeKey, res.Integrity, res.EntropyScore)

	e.logger.Debug("computed result",
		"events", len(h),
		"archetype", res.ArchetypeKey,
		"health", res.SystemHealth,
		"bugs", len(res.Bugs),
	)
	return res
}

func newCorrelation(ev profile.AnswerEvent, kind string) Correlation {
	return Correlation{
		NodeID:         ev.NodeID,
		Domain:         ev.Domain,
		Type:           kind,
		DescriptionKey: "correlation_" + kind + "_" + string(ev.Belief),
	}
}

func breakdown(health int, coherence, sync, stability float64) IntegrityBreakdown {
	b := IntegrityBreakdown{
		Coherence: int(roundHalfUp(coherence)),
		Sync:      int(roundHalfUp(sync)),
		Stability: int(stability),
		Status:    levelFor(health),
	}
	switch {
	case health > 80:
		b.Label, b.Description = "HIGH_COHERENCE", "audit_desc_high"
	case health > 50:
		b.Label, b.Description = "COMPENSATED", "audit_desc_mid"
	default:
		b.Label, b.Description = "STRUCTURAL_NOISE", "audit_desc_low"
	}
	return b
}

func levelFor(health int) MetricLevel {
	switch {
	case health > 80:
		return LevelOptimal
	case health > 50:
		return LevelStable
	case health > 30:
		return LevelStrained
	default:
		return LevelDisrupted
	}
}

func coarseStatus(health int) CoarseStatus {
	switch {
	case health < 25:
		return StatusCritical
	case health < 55:
		return StatusUnstable
	default:
		return StatusOptimal
	}
}

func phaseFor(health int) tables.Phase {
	switch {
	case health < 35:
		return tables.PhaseSanitation
	case health < 68:
		return tables.PhaseStabilization
	default:
		return tables.PhaseExpansion
	}
}

func dedupe(in []registry.BeliefKey) []registry.BeliefKey {
	seen := make(map[registry.BeliefKey]bool, len(in))
	out := []registry.BeliefKey{}
	for _, b := range in {
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// roundHalfUp rounds .5 towards positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
