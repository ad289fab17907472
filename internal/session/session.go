// Package session drives one assessment run: which node is on screen, how a
// choice becomes an answer event, and when the run moves to the dashboard or
// the results.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/abhisek/genesis/internal/adaptive"
	"github.com/abhisek/genesis/internal/calibration"
	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/scoring"
)

// bodySyncIntensity is the minimum node intensity that asks for a
// sensation after onboarding.
const bodySyncIntensity = 4

type pendingChoice struct {
	node    registry.Node
	choice  registry.Choice
	latency float64
}

// Controller is the single-threaded session state machine. It is not safe
// for concurrent use; the TUI calls it from its update loop only.
type Controller struct {
	registry *registry.Registry
	seq      *adaptive.Sequencer
	engine   *scoring.Engine
	store    Persistence
	opts     Options
	logger   *slog.Logger

	view      View
	history   profile.History
	completed map[int]bool
	cal       calibration.State

	active    registry.Node
	hasActive bool
	nodeStart time.Time
	pausedAt  time.Time
	paused    bool
	pending   *pendingChoice

	token     uint64
	adaptive  adaptive.State
	result    *scoring.AnalysisResult
	scanSaved bool
}

// New creates a controller on the dashboard with an empty run. Call Open to
// restore persisted progress.
func New(reg *registry.Registry, seq *adaptive.Sequencer, engine *scoring.Engine, st Persistence, opts Options) *Controller {
	opts = opts.withDefaults()
	return &Controller{
		registry:  reg,
		seq:       seq,
		engine:    engine,
		store:     st,
		opts:      opts,
		logger:    opts.Logger,
		view:      ViewDashboard,
		completed: make(map[int]bool),
		cal:       calibration.New(),
	}
}

// Open restores history, completed nodes and the hardware offset, then seeds
// the live baseline from the restored history.
func (c *Controller) Open(ctx context.Context) {
	c.history = c.store.History(ctx)
	c.completed = make(map[int]bool)
	for _, id := range c.store.CompletedNodes(ctx) {
		c.completed[id] = true
	}
	c.cal = calibration.New()
	if ms, ok := c.store.HardwareOffset(ctx); ok {
		c.cal = c.cal.WithHardwareOffset(ms)
	}
	c.cal = c.cal.SeedBaseline(c.history)
	c.refreshAdaptive()
	c.view = ViewDashboard

	c.logger.Info("session opened",
		"events", len(c.history),
		"completed", len(c.completed),
		"baseline", c.cal.Baseline,
	)
}

// StartNode shows node id. On a run with no history it also returns a
// hardware probe task to schedule immediately.
func (c *Controller) StartNode(ctx context.Context, id int) (*Task, error) {
	node, ok := c.registry.Node(id)
	if !ok {
		return nil, fmt.Errorf("start node %d: %w", id, ErrUnknownNode)
	}
	if c.opts.Demo && id >= DemoNodeLimit {
		return nil, fmt.Errorf("start node %d: %w", id, ErrDemoLocked)
	}

	c.token++
	now := c.opts.Clock()
	c.active = node
	c.hasActive = true
	c.nodeStart = now
	c.paused = false
	c.pending = nil
	c.cal = c.cal.ResetNode()
	c.view = ViewTest

	c.logger.Debug("node started", "node", id, "domain", node.Domain, "intensity", node.Intensity)

	if len(c.history) == 0 && !c.cal.HardwareMeasured {
		return &Task{Kind: TaskHardwareProbe, ScheduledAt: now}, nil
	}
	return nil, nil
}

// Pause stops counting response time, e.g. when the terminal loses focus.
func (c *Controller) Pause() {
	if c.view != ViewTest || c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.opts.Clock()
}

// Resume adds the time spent paused to the node's paused total.
func (c *Controller) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.cal = c.cal.Pause(c.opts.Clock().Sub(c.pausedAt))
}

// Choose records choice idx for the active node. Onboarding nodes and
// intense nodes move to the body-sync view; everything else is stored with
// a neutral sensation and the run advances at once.
func (c *Controller) Choose(ctx context.Context, idx int) (*Task, error) {
	if c.view != ViewTest || !c.hasActive {
		return nil, ErrNoActiveNode
	}
	if idx < 0 || idx >= len(c.active.Choices) {
		return nil, fmt.Errorf("choose %d on node %d: %w", idx, c.active.ID, ErrInvalidChoice)
	}

	c.Resume()
	now := c.opts.Clock()
	latency := c.cal.Clean(now.Sub(c.nodeStart))
	c.cal = c.cal.Observe(latency, len(c.completed))

	p := &pendingChoice{node: c.active, choice: c.active.Choices[idx], latency: latency}

	if c.active.ID < registry.OnboardingNodes || c.active.Intensity >= bodySyncIntensity {
		c.pending = p
		c.view = ViewBodySync
		return nil, nil
	}

	c.record(ctx, p, profile.SensationNeutral)
	return c.advance(ctx)
}

// ReportSensation completes the pending choice. A neutral sensation advances
// at once; any other shows the reflection view and returns the task that
// advances after the reflection delay.
func (c *Controller) ReportSensation(ctx context.Context, s profile.Sensation) (*Task, error) {
	if c.view != ViewBodySync || c.pending == nil {
		return nil, ErrNoPendingChoice
	}

	p := c.pending
	c.pending = nil
	c.record(ctx, p, s)

	if s == profile.SensationNeutral {
		return c.advance(ctx)
	}

	c.token++
	c.view = ViewReflection
	return &Task{
		Kind:        TaskAdvance,
		Token:       c.token,
		Delay:       c.opts.ReflectionDelay,
		ScheduledAt: c.opts.Clock(),
	}, nil
}

// Fire runs a scheduled task. Stale advance tasks are ignored.
func (c *Controller) Fire(ctx context.Context, t Task) (*Task, error) {
	switch t.Kind {
	case TaskHardwareProbe:
		if c.cal.HardwareMeasured {
			return nil, nil
		}
		ms := calibration.MeasureHardwareOffset(t.ScheduledAt, c.opts.Clock())
		c.cal = c.cal.WithHardwareOffset(ms)
		if err := c.store.SaveHardwareOffset(ctx, c.cal.HardwareOffset); err != nil {
			c.logger.Warn("save hardware offset failed", "error", err)
		}
		c.logger.Debug("hardware offset measured", "ms", c.cal.HardwareOffset)
		return nil, nil
	case TaskAdvance:
		if t.Token != c.token || c.view != ViewReflection {
			c.logger.Debug("stale task ignored", "token", t.Token, "current", c.token)
			return nil, nil
		}
		return c.advance(ctx)
	default:
		return nil, nil
	}
}

// Continue asks the sequencer for the next node, or shows the results when
// the run is complete.
func (c *Controller) Continue(ctx context.Context) (*Task, error) {
	c.refreshAdaptive()
	if next, ok := c.adaptive.Next(); ok && !c.adaptive.IsComplete {
		return c.StartNode(ctx, next)
	}
	c.showResults(ctx)
	return nil, nil
}

// GoDashboard leaves whatever is on screen and invalidates pending tasks.
// A choice waiting for its sensation is dropped.
func (c *Controller) GoDashboard() {
	c.token++
	c.hasActive = false
	c.pending = nil
	c.paused = false
	c.view = ViewDashboard
}

// ShowResults computes the result for the current history.
func (c *Controller) ShowResults(ctx context.Context) {
	c.token++
	c.showResults(ctx)
}

// UnlockAll marks every node completed.
func (c *Controller) UnlockAll(ctx context.Context) {
	for _, n := range c.registry.Nodes() {
		c.completed[n.ID] = true
	}
	c.persistCompleted(ctx)
	c.logger.Info("all nodes unlocked", "nodes", len(c.completed))
}

// Reset clears the run and the stored progress.
func (c *Controller) Reset(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	c.token++
	c.history = nil
	c.completed = make(map[int]bool)
	c.cal = calibration.New()
	c.hasActive = false
	c.pending = nil
	c.paused = false
	c.result = nil
	c.scanSaved = false
	c.refreshAdaptive()
	c.view = ViewDashboard
	return nil
}

// record appends the answer event and persists history and completed nodes.
func (c *Controller) record(ctx context.Context, p *pendingChoice, s profile.Sensation) {
	ev := profile.AnswerEvent{
		Belief:    p.choice.Belief,
		Sensation: s,
		Latency:   p.latency,
		NodeID:    p.node.ID,
		Domain:    p.node.Domain,
	}
	c.history = c.history.Append(ev)
	c.completed[p.node.ID] = true
	c.hasActive = false
	c.result = nil
	c.scanSaved = false

	if err := c.store.SaveHistory(ctx, c.history); err != nil {
		c.logger.Warn("save history failed", "error", err)
	}
	c.persistCompleted(ctx)
	c.refreshAdaptive()

	c.logger.Debug("answer recorded",
		"node", ev.NodeID,
		"belief", ev.Belief,
		"sensation", ev.Sensation,
		"latency", ev.Latency,
	)
}

// advance picks the node after the highest completed one. It stops at the
// dashboard in demo mode and at every milestone.
func (c *Controller) advance(ctx context.Context) (*Task, error) {
	c.token++
	next := 0
	if len(c.completed) > 0 {
		next = slices.Max(slices.Collect(maps.Keys(c.completed))) + 1
	}

	switch {
	case next >= c.registry.TotalNodes():
		c.showResults(ctx)
		return nil, nil
	case c.opts.Demo && next >= DemoNodeLimit:
		c.GoDashboard()
		return nil, nil
	case len(c.completed)%c.opts.MilestoneEvery == 0 && !c.completed[next]:
		c.logger.Info("milestone reached", "completed", len(c.completed))
		c.GoDashboard()
		return nil, nil
	}
	return c.StartNode(ctx, next)
}

func (c *Controller) showResults(ctx context.Context) {
	c.hasActive = false
	c.pending = nil
	c.view = ViewResults

	res := c.engine.ComputeResult(c.history)
	c.result = &res
	c.refreshAdaptive()

	if c.scanSaved || !c.adaptive.IsComplete {
		return
	}
	if _, err := c.store.SaveScan(ctx, res); err != nil {
		c.logger.Warn("save scan failed", "error", err)
		return
	}
	c.scanSaved = true
}

func (c *Controller) refreshAdaptive() {
	c.adaptive = c.seq.AdaptiveState(c.history, calibration.LiveBaseline(c.history))
}

func (c *Controller) persistCompleted(ctx context.Context) {
	if err := c.store.SaveCompletedNodes(ctx, c.CompletedNodes()); err != nil {
		c.logger.Warn("save completed nodes failed", "error", err)
	}
}

// View returns the current view.
func (c *Controller) View() View {
	return c.view
}

// ActiveNode returns the node on screen, if any.
func (c *Controller) ActiveNode() (registry.Node, bool) {
	return c.active, c.hasActive
}

// History returns a copy of the recorded answer events.
func (c *Controller) History() profile.History {
	return slices.Clone(c.history)
}

// CompletedNodes returns the completed node ids, ascending.
func (c *Controller) CompletedNodes() []int {
	ids := slices.Collect(maps.Keys(c.completed))
	slices.Sort(ids)
	return ids
}

// Calibration returns the live calibration state.
func (c *Controller) Calibration() calibration.State {
	return c.cal
}

// Adaptive returns the latest adaptive state.
func (c *Controller) Adaptive() adaptive.State {
	return c.adaptive
}

// Result returns the last computed result, if the results view was reached.
func (c *Controller) Result() (scoring.AnalysisResult, bool) {
	if c.result == nil {
		return scoring.AnalysisResult{}, false
	}
	return *c.result, true
}

// Glitch reports whether the last result is in glitch mode.
func (c *Controller) Glitch() bool {
	return c.result != nil && c.result.Glitch()
}

// Demo reports whether the controller runs in demo mode.
func (c *Controller) Demo() bool {
	return c.opts.Demo
}

// Registry returns the node catalog.
func (c *Controller) Registry() *registry.Registry {
	return c.registry
}

// NodeStatus reports how node id should be shown on the dashboard.
// Onboarding nodes are always open; later nodes open once the previous one
// is done. Demo mode locks everything from DemoNodeLimit on.
func (c *Controller) NodeStatus(id int) NodeStatus {
	if c.completed[id] {
		return NodeDone
	}
	if c.opts.Demo && id >= DemoNodeLimit {
		return NodeLocked
	}
	if id < registry.OnboardingNodes || c.completed[id-1] {
		return NodeActive
	}
	return NodeLocked
}
