package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/abhisek/genesis/internal/profile"
	"github.com/abhisek/genesis/internal/scoring"
	"github.com/abhisek/genesis/internal/store"
)

// DefaultReflectionDelay is how long the reflection view stays up after a
// non-neutral sensation before the next node starts.
const DefaultReflectionDelay = 1200 * time.Millisecond

// DefaultMilestoneEvery is how many completed nodes trigger a milestone
// return to the dashboard.
const DefaultMilestoneEvery = 10

// DemoNodeLimit is the first node id locked in demo mode.
const DemoNodeLimit = 3

var (
	ErrDemoLocked      = errors.New("node is locked in demo mode")
	ErrUnknownNode     = errors.New("unknown node")
	ErrNoActiveNode    = errors.New("no active node")
	ErrNoPendingChoice = errors.New("no pending choice")
	ErrInvalidChoice   = errors.New("invalid choice")
)

// View is the screen the controller is currently showing.
type View int

const (
	ViewDashboard  View = iota // Node map
	ViewTest                   // Node question with choices
	ViewBodySync               // Sensation prompt after a choice
	ViewReflection             // Pause after a non-neutral sensation
	ViewResults                // Analysis result
)

func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewTest:
		return "test"
	case ViewBodySync:
		return "body_sync"
	case ViewReflection:
		return "reflection"
	case ViewResults:
		return "results"
	default:
		return "unknown"
	}
}

// NodeStatus is how the dashboard renders a node.
type NodeStatus int

const (
	NodeLocked NodeStatus = iota
	NodeActive
	NodeDone
)

// TaskKind identifies a scheduled callback.
type TaskKind int

const (
	// TaskAdvance moves past the reflection view.
	TaskAdvance TaskKind = iota
	// TaskHardwareProbe measures scheduling lag on the first node.
	TaskHardwareProbe
)

// Task is a delayed callback the caller must schedule and hand back to
// Controller.Fire once Delay has elapsed. Advance tasks carry the token that
// was current when they were scheduled; a task whose token is stale by the
// time it fires does nothing.
type Task struct {
	Kind        TaskKind
	Token       uint64
	Delay       time.Duration
	ScheduledAt time.Time
}

// Persistence is the storage the controller reads on open and writes after
// every step. *store.Store satisfies it.
type Persistence interface {
	History(ctx context.Context) profile.History
	SaveHistory(ctx context.Context, h profile.History) error
	CompletedNodes(ctx context.Context) []int
	SaveCompletedNodes(ctx context.Context, ids []int) error
	HardwareOffset(ctx context.Context) (float64, bool)
	SaveHardwareOffset(ctx context.Context, ms float64) error
	SaveScan(ctx context.Context, res scoring.AnalysisResult) (store.ScanRecord, error)
	Clear(ctx context.Context) error
}

// Options tunes a Controller. Zero values pick the defaults.
type Options struct {
	Demo            bool
	ReflectionDelay time.Duration
	MilestoneEvery  int
	Clock           func() time.Time
	Logger          *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.ReflectionDelay <= 0 {
		o.ReflectionDelay = DefaultReflectionDelay
	}
	if o.MilestoneEvery <= 0 {
		o.MilestoneEvery = DefaultMilestoneEvery
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
