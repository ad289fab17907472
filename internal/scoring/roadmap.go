package scoring

import (
	"github.com/abhisek/genesis/internal/registry"
	"github.com/abhisek/genesis/internal/tables"
)

// RoadmapDays is the length of the action plan.
const RoadmapDays = 7

// buildRoadmap fills seven days from the phase pool, replacing every third
// day with a remediation task while recurring beliefs remain. A belief with
// no mapped task is consumed and the day falls back to the pool.
func (e *Engine) buildRoadmap(phase tables.Phase, bugs []registry.BeliefKey) []ProtocolStep {
	queue := append([]registry.BeliefKey(nil), bugs...)
	pool := e.tables.Pool(phase)

	steps := make([]ProtocolStep, 0, RoadmapDays)
	for i := range RoadmapDays {
		day := i + 1
		if day%3 == 0 && len(queue) > 0 {
			bug := queue[0]
			queue = queue[1:]
			if task, ok := e.tables.FixTask(bug); ok {
				steps = append(steps, ProtocolStep{
					Day:          day,
					Phase:        tables.PhaseSanitation,
					TaskKey:      task.Key,
					TargetMetric: task.TargetMetric,
				})
				continue
			}
		}

		step := ProtocolStep{Day: day, Phase: phase}
		if len(pool) > 0 {
			task := pool[i%len(pool)]
			step.TaskKey, step.TargetMetric = task.Key, task.TargetMetric
		}
		steps = append(steps, step)
	}
	return steps
}
