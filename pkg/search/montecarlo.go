package search

import (
	"context"
	"math"

	"github.com/matzehuels/chromatic/pkg/graph"
)

// BestOfSampling draws up to iterations random colorings and keeps the one
// with the fewest conflicts. Only strict improvements replace the kept
// coloring, so ties keep the earlier one. The run ends early as soon as a
// conflict-free coloring is found.
//
// The trace records the best-so-far conflict count every [TraceInterval]
// iterations starting at 1 and at every strict improvement, so it is
// non-increasing. Iterations reports the attempts actually made.
func (e *Engine) BestOfSampling(ctx context.Context, s graph.Snapshot, k, iterations int) (*RunResult, error) {
	if err := checkBudget(iterations); err != nil {
		return nil, err
	}
	p, err := e.compile(s, k)
	if err != nil {
		return nil, err
	}

	label := MonteCarlo.Label()
	hooks := e.searchHooks()
	hooks.OnSearchStart(ctx, label, k, len(p.vertices))

	start := e.clock.Now()
	assign := make([]int, len(p.vertices))
	best := make([]int, len(p.vertices))
	bestConflicts := math.MaxInt
	res := &RunResult{Strategy: label, K: k}
	var runErr error
	for i := 1; i <= iterations; i++ {
		if i%cancelCheckInterval == 0 {
			if runErr = ctx.Err(); runErr != nil {
				break
			}
		}
		p.randomize(e, assign)
		c := p.conflicts(assign)
		res.Iterations = i

		improved := c < bestConflicts
		if improved {
			bestConflicts = c
			copy(best, assign)
		}
		if improved || (i-1)%TraceInterval == 0 {
			res.Trace = append(res.Trace, TracePoint{Iteration: i, Conflicts: bestConflicts})
		}
		if bestConflicts == 0 {
			break
		}
	}

	res.Elapsed = e.since(start)
	res.ElapsedMs = millis(res.Elapsed)
	res.Vertices = p.decode(best)
	res.Conflicts = bestConflicts
	res.Success = bestConflicts == 0 && fullyColored(best)
	hooks.OnSearchComplete(ctx, event(res))
	return res, runErr
}
