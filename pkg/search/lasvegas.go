package search

import (
	"context"

	"github.com/matzehuels/chromatic/pkg/graph"
)

// RandomRestart colors s by drawing independent uniformly random colorings
// until one has zero conflicts.
//
// Without forceValid it stops after iterations attempts and returns the last
// coloring tried, and iterations must be at least 1. With forceValid the
// iterations argument is ignored, zero included, and the search runs until
// success or the engine's safety ceiling; an uncolorable input therefore ends
// with Success false after exactly that many attempts.
//
// The trace holds a point every [TraceInterval] iterations starting at 1, plus
// the successful iteration. If ctx is cancelled the run stops early and
// returns the partial result together with ctx.Err().
func (e *Engine) RandomRestart(ctx context.Context, s graph.Snapshot, k, iterations int, forceValid bool) (*RunResult, error) {
	if !forceValid {
		if err := checkBudget(iterations); err != nil {
			return nil, err
		}
	}
	p, err := e.compile(s, k)
	if err != nil {
		return nil, err
	}

	label := LasVegas.Label()
	hooks := e.searchHooks()
	hooks.OnSearchStart(ctx, label, k, len(p.vertices))

	limit := iterations
	if forceValid {
		limit = e.ceiling
	}

	start := e.clock.Now()
	assign := make([]int, len(p.vertices))
	res := &RunResult{Strategy: label, K: k}
	var runErr error
	for i := 1; i <= limit; i++ {
		if i%cancelCheckInterval == 0 {
			if runErr = ctx.Err(); runErr != nil {
				break
			}
		}
		p.randomize(e, assign)
		c := p.conflicts(assign)
		res.Iterations = i
		res.Conflicts = c
		if (i-1)%TraceInterval == 0 || c == 0 {
			res.Trace = append(res.Trace, TracePoint{Iteration: i, Conflicts: c})
		}
		if c == 0 {
			break
		}
	}

	res.Elapsed = e.since(start)
	res.ElapsedMs = millis(res.Elapsed)
	res.Vertices = p.decode(assign)
	res.Success = res.Iterations > 0 && res.Conflicts == 0 && fullyColored(assign)
	hooks.OnSearchComplete(ctx, event(res))
	return res, runErr
}
