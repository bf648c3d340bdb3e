package search

import (
	"context"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/palette"
)

// EscalationSuffix is appended to the base strategy label of escalated runs.
const EscalationSuffix = " + Auto K"

// Attempt records one k value tried by [Engine.Escalate].
type Attempt struct {
	K          int     `json:"k"`
	Iterations int     `json:"iterations"`
	Conflicts  int     `json:"conflicts"`
	Success    bool    `json:"success"`
	ElapsedMs  float64 `json:"elapsed_ms"`
}

// EscalationTrace is the outcome of [Engine.Escalate].
//
// Result aggregates the whole escalation: its coloring is that of the last
// attempt, Iterations is the sum over all attempts, Elapsed spans the whole
// run and Trace concatenates the attempt traces on a shared iteration axis.
type EscalationTrace struct {
	InitialK int        `json:"initial_k"`
	FinalK   int        `json:"final_k"`
	MaxK     int        `json:"max_k"`
	Attempts []Attempt  `json:"attempts"`
	Result   *RunResult `json:"result"`
}

// Escalate runs the base strategy with k = initialK, initialK+1, ... until an
// attempt succeeds or k would exceed maxK. Each attempt gets the same
// per-k iteration budget; RandomRestart runs without forceValid so every
// attempt respects it. The total work is therefore bounded by
// (maxK-initialK+1)*budget iterations.
//
// FinalK is the last k attempted, whether or not it succeeded.
func (e *Engine) Escalate(ctx context.Context, s graph.Snapshot, strategy Strategy, initialK, budget, maxK int) (*EscalationTrace, error) {
	if strategy != LasVegas && strategy != MonteCarlo {
		return nil, cerrors.Wrap(cerrors.ErrCodeUnknownStrategy, ErrUnknownStrategy, "strategy %q", strategy)
	}
	if err := checkBudget(budget); err != nil {
		return nil, err
	}
	if maxK < initialK {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidRange, ErrInvalidRange, "max k %d is below initial k %d", maxK, initialK)
	}
	if maxK > palette.MaxSize {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidK, ErrInvalidK, "max k must be <= %d, got %d", palette.MaxSize, maxK)
	}

	hooks := e.searchHooks()
	start := e.clock.Now()
	trace := &EscalationTrace{InitialK: initialK, MaxK: maxK}
	agg := &RunResult{Strategy: strategy.Label() + EscalationSuffix}

	for k := initialK; k <= maxK; k++ {
		r, err := e.Solve(ctx, strategy, s, k, budget, false)
		if r == nil {
			return nil, err
		}

		for _, tp := range r.Trace {
			agg.Trace = append(agg.Trace, TracePoint{Iteration: agg.Iterations + tp.Iteration, Conflicts: tp.Conflicts})
		}
		agg.Iterations += r.Iterations
		agg.K = k
		agg.Vertices = r.Vertices
		agg.Conflicts = r.Conflicts
		agg.Success = r.Success

		trace.FinalK = k
		trace.Attempts = append(trace.Attempts, Attempt{
			K:          k,
			Iterations: r.Iterations,
			Conflicts:  r.Conflicts,
			Success:    r.Success,
			ElapsedMs:  r.ElapsedMs,
		})
		hooks.OnEscalationStep(ctx, event(r))

		if err != nil {
			return nil, err
		}
		if r.Success {
			break
		}
	}

	agg.Elapsed = e.since(start)
	agg.ElapsedMs = millis(agg.Elapsed)
	trace.Result = agg
	return trace, nil
}
