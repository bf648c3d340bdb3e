package search

import (
	"context"
	"errors"
	"testing"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
)

func TestEscalateTriangle(t *testing.T) {
	for _, strategy := range Strategies() {
		t.Run(string(strategy), func(t *testing.T) {
			s := triangle(t)
			hooks := &recordingHooks{}
			e := New(WithSeed(3), WithHooks(hooks))

			tr, err := e.Escalate(context.Background(), s, strategy, 2, 1000, 4)
			if err != nil {
				t.Fatal(err)
			}

			if !tr.Result.Success || tr.FinalK != 3 {
				t.Fatalf("Success/FinalK = %v/%d, want true/3", tr.Result.Success, tr.FinalK)
			}
			if len(tr.Attempts) != 2 {
				t.Fatalf("attempts = %+v, want k=2 and k=3", tr.Attempts)
			}
			first := tr.Attempts[0]
			if first.K != 2 || first.Success || first.Iterations != 1000 || first.Conflicts == 0 {
				t.Errorf("k=2 attempt = %+v, want a failed full-budget attempt", first)
			}
			if tr.Attempts[1].K != 3 || !tr.Attempts[1].Success {
				t.Errorf("k=3 attempt = %+v", tr.Attempts[1])
			}

			sum := tr.Attempts[0].Iterations + tr.Attempts[1].Iterations
			if tr.Result.Iterations != sum {
				t.Errorf("Iterations = %d, want %d", tr.Result.Iterations, sum)
			}
			if want := strategy.Label() + " + Auto K"; tr.Result.Strategy != want {
				t.Errorf("Strategy = %q, want %q", tr.Result.Strategy, want)
			}
			if tr.InitialK != 2 || tr.Result.K != 3 {
				t.Errorf("InitialK/K = %d/%d", tr.InitialK, tr.Result.K)
			}
			assertValid(t, tr.Result.Vertices, s.Edges)

			if len(hooks.steps) != 2 {
				t.Errorf("escalation steps = %d, want 2", len(hooks.steps))
			}
		})
	}
}

func TestEscalateFailureKeepsLastAttempt(t *testing.T) {
	// K4 needs four colors.
	ids := []graph.ID{"1", "2", "3", "4"}
	pairs := [][2]graph.ID{{"1", "2"}, {"1", "3"}, {"1", "4"}, {"2", "3"}, {"2", "4"}, {"3", "4"}}
	s := snapshot(t, ids, pairs)

	tr, err := testEngine().Escalate(context.Background(), s, MonteCarlo, 1, 50, 3)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Result.Success {
		t.Fatal("K4 cannot be 3-colored")
	}
	if tr.FinalK != 3 || len(tr.Attempts) != 3 {
		t.Errorf("FinalK/attempts = %d/%d, want 3/3", tr.FinalK, len(tr.Attempts))
	}
	if tr.Result.Iterations != 150 {
		t.Errorf("Iterations = %d, want 150", tr.Result.Iterations)
	}
	if tr.Result.Conflicts != tr.Attempts[2].Conflicts {
		t.Errorf("Conflicts = %d, want last attempt's %d", tr.Result.Conflicts, tr.Attempts[2].Conflicts)
	}
	if got := graph.CountColorsUsed(tr.Result.Vertices); got > 3 {
		t.Errorf("last coloring uses %d colors, want <= 3", got)
	}
}

func TestEscalateTerminationBound(t *testing.T) {
	ids := []graph.ID{"1", "2", "3", "4", "5"}
	pairs := [][2]graph.ID{{"1", "2"}, {"1", "3"}, {"1", "4"}, {"1", "5"}, {"2", "3"}, {"2", "4"}, {"2", "5"}, {"3", "4"}, {"3", "5"}, {"4", "5"}}
	s := snapshot(t, ids, pairs)

	tests := []struct {
		initialK, budget, maxK int
	}{
		{1, 10, 1},
		{2, 25, 4},
		{3, 40, 6},
	}

	for _, tt := range tests {
		tr, err := testEngine().Escalate(context.Background(), s, LasVegas, tt.initialK, tt.budget, tt.maxK)
		if err != nil {
			t.Fatal(err)
		}
		bound := (tt.maxK - tt.initialK + 1) * tt.budget
		if tr.Result.Iterations > bound {
			t.Errorf("k %d..%d budget %d: %d iterations exceed bound %d", tt.initialK, tt.maxK, tt.budget, tr.Result.Iterations, bound)
		}
		if tr.FinalK < tt.initialK || tr.FinalK > tt.maxK {
			t.Errorf("FinalK = %d outside [%d, %d]", tr.FinalK, tt.initialK, tt.maxK)
		}
	}
}

func TestEscalateTraceSharesIterationAxis(t *testing.T) {
	tr, err := testEngine().Escalate(context.Background(), triangle(t), LasVegas, 1, 30, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(tr.Result.Trace); i++ {
		if tr.Result.Trace[i].Iteration <= tr.Result.Trace[i-1].Iteration {
			t.Fatalf("trace iterations not increasing at %d: %+v", i, tr.Result.Trace)
		}
	}
	last := tr.Result.Trace[len(tr.Result.Trace)-1]
	if last.Iteration > tr.Result.Iterations {
		t.Errorf("last trace point %d beyond total %d", last.Iteration, tr.Result.Iterations)
	}
}

func TestEscalateRejects(t *testing.T) {
	ctx := context.Background()
	e := testEngine()
	s := triangle(t)

	tests := []struct {
		name string
		run  func() error
		want error
		code cerrors.Code
	}{
		{"inverted range", func() error { _, err := e.Escalate(ctx, s, LasVegas, 5, 10, 4); return err }, ErrInvalidRange, cerrors.ErrCodeInvalidRange},
		{"zero initial k", func() error { _, err := e.Escalate(ctx, s, LasVegas, 0, 10, 4); return err }, ErrInvalidK, cerrors.ErrCodeInvalidK},
		{"zero budget", func() error { _, err := e.Escalate(ctx, s, MonteCarlo, 2, 0, 4); return err }, ErrInvalidBudget, cerrors.ErrCodeInvalidBudget},
		{"unknown strategy", func() error { _, err := e.Escalate(ctx, s, "greedy", 2, 10, 4); return err }, ErrUnknownStrategy, cerrors.ErrCodeUnknownStrategy},
		{"empty graph", func() error { _, err := e.Escalate(ctx, graph.Snapshot{}, LasVegas, 2, 10, 4); return err }, ErrEmptyGraph, cerrors.ErrCodeEmptyGraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if !cerrors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", cerrors.GetCode(err), tt.code)
			}
		})
	}
}
