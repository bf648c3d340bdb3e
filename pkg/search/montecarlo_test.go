package search

import (
	"context"
	"testing"

	"github.com/matzehuels/chromatic/pkg/graph"
)

func TestBestOfSamplingTraceIsNonIncreasing(t *testing.T) {
	// Wheel with five spokes: needs 4 colors, so k=3 never succeeds.
	ids := []graph.ID{"hub", "1", "2", "3", "4", "5"}
	pairs := [][2]graph.ID{
		{"1", "2"}, {"2", "3"}, {"3", "4"}, {"4", "5"}, {"5", "1"},
		{"hub", "1"}, {"hub", "2"}, {"hub", "3"}, {"hub", "4"}, {"hub", "5"},
	}
	s := snapshot(t, ids, pairs)

	r, err := testEngine().BestOfSampling(context.Background(), s, 3, 400)
	if err != nil {
		t.Fatal(err)
	}
	if r.Success {
		t.Fatal("an odd wheel cannot be 3-colored")
	}
	if r.Iterations != 400 {
		t.Errorf("Iterations = %d, want 400", r.Iterations)
	}
	if r.Trace[0].Iteration != 1 {
		t.Errorf("first trace point at %d, want 1", r.Trace[0].Iteration)
	}
	for i := 1; i < len(r.Trace); i++ {
		if r.Trace[i].Conflicts > r.Trace[i-1].Conflicts {
			t.Errorf("trace increases at %d: %+v -> %+v", i, r.Trace[i-1], r.Trace[i])
		}
		if r.Trace[i].Iteration <= r.Trace[i-1].Iteration {
			t.Errorf("trace iterations not increasing at %d", i)
		}
	}

	last := r.Trace[len(r.Trace)-1]
	if last.Conflicts != r.Conflicts {
		t.Errorf("last trace point %d != result conflicts %d", last.Conflicts, r.Conflicts)
	}
	if got := graph.ConflictCount(r.Vertices, s.Edges); got != r.Conflicts {
		t.Errorf("returned coloring has %d conflicts, result says %d", got, r.Conflicts)
	}
}

func TestBestOfSamplingTriangleKeepsBest(t *testing.T) {
	s := triangle(t)

	r, err := testEngine().BestOfSampling(context.Background(), s, 2, 200)
	if err != nil {
		t.Fatal(err)
	}
	if r.Success {
		t.Fatal("a triangle cannot be 2-colored")
	}
	// Every 2-coloring of a triangle has at least one conflict; one is reachable.
	if r.Conflicts != 1 {
		t.Errorf("Conflicts = %d, want 1", r.Conflicts)
	}
	if r.Strategy != "Monte Carlo" {
		t.Errorf("Strategy = %q", r.Strategy)
	}
}

func TestBestOfSamplingStopsEarly(t *testing.T) {
	s := path3(t)

	r, err := testEngine().BestOfSampling(context.Background(), s, 3, 10000)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Success {
		t.Fatal("path should be 3-colorable within the budget")
	}
	if r.Iterations >= 10000 {
		t.Errorf("Iterations = %d, expected an early stop", r.Iterations)
	}
	assertValid(t, r.Vertices, s.Edges)
	last := r.Trace[len(r.Trace)-1]
	if last.Iteration != r.Iterations || last.Conflicts != 0 {
		t.Errorf("last trace point = %+v, want success at %d", last, r.Iterations)
	}
}
