package search

import (
	"context"
	"errors"
	"testing"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/palette"
)

func TestRepairMonochromeTriangle(t *testing.T) {
	s := colored(triangle(t), red, red, red)

	r, err := testEngine().Repair(context.Background(), s, 3)
	if err != nil {
		t.Fatal(err)
	}

	// First-improvement in palette order: 1 -> cyan, 2 -> blue.
	want := []palette.Color{cyan, blue, red}
	for i, v := range r.Vertices {
		if v.Color != want[i] {
			t.Errorf("vertex %s = %s, want %s", v.ID, v.Color, want[i])
		}
	}
	if r.InitialConflicts != 3 || r.Conflicts != 0 || !r.Success {
		t.Errorf("conflicts %d -> %d, success %v", r.InitialConflicts, r.Conflicts, r.Success)
	}
	if r.Passes != 2 || r.Accepted() != 2 {
		t.Errorf("Passes/Accepted = %d/%d, want 2/2", r.Passes, r.Accepted())
	}
}

func TestRepairNeverIncreasesConflicts(t *testing.T) {
	ids := []graph.ID{"1", "2", "3", "4", "5", "6"}
	pairs := [][2]graph.ID{{"1", "2"}, {"1", "3"}, {"2", "3"}, {"3", "4"}, {"4", "5"}, {"5", "6"}, {"6", "1"}, {"2", "5"}}
	s := colored(snapshot(t, ids, pairs), red, red, red, red, red, red)

	r, err := testEngine().Repair(context.Background(), s, 2)
	if err != nil {
		t.Fatal(err)
	}

	prev := r.InitialConflicts
	for _, step := range r.Steps {
		if step.Conflicts >= prev {
			t.Errorf("step %+v did not lower conflicts below %d", step, prev)
		}
		prev = step.Conflicts
	}
	if r.Conflicts != prev {
		t.Errorf("Conflicts = %d, last step says %d", r.Conflicts, prev)
	}
	if got := graph.ConflictCount(r.Vertices, s.Edges); got != r.Conflicts {
		t.Errorf("returned coloring has %d conflicts, result says %d", got, r.Conflicts)
	}
}

func TestRepairLocalOptimum(t *testing.T) {
	s := colored(triangle(t), red, red, red)

	r, err := testEngine().Repair(context.Background(), s, 2)
	if err != nil {
		t.Fatal(err)
	}
	if r.Conflicts != 1 || r.Success {
		t.Errorf("Conflicts/Success = %d/%v, want 1/false", r.Conflicts, r.Success)
	}
	if r.Passes != 2 {
		t.Errorf("Passes = %d, want 2", r.Passes)
	}
}

func TestRepairValidColoringIsUntouched(t *testing.T) {
	s := colored(path3(t), red, cyan, red)

	r, err := testEngine().Repair(context.Background(), s, 2)
	if err != nil {
		t.Fatal(err)
	}
	if r.Passes != 1 || r.Accepted() != 0 || !r.Success {
		t.Errorf("Passes/Accepted/Success = %d/%d/%v, want 1/0/true", r.Passes, r.Accepted(), r.Success)
	}
}

func TestRepairKeepsUncoloredAndForeignColors(t *testing.T) {
	s := snapshot(t, []graph.ID{"1", "2", "3"}, [][2]graph.ID{{"1", "2"}, {"2", "3"}})
	s = colored(s, "#000000", "#000000")

	r, err := testEngine().Repair(context.Background(), s, 2)
	if err != nil {
		t.Fatal(err)
	}
	if r.Vertices[0].Color != red || r.Vertices[1].Color != "#000000" {
		t.Errorf("colors = %s/%s, want %s/#000000", r.Vertices[0].Color, r.Vertices[1].Color, red)
	}
	if r.Vertices[2].IsColored() {
		t.Errorf("uncolored vertex was painted %s", r.Vertices[2].Color)
	}
	if r.Conflicts != 0 || r.Success {
		t.Errorf("Conflicts/Success = %d/%v, want 0/false", r.Conflicts, r.Success)
	}
}

func TestPreview(t *testing.T) {
	s := snapshot(t, []graph.ID{"1", "2", "3", "4", "5"}, [][2]graph.ID{{"1", "2"}, {"1", "3"}, {"4", "1"}})
	mixed := colored(s, "", red, red, cyan)

	tests := []struct {
		name      string
		s         graph.Snapshot
		id        graph.ID
		color     palette.Color
		wantPct   int
		wantCount int
	}{
		{"uncolored neighbors", s, "1", red, 100, 0},
		{"two of three neighbors", mixed, "1", red, 33, 2},
		{"one of three neighbors", mixed, "1", cyan, 67, 1},
		{"free color", mixed, "1", blue, 100, 0},
		{"single neighbor", mixed, "4", cyan, 100, 0},
		{"isolated vertex", mixed, "5", red, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Preview(tt.s, tt.id, tt.color, palette.MustNew(3))
			if err != nil {
				t.Fatal(err)
			}
			if got.SuccessProbabilityPercent != tt.wantPct {
				t.Errorf("SuccessProbabilityPercent = %d, want %d", got.SuccessProbabilityPercent, tt.wantPct)
			}
			if got.AffectedNeighborCount != tt.wantCount {
				t.Errorf("AffectedNeighborCount = %d, want %d", got.AffectedNeighborCount, tt.wantCount)
			}
		})
	}
}

func TestPreviewRejects(t *testing.T) {
	s := path3(t)

	_, err := Preview(s, "9", red, nil)
	if !errors.Is(err, graph.ErrUnknownVertex) {
		t.Errorf("unknown vertex error = %v", err)
	}

	_, err = Preview(s, "1", palette.Master[5], palette.MustNew(3))
	if !cerrors.Is(err, cerrors.ErrCodeInvalidColor) {
		t.Errorf("out-of-palette error = %v", err)
	}

	_, err = Preview(s, "1", palette.None, nil)
	if !cerrors.Is(err, cerrors.ErrCodeInvalidColor) {
		t.Errorf("empty color error = %v", err)
	}
}

func TestRecolor(t *testing.T) {
	s := colored(path3(t), red, cyan, red)

	out, err := Recolor(s, "2", red)
	if err != nil {
		t.Fatal(err)
	}
	if s.Vertices[1].Color != cyan {
		t.Error("Recolor mutated its input")
	}
	if out.Vertices[1].Color != red {
		t.Errorf("recolored vertex = %s, want %s", out.Vertices[1].Color, red)
	}
	if graph.ConflictCount(out.Vertices, out.Edges) != 2 {
		t.Errorf("conflicts after recolor = %d, want 2", graph.ConflictCount(out.Vertices, out.Edges))
	}

	if _, err := Recolor(s, "x", red); !errors.Is(err, graph.ErrUnknownVertex) {
		t.Errorf("unknown vertex error = %v", err)
	}
}

func TestPreviewMatchesColorsIgnoringCase(t *testing.T) {
	s := colored(snapshot(t, []graph.ID{"1", "2"}, [][2]graph.ID{{"1", "2"}}), red, cyan)
	p := palette.MustNew(3)

	for _, candidate := range []palette.Color{"#4ECDC4", "#4ecdc4", "#4eCDc4"} {
		pr, err := Preview(s, "1", candidate, p)
		if err != nil {
			t.Fatalf("Preview(%s): %v", candidate, err)
		}
		if pr.SuccessProbabilityPercent != 0 || pr.AffectedNeighborCount != 1 {
			t.Errorf("Preview(%s) = %d%%, %d affected, want 0%%, 1 affected",
				candidate, pr.SuccessProbabilityPercent, pr.AffectedNeighborCount)
		}
		if pr.Color != cyan {
			t.Errorf("Preview(%s).Color = %s, want %s", candidate, pr.Color, cyan)
		}
	}
}

func TestRepairAgreesWithOracleOnColorCase(t *testing.T) {
	tests := []struct {
		name   string
		colors []palette.Color
	}{
		{"same color different case", []palette.Color{"#ff6b6b", "#FF6B6B"}},
		{"shorthand and full", []palette.Color{"#fff", "#FFFFFF"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := colored(snapshot(t, []graph.ID{"1", "2"}, [][2]graph.ID{{"1", "2"}}), tt.colors...)

			oracle := graph.ConflictCount(s.Vertices, s.Edges)
			if oracle != 1 || graph.IsValidColoring(s.Vertices, s.Edges) {
				t.Fatalf("oracle: %d conflicts, valid %v, want 1 conflict, invalid", oracle, graph.IsValidColoring(s.Vertices, s.Edges))
			}

			r, err := testEngine().Repair(context.Background(), s, 2)
			if err != nil {
				t.Fatal(err)
			}
			if r.InitialConflicts != oracle {
				t.Errorf("InitialConflicts = %d, oracle says %d", r.InitialConflicts, oracle)
			}
			if !r.Success || graph.ConflictCount(r.Vertices, s.Edges) != 0 {
				t.Errorf("repair did not reach a valid coloring: %+v", r.Vertices)
			}
		})
	}
}

func TestRecolorNormalizesColor(t *testing.T) {
	s := path3(t)
	out, err := Recolor(s, "2", "#abc")
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Vertices[1].Color; got != "#AABBCC" {
		t.Errorf("recolored vertex = %s, want #AABBCC", got)
	}
}
