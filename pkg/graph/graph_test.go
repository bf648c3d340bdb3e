package graph

import (
	"errors"
	"testing"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/palette"
)

const (
	red  palette.Color = "#FF6B6B"
	cyan palette.Color = "#4ECDC4"
	blue palette.Color = "#45B7D1"
)

func triangle(t *testing.T) *Graph {
	t.Helper()
	g := New("")
	for _, id := range []ID{"1", "2", "3"} {
		if err := g.AddVertex(Vertex{ID: id}); err != nil {
			t.Fatalf("AddVertex(%s): %v", id, err)
		}
	}
	for _, e := range []Edge{{From: "1", To: "2"}, {From: "2", To: "3"}, {From: "1", To: "3"}} {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%s): %v", e, err)
		}
	}
	return g
}

func TestAddVertex(t *testing.T) {
	g := New("")
	if err := g.AddVertex(Vertex{ID: "a"}); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}

	tests := []struct {
		name     string
		v        Vertex
		sentinel error
		code     cerrors.Code
	}{
		{"duplicate", Vertex{ID: "a"}, ErrDuplicateVertex, cerrors.ErrCodeDuplicateVertex},
		{"empty id", Vertex{ID: ""}, ErrInvalidVertexID, cerrors.ErrCodeInvalidVertexID},
		{"control char", Vertex{ID: "a\nb"}, ErrInvalidVertexID, cerrors.ErrCodeInvalidVertexID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.AddVertex(tt.v)
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error = %v, want %v", err, tt.sentinel)
			}
			if !cerrors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", cerrors.GetCode(err), tt.code)
			}
			if !cerrors.IsStructural(err) {
				t.Error("expected a structural error")
			}
		})
	}

	if g.VertexCount() != 1 {
		t.Errorf("VertexCount = %d, want 1", g.VertexCount())
	}
}

func TestAddEdge(t *testing.T) {
	g := New("")
	_ = g.AddVertex(Vertex{ID: "1"})
	_ = g.AddVertex(Vertex{ID: "2"})
	if err := g.AddEdge(Edge{From: "1", To: "2"}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	tests := []struct {
		name     string
		e        Edge
		sentinel error
	}{
		{"reversed duplicate", Edge{From: "2", To: "1"}, ErrDuplicateEdge},
		{"same duplicate", Edge{From: "1", To: "2"}, ErrDuplicateEdge},
		{"unknown from", Edge{From: "9", To: "1"}, ErrUnknownVertex},
		{"unknown to", Edge{From: "1", To: "9"}, ErrUnknownVertex},
		{"self-loop", Edge{From: "1", To: "1"}, ErrSelfLoop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.AddEdge(tt.e)
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("AddEdge(%s) error = %v, want %v", tt.e, err, tt.sentinel)
			}
		})
	}

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
}

func TestQueries(t *testing.T) {
	g := New("")
	for _, id := range []ID{"1", "2", "3", "4"} {
		_ = g.AddVertex(Vertex{ID: id})
	}
	_ = g.AddEdge(Edge{From: "1", To: "2"})
	_ = g.AddEdge(Edge{From: "3", To: "1"})

	if !g.HasVertex("4") || g.HasVertex("5") {
		t.Error("HasVertex mismatch")
	}
	if !g.HasEdge("2", "1") || !g.HasEdge("1", "3") || g.HasEdge("2", "3") {
		t.Error("HasEdge should ignore order")
	}

	nb := g.Neighbors("1")
	if len(nb) != 2 || nb[0] != "2" || nb[1] != "3" {
		t.Errorf("Neighbors(1) = %v, want [2 3]", nb)
	}
	if g.Neighbors("4") != nil {
		t.Errorf("Neighbors(4) = %v, want nil", g.Neighbors("4"))
	}

	degrees := g.Degrees()
	want := map[ID]int{"1": 2, "2": 1, "3": 1, "4": 0}
	for id, d := range want {
		if degrees[id] != d || g.Degree(id) != d {
			t.Errorf("Degree(%s) = %d, want %d", id, degrees[id], d)
		}
	}
}

func TestColoring(t *testing.T) {
	g := triangle(t)

	if g.IsValidColoring() {
		t.Error("uncolored graph must not be a valid coloring")
	}
	if g.ConflictCount() != 0 {
		t.Errorf("uncolored ConflictCount = %d, want 0", g.ConflictCount())
	}

	_ = g.Recolor("1", red)
	_ = g.Recolor("2", red)
	_ = g.Recolor("3", cyan)

	conflicts := g.DetectConflicts()
	if len(conflicts) != 1 || !conflicts[0].Connects("1", "2") {
		t.Errorf("DetectConflicts = %v, want [1-2]", conflicts)
	}
	if again := g.DetectConflicts(); len(again) != len(conflicts) || again[0].String() != conflicts[0].String() {
		t.Errorf("DetectConflicts not idempotent: %v vs %v", again, conflicts)
	}
	if g.CountColorsUsed() != 2 {
		t.Errorf("CountColorsUsed = %d, want 2", g.CountColorsUsed())
	}

	_ = g.Recolor("2", blue)
	if !g.IsValidColoring() {
		t.Error("expected a valid coloring")
	}

	_ = g.Uncolor("3")
	if g.IsValidColoring() {
		t.Error("partially colored graph must not be valid")
	}

	if err := g.Recolor("x", red); !errors.Is(err, ErrUnknownVertex) {
		t.Errorf("Recolor(unknown) error = %v, want %v", err, ErrUnknownVertex)
	}

	g.ClearColors()
	if g.CountColorsUsed() != 0 {
		t.Errorf("after ClearColors CountColorsUsed = %d, want 0", g.CountColorsUsed())
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := New("demo")
	_ = g.AddVertex(Vertex{ID: "1", Color: red, Meta: Metadata{"label": "one"}})
	_ = g.AddVertex(Vertex{ID: "2"})
	_ = g.AddEdge(Edge{From: "1", To: "2"})

	c := g.Clone()
	_ = c.Recolor("1", cyan)
	_ = c.AddVertex(Vertex{ID: "3"})
	_ = c.AddEdge(Edge{From: "2", To: "3"})
	v, _ := c.Vertex("1")
	v.Meta["label"] = "changed"

	orig, _ := g.Vertex("1")
	if orig.Color != red {
		t.Errorf("original color = %s, want %s", orig.Color, red)
	}
	if orig.Meta["label"] != "one" {
		t.Errorf("original label = %v, want one", orig.Meta["label"])
	}
	if g.VertexCount() != 2 || g.EdgeCount() != 1 || g.Degree("2") != 1 {
		t.Error("mutating the clone changed the original")
	}
	if c.Tag() != "demo" {
		t.Errorf("clone tag = %q, want demo", c.Tag())
	}
}

func TestApplyColors(t *testing.T) {
	g := triangle(t)
	result := []Vertex{{ID: "1", Color: red}, {ID: "2", Color: cyan}, {ID: "9", Color: blue}}

	out := g.ApplyColors(result)

	if g.CountColorsUsed() != 0 {
		t.Error("ApplyColors mutated the receiver")
	}
	v1, _ := out.Vertex("1")
	v3, _ := out.Vertex("3")
	if v1.Color != red || v3.IsColored() {
		t.Errorf("applied colors = %s/%s, want %s/none", v1.Color, v3.Color, red)
	}
	if out.HasVertex("9") {
		t.Error("unknown ids must be ignored")
	}
}

func TestAddVertexCopiesMetadata(t *testing.T) {
	meta := Metadata{"x": 1}
	g := New("")
	_ = g.AddVertex(Vertex{ID: "1", Meta: meta})
	meta["x"] = 2

	v, _ := g.Vertex("1")
	if v.Meta["x"] != 1 {
		t.Errorf("Meta[x] = %v, want 1", v.Meta["x"])
	}

	_ = g.AddVertex(Vertex{ID: "2"})
	v2, _ := g.Vertex("2")
	if v2.Meta == nil {
		t.Error("Meta must never be nil after AddVertex")
	}
}

func TestStats(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Graph
		want  Stats
	}{
		{
			name:  "empty",
			build: func() *Graph { return New("") },
			want:  Stats{},
		},
		{
			name: "single vertex",
			build: func() *Graph {
				g := New("")
				_ = g.AddVertex(Vertex{ID: "1", Color: red})
				return g
			},
			want: Stats{Vertices: 1, ColorsUsed: 1, Valid: true},
		},
		{
			name: "colored triangle",
			build: func() *Graph {
				g := New("")
				for _, v := range []Vertex{{ID: "1", Color: red}, {ID: "2", Color: cyan}, {ID: "3", Color: red}} {
					_ = g.AddVertex(v)
				}
				_ = g.AddEdge(Edge{From: "1", To: "2"})
				_ = g.AddEdge(Edge{From: "2", To: "3"})
				_ = g.AddEdge(Edge{From: "1", To: "3"})
				return g
			},
			want: Stats{Vertices: 3, Edges: 3, MinDegree: 2, MaxDegree: 2, AvgDegree: 2, Density: 1, ColorsUsed: 2, Conflicts: 1},
		},
		{
			name: "path of four",
			build: func() *Graph {
				g := New("")
				for _, id := range []ID{"1", "2", "3", "4"} {
					_ = g.AddVertex(Vertex{ID: id})
				}
				_ = g.AddEdge(Edge{From: "1", To: "2"})
				_ = g.AddEdge(Edge{From: "2", To: "3"})
				_ = g.AddEdge(Edge{From: "3", To: "4"})
				return g
			},
			want: Stats{Vertices: 4, Edges: 3, MinDegree: 1, MaxDegree: 2, AvgDegree: 1.5, Density: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().Stats(); got != tt.want {
				t.Errorf("Stats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTag(t *testing.T) {
	g := New("")
	if g.Tag() != DefaultTag {
		t.Errorf("Tag = %q, want %q", g.Tag(), DefaultTag)
	}
	g.SetTag("random")
	if g.Tag() != "random" {
		t.Errorf("Tag = %q, want random", g.Tag())
	}
}
