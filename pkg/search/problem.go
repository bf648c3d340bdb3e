package search

import (
	cerrors "github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/palette"
)

// problem is the index-based form of a snapshot used by the inner loops.
// Colors are palette indices; -1 means uncolored. Indices >= k name colors
// that were present in the input but are not part of the k-palette.
type problem struct {
	vertices []graph.Vertex
	edges    [][2]int
	adj      [][]int
	k        int
	colors   palette.Palette
}

func (e *Engine) compile(s graph.Snapshot, k int) (*problem, error) {
	if len(s.Vertices) == 0 {
		return nil, cerrors.Wrap(cerrors.ErrCodeEmptyGraph, ErrEmptyGraph, "cannot color a graph without vertices")
	}
	if k < 1 {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidK, ErrInvalidK, "k must be >= 1, got %d", k)
	}
	if err := graph.ValidateSnapshot(s.Vertices, s.Edges); err != nil {
		return nil, err
	}
	colors, err := e.Palette(k)
	if err != nil {
		return nil, err
	}

	p := &problem{
		vertices: make([]graph.Vertex, len(s.Vertices)),
		edges:    make([][2]int, len(s.Edges)),
		adj:      make([][]int, len(s.Vertices)),
		k:        k,
		colors:   colors,
	}
	index := make(map[graph.ID]int, len(s.Vertices))
	for i, v := range s.Vertices {
		p.vertices[i] = v.Clone()
		index[v.ID] = i
	}
	for i, ed := range s.Edges {
		a, b := index[ed.From], index[ed.To]
		p.edges[i] = [2]int{a, b}
		p.adj[a] = append(p.adj[a], b)
		p.adj[b] = append(p.adj[b], a)
	}
	return p, nil
}

// encode maps the snapshot's current colors to indices. Colors are matched
// in normalized form, the same way the graph oracle compares them. Colors
// outside the k-palette get indices past k so equality between them is
// preserved.
func (p *problem) encode() []int {
	assign := make([]int, len(p.vertices))
	for i, v := range p.vertices {
		if !v.IsColored() {
			assign[i] = -1
			continue
		}
		idx := p.colors.Index(v.Color)
		if idx < 0 {
			p.colors = append(p.colors, palette.Normalize(v.Color))
			idx = len(p.colors) - 1
		}
		assign[i] = idx
	}
	return assign
}

// decode materializes an assignment as new vertices with the input metadata.
func (p *problem) decode(assign []int) []graph.Vertex {
	out := make([]graph.Vertex, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = v.Clone()
		if assign[i] >= 0 {
			out[i].Color = p.colors[assign[i]]
		} else {
			out[i].Color = palette.None
		}
	}
	return out
}

func (p *problem) randomize(e *Engine, assign []int) {
	for i := range assign {
		assign[i] = e.rng.IntN(p.k)
	}
}

func (p *problem) conflicts(assign []int) int {
	n := 0
	for _, ed := range p.edges {
		if c := assign[ed[0]]; c >= 0 && c == assign[ed[1]] {
			n++
		}
	}
	return n
}

// vertexConflicts counts neighbors of v that hold color c.
func (p *problem) vertexConflicts(assign []int, v, c int) int {
	if c < 0 {
		return 0
	}
	n := 0
	for _, nb := range p.adj[v] {
		if assign[nb] == c {
			n++
		}
	}
	return n
}

func fullyColored(assign []int) bool {
	for _, c := range assign {
		if c < 0 {
			return false
		}
	}
	return true
}
