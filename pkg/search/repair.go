package search

import (
	"context"
	"math"
	"time"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/palette"
)

// RepairStep is one accepted recolor move.
type RepairStep struct {
	Pass      int           `json:"pass"`
	Vertex    graph.ID      `json:"vertex"`
	From      palette.Color `json:"from"`
	To        palette.Color `json:"to"`
	Conflicts int           `json:"conflicts"` // total conflicts after the move
}

// RepairResult is the outcome of [Engine.Repair].
type RepairResult struct {
	Vertices         []graph.Vertex `json:"vertices"`
	K                int            `json:"k"`
	Passes           int            `json:"passes"`
	InitialConflicts int            `json:"initial_conflicts"`
	Conflicts        int            `json:"conflicts"`
	Steps            []RepairStep   `json:"steps,omitempty"`
	Success          bool           `json:"success"`
	Elapsed          time.Duration  `json:"-"`
	ElapsedMs        float64        `json:"elapsed_ms"`
}

// Accepted returns the number of recolor moves made.
func (r *RepairResult) Accepted() int { return len(r.Steps) }

// Repair improves the coloring of s with greedy first-improvement moves.
//
// Each pass visits the vertices in order. A vertex with at least one
// same-colored neighbor is moved to the first k-palette color, in palette
// order, that strictly lowers its own conflict count. A pass without any move
// ends the search, as does reaching [MaxRepairPasses]. Every accepted move
// strictly lowers the total conflict count.
//
// Uncolored vertices stay uncolored, and colors outside the k-palette are
// kept until their vertex is moved.
func (e *Engine) Repair(ctx context.Context, s graph.Snapshot, k int) (*RepairResult, error) {
	p, err := e.compile(s, k)
	if err != nil {
		return nil, err
	}

	start := e.clock.Now()
	assign := p.encode()
	total := p.conflicts(assign)
	res := &RepairResult{K: k, InitialConflicts: total}

	for pass := 1; pass <= MaxRepairPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res.Passes = pass
		improved := false
		for v := range assign {
			cur := assign[v]
			own := p.vertexConflicts(assign, v, cur)
			if own == 0 {
				continue
			}
			for c := 0; c < p.k; c++ {
				if c == cur {
					continue
				}
				if next := p.vertexConflicts(assign, v, c); next < own {
					assign[v] = c
					total += next - own
					res.Steps = append(res.Steps, RepairStep{
						Pass:      pass,
						Vertex:    p.vertices[v].ID,
						From:      p.colors[cur],
						To:        p.colors[c],
						Conflicts: total,
					})
					improved = true
					break
				}
			}
		}
		if !improved {
			break
		}
	}

	res.Elapsed = e.since(start)
	res.ElapsedMs = millis(res.Elapsed)
	res.Vertices = p.decode(assign)
	res.Conflicts = total
	res.Success = total == 0 && fullyColored(assign)
	e.searchHooks().OnRepairComplete(ctx, res.Passes, res.Accepted(), res.InitialConflicts, res.Conflicts, res.Elapsed)
	return res, nil
}

// PreviewResult estimates the effect of painting one vertex.
type PreviewResult struct {
	Vertex                    graph.ID      `json:"vertex"`
	Color                     palette.Color `json:"color"`
	SuccessProbabilityPercent int           `json:"success_probability_percent"`
	AffectedNeighborCount     int           `json:"affected_neighbor_count"`
	Neighbors                 int           `json:"neighbors"`
	Affected                  []graph.ID    `json:"affected,omitempty"`
}

// Preview reports how painting vertex id with c would interact with its
// neighbors, without changing anything. AffectedNeighborCount counts the
// neighbors that already hold c and would need to change. The success
// probability is 100 when there are none, otherwise
// round(100 - 100*affected/neighbors).
//
// When p is non-empty, c must be one of its colors. Colors are compared in
// [palette.Normalize] form, and the result reports c normalized.
func Preview(s graph.Snapshot, id graph.ID, c palette.Color, p palette.Palette) (*PreviewResult, error) {
	c = palette.Normalize(c)
	if c.IsNone() {
		return nil, cerrors.New(cerrors.ErrCodeInvalidColor, "candidate color must not be empty")
	}
	if len(p) > 0 && !p.Contains(c) {
		return nil, cerrors.New(cerrors.ErrCodeInvalidColor, "color %s is not in the %d-color palette", c, len(p))
	}
	if !hasVertex(s.Vertices, id) {
		return nil, cerrors.Wrap(cerrors.ErrCodeUnknownVertex, graph.ErrUnknownVertex, "vertex %s", id)
	}

	colors := graph.ColorMap(s.Vertices)
	res := &PreviewResult{Vertex: id, Color: c, SuccessProbabilityPercent: 100}
	for _, nb := range graph.NeighborsOf(id, s.Edges) {
		res.Neighbors++
		if colors[nb] == c {
			res.Affected = append(res.Affected, nb)
		}
	}
	res.AffectedNeighborCount = len(res.Affected)
	if res.AffectedNeighborCount > 0 {
		pct := 100 - 100*float64(res.AffectedNeighborCount)/float64(res.Neighbors)
		res.SuccessProbabilityPercent = int(math.Round(math.Max(0, pct)))
	}
	return res, nil
}

// Recolor returns a copy of s with vertex id painted c in normalized form.
// Passing palette.None uncolors the vertex. The input snapshot is not modified.
func Recolor(s graph.Snapshot, id graph.ID, c palette.Color) (graph.Snapshot, error) {
	if !hasVertex(s.Vertices, id) {
		return graph.Snapshot{}, cerrors.Wrap(cerrors.ErrCodeUnknownVertex, graph.ErrUnknownVertex, "vertex %s", id)
	}
	out := graph.Snapshot{
		Vertices: make([]graph.Vertex, len(s.Vertices)),
		Edges:    make([]graph.Edge, len(s.Edges)),
		Tag:      s.Tag,
	}
	for i, v := range s.Vertices {
		out.Vertices[i] = v.Clone()
		if v.ID == id {
			out.Vertices[i].Color = palette.Normalize(c)
		}
	}
	for i, ed := range s.Edges {
		out.Edges[i] = ed.Clone()
	}
	return out, nil
}

func hasVertex(vs []graph.Vertex, id graph.ID) bool {
	for _, v := range vs {
		if v.ID == id {
			return true
		}
	}
	return false
}
