package graph

import "github.com/matzehuels/chromatic/pkg/palette"

// NeighborsOf returns the vertices adjacent to id in edges, in edge order.
// Parallel edges in a malformed snapshot are reported once.
func NeighborsOf(id ID, edges []Edge) []ID {
	var out []ID
	seen := make(map[ID]bool)
	for _, e := range edges {
		if !e.HasEndpoint(id) {
			continue
		}
		n := e.Other(id)
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// NeighborColors returns the distinct colors held by the neighbors of id,
// in order of first appearance. Uncolored neighbors contribute nothing.
func NeighborColors(id ID, vertices []Vertex, edges []Edge) []palette.Color {
	colors := ColorMap(vertices)
	var out []palette.Color
	seen := make(map[palette.Color]bool)
	for _, n := range NeighborsOf(id, edges) {
		c := colors[n]
		if c.IsNone() || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// ConflictEdges returns every edge whose endpoints are both colored with the
// same color. Edges touching a vertex absent from vertices are ignored.
func ConflictEdges(vertices []Vertex, edges []Edge) []Edge {
	colors := ColorMap(vertices)
	var out []Edge
	for _, e := range edges {
		if conflicting(colors, e) {
			out = append(out, e)
		}
	}
	return out
}

// ConflictCount returns len(ConflictEdges(vertices, edges)) without
// allocating the edge list.
func ConflictCount(vertices []Vertex, edges []Edge) int {
	colors := ColorMap(vertices)
	n := 0
	for _, e := range edges {
		if conflicting(colors, e) {
			n++
		}
	}
	return n
}

// IsValidColoring reports whether vertices is non-empty, fully colored and
// conflict-free with respect to edges.
func IsValidColoring(vertices []Vertex, edges []Edge) bool {
	if len(vertices) == 0 {
		return false
	}
	for _, v := range vertices {
		if !v.IsColored() {
			return false
		}
	}
	return ConflictCount(vertices, edges) == 0
}

// VertexConflicts returns the number of neighbors of id holding id's color.
// It is 0 when id is uncolored or absent.
func VertexConflicts(id ID, vertices []Vertex, edges []Edge) int {
	colors := ColorMap(vertices)
	c := colors[id]
	if c.IsNone() {
		return 0
	}
	n := 0
	for _, nb := range NeighborsOf(id, edges) {
		if colors[nb] == c {
			n++
		}
	}
	return n
}

// CountColorsUsed returns the number of distinct colors assigned in vertices.
func CountColorsUsed(vertices []Vertex) int {
	seen := make(map[palette.Color]struct{})
	for _, v := range vertices {
		if v.IsColored() {
			seen[palette.Normalize(v.Color)] = struct{}{}
		}
	}
	return len(seen)
}

// ColorMap indexes vertex colors by ID. Colors are returned in
// [palette.Normalize] form, so every oracle function treats "#4ecdc4" and
// "#4ECDC4" as the same color.
func ColorMap(vertices []Vertex) map[ID]palette.Color {
	out := make(map[ID]palette.Color, len(vertices))
	for _, v := range vertices {
		out[v.ID] = palette.Normalize(v.Color)
	}
	return out
}

// ValidateSnapshot checks the structural invariants a [Graph] enforces:
// valid unique vertex IDs, edges between known distinct vertices, and no
// repeated unordered pair. It returns the first violation found.
func ValidateSnapshot(vertices []Vertex, edges []Edge) error {
	g := New("")
	for _, v := range vertices {
		if err := g.AddVertex(Vertex{ID: v.ID}); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(Edge{From: e.From, To: e.To}); err != nil {
			return err
		}
	}
	return nil
}

func conflicting(colors map[ID]palette.Color, e Edge) bool {
	a, okA := colors[e.From]
	b, okB := colors[e.To]
	return okA && okB && !a.IsNone() && a == b
}
