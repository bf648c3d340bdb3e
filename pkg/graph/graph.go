package graph

import (
	"errors"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/palette"
)

var (
	// ErrInvalidVertexID is returned by [Graph.AddVertex] when the ID is empty,
	// too long or contains control characters.
	ErrInvalidVertexID = errors.New("invalid vertex ID")

	// ErrDuplicateVertex is returned by [Graph.AddVertex] when a vertex with
	// the same ID already exists.
	ErrDuplicateVertex = errors.New("duplicate vertex")

	// ErrUnknownVertex is returned by [Graph.AddEdge] when an endpoint is not
	// in the graph, and by [Graph.Recolor] for an absent vertex.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrDuplicateEdge is returned by [Graph.AddEdge] when an edge already
	// connects the same unordered pair.
	ErrDuplicateEdge = errors.New("duplicate edge")

	// ErrSelfLoop is returned by [Graph.AddEdge] when both endpoints are the
	// same vertex. A self-loop can never be properly colored.
	ErrSelfLoop = errors.New("self-loop")
)

// DefaultTag describes a graph built by hand.
const DefaultTag = "custom"

// Graph is an undirected simple graph with optionally colored vertices.
//
// Vertices and edges keep their insertion order. The zero value is not
// usable; create graphs with [New] or [FromSnapshot]. Graph is not safe for
// concurrent use without external synchronization.
type Graph struct {
	vertices []Vertex
	index    map[ID]int
	edges    []Edge
	pairs    map[pair]struct{}
	adj      map[ID][]ID
	tag      string
}

// New creates an empty graph with the given descriptive tag. An empty tag
// becomes [DefaultTag].
func New(tag string) *Graph {
	if tag == "" {
		tag = DefaultTag
	}
	return &Graph{
		index: make(map[ID]int),
		pairs: make(map[pair]struct{}),
		adj:   make(map[ID][]ID),
		tag:   tag,
	}
}

// Tag returns the graph's descriptive tag.
func (g *Graph) Tag() string { return g.tag }

// SetTag replaces the descriptive tag.
func (g *Graph) SetTag(tag string) {
	if tag == "" {
		tag = DefaultTag
	}
	g.tag = tag
}

// AddVertex appends v. Its metadata is copied so later changes to the
// caller's map do not leak into the graph, and its color is stored in
// [palette.Normalize] form.
func (g *Graph) AddVertex(v Vertex) error {
	if err := cerrors.ValidateVertexID(string(v.ID)); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidVertexID, ErrInvalidVertexID, "%s", cerrors.UserMessage(err))
	}
	if _, ok := g.index[v.ID]; ok {
		return cerrors.Wrap(cerrors.ErrCodeDuplicateVertex, ErrDuplicateVertex, "vertex %s already exists", v.ID)
	}
	v = v.Clone()
	v.Color = palette.Normalize(v.Color)
	g.index[v.ID] = len(g.vertices)
	g.vertices = append(g.vertices, v)
	g.adj[v.ID] = nil
	return nil
}

// AddEdge appends e after checking that both endpoints exist, that it is not
// a self-loop, and that no edge already connects the same unordered pair.
func (g *Graph) AddEdge(e Edge) error {
	for _, id := range []ID{e.From, e.To} {
		if _, ok := g.index[id]; !ok {
			return cerrors.Wrap(cerrors.ErrCodeUnknownVertex, ErrUnknownVertex, "edge %s references vertex %s", e, id)
		}
	}
	if e.From == e.To {
		return cerrors.Wrap(cerrors.ErrCodeSelfLoop, ErrSelfLoop, "edge %s connects a vertex to itself", e)
	}
	key := pairOf(e.From, e.To)
	if _, ok := g.pairs[key]; ok {
		return cerrors.Wrap(cerrors.ErrCodeDuplicateEdge, ErrDuplicateEdge, "vertices %s and %s are already connected", e.From, e.To)
	}
	e = e.Clone()
	g.pairs[key] = struct{}{}
	g.edges = append(g.edges, e)
	g.adj[e.From] = append(g.adj[e.From], e.To)
	g.adj[e.To] = append(g.adj[e.To], e.From)
	return nil
}

// HasVertex reports whether id is in the graph.
func (g *Graph) HasVertex(id ID) bool {
	_, ok := g.index[id]
	return ok
}

// HasEdge reports whether an edge connects a and b in either direction.
func (g *Graph) HasEdge(a, b ID) bool {
	_, ok := g.pairs[pairOf(a, b)]
	return ok
}

// Vertex returns a copy of the vertex with the given ID.
func (g *Graph) Vertex(id ID) (Vertex, bool) {
	i, ok := g.index[id]
	if !ok {
		return Vertex{}, false
	}
	return g.vertices[i].Clone(), true
}

// Vertices returns copies of all vertices in insertion order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.Clone()
	}
	return out
}

// Edges returns copies of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = e.Clone()
	}
	return out
}

// IDs returns the vertex IDs in insertion order.
func (g *Graph) IDs() []ID {
	out := make([]ID, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.ID
	}
	return out
}

func (g *Graph) VertexCount() int { return len(g.vertices) }
func (g *Graph) EdgeCount() int   { return len(g.edges) }

// Neighbors returns the vertices adjacent to id, in edge insertion order.
// Returns nil for an unknown vertex.
func (g *Graph) Neighbors(id ID) []ID {
	n := g.adj[id]
	if len(n) == 0 {
		return nil
	}
	out := make([]ID, len(n))
	copy(out, n)
	return out
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id ID) int { return len(g.adj[id]) }

// Degrees returns the degree of every vertex.
func (g *Graph) Degrees() map[ID]int {
	out := make(map[ID]int, len(g.vertices))
	for _, v := range g.vertices {
		out[v.ID] = len(g.adj[v.ID])
	}
	return out
}

// DetectConflicts returns every edge whose endpoints share a color.
func (g *Graph) DetectConflicts() []Edge {
	return ConflictEdges(g.vertices, g.edges)
}

// ConflictCount returns len(DetectConflicts()).
func (g *Graph) ConflictCount() int {
	return ConflictCount(g.vertices, g.edges)
}

// IsValidColoring reports whether the graph has no conflicts and every vertex
// is colored. An uncolored or empty graph is not a valid coloring.
func (g *Graph) IsValidColoring() bool {
	return IsValidColoring(g.vertices, g.edges)
}

// CountColorsUsed returns the number of distinct colors currently assigned.
func (g *Graph) CountColorsUsed() int {
	return CountColorsUsed(g.vertices)
}

// Recolor sets the color of a single vertex. Passing [palette.None] uncolors it.
// Hex colors are stored in [palette.Normalize] form.
func (g *Graph) Recolor(id ID, c palette.Color) error {
	i, ok := g.index[id]
	if !ok {
		return cerrors.Wrap(cerrors.ErrCodeUnknownVertex, ErrUnknownVertex, "vertex %s", id)
	}
	g.vertices[i].Color = palette.Normalize(c)
	return nil
}

// Uncolor removes the color of a single vertex.
func (g *Graph) Uncolor(id ID) error { return g.Recolor(id, palette.None) }

// ClearColors resets every vertex to uncolored.
func (g *Graph) ClearColors() {
	for i := range g.vertices {
		g.vertices[i].Color = palette.None
	}
}

// Clone returns a deep copy of the graph.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		vertices: g.Vertices(),
		index:    make(map[ID]int, len(g.index)),
		edges:    g.Edges(),
		pairs:    make(map[pair]struct{}, len(g.pairs)),
		adj:      make(map[ID][]ID, len(g.adj)),
		tag:      g.tag,
	}
	for id, i := range g.index {
		out.index[id] = i
	}
	for p := range g.pairs {
		out.pairs[p] = struct{}{}
	}
	for id, n := range g.adj {
		out.adj[id] = append([]ID(nil), n...)
	}
	return out
}

// ApplyColors returns a clone of g whose colors are taken from vs. Vertices
// of g missing from vs keep their color; entries of vs unknown to g are
// ignored. Metadata of g is left untouched.
func (g *Graph) ApplyColors(vs []Vertex) *Graph {
	out := g.Clone()
	for _, v := range vs {
		if i, ok := out.index[v.ID]; ok {
			out.vertices[i].Color = palette.Normalize(v.Color)
		}
	}
	return out
}
