package graph

// Snapshot is the flat, detached form of a graph exchanged with searches and
// serialized to JSON. Holding a Snapshot never aliases a [Graph]'s internals.
type Snapshot struct {
	Vertices []Vertex `json:"vertices"`
	Edges    []Edge   `json:"edges"`
	Tag      string   `json:"tag,omitempty"`
}

// Snapshot returns a detached copy of the graph.
func (g *Graph) Snapshot() Snapshot {
	return Snapshot{
		Vertices: g.Vertices(),
		Edges:    g.Edges(),
		Tag:      g.tag,
	}
}

// FromSnapshot builds a graph from s, enforcing every structural invariant.
// Colors and metadata are preserved.
func FromSnapshot(s Snapshot) (*Graph, error) {
	g := New(s.Tag)
	for _, v := range s.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range s.Edges {
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Stats summarizes the structure and current coloring of a graph.
type Stats struct {
	Vertices   int     `json:"vertices"`
	Edges      int     `json:"edges"`
	MinDegree  int     `json:"min_degree"`
	MaxDegree  int     `json:"max_degree"`
	AvgDegree  float64 `json:"avg_degree"`
	Density    float64 `json:"density"`
	ColorsUsed int     `json:"colors_used"`
	Conflicts  int     `json:"conflicts"`
	Valid      bool    `json:"valid"`
}

// Stats computes degree, density and coloring statistics. Density is
// 2E / (V(V-1)) and is 0 for graphs with fewer than two vertices.
func (g *Graph) Stats() Stats {
	s := Stats{
		Vertices:   len(g.vertices),
		Edges:      len(g.edges),
		ColorsUsed: g.CountColorsUsed(),
		Conflicts:  g.ConflictCount(),
		Valid:      g.IsValidColoring(),
	}
	if s.Vertices == 0 {
		return s
	}

	s.MinDegree = len(g.adj[g.vertices[0].ID])
	total := 0
	for _, v := range g.vertices {
		d := len(g.adj[v.ID])
		total += d
		s.MinDegree = min(s.MinDegree, d)
		s.MaxDegree = max(s.MaxDegree, d)
	}
	s.AvgDegree = float64(total) / float64(s.Vertices)
	if s.Vertices > 1 {
		s.Density = 2 * float64(s.Edges) / float64(s.Vertices*(s.Vertices-1))
	}
	return s
}
