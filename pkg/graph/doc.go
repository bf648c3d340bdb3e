// Package graph provides the undirected graph model colored by chromatic.
//
// # Overview
//
// A [Graph] owns an ordered set of [Vertex] values and a set of [Edge]
// values. Every vertex has a caller-assigned [ID] and an optional
// [palette.Color]; every edge is an unordered pair of vertex IDs. Both carry
// an open [Metadata] map for auxiliary fields that must survive cloning and
// serialization.
//
// The model enforces its structural invariants at the boundary:
//
//   - [Graph.AddVertex] rejects duplicate and malformed IDs
//   - [Graph.AddEdge] rejects unknown endpoints, self-loops and duplicate
//     unordered pairs, so (1,2) followed by (2,1) fails
//
// Rejections are *errors.Error values from pkg/errors wrapping one of the
// sentinel errors below, so callers can match with either errors.Is on the
// sentinel or errors.Is on the code.
//
// # Conflict Oracle
//
// The free functions in oracle.go ([NeighborsOf], [NeighborColors],
// [ConflictEdges], [ConflictCount], [IsValidColoring], [VertexConflicts])
// evaluate colorings over flat []Vertex / []Edge snapshots. Graph methods such
// as [Graph.DetectConflicts] delegate to them, and search strategies call them
// directly on lightweight copies.
//
// A conflict is an edge whose endpoints are both colored with the same color.
// A coloring is valid when there are no conflicts and every vertex is colored.
//
// # Ownership
//
// Searches never mutate a caller's graph. They read a [Snapshot], produce
// new vertex slices, and the caller adopts a result with [Graph.ApplyColors],
// which returns a new graph.
//
// # Serialization
//
// [ReadJSON] and [WriteJSON] use the flat snapshot format:
//
//	{
//	  "vertices": [{"id": 1, "color": "#FF6B6B"}, {"id": 2, "color": null}],
//	  "edges":    [{"from": 1, "to": 2}],
//	  "tag":      "custom"
//	}
//
// IDs may be JSON numbers or strings. Unknown fields on vertices and edges are
// kept in Meta and written back on export.
//
// [palette.Color]: github.com/matzehuels/chromatic/pkg/palette.Color
package graph
