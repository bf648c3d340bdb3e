// Package generate builds graphs for experiments: the random scenario used
// by the interactive front end plus a few classic shapes.
//
// Vertex IDs are "1".."n" in every generator, so generated graphs read the
// same way as hand-written ones. Randomized generators take an explicit
// *rand.Rand, usually from search.NewRand, and are deterministic for a fixed
// seed.
package generate

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strconv"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
)

// ErrInvalidSize is returned when a generator is asked for a size or
// probability outside its domain.
var ErrInvalidSize = errors.New("invalid generator size")

// Tags attached to generated graphs.
const (
	TagRandom   = "random"
	TagPath     = "path"
	TagCycle    = "cycle"
	TagComplete = "complete"
	TagStar     = "star"
	TagSparse   = "sparse"
)

// Params bounds the random scenario.
type Params struct {
	MinVertices int
	MaxVertices int
}

// DefaultParams reproduces the interactive scenario: 5 to 9 vertices.
var DefaultParams = Params{MinVertices: 5, MaxVertices: 9}

// Random builds the random scenario. The vertex count n is uniform in
// [MinVertices, MaxVertices]; the generator then aims for n + U[0,n) edges,
// drawing random endpoint pairs and skipping self-loops and duplicates, and
// gives up after three draws per targeted edge. The result may therefore
// have fewer edges than targeted, and need not be connected.
func Random(rng *rand.Rand, p Params) (*graph.Graph, error) {
	if p.MinVertices < 2 || p.MaxVertices < p.MinVertices {
		return nil, invalid("vertex range [%d, %d] must satisfy 2 <= min <= max", p.MinVertices, p.MaxVertices)
	}

	n := p.MinVertices + rng.IntN(p.MaxVertices-p.MinVertices+1)
	g := withVertices(TagRandom, n)

	target := n + rng.IntN(n)
	target = min(target, n*(n-1)/2)
	for created, attempts := 0, 0; created < target && attempts < 3*target; attempts++ {
		a, b := id(rng.IntN(n)+1), id(rng.IntN(n)+1)
		if a == b || g.HasEdge(a, b) {
			continue
		}
		if err := g.AddEdge(graph.Edge{From: a, To: b}); err != nil {
			return nil, err
		}
		created++
	}
	return g, nil
}

// Path returns 1 - 2 - ... - n.
func Path(n int) (*graph.Graph, error) {
	if n < 1 {
		return nil, invalid("path needs at least 1 vertex, got %d", n)
	}
	g := withVertices(TagPath, n)
	for i := 1; i < n; i++ {
		mustEdge(g, i, i+1)
	}
	return g, nil
}

// Cycle returns the cycle on n >= 3 vertices.
func Cycle(n int) (*graph.Graph, error) {
	if n < 3 {
		return nil, invalid("cycle needs at least 3 vertices, got %d", n)
	}
	g := withVertices(TagCycle, n)
	for i := 1; i < n; i++ {
		mustEdge(g, i, i+1)
	}
	mustEdge(g, n, 1)
	return g, nil
}

// Complete returns K_n.
func Complete(n int) (*graph.Graph, error) {
	if n < 1 {
		return nil, invalid("complete graph needs at least 1 vertex, got %d", n)
	}
	g := withVertices(TagComplete, n)
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			mustEdge(g, i, j)
		}
	}
	return g, nil
}

// Star returns vertex 1 joined to every other vertex.
func Star(n int) (*graph.Graph, error) {
	if n < 2 {
		return nil, invalid("star needs at least 2 vertices, got %d", n)
	}
	g := withVertices(TagStar, n)
	for i := 2; i <= n; i++ {
		mustEdge(g, 1, i)
	}
	return g, nil
}

// Sparse samples each unordered pair {i, j}, i < j, independently with
// probability p, in ascending (i, j) order.
func Sparse(rng *rand.Rand, n int, p float64) (*graph.Graph, error) {
	if n < 1 {
		return nil, invalid("sparse graph needs at least 1 vertex, got %d", n)
	}
	if p < 0 || p > 1 {
		return nil, invalid("edge probability %g not in [0, 1]", p)
	}
	g := withVertices(TagSparse, n)
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if p == 1 || (p > 0 && rng.Float64() < p) {
				mustEdge(g, i, j)
			}
		}
	}
	return g, nil
}

// Shape names accepted by [Build].
var shapes = []string{TagRandom, TagPath, TagCycle, TagComplete, TagStar, TagSparse}

// Shapes returns the names accepted by [Build].
func Shapes() []string { return slices.Clone(shapes) }

// Build dispatches by shape name. n is ignored for "random", which uses
// [DefaultParams]; p is only used by "sparse".
func Build(shape string, rng *rand.Rand, n int, p float64) (*graph.Graph, error) {
	switch shape {
	case TagRandom:
		return Random(rng, DefaultParams)
	case TagPath:
		return Path(n)
	case TagCycle:
		return Cycle(n)
	case TagComplete:
		return Complete(n)
	case TagStar:
		return Star(n)
	case TagSparse:
		return Sparse(rng, n, p)
	}
	return nil, cerrors.New(cerrors.ErrCodeInvalidInput, "unknown shape %q (want one of %v)", shape, shapes)
}

func withVertices(tag string, n int) *graph.Graph {
	g := graph.New(tag)
	for i := 1; i <= n; i++ {
		// IDs are unique and valid by construction.
		_ = g.AddVertex(graph.Vertex{ID: id(i)})
	}
	return g
}

func mustEdge(g *graph.Graph, a, b int) {
	if err := g.AddEdge(graph.Edge{From: id(a), To: id(b)}); err != nil {
		panic(err)
	}
}

func id(i int) graph.ID { return graph.ID(strconv.Itoa(i)) }

func invalid(format string, args ...any) error {
	return cerrors.Wrap(cerrors.ErrCodeInvalidRange, ErrInvalidSize, format, args...)
}
