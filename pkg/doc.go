// Package pkg provides the core libraries for chromatic heuristic graph coloring.
//
// # Overview
//
// Chromatic assigns one of k colors to every vertex of an undirected graph so
// that no edge joins two vertices of the same color. It does not search
// exhaustively. Randomized strategies sample colorings, greedy repair polishes
// the best one, and escalation raises k until a strategy succeeds.
//
// # Architecture
//
// The typical data flow through chromatic:
//
//	graph.json / generate
//	         ↓
//	    [graph] package (model, snapshot, conflict oracle)
//	         ↓
//	    [search] package (Las Vegas, Monte Carlo, repair, escalation)
//	         ↓
//	    [history] package (run log and strategy summaries)
//	         ↓
//	    [render/nodelink] package (DOT, SVG, PDF, PNG)
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/chromatic/pkg/generate"
//	    "github.com/matzehuels/chromatic/pkg/search"
//	)
//
//	g, _ := generate.Random(search.NewRand(42), generate.DefaultParams)
//	engine := search.New(search.WithSeed(42))
//	tr, _ := engine.Escalate(context.Background(), g.Snapshot(),
//	    search.LasVegas, 2, 1000, 10)
//	colored := g.ApplyColors(tr.Result.Vertices)
//
// # Main Packages
//
//   - [graph]: vertices, edges, metadata, JSON snapshots and conflict checks
//   - [palette]: colors, the master palette and its extension past ten colors
//   - [search]: strategies, greedy repair, preview, recolor and k-escalation
//   - [history]: identifiers and aggregates for completed runs
//   - [generate]: seeded random and named graph families
//   - [config]: TOML configuration with defaults and validation
//   - [render]: SVG conversion helpers and the node-link DOT renderer
//   - [observability]: search and render hooks
//   - [errors]: structured error codes shared by every package
//   - [buildinfo]: version metadata injected at build time
//
// [graph]: github.com/matzehuels/chromatic/pkg/graph
// [palette]: github.com/matzehuels/chromatic/pkg/palette
// [search]: github.com/matzehuels/chromatic/pkg/search
// [history]: github.com/matzehuels/chromatic/pkg/history
// [generate]: github.com/matzehuels/chromatic/pkg/generate
// [config]: github.com/matzehuels/chromatic/pkg/config
// [render]: github.com/matzehuels/chromatic/pkg/render
// [render/nodelink]: github.com/matzehuels/chromatic/pkg/render/nodelink
// [observability]: github.com/matzehuels/chromatic/pkg/observability
// [errors]: github.com/matzehuels/chromatic/pkg/errors
// [buildinfo]: github.com/matzehuels/chromatic/pkg/buildinfo
package pkg
