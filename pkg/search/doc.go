// Package search implements randomized graph-coloring strategies.
//
// # Overview
//
// None of the strategies backtrack. They sample random colorings from a
// palette of k colors and score them with the conflict oracle from
// pkg/graph:
//
//   - [Engine.RandomRestart] ("Las Vegas") draws fresh colorings until one is
//     conflict-free or a cap is hit. With forceValid set, the caller's cap is
//     replaced by the engine's safety ceiling ([SafetyCeiling] by default).
//   - [Engine.BestOfSampling] ("Monte Carlo") draws a fixed budget of
//     colorings, keeps the one with fewest conflicts, and stops early on a
//     perfect one.
//   - [Engine.Repair] improves an existing coloring by first-improvement
//     local moves until a full pass changes nothing.
//   - [Engine.Escalate] runs one of the two samplers with increasing k until
//     it succeeds or k passes a maximum.
//
// [Preview] and [Recolor] answer the read-only "what if I paint this vertex"
// question used for manual recoloring.
//
// # Inputs and Ownership
//
// Every operation takes a [graph.Snapshot] and returns new vertex slices. The
// input is never modified; callers adopt results with graph.Graph.ApplyColors.
//
// # Preconditions
//
// An empty vertex set, k < 1, a zero iteration budget or an escalation range
// with max k below the initial k are rejected before any work starts. The
// errors carry pkg/errors precondition codes and wrap the sentinels below.
// A snapshot that violates graph invariants is rejected with the structural
// error pkg/graph reports. Running out of iterations is not an error: the
// result's Success field is false.
//
// # Determinism
//
// Randomness comes from the engine's *rand.Rand and elapsed time from its
// [Clock], so tests fix both:
//
//	e := search.New(search.WithSeed(42), search.WithClock(fakeClock))
//
// An Engine is not safe for concurrent use. Run one search at a time, or give
// each goroutine its own engine.
package search
