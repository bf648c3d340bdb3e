// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about searches, escalation steps, repairs, and rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Library packages such as pkg/search never log. They emit events here, and
// the command-line front end registers hooks that forward them to its logger.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSearchHooks(&mySearchHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Search().OnSearchStart(ctx, "Las Vegas", k, vertexCount)
//	// ... search ...
//	observability.Search().OnSearchComplete(ctx, observability.SearchEvent{...})
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Search Hooks
// =============================================================================

// SearchEvent describes a finished search run.
type SearchEvent struct {
	Strategy   string
	K          int
	Iterations int
	Conflicts  int
	Success    bool
	Duration   time.Duration
}

// SearchHooks receives events from the coloring strategies.
type SearchHooks interface {
	// Strategy runs
	OnSearchStart(ctx context.Context, strategy string, k, vertices int)
	OnSearchComplete(ctx context.Context, ev SearchEvent)

	// OnEscalationStep records one per-k attempt of the escalation driver.
	OnEscalationStep(ctx context.Context, ev SearchEvent)

	// OnRepairComplete records a finished greedy repair.
	OnRepairComplete(ctx context.Context, passes, accepted, before, after int, duration time.Duration)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from graph export.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string, vertices int)
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnSearchStart(context.Context, string, int, int)                    {}
func (NoopSearchHooks) OnSearchComplete(context.Context, SearchEvent)                      {}
func (NoopSearchHooks) OnEscalationStep(context.Context, SearchEvent)                      {}
func (NoopSearchHooks) OnRepairComplete(context.Context, int, int, int, int, time.Duration) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                    {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	searchHooks SearchHooks = NoopSearchHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetSearchHooks registers custom search hooks.
// This should be called once at application startup before any search runs.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	searchHooks = NoopSearchHooks{}
	renderHooks = NoopRenderHooks{}
}
