// Package cli implements the chromatic command-line interface.
//
// This package provides commands for coloring graphs with the randomized
// search strategies, repairing and inspecting colorings, generating test
// scenarios and rendering colored graphs. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - color: Run Las Vegas or Monte Carlo search for a fixed k
//   - escalate: Raise k until a search succeeds
//   - repair: Greedily reduce conflicts in an existing coloring
//   - preview, recolor: Inspect and apply manual recolors
//   - compare: Benchmark the strategies against each other
//   - generate, render, stats: Scenario and output tooling
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. Search and render events from library
// packages reach the logger through observability hooks.
//
// # Example
//
//	import "github.com/matzehuels/chromatic/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chromatic/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Colored 9 vertices (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logSearchHooks forwards search events to a logger at debug level.
type logSearchHooks struct {
	logger *log.Logger
}

func (h logSearchHooks) OnSearchStart(_ context.Context, strategy string, k, vertices int) {
	h.logger.Debug("search started", "strategy", strategy, "k", k, "vertices", vertices)
}

func (h logSearchHooks) OnSearchComplete(_ context.Context, ev observability.SearchEvent) {
	h.logger.Debug("search finished",
		"strategy", ev.Strategy,
		"k", ev.K,
		"iterations", ev.Iterations,
		"conflicts", ev.Conflicts,
		"success", ev.Success,
		"elapsed", ev.Duration.Round(time.Microsecond))
}

func (h logSearchHooks) OnEscalationStep(_ context.Context, ev observability.SearchEvent) {
	if ev.Success {
		h.logger.Debug("k succeeded", "k", ev.K, "iterations", ev.Iterations)
		return
	}
	h.logger.Debug("k failed, escalating", "k", ev.K, "iterations", ev.Iterations, "conflicts", ev.Conflicts)
}

func (h logSearchHooks) OnRepairComplete(_ context.Context, passes, accepted, before, after int, d time.Duration) {
	h.logger.Debug("repair finished",
		"passes", passes,
		"moves", accepted,
		"conflicts_before", before,
		"conflicts_after", after,
		"elapsed", d.Round(time.Microsecond))
}

// logRenderHooks forwards render events to a logger at debug level.
type logRenderHooks struct {
	logger *log.Logger
}

func (h logRenderHooks) OnRenderStart(_ context.Context, format string, vertices int) {
	h.logger.Debug("render started", "format", format, "vertices", vertices)
}

func (h logRenderHooks) OnRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render finished", "format", format, "elapsed", d.Round(time.Millisecond))
}
