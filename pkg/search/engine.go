package search

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/observability"
	"github.com/matzehuels/chromatic/pkg/palette"
)

const (
	// SafetyCeiling is the iteration limit of RandomRestart when forceValid
	// is set. Searches on uncolorable inputs stop here with Success false.
	SafetyCeiling = 1_000_000

	// TraceInterval is the sampling period of run traces. Points are recorded
	// at iterations 1, 1+TraceInterval, 1+2*TraceInterval, ...
	TraceInterval = 10

	// MaxRepairPasses bounds the number of full scans made by Repair.
	MaxRepairPasses = 100

	// cancelCheckInterval is how often long loops poll ctx.
	cancelCheckInterval = 1024
)

var (
	// ErrEmptyGraph is returned when a search is given no vertices.
	ErrEmptyGraph = errors.New("graph has no vertices")

	// ErrInvalidK is returned when k is below 1 or above palette.MaxSize.
	ErrInvalidK = errors.New("invalid color count")

	// ErrInvalidBudget is returned when an iteration budget is below 1.
	ErrInvalidBudget = errors.New("invalid iteration budget")

	// ErrInvalidRange is returned by Escalate when max k is below the
	// initial k.
	ErrInvalidRange = errors.New("invalid k range")

	// ErrUnknownStrategy is returned for a strategy name that does not parse.
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Strategy names a base sampling strategy.
type Strategy string

const (
	LasVegas   Strategy = "las-vegas"
	MonteCarlo Strategy = "monte-carlo"
)

// Strategies lists the base strategies in display order.
func Strategies() []Strategy { return []Strategy{LasVegas, MonteCarlo} }

// Label returns the human-readable strategy name used in results.
func (s Strategy) Label() string {
	switch s {
	case LasVegas:
		return "Las Vegas"
	case MonteCarlo:
		return "Monte Carlo"
	}
	return string(s)
}

// ParseStrategy accepts the canonical names plus a few common spellings
// ("lasvegas", "lv", "montecarlo", "mc").
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "las-vegas", "lasvegas", "las_vegas", "lv":
		return LasVegas, nil
	case "monte-carlo", "montecarlo", "monte_carlo", "mc":
		return MonteCarlo, nil
	}
	return "", cerrors.Wrap(cerrors.ErrCodeUnknownStrategy, ErrUnknownStrategy, "strategy %q (want %s or %s)", s, LasVegas, MonteCarlo)
}

// Clock supplies the current time. Implementations backed by time.Now carry
// a monotonic reading, so elapsed times are immune to wall-clock jumps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// TracePoint samples the conflict count at one iteration.
type TracePoint struct {
	Iteration int `json:"iteration"`
	Conflicts int `json:"conflicts"`
}

// RunResult is the outcome of a single strategy invocation.
type RunResult struct {
	Strategy   string         `json:"strategy"`
	K          int            `json:"k"`
	Vertices   []graph.Vertex `json:"vertices"`
	Success    bool           `json:"success"`
	Iterations int            `json:"iterations"`
	Conflicts  int            `json:"conflicts"`
	Elapsed    time.Duration  `json:"-"`
	ElapsedMs  float64        `json:"elapsed_ms"`
	Trace      []TracePoint   `json:"trace,omitempty"`
}

// Engine runs searches with a fixed random source, clock and palette.
type Engine struct {
	rng     *rand.Rand
	clock   Clock
	palette palette.Palette
	hooks   observability.SearchHooks
	ceiling int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithSeed seeds a PCG source. Seed 0 derives a seed from the clock.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.rng = NewRand(seed) }
}

// WithClock sets the clock used to measure elapsed time.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithPalette replaces the base palette. Palettes for a given k are derived
// with palette.Palette.Truncate, so a short explicit list is extended
// procedurally when k exceeds it. Colors are kept in [palette.Normalize] form.
func WithPalette(p palette.Palette) Option {
	return func(e *Engine) {
		if len(p) == 0 {
			return
		}
		e.palette = make(palette.Palette, len(p))
		for i, c := range p {
			e.palette[i] = palette.Normalize(c)
		}
	}
}

// WithHooks routes events to h instead of the globally registered hooks.
func WithHooks(h observability.SearchHooks) Option {
	return func(e *Engine) { e.hooks = h }
}

// WithSafetyCeiling overrides the forceValid iteration limit.
func WithSafetyCeiling(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.ceiling = n
		}
	}
}

// New creates an engine. Without options it uses a clock-seeded PCG source,
// the system clock, the master palette and [SafetyCeiling].
func New(opts ...Option) *Engine {
	e := &Engine{
		clock:   SystemClock{},
		palette: palette.Master,
		ceiling: SafetyCeiling,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRand(0)
	}
	return e
}

// Palette returns the colors the engine uses for k.
func (e *Engine) Palette(k int) (palette.Palette, error) {
	p, err := e.palette.Truncate(k)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidK, ErrInvalidK, "%s", cerrors.UserMessage(err))
	}
	return p, nil
}

// SafetyCeiling returns the engine's forceValid iteration limit.
func (e *Engine) SafetyCeiling() int { return e.ceiling }

// Solve dispatches to RandomRestart or BestOfSampling. forceValid is ignored
// by MonteCarlo, which never runs past its budget.
func (e *Engine) Solve(ctx context.Context, strategy Strategy, s graph.Snapshot, k, iterations int, forceValid bool) (*RunResult, error) {
	switch strategy {
	case LasVegas:
		return e.RandomRestart(ctx, s, k, iterations, forceValid)
	case MonteCarlo:
		return e.BestOfSampling(ctx, s, k, iterations)
	}
	return nil, cerrors.Wrap(cerrors.ErrCodeUnknownStrategy, ErrUnknownStrategy, "strategy %q", strategy)
}

func (e *Engine) searchHooks() observability.SearchHooks {
	if e.hooks != nil {
		return e.hooks
	}
	return observability.Search()
}

func (e *Engine) since(start time.Time) time.Duration {
	return e.clock.Now().Sub(start)
}

// NewRand returns the PCG source used for every randomized choice in
// chromatic. A given seed always yields the same stream; seed 0 derives one
// from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

func checkBudget(iterations int) error {
	if iterations < 1 {
		return cerrors.Wrap(cerrors.ErrCodeInvalidBudget, ErrInvalidBudget, "iterations must be >= 1, got %d", iterations)
	}
	return nil
}

func event(r *RunResult) observability.SearchEvent {
	return observability.SearchEvent{
		Strategy:   r.Strategy,
		K:          r.K,
		Iterations: r.Iterations,
		Conflicts:  r.Conflicts,
		Success:    r.Success,
		Duration:   r.Elapsed,
	}
}
