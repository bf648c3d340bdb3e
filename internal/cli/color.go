package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/observability"
	"github.com/matzehuels/chromatic/pkg/search"
)

// colorCommand creates the color command for a single fixed-k search.
func (c *CLI) colorCommand() *cobra.Command {
	var (
		opts   searchOpts
		repair bool
	)

	cmd := &cobra.Command{
		Use:   "color [graph.json|-]",
		Short: "Color a graph with k colors",
		Long: `Color a graph with k colors using a randomized search strategy.

Las Vegas (random restart) draws fresh random colorings until one has no
conflicts. With --force-valid it keeps going past the iteration budget, up to
a safety ceiling. Monte Carlo (best of sampling) draws exactly the budget and
keeps the coloring with the fewest conflicts.

The colored graph is written as JSON to stdout or --output, so it can be piped
into repair, stats or render. Use --report for the full search result with
iteration count, timing and convergence trace.`,
		Example: `  chromatic color graph.json -k 3
  chromatic color graph.json -s mc -n 5000 --repair -o colored.json
  chromatic generate | chromatic color - -k 4 | chromatic stats -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.resolve(cmd, c.Config.Search)
			return c.runColor(cmd, args[0], opts, repair)
		},
	}

	addSearchFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.forceValid, "force-valid", true, "Las Vegas: keep searching past the budget until a valid coloring is found")
	cmd.Flags().BoolVar(&repair, "repair", false, "run greedy local repair on the result")

	return cmd
}

// colorReport is written by color --report.
type colorReport struct {
	*search.RunResult
	Repair *search.RepairResult `json:"repair,omitempty"`
}

func (c *CLI) runColor(cmd *cobra.Command, input string, opts searchOpts, repair bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	strategy, err := opts.parsedStrategy()
	if err != nil {
		return err
	}
	g, err := readGraph(cmd, input)
	if err != nil {
		return err
	}
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Running %s...", strategy.Label()))
	engine, err := c.newEngine(opts.seed, search.WithHooks(spinner.searchHooks(observability.Search())))
	if err != nil {
		return err
	}

	logger.Debug("coloring", "strategy", strategy, "k", opts.k, "vertices", g.VertexCount(), "edges", g.EdgeCount())
	prog := newProgress(logger)

	res, err := runWithSpinner(ctx, spinner, func(ctx context.Context) (*search.RunResult, error) {
		return engine.Solve(ctx, strategy, g.Snapshot(), opts.k, opts.iterations, opts.forceValid)
	})
	if err != nil {
		return err
	}
	c.History.Record(res)
	printRunResult(res)

	report := colorReport{RunResult: res}
	vertices := res.Vertices
	if repair && !res.Success {
		rr, err := engine.Repair(ctx, graph.Snapshot{Vertices: res.Vertices, Edges: g.Edges(), Tag: g.Tag()}, opts.k)
		if err != nil {
			return fmt.Errorf("repair: %w", err)
		}
		report.Repair = rr
		vertices = rr.Vertices
		printRepairResult(rr)
	}
	prog.done(fmt.Sprintf("Colored %d vertices", g.VertexCount()))

	if opts.report {
		return writeJSON(cmd, report, opts.output)
	}
	return writeGraph(cmd, g.ApplyColors(vertices), opts.output)
}

// runWithSpinner runs fn while spinner animates. On cancellation it returns
// the partial result together with the context error.
func runWithSpinner[T any](ctx context.Context, spinner *Spinner, fn func(context.Context) (T, error)) (T, error) {
	spinner.Start()
	res, err := fn(ctx)
	spinner.Stop()
	if err != nil {
		printError("%s failed", strings.TrimSuffix(spinner.message, "..."))
	}
	return res, err
}
