package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/config"
	"github.com/matzehuels/chromatic/pkg/observability"
	"github.com/matzehuels/chromatic/pkg/search"
)

// escalateCommand creates the escalate command, which raises k until the
// strategy succeeds.
func (c *CLI) escalateCommand() *cobra.Command {
	var opts searchOpts

	cmd := &cobra.Command{
		Use:   "escalate [graph.json|-]",
		Short: "Find the smallest k the strategy can color",
		Long: `Run the strategy with k, k+1, ... until an attempt finds a valid coloring
or k would exceed --max-k. Every attempt gets the same iteration budget.

The graph colored by the last attempt is written to stdout or --output.
Use --report for the escalation trace with every per-k attempt.`,
		Example: `  chromatic escalate graph.json -k 2 --max-k 6
  chromatic escalate graph.json -s mc -n 200 --report`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.resolve(cmd, c.Config.Search)
			return c.runEscalate(cmd, args[0], opts)
		},
	}

	addSearchFlags(cmd, &opts)
	cmd.Flags().IntVar(&opts.maxK, "max-k", config.Default().Search.MaxK, "largest k to try")

	return cmd
}

func (c *CLI) runEscalate(cmd *cobra.Command, input string, opts searchOpts) error {
	ctx := cmd.Context()

	strategy, err := opts.parsedStrategy()
	if err != nil {
		return err
	}
	g, err := readGraph(cmd, input)
	if err != nil {
		return err
	}
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Escalating %s up to k=%d...", strategy.Label(), opts.maxK))
	engine, err := c.newEngine(opts.seed, search.WithHooks(spinner.searchHooks(observability.Search())))
	if err != nil {
		return err
	}

	tr, err := runWithSpinner(ctx, spinner, func(ctx context.Context) (*search.EscalationTrace, error) {
		return engine.Escalate(ctx, g.Snapshot(), strategy, opts.k, opts.iterations, opts.maxK)
	})
	if err != nil {
		return err
	}
	c.History.RecordEscalation(tr)

	printRunResult(tr.Result)
	fmt.Fprintln(uiOut, attemptTable(tr.Attempts))

	if opts.report {
		return writeJSON(cmd, tr, opts.output)
	}
	return writeGraph(cmd, g.ApplyColors(tr.Result.Vertices), opts.output)
}

// attemptTable renders one row per k tried.
func attemptTable(attempts []search.Attempt) string {
	rows := make([][]string, len(attempts))
	for i, a := range attempts {
		status := StyleError.Render(iconError)
		if a.Success {
			status = StyleSuccess.Render(iconSuccess)
		}
		rows[i] = []string{
			fmt.Sprint(a.K),
			humanize.Comma(int64(a.Iterations)),
			fmt.Sprint(a.Conflicts),
			formatMillis(a.ElapsedMs),
			status,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("k", "Iterations", "Conflicts", "Elapsed", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}
