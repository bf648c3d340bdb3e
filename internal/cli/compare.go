package cli

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/config"
	"github.com/matzehuels/chromatic/pkg/history"
	"github.com/matzehuels/chromatic/pkg/search"
)

// compareCommand creates the compare command, which benchmarks every strategy
// on the same graph.
func (c *CLI) compareCommand() *cobra.Command {
	var (
		opts     searchOpts
		runs     int
		escalate bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "compare [graph.json|-]",
		Short: "Benchmark the strategies on one graph",
		Long: `Run every strategy --runs times on the same graph and k and summarize the
outcomes per strategy: success rate, mean iterations and mean time.

With --escalate each run uses the k-escalation driver instead, so the table
also shows which k each strategy settled on.`,
		Example: `  chromatic compare graph.json -k 3 --runs 20
  chromatic compare graph.json -k 2 --escalate --max-k 5 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.resolve(cmd, c.Config.Search)
			if runs < 1 {
				return fmt.Errorf("--runs must be >= 1, got %d", runs)
			}
			return c.runCompare(cmd, args[0], opts, runs, escalate, asJSON)
		},
	}

	addSearchFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.forceValid, "force-valid", true, "Las Vegas: keep searching past the budget")
	cmd.Flags().IntVar(&opts.maxK, "max-k", config.Default().Search.MaxK, "largest k to try with --escalate")
	cmd.Flags().IntVarP(&runs, "runs", "r", 10, "runs per strategy")
	cmd.Flags().BoolVar(&escalate, "escalate", false, "use k-escalation for every run")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the run history and summary as JSON to stdout")

	return cmd
}

// compareReport is written by compare --json.
type compareReport struct {
	Runs    []history.Entry           `json:"runs"`
	Summary []history.StrategySummary `json:"summary"`
}

func (c *CLI) runCompare(cmd *cobra.Command, input string, opts searchOpts, runs int, escalate, asJSON bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	g, err := readGraph(cmd, input)
	if err != nil {
		return err
	}
	engine, err := c.newEngine(opts.seed)
	if err != nil {
		return err
	}

	store := history.New()
	s := g.Snapshot()
	total := runs * len(search.Strategies())
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Running %d searches...", total))
	spinner.Start()
	for _, strategy := range search.Strategies() {
		for i := 0; i < runs; i++ {
			spinner.SetDetail(fmt.Sprintf("%s %d/%d", strategy.Label(), i+1, runs))
			if escalate {
				tr, err := engine.Escalate(ctx, s, strategy, opts.k, opts.iterations, opts.maxK)
				if err != nil {
					spinner.StopWithError("Comparison failed")
					return err
				}
				c.History.RecordEscalation(tr)
				store.RecordEscalation(tr)
				continue
			}
			res, err := engine.Solve(ctx, strategy, s, opts.k, opts.iterations, opts.forceValid)
			if err != nil {
				spinner.StopWithError("Comparison failed")
				return err
			}
			c.History.Record(res)
			store.Record(res)
		}
		logger.Debug("strategy done", "strategy", strategy, "runs", runs)
	}
	spinner.StopWithSuccess(fmt.Sprintf("Ran %d searches on %d vertices", total, g.VertexCount()))

	report := compareReport{Runs: store.List(), Summary: store.Summary()}
	if asJSON {
		return writeJSON(cmd, report, "")
	}
	fmt.Fprintln(uiOut, summaryTable(report.Summary, report.Runs))
	return nil
}

// summaryTable renders one row per strategy label.
func summaryTable(summary []history.StrategySummary, entries []history.Entry) string {
	finalK := make(map[string][]int)
	for _, e := range entries {
		if e.Escalated() {
			finalK[e.Strategy] = append(finalK[e.Strategy], e.FinalK)
		}
	}

	rows := make([][]string, len(summary))
	for i, s := range summary {
		kCol := "—"
		if ks := finalK[s.Strategy]; len(ks) > 0 {
			kCol = fmt.Sprintf("%d–%d", slices.Min(ks), slices.Max(ks))
		}
		rows[i] = []string{
			s.Strategy,
			fmt.Sprintf("%d/%d", s.Successes, s.Runs),
			formatPercent(s.SuccessRate),
			humanize.CommafWithDigits(s.MeanIterations, 1),
			formatMillis(s.MeanElapsedMs),
			kCol,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Strategy", "Valid", "Rate", "Mean iterations", "Mean time", "Final k").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}
