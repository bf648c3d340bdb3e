package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/config"
	"github.com/matzehuels/chromatic/pkg/search"
)

// searchOpts holds the flags shared by the search commands. Flags the user
// did not set fall back to the [search] section of the config file.
type searchOpts struct {
	strategy   string // strategy name or alias: las-vegas, monte-carlo
	k          int    // number of colors
	iterations int    // iteration budget (per k when escalating)
	maxK       int    // escalation upper bound
	forceValid bool   // run Las Vegas until success or the safety ceiling
	seed       uint64 // random seed, 0 derives one from the clock
	output     string // output path, stdout when empty
	report     bool   // write the full result instead of the colored graph
}

// addSearchFlags registers the search flags on cmd with the built-in defaults
// shown in help output.
func addSearchFlags(cmd *cobra.Command, o *searchOpts) {
	d := config.Default().Search
	cmd.Flags().StringVarP(&o.strategy, "strategy", "s", d.Strategy, "search strategy: las-vegas (lv), monte-carlo (mc)")
	cmd.Flags().IntVarP(&o.k, "k", "k", d.K, "number of colors")
	cmd.Flags().IntVarP(&o.iterations, "iterations", "n", d.Iterations, "iteration budget")
	cmd.Flags().Uint64Var(&o.seed, "seed", d.Seed, "random seed (0 = from clock)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&o.report, "report", false, "write the full search result as JSON instead of the colored graph")
}

// resolve fills every flag the user did not set from cfg.
func (o *searchOpts) resolve(cmd *cobra.Command, cfg config.SearchConfig) {
	changed := cmd.Flags().Changed
	if !changed("strategy") {
		o.strategy = cfg.Strategy
	}
	if !changed("k") {
		o.k = cfg.K
	}
	if !changed("iterations") {
		o.iterations = cfg.Iterations
	}
	if !changed("max-k") {
		o.maxK = cfg.MaxK
	}
	if !changed("force-valid") {
		o.forceValid = cfg.ForceValid
	}
	if !changed("seed") {
		o.seed = cfg.Seed
	}
}

// parsedStrategy validates the strategy flag.
func (o *searchOpts) parsedStrategy() (search.Strategy, error) {
	return search.ParseStrategy(o.strategy)
}
