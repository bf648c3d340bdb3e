package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/graph"
)

// statsCommand creates the stats command for inspecting a graph and its coloring.
func (c *CLI) statsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats [graph.json|-]",
		Short: "Show graph and coloring statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(cmd, args[0])
			if err != nil {
				return err
			}
			st := g.Stats()
			if asJSON {
				return writeJSON(cmd, st, "")
			}
			printStats(g, st)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write statistics as JSON to stdout")

	return cmd
}

func printStats(g *graph.Graph, st graph.Stats) {
	fmt.Fprintln(uiOut, StyleTitle.Render(fmt.Sprintf("Graph %q", g.Tag())))
	printKeyValue("Vertices", humanize.Comma(int64(st.Vertices)))
	printKeyValue("Edges", humanize.Comma(int64(st.Edges)))
	printKeyValue("Degree", fmt.Sprintf("min %d · max %d · avg %s", st.MinDegree, st.MaxDegree, humanize.FtoaWithDigits(st.AvgDegree, 2)))
	printKeyValue("Density", formatPercent(st.Density))
	printKeyValue("Colors used", fmt.Sprint(st.ColorsUsed))
	printKeyValue("Conflicts", fmt.Sprint(st.Conflicts))

	switch {
	case st.Valid:
		printSuccess("Valid coloring")
	case st.Conflicts > 0:
		printWarning("%d conflicting edge(s)", st.Conflicts)
		for _, e := range g.DetectConflicts() {
			v, _ := g.Vertex(e.From)
			printDetail("%s %s", e, v.Color)
		}
	default:
		printInfo("Coloring incomplete")
		printNextStep("Color it with", "chromatic color <graph.json> -k "+fmt.Sprint(max(st.MaxDegree+1, 1)))
	}
}
