package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	cerrors "github.com/matzehuels/chromatic/pkg/errors"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/palette"
	"github.com/matzehuels/chromatic/pkg/search"
)

// repairCommand creates the repair command for greedy conflict reduction.
func (c *CLI) repairCommand() *cobra.Command {
	var (
		k      int
		output string
		report bool
	)

	cmd := &cobra.Command{
		Use:   "repair [graph.json|-]",
		Short: "Reduce conflicts in an existing coloring",
		Long: `Repair an existing coloring with greedy first-improvement moves.

Every pass visits the vertices in order and moves each conflicting vertex to
the first color of the k-palette that lowers its own conflict count. Passes
repeat until one makes no move. Uncolored vertices are left alone.`,
		Example: `  chromatic color graph.json -s mc -n 50 | chromatic repair - -k 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("k") {
				k = c.Config.Search.K
			}
			return c.runRepair(cmd, args[0], k, output, report)
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 3, "number of colors available to repair moves")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&report, "report", false, "write the repair result with every move as JSON")

	return cmd
}

func (c *CLI) runRepair(cmd *cobra.Command, input string, k int, output string, report bool) error {
	g, err := readGraph(cmd, input)
	if err != nil {
		return err
	}
	engine, err := c.newEngine(0)
	if err != nil {
		return err
	}

	rr, err := engine.Repair(cmd.Context(), g.Snapshot(), k)
	if err != nil {
		return err
	}
	printRepairResult(rr)

	if report {
		return writeJSON(cmd, rr, output)
	}
	return writeGraph(cmd, g.ApplyColors(rr.Vertices), output)
}

func printRepairResult(rr *search.RepairResult) {
	switch {
	case rr.Success:
		printSuccess("Repair reached a valid coloring")
	case rr.Conflicts < rr.InitialConflicts:
		printWarning("Repair reduced conflicts from %d to %d", rr.InitialConflicts, rr.Conflicts)
	default:
		printWarning("Repair found no improving move (%d conflicts)", rr.Conflicts)
	}
	printStatsLine(
		fmt.Sprintf("%d passes", rr.Passes),
		fmt.Sprintf("%d moves", rr.Accepted()),
		formatMillis(rr.ElapsedMs),
	)
}

// previewCommand creates the preview command for manual recolor what-ifs.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		k      int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "preview [graph.json|-] <vertex> [color]",
		Short: "Estimate the effect of recoloring one vertex",
		Long: `Preview painting a vertex with a color, without changing the graph.

The success probability is 100% when no neighbor holds the color, and
otherwise drops with the share of neighbors that already hold it. Without a
color argument every color of the k-palette is previewed.`,
		Example: `  chromatic preview colored.json 4 '#4ECDC4'
  chromatic preview colored.json 4 -k 5`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("k") {
				k = c.Config.Search.K
			}
			var color palette.Color
			if len(args) == 3 {
				color = palette.Color(args[2])
			}
			return c.runPreview(cmd, args[0], graph.ID(args[1]), color, k, asJSON)
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 3, "palette size")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write previews as JSON to stdout")

	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, input string, id graph.ID, color palette.Color, k int, asJSON bool) error {
	g, err := readGraph(cmd, input)
	if err != nil {
		return err
	}
	p, err := c.paletteFor(k)
	if err != nil {
		return err
	}

	candidates := p
	if !color.IsNone() {
		candidates = palette.Palette{color}
	}
	previews, err := previewAll(g.Snapshot(), id, candidates, p)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd, previews, "")
	}
	current, _ := g.Vertex(id)
	printInfo("Vertex %s is %s %s with %d neighbor(s)", id, swatch(current.Color), colorName(current.Color), g.Degree(id))
	for _, pr := range previews {
		printPreview(pr)
	}
	return nil
}

// previewAll previews every candidate color for id against palette p.
func previewAll(s graph.Snapshot, id graph.ID, candidates, p palette.Palette) ([]*search.PreviewResult, error) {
	out := make([]*search.PreviewResult, 0, len(candidates))
	for _, c := range candidates {
		pr, err := search.Preview(s, id, c, p)
		if err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, nil
}

func printPreview(pr *search.PreviewResult) {
	pct := fmt.Sprintf("%3d%%", pr.SuccessProbabilityPercent)
	switch {
	case pr.SuccessProbabilityPercent == 100:
		pct = StyleSuccess.Render(pct)
	case pr.SuccessProbabilityPercent >= 50:
		pct = StyleWarning.Render(pct)
	default:
		pct = StyleError.Render(pct)
	}
	line := fmt.Sprintf("  %s %s  %s", swatch(pr.Color), pr.Color, pct)
	if pr.AffectedNeighborCount > 0 {
		line += StyleDim.Render(fmt.Sprintf("  clashes with %v", pr.Affected))
	}
	fmt.Fprintln(uiOut, line)
}

func colorName(c palette.Color) string {
	if c.IsNone() {
		return "uncolored"
	}
	return string(c)
}

// recolorCommand creates the recolor command for manual recolors.
func (c *CLI) recolorCommand() *cobra.Command {
	var (
		k           int
		output      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "recolor [graph.json|-] <vertex> [color|none]",
		Short: "Paint one vertex by hand",
		Long: `Paint one vertex with a color, or "none" to uncolor it, and write the
resulting graph. With -i an interactive picker previews every color of the
k-palette before you choose.`,
		Example: `  chromatic recolor colored.json 4 '#45B7D1' -o colored.json
  chromatic recolor colored.json 4 -i`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("k") {
				k = c.Config.Search.K
			}
			if len(args) == 2 && !interactive {
				return fmt.Errorf("missing color (or use -i to pick one)")
			}
			color := palette.None
			if len(args) == 3 && args[2] != "none" {
				color = palette.Color(args[2])
			}
			return c.runRecolor(cmd, args[0], graph.ID(args[1]), color, k, output, interactive)
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 3, "palette size offered by the picker")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the color interactively")

	return cmd
}

func (c *CLI) runRecolor(cmd *cobra.Command, input string, id graph.ID, color palette.Color, k int, output string, interactive bool) error {
	g, err := readGraph(cmd, input)
	if err != nil {
		return err
	}

	if interactive {
		if input == stdinPath {
			return fmt.Errorf("interactive recolor needs a graph file, not stdin")
		}
		p, err := c.paletteFor(k)
		if err != nil {
			return err
		}
		previews, err := previewAll(g.Snapshot(), id, p, p)
		if err != nil {
			return err
		}
		final, err := tea.NewProgram(newColorPickerModel(id, previews), tea.WithOutput(uiOut)).Run()
		if err != nil {
			return fmt.Errorf("picker: %w", err)
		}
		m := final.(ColorPickerModel)
		if m.Selected == nil {
			printInfo("Recolor cancelled")
			return nil
		}
		color = m.Selected.Color
	} else if !color.IsNone() {
		if err := cerrors.ValidateHexColor(string(color)); err != nil {
			return err
		}
	}

	next, err := search.Recolor(g.Snapshot(), id, color)
	if err != nil {
		return err
	}
	out, err := graph.FromSnapshot(next)
	if err != nil {
		return err
	}

	printSuccess("Painted %s %s %s", id, swatch(color), colorName(color))
	printStatsLine(fmt.Sprintf("%d conflicts", out.ConflictCount()), fmt.Sprintf("%d colors used", out.CountColorsUsed()))
	return writeGraph(cmd, out, output)
}
