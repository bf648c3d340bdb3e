package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/generate"
	"github.com/matzehuels/chromatic/pkg/graph"
	"github.com/matzehuels/chromatic/pkg/search"
)

// generateCommand creates the generate command for test scenarios.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		shape  string
		n      int
		p      float64
		seed   uint64
		params = generate.DefaultParams
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an uncolored test graph",
		Long: `Generate an uncolored graph and write it as JSON.

The default "random" shape draws between --min and --max vertices and about
twice as many edges. The other shapes build classic graphs with -n vertices:
path, cycle, complete, star, and sparse (each pair joined with probability -p).`,
		Example: `  chromatic generate --seed 7 -o graph.json
  chromatic generate --shape cycle -n 9 | chromatic color - -k 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := search.NewRand(seed)
			var (
				g   *graph.Graph
				err error
			)
			if shape == generate.TagRandom {
				g, err = generate.Random(rng, params)
			} else {
				g, err = generate.Build(shape, rng, n, p)
			}
			if err != nil {
				return err
			}
			printSuccess("Generated %s graph", g.Tag())
			printStatsLine(fmt.Sprintf("%d vertices", g.VertexCount()), fmt.Sprintf("%d edges", g.EdgeCount()))
			return writeGraph(cmd, g, output)
		},
	}

	cmd.Flags().StringVar(&shape, "shape", generate.TagRandom, "graph shape: "+strings.Join(generate.Shapes(), ", "))
	cmd.Flags().IntVarP(&n, "vertices", "n", 8, "vertex count (all shapes except random)")
	cmd.Flags().Float64VarP(&p, "probability", "p", 0.3, "edge probability (sparse)")
	cmd.Flags().IntVar(&params.MinVertices, "min", params.MinVertices, "minimum vertex count (random)")
	cmd.Flags().IntVar(&params.MaxVertices, "max", params.MaxVertices, "maximum vertex count (random)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 = from clock)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
