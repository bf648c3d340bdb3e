package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/generate"
	"github.com/matzehuels/chromatic/pkg/render"
	"github.com/matzehuels/chromatic/pkg/render/nodelink"
	"github.com/matzehuels/chromatic/pkg/search"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for chromatic. Besides subcommands and flags,
the scripts complete strategy names, graph shapes, Graphviz layouts and
render formats.

  bash:        source <(chromatic completion bash)
  zsh:         chromatic completion zsh > "${fpath[1]}/_chromatic"
  fish:        chromatic completion fish > ~/.config/fish/completions/chromatic.fish
  powershell:  chromatic completion powershell | Out-String | Invoke-Expression

Start a new shell afterwards for the setup to take effect.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, w := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(w, true)
			case "zsh":
				return root.GenZshCompletion(w)
			case "fish":
				return root.GenFishCompletion(w, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(w)
			}
			return fmt.Errorf("unsupported shell %q", args[0])
		},
	}

	return cmd
}

// fixedCompletion completes a flag from a fixed list of values.
func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

func strategyNames() []string {
	var names []string
	for _, s := range search.Strategies() {
		names = append(names, string(s))
	}
	return names
}

// registerValueCompletions attaches value completions to every flag of root's
// subcommands that takes one of a known set of names.
func registerValueCompletions(root *cobra.Command) {
	values := map[string][]string{
		"strategy": strategyNames(),
		"shape":    generate.Shapes(),
		"layout":   nodelink.Layouts(),
		"format":   render.Formats(),
	}
	for _, sub := range root.Commands() {
		for name, vals := range values {
			if sub.Flags().Lookup(name) == nil {
				continue
			}
			// Registration only fails for unknown or already registered flags.
			_ = sub.RegisterFlagCompletionFunc(name, fixedCompletion(vals...))
		}
	}
}
