package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/chromatic/pkg/config"
	"github.com/matzehuels/chromatic/pkg/observability"
)

// setup runs before every command. It loads the configuration, redirects the
// logger to the configured log file, attaches the logger to the command
// context and forwards search and render events to it.
//
// A config file that fails to load is fatal except for the config command
// itself, so that "chromatic config init --force" can repair it.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		if !isConfigCommand(cmd) {
			return err
		}
		c.Logger.Warn("ignoring invalid config", "err", err)
		cfg = config.Default()
	}
	c.Config = cfg

	if cfg.Log.Verbose {
		c.SetLogLevel(LogDebug)
	}
	if w := cfg.Log.Writer(); w != nil {
		c.Logger.Debug("sending log messages to file", "path", cfg.Log.File)
		_ = c.Close()
		c.Logger.SetOutput(w)
		c.logFile = w
	}

	observability.SetSearchHooks(logSearchHooks{logger: c.Logger})
	observability.SetRenderHooks(logRenderHooks{logger: c.Logger})

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

func isConfigCommand(cmd *cobra.Command) bool {
	for p := cmd; p != nil; p = p.Parent() {
		if p.Name() == "config" {
			return true
		}
	}
	return false
}
