package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tomcat-42/graph-searcher/search"
	"github.com/Tomcat-42/graph-searcher/trace"
)

// searchCommand runs an engine and logs the outcome without animation.
func (c *CLI) searchCommand() *cobra.Command {
	var (
		gopts graphOpts
		eopts engineOpts
	)

	cmd := &cobra.Command{
		Use:   "search START GOAL",
		Short: "Run a search and report the outcome",
		Long: `Run a search between two named vertices and report the resolved path,
its cost and the number of recorded steps.

Examples:
  graph-searcher search lisbon porto --file portugal.json
  graph-searcher search n0 n24 --random 25 --algorithm sma --bound 16`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			logger := loggerFromContext(ctx)

			g, err := gopts.load(ctx)
			if err != nil {
				return err
			}
			cfg, err := eopts.config()
			if err != nil {
				return err
			}
			logger.Debugf("graph ready: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())

			start, goal := args[0], args[1]
			tr, out, err := search.Run(ctx, g, start, goal, cfg)
			if err != nil {
				return err
			}

			reportOutcome(c, cfg, tr, out)

			return nil
		},
	}

	gopts.register(cmd)
	eopts.register(cmd)

	return cmd
}

// reportOutcome logs the terminal result of a run.
func reportOutcome(c *CLI, cfg search.Config, tr *trace.Trace, out trace.Outcome) {
	if out.Found {
		c.Logger.Infof("path found: %s (cost %.3f, %d steps, %s)",
			strings.Join(out.Path, " → "), out.Cost, tr.Len(), cfg.Algorithm)
		return
	}

	switch out.Reason {
	case trace.ReasonMemory:
		c.Logger.Warnf("no path within memory bound %d: retry with a larger --bound", cfg.Bound)
	default:
		c.Logger.Warnf("no path exists (%d steps explored)", tr.Len())
	}
}
