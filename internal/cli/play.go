package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Tomcat-42/graph-searcher/search"
)

// playCommand runs an engine and replays its trace as an animation.
func (c *CLI) playCommand() *cobra.Command {
	var (
		gopts graphOpts
		eopts engineOpts
		delay time.Duration
		once  bool
	)

	cmd := &cobra.Command{
		Use:   "play START GOAL",
		Short: "Run a search and replay its trace as a terminal animation",
		Long: `Run a search between two named vertices and replay the recorded
frontier/visited/path evolution frame by frame. The animation loops until
interrupted unless --once is given.

Examples:
  graph-searcher play lisbon porto --file portugal.json
  graph-searcher play n0 n24 --random 25 --algorithm sma --delay 150ms`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)

			g, err := gopts.load(ctx)
			if err != nil {
				return err
			}
			cfg, err := eopts.config()
			if err != nil {
				return err
			}

			tr, out, err := search.Run(ctx, g, args[0], args[1], cfg)
			if err != nil {
				return err
			}

			model := newPlayerModel(tr, out, delay, !once)
			p := tea.NewProgram(model, tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return err
			}

			reportOutcome(c, cfg, tr, out)

			return nil
		},
	}

	gopts.register(cmd)
	eopts.register(cmd)
	cmd.Flags().DurationVar(&delay, "delay", 300*time.Millisecond, "time per frame")
	cmd.Flags().BoolVar(&once, "once", false, "play the trace a single time instead of looping")

	return cmd
}
