// Package cli implements the graph-searcher command-line interface.
//
// Two commands are provided:
//   - search: load or generate a graph, run an engine, log the outcome
//   - play: run an engine and replay its trace as a looping terminal
//     animation (explored nodes in yellow, the resolved path in green)
//
// Both commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the binary name used in help output.
const appName = "graph-searcher"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Search weighted graphs and replay the search as an animation",
		Long: `graph-searcher runs breadth-first or memory-bounded A* (SMA*) search
over a weighted coordinate graph, either loaded from a JSON file or
randomly generated, and can replay the recorded search trace as a
terminal animation.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.searchCommand())
	root.AddCommand(c.playCommand())

	return root
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger stored by withLogger, falling
// back to the default logger when none is present.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
