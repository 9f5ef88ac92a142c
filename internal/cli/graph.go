package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Tomcat-42/graph-searcher/builder"
	"github.com/Tomcat-42/graph-searcher/core"
	"github.com/Tomcat-42/graph-searcher/search"
)

// Sentinel errors for flag validation.
var (
	ErrNoGraphSource   = errors.New("cli: provide --file or --random")
	ErrTwoGraphSources = errors.New("cli: --file and --random are mutually exclusive")
)

// graphOpts holds the flags selecting where the graph comes from.
type graphOpts struct {
	file   string
	random int
	radius float64
	seed   int64
}

// register wires the shared graph-source flags onto cmd.
func (o *graphOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "JSON graph document to load")
	cmd.Flags().IntVarP(&o.random, "random", "r", 0, "generate a random geometric graph with this many vertices")
	cmd.Flags().Float64Var(&o.radius, "radius", 30, "connection radius for --random")
	cmd.Flags().Int64Var(&o.seed, "seed", 42, "RNG seed for --random")
}

// load produces the graph described by the flags.
func (o *graphOpts) load(ctx context.Context) (*core.Graph, error) {
	logger := loggerFromContext(ctx)
	switch {
	case o.file != "" && o.random > 0:
		return nil, ErrTwoGraphSources
	case o.file != "":
		logger.Debugf("loading graph from %s", o.file)
		return builder.FromFile(o.file)
	case o.random > 0:
		logger.Debugf("generating random geometric graph: n=%d radius=%v seed=%d",
			o.random, o.radius, o.seed)
		return builder.RandomGeometric(o.random, o.radius, o.seed)
	default:
		return nil, ErrNoGraphSource
	}
}

// engineOpts holds the flags selecting the engine.
type engineOpts struct {
	algorithm string
	bound     int
}

// register wires the engine flags onto cmd.
func (o *engineOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.algorithm, "algorithm", "a", "bfs", "search algorithm: bfs or sma")
	cmd.Flags().IntVarP(&o.bound, "bound", "b", search.DefaultBound, "SMA* frontier bound (ignored by bfs)")
}

// config resolves the flags into a search.Config.
func (o *engineOpts) config() (search.Config, error) {
	alg, err := search.ParseAlgorithm(o.algorithm)
	if err != nil {
		return search.Config{}, err
	}

	return search.Config{Algorithm: alg, Bound: o.bound}, nil
}
