// Package search is the unified entry point over the engine packages: a
// caller picks an algorithm and, for the memory-bounded one, a frontier
// bound, and gets back the same (trace, outcome) pair either engine
// produces.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Tomcat-42/graph-searcher/bfs"
	"github.com/Tomcat-42/graph-searcher/core"
	"github.com/Tomcat-42/graph-searcher/smastar"
	"github.com/Tomcat-42/graph-searcher/trace"
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	// BFS explores in insertion order and minimizes edge count.
	BFS Algorithm = iota

	// SMAStar minimizes weighted cost under a frontier memory bound.
	SMAStar
)

// DefaultBound is the frontier bound used when a Config leaves Bound zero.
const DefaultBound = 64

// ErrUnknownAlgorithm is returned for an Algorithm value or name this
// package does not know.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// String returns the canonical flag-friendly name.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case SMAStar:
		return "sma"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a user-supplied name to an Algorithm. Accepted
// names: "bfs", "sma", "smastar" (case-insensitive).
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "sma", "sma*", "smastar":
		return SMAStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Config selects the engine and its parameters.
type Config struct {
	// Algorithm picks the strategy; zero value is BFS.
	Algorithm Algorithm

	// Bound is the SMA* frontier limit; ignored by BFS. Zero means
	// DefaultBound.
	Bound int
}

// Run executes the configured search over g from start to goal. Both
// engines validate start/goal eagerly and never emit a snapshot on a
// validation error.
func Run(ctx context.Context, g *core.Graph, start, goal string, cfg Config) (*trace.Trace, trace.Outcome, error) {
	switch cfg.Algorithm {
	case BFS:
		return bfs.BFS(g, start, goal, bfs.WithContext(ctx))
	case SMAStar:
		bound := cfg.Bound
		if bound == 0 {
			bound = DefaultBound
		}
		return smastar.SMAStar(g, start, goal, bound, smastar.WithContext(ctx))
	default:
		return nil, trace.Outcome{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, cfg.Algorithm)
	}
}
