// Package smastar defines tunable options and error definitions for
// Simplified Memory-bounded A* over a core.Graph.
package smastar

import (
	"context"
	"errors"
)

// MinBound is the smallest legal frontier bound: the start vertex and at
// least one successor must coexist during the first expansion.
const MinBound = 2

// Sentinel errors for SMA* execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("smastar: graph is nil")

	// ErrVertexNotFound is returned when the start or goal ID is absent.
	ErrVertexNotFound = errors.New("smastar: vertex not found in graph")

	// ErrInvalidBound is returned when bound < MinBound.
	ErrInvalidBound = errors.New("smastar: bound must be at least 2")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("smastar: invalid option supplied")
)

// Eviction describes one forgotten node, reported through WithOnEvict.
// ParentBackedUpF is the parent's backed-up f after absorbing this
// eviction; it is always ≥ F.
type Eviction struct {
	// ID is the vertex whose search node was evicted.
	ID string

	// F is the f-value the node was forgotten at.
	F float64

	// ParentID is the vertex owning the forgotten subtree.
	ParentID string

	// ParentBackedUpF is the parent's backed-up f after the update.
	ParentBackedUpF float64
}

// Option configures SMA* behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize SMA* execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnExpand is called when a node is popped for expansion, with its
	// current f. Returning an error aborts the search.
	OnExpand func(id string, f float64) error

	// OnEvict is called after each eviction, once the parent's forgotten
	// table and backed-up f have been updated.
	OnEvict func(ev Eviction)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(string, float64) error { return nil },
		OnEvict:  func(Eviction) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback to run on each expansion; returning an
// error from this callback stops the search.
func WithOnExpand(fn func(id string, f float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEvict registers a callback observing every eviction. Useful for
// asserting the backed-up-f invariant in tests and for memory-pressure
// diagnostics.
func WithOnEvict(fn func(ev Eviction)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEvict = fn
		}
	}
}
