package builder

import "errors"

// Sentinel errors. Callers branch with errors.Is; constructors attach
// context via %w wrapping.
var (
	// ErrMalformedDocument indicates the input is not a well-formed graph
	// document (invalid JSON, or a missing nodes section).
	ErrMalformedDocument = errors.New("builder: malformed graph document")

	// ErrBadCoordinate indicates a node's "utm" entry is not an [x, y]
	// pair of numbers.
	ErrBadCoordinate = errors.New("builder: node coordinate must be an [x, y] pair")

	// ErrAsymmetricWeight indicates the document lists the same undirected
	// edge twice with different weights.
	ErrAsymmetricWeight = errors.New("builder: conflicting weights for symmetric edge")

	// ErrTooFewVertices indicates a generator size below the allowed
	// minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidRadius indicates a non-positive connection radius.
	ErrInvalidRadius = errors.New("builder: radius must be positive")
)
