// Package edgebfs provides tunable options and error definitions
// for edge-first breadth-first traversal over a core.Graph.
package edgebfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/thermograph/core"
)

// Sentinel errors for traversal construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("edgebfs: graph is nil")

	// ErrSourceNotFound is returned when a source vertex is absent.
	ErrSourceNotFound = errors.New("edgebfs: source vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("edgebfs: invalid option supplied")
)

// Orientation selects how stored edge direction is honored while traversing
// a directed graph. Undirected graphs traverse every edge both ways in all
// modes.
type Orientation int

const (
	// Original follows directed edges in their stored From→To orientation.
	Original Orientation = iota

	// Reverse follows directed edges against their stored orientation (To→From).
	Reverse

	// Ignore treats every edge as bidirectional regardless of orientation.
	Ignore
)

// Arc is one edge observed during traversal, oriented as traversed:
// From is the vertex from which the edge was discovered, To the far endpoint.
// For a self-loop From == To.
type Arc struct {
	Edge *core.Edge
	From string
	To   string
}

// Option configures traversal behavior via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when Traverse is invoked.
type Option func(*Options)

// Options holds parameters to customize the traversal.
type Options struct {
	// Orient selects the orientation mode (Original by default).
	Orient Orientation

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: Original orientation.
func DefaultOptions() Options {
	return Options{Orient: Original}
}

// WithOrientation selects the orientation mode.
// Values outside Original/Reverse/Ignore surface as ErrOptionViolation.
func WithOrientation(o Orientation) Option {
	return func(opts *Options) {
		switch o {
		case Original, Reverse, Ignore:
			opts.Orient = o
		default:
			opts.err = fmt.Errorf("%w: unknown orientation (%d)", ErrOptionViolation, o)
		}
	}
}
