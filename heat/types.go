// Package heat provides tunable options and error definitions
// for temperature-field computation over a core.Graph.
package heat

import (
	"errors"
	"fmt"
)

// DefaultKey is the attribute name under which temperatures are stored
// when WithKey is not supplied.
const DefaultKey = "heat"

// defaultIncrement is the per-layer heat amount when no increments are supplied.
const defaultIncrement = 1.0

// Sentinel errors for temperature-field computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("heat: graph is nil")

	// ErrEmptyIncrements is returned when the caller supplies an empty
	// increments sequence. It is detected before any output graph exists.
	ErrEmptyIncrements = errors.New("heat: increments iterable must be nonempty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("heat: invalid option supplied")
)

// Option configures TemperatureGraph via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced
// when TemperatureGraph is invoked, before anything is computed.
type Option func(*Options)

// Options holds the parameters of a temperature-field computation.
type Options struct {
	// MaxDepth caps the number of breadth-first layers consumed per source
	// when depthSet is true. MaxDepth == 0 with the limit set consumes no
	// layers at all; an unset limit consumes every layer.
	MaxDepth int
	depthSet bool

	// Increments holds the per-layer heat amounts: index i applies to
	// layer i, and the final value repeats for all deeper layers.
	Increments []float64

	// WeightAttr names the vertex/edge attribute used as a multiplier.
	// Empty means unweighted (multiplier 1 everywhere).
	WeightAttr string

	// Key names the attribute under which temperatures are stored.
	Key string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit
//   - constant increment 1.0 at every layer
//   - no weight attribute
//   - temperatures stored under DefaultKey.
func DefaultOptions() Options {
	return Options{
		Increments: []float64{defaultIncrement},
		Key:        DefaultKey,
	}
}

// WithMaxDepth caps the number of breadth-first layers consumed per source:
//
//	d > 0:  heat the first d layers (depths 0 … d-1)
//	d == 0: heat nothing (sources still count as reached)
//	d < 0:  invalid option → ErrOptionViolation
//
// Elements beyond the cutoff are still reachable for baseline purposes.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
		o.depthSet = true
	}
}

// WithIncrements supplies the per-layer heat amounts: vals[i] applies to
// layer i, and the final value repeats for every deeper layer. Calling with
// no values is a configuration error (ErrEmptyIncrements) raised before any
// output graph is built. The values are copied, so later mutation of the
// caller's slice does not affect the computation.
//
// Note: the unreachable baseline is the maximum observed temperature, so a
// sequence that grows with depth assigns unreachable elements the hottest
// value, not the coldest.
func WithIncrements(vals ...float64) Option {
	return func(o *Options) {
		if len(vals) == 0 {
			o.err = ErrEmptyIncrements

			return
		}
		o.Increments = append([]float64(nil), vals...)
	}
}

// WithConstantIncrement applies the same heat amount v at every layer.
// Equivalent to WithIncrements(v).
func WithConstantIncrement(v float64) Option {
	return func(o *Options) {
		o.Increments = []float64{v}
	}
}

// WithWeightAttr names a vertex/edge attribute whose value multiplies each
// increment. Elements lacking the attribute use multiplier 1. The attribute
// is copied verbatim from the input to the output graph for every element
// that carries it. An empty name leaves the computation unweighted.
func WithWeightAttr(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.WeightAttr = name
		}
	}
}

// WithKey names the attribute under which temperatures are stored
// (DefaultKey when unset). An empty name is an option violation.
func WithKey(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.err = fmt.Errorf("%w: temperature key must be nonempty", ErrOptionViolation)

			return
		}
		o.Key = name
	}
}
