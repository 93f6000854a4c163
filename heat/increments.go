// File: increments.go
// Role: Resolve the caller-supplied increment specification into an
//       index-addressable, effectively infinite sequence.

package heat

// incrementSeq is a materialized increment sequence: the supplied values in
// order, with the final value repeating for all deeper layers. Being a plain
// slice it is trivially restartable per source (every source re-reads from
// depth 0).
type incrementSeq struct {
	vals []float64
}

// newIncrementSeq validates and materializes the increment values.
// It is the single configuration gate: an empty sequence fails here with
// ErrEmptyIncrements, before any output graph attribute exists.
func newIncrementSeq(vals []float64) (incrementSeq, error) {
	if len(vals) == 0 {
		return incrementSeq{}, ErrEmptyIncrements
	}

	return incrementSeq{vals: vals}, nil
}

// At returns the increment for layer i (0-based), repeating the last
// supplied value indefinitely once the explicit sequence is exhausted.
func (s incrementSeq) At(i int) float64 {
	if i >= len(s.vals) {
		return s.vals[len(s.vals)-1]
	}

	return s.vals[i]
}
