// File: layers.go
// Role: Reconstruct per-depth edge groups from the flat edge-first BFS
//       stream by tracking the current breadth-first frontier.

package heat

import "github.com/katalvlaran/thermograph/edgebfs"

// layerIter groups the flat arc stream of one source into breadth-first
// layers: group i holds exactly the arcs whose origin was discovered at
// depth i. It is lazy — arcs are pulled from the traversal only as groups
// are requested.
//
// The reconstruction relies on the edgebfs ordering contract (arcs arrive in
// non-decreasing origin depth, no repeats): an arc whose origin is outside
// the current frontier closes the group, the new frontier becomes the
// destinations of the closed group, and the closing arc opens the next one.
type layerIter struct {
	arcs     *edgebfs.Iterator
	frontier map[string]struct{}
	carry    *edgebfs.Arc // arc that closed the previous group
	done     bool
}

// newLayerIter prepares the grouping for a single source.
// The initial frontier is the source alone.
func newLayerIter(arcs *edgebfs.Iterator, source string) *layerIter {
	return &layerIter{
		arcs:     arcs,
		frontier: map[string]struct{}{source: {}},
	}
}

// Next returns the arcs of the next breadth-first layer. The terminal group
// is always yielded, even when empty, so every traversal produces at least
// one group; afterwards ok == false.
func (l *layerIter) Next() ([]edgebfs.Arc, bool) {
	if l.done {
		return nil, false
	}

	var group []edgebfs.Arc
	if l.carry != nil {
		group = append(group, *l.carry)
		l.carry = nil
	}

	for {
		arc, ok := l.arcs.Next()
		if !ok {
			// flat stream exhausted: yield the final pending group as-is
			l.done = true

			return group, true
		}
		if _, ok = l.frontier[arc.From]; ok {
			group = append(group, arc)

			continue
		}
		// The origin left the frontier: close this group. The new frontier
		// is the set of destinations seen in the just-closed group, and the
		// closing arc starts the next group.
		next := make(map[string]struct{}, len(group))
		for _, a := range group {
			next[a.To] = struct{}{}
		}
		l.frontier = next
		l.carry = &arc

		return group, true
	}
}
