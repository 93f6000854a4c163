// File: unreachable.go
// Role: Terminal baseline pass — assign the maximum observed temperature to
//       every element never reached from any source.

package heat

import (
	"github.com/katalvlaran/thermograph/core"
	"github.com/katalvlaran/thermograph/edgebfs"
)

// applyBaseline overwrites the temperature of every vertex unreachable from
// the source set, and of every edge incident to at least one unreachable
// vertex, with the maximum temperature currently present in the graph
// (0 for a graph with no elements). Reachability follows stored edge
// orientation and ignores any depth limit. This is a one-time terminal
// overwrite of values that are necessarily still zero.
func applyBaseline(t *core.Graph, sources []string, key string) {
	reached := reachableFrom(t, sources)

	// baseline = max over every stored temperature, vertices and edges alike
	baseline, any := 0.0, false
	for _, id := range t.Vertices() {
		if v, ok := t.VertexAttr(id, key); ok && (!any || v > baseline) {
			baseline, any = v, true
		}
	}
	for _, e := range t.Edges() {
		if v, ok := t.EdgeAttr(e.ID, key); ok && (!any || v > baseline) {
			baseline, any = v, true
		}
	}

	for _, id := range t.Vertices() {
		if _, ok := reached[id]; !ok {
			_ = t.SetVertexAttr(id, key, baseline)
		}
	}
	for _, e := range t.Edges() {
		_, fromReached := reached[e.From]
		_, toReached := reached[e.To]
		if !fromReached || !toReached {
			_ = t.SetEdgeAttr(e.ID, key, baseline)
		}
	}
}

// reachableFrom returns the set of vertices reachable from any source by
// following zero or more edges in their stored orientation. Sources are
// always members of their own reachable set.
func reachableFrom(t *core.Graph, sources []string) map[string]struct{} {
	reached := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		reached[s] = struct{}{}
	}
	it, err := edgebfs.Traverse(t, sources)
	if err != nil {
		return reached
	}
	for arc, ok := it.Next(); ok; arc, ok = it.Next() {
		reached[arc.To] = struct{}{}
	}

	return reached
}
