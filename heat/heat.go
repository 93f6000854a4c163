// Package heat implements the temperature-field computation declared in
// types.go.
package heat

import (
	"fmt"

	"github.com/katalvlaran/thermograph/core"
	"github.com/katalvlaran/thermograph/edgebfs"
)

// TemperatureGraph calculates temperatures radiating from heat sources in g.
//
// It returns a new graph of the same structural kind as g (directed and
// multi-edge classification preserved), with the same vertices and edges,
// each carrying the temperature attribute (Options.Key). Temperatures start
// at 0 and accumulate additively: for each source, the edges and incident
// vertices at breadth-first layer n receive the n-th increment, scaled by
// the optional weight attribute. Vertices and edges never reached from any
// source are finally assigned the maximum temperature observed elsewhere.
//
// The input graph is never mutated. Repeated calls with identical arguments
// produce bit-identical results; reordering sources may change only the last
// bits of floating-point sums when increments are non-integral.
//
// Returns ErrGraphNil, ErrEmptyIncrements, ErrOptionViolation, or a wrapped
// edgebfs.ErrSourceNotFound; on error no output graph is produced.
func TemperatureGraph(g *core.Graph, sources []string, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Resolve increments before touching any graph state: an empty sequence
	// must fail with nothing observable built.
	inc, err := newIncrementSeq(o.Increments)
	if err != nil {
		return nil, err
	}

	// Validate every source up front so no partial result can escape; the
	// traversal's own lookup error is propagated, not reworded.
	if _, err = edgebfs.Traverse(g, sources); err != nil {
		return nil, fmt.Errorf("heat: %w", err)
	}

	// Output graph: same structure, temperature 0 everywhere, weights copied.
	t := initField(g, o)

	// Sources accumulate strictly in caller order; duplicates contribute twice.
	for _, source := range sources {
		accumulate(t, source, inc, o)
	}

	applyBaseline(t, sources, o.Key)

	return t, nil
}

// initField clones g's structure and initializes the temperature attribute
// to 0 on every vertex and edge. When a weight attribute is configured, its
// value is copied verbatim from g for every element that carries it;
// elements lacking it stay bare (the default multiplier 1 is applied at use,
// never stored).
func initField(g *core.Graph, o Options) *core.Graph {
	t := g.CloneStructure()
	for _, id := range t.Vertices() {
		_ = t.SetVertexAttr(id, o.Key, 0)
		if o.WeightAttr != "" {
			if w, ok := g.VertexAttr(id, o.WeightAttr); ok {
				_ = t.SetVertexAttr(id, o.WeightAttr, w)
			}
		}
	}
	for _, e := range t.Edges() {
		_ = t.SetEdgeAttr(e.ID, o.Key, 0)
		if o.WeightAttr != "" {
			if w, ok := g.EdgeAttr(e.ID, o.WeightAttr); ok {
				_ = t.SetEdgeAttr(e.ID, o.WeightAttr, w)
			}
		}
	}

	return t
}

// accumulate adds one source's contribution to the field: walk the layered
// groups in depth order, pairing group i with increments i and i+1, and add
// weighted increments to edge and vertex temperatures. Each vertex receives
// at most one increment per source; each discovered edge exactly one.
func accumulate(t *core.Graph, source string, inc incrementSeq, o Options) {
	// Sources were validated before the output graph was built, and t shares
	// g's vertex set, so the traversal cannot fail here.
	arcs, err := edgebfs.Traverse(t, []string{source})
	if err != nil {
		return
	}
	layers := newLayerIter(arcs, source)
	visited := make(map[string]struct{})

	for depth := 0; ; depth++ {
		if o.depthSet && depth >= o.MaxDepth {
			break
		}
		group, ok := layers.Next()
		if !ok {
			break
		}
		cur, next := inc.At(depth), inc.At(depth+1)
		for _, arc := range group {
			_ = t.AddEdgeAttr(arc.Edge.ID, o.Key, cur*edgeMultiplier(t, arc.Edge.ID, o))
			if _, seen := visited[arc.From]; !seen {
				_ = t.AddVertexAttr(arc.From, o.Key, cur*vertexMultiplier(t, arc.From, o))
				visited[arc.From] = struct{}{}
			}
			if _, seen := visited[arc.To]; !seen {
				_ = t.AddVertexAttr(arc.To, o.Key, next*vertexMultiplier(t, arc.To, o))
				visited[arc.To] = struct{}{}
			}
		}
	}
}

// vertexMultiplier returns the configured weight attribute of a vertex,
// defaulting to 1 when unconfigured or absent on this vertex.
func vertexMultiplier(t *core.Graph, id string, o Options) float64 {
	if o.WeightAttr == "" {
		return 1
	}
	if w, ok := t.VertexAttr(id, o.WeightAttr); ok {
		return w
	}

	return 1
}

// edgeMultiplier returns the configured weight attribute of an edge,
// defaulting to 1 when unconfigured or absent on this edge.
func edgeMultiplier(t *core.Graph, eid string, o Options) float64 {
	if o.WeightAttr == "" {
		return 1
	}
	if w, ok := t.EdgeAttr(eid, o.WeightAttr); ok {
		return w
	}

	return 1
}
