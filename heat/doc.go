// Package heat computes scalar temperature fields over a core.Graph:
// additive heat radiating outward from source vertices in breadth-first
// layers.
//
// What
//
//   - TemperatureGraph returns a new graph of the same structural kind as the
//     input (directed/undirected, simple/multi), with the same vertices and
//     edges, each annotated with an accumulated temperature attribute.
//   - Heat spreads from every source independently: layer 0 is the source
//     itself, layer k holds the edges whose origin was discovered at depth k.
//   - Per-layer heat amounts come from an increment sequence — a constant, or
//     a finite sequence whose last value repeats for all deeper layers.
//   - An optional weight attribute scales each increment per vertex and per
//     edge (absent weight reads as 1).
//   - An optional depth limit caps how many layers each source heats.
//   - After all sources are processed, every vertex never reached from any
//     source — and every edge incident to one — is assigned a baseline equal
//     to the maximum temperature observed anywhere in the graph.
//
// Why
//
//   - Heatmap-style annotation of graphs: visualizing influence, blast
//     radius, or proximity fields around a set of seed vertices.
//   - Contributions from multiple sources sum, so fields compose: running
//     with {a, b} equals running with {a} plus running with {b}, element by
//     element.
//
// Semantics worth knowing
//
//   - Per source, every vertex receives at most one increment (at its
//     breadth-first depth) and every discovered edge exactly one.
//   - Duplicate sources contribute independently: listing a source twice
//     doubles its heat.
//   - The depth limit does not affect reachability: elements beyond the
//     cutoff still count as reached and keep their (possibly zero)
//     accumulated temperature rather than the unreachable baseline.
//   - The baseline is the maximum observed temperature. With increments that
//     decrease with depth this reads naturally as "the coldest far-away
//     value"; with increasing sequences it is the hottest value observed.
//     The behavior is deliberate and documented on WithIncrements.
//   - The input graph is never mutated. On any error nothing observable is
//     produced.
//
// Determinism
//
//	All enumeration in core is sorted and the traversal explores edges in
//	sorted order, so repeated calls with identical arguments yield
//	bit-identical results. When increments are non-integral, summation order
//	across sources follows the caller-supplied source order; reordering
//	sources may change the last bits of the floating-point sums.
//
// Complexity (V = |Vertices|, E = |Edges|, S = |sources|)
//
//   - Time:   O(S·(V + E)) accumulation + O(V + E) baseline pass.
//   - Memory: O(V + E) for the output graph and per-source visited sets.
//
// Usage
//
//	field, err := heat.TemperatureGraph(g, []string{"A", "B"},
//	    heat.WithIncrements(10, 5, 2.5),
//	    heat.WithMaxDepth(4),
//	    heat.WithWeightAttr("mass"),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrEmptyIncrements, ErrOptionViolation,
//	    // or a wrapped edgebfs.ErrSourceNotFound
//	}
//	temp, _ := field.VertexAttr("A", heat.DefaultKey)
//
// Errors
//
//   - ErrGraphNil                 if the graph pointer is nil.
//   - ErrEmptyIncrements          if a supplied increments sequence is empty
//     (checked before any output is built).
//   - ErrOptionViolation          if an invalid Option is supplied
//     (negative depth, empty temperature key).
//   - edgebfs.ErrSourceNotFound   (wrapped) if a source vertex is absent.
package heat
