// Package edgebfs provides an edge-first breadth-first traversal over a
// core.Graph: every edge is emitted exactly once, in non-decreasing order of
// its origin's discovery depth.
//
// What
//
//   - Traverse the graph from one or more source vertices, emitting each edge
//     exactly once as an Arc (the edge plus its traversal-time orientation).
//   - Edges leave a vertex only when that vertex is dequeued, so the emitted
//     stream is ordered by the origin's breadth-first depth.
//   - Cross and back edges are included: an edge whose destination was already
//     discovered is still emitted (once), unlike a node-first BFS tree.
//   - Multi-source seeding: all sources sit at depth 0 of one traversal.
//   - Orientation modes for directed graphs:
//   - Original: follow directed edges From→To (default)
//   - Reverse:  follow directed edges To→From
//   - Ignore:   follow every edge in both directions
//
// Why
//
//   - Layered accumulation over edges (heat/temperature fields, flow preludes)
//     needs every edge classified by the depth of its origin, which a
//     node-first BFS discards.
//   - Reachability over edge multiplicities: parallel edges are distinct
//     arcs, self-loops are emitted once.
//
// Determinism
//
//	core.OutEdges/InEdges/IncidentEdges return edges sorted by Edge.ID, and
//	the traversal explores them in that order, so the arc sequence is fully
//	reproducible for a fixed graph.
//
// Laziness
//
//	Traverse returns an *Iterator with an explicit Next() (Arc, bool)
//	contract; nothing beyond the current frontier vertex is expanded until
//	requested. The graph must not be mutated while an Iterator is live.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) for a full drain (each vertex dequeued once, each edge
//     emitted once); Reverse/Ignore on directed graphs scan incidence per
//     vertex.
//   - Memory: O(V + E) for the queue, seen-vertex set, and seen-edge set.
//
// Usage
//
//	it, err := edgebfs.Traverse(g, []string{"A"})
//	if err != nil {
//	    // ErrGraphNil, ErrSourceNotFound, or ErrOptionViolation
//	}
//	for arc, ok := it.Next(); ok; arc, ok = it.Next() {
//	    // arc.Edge, arc.From, arc.To
//	}
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrSourceNotFound  if any source vertex does not exist (wrapped with
//     the offending ID).
//   - ErrOptionViolation if an invalid Option is supplied.
package edgebfs
