// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/CloneStructure carry over nextEdgeID so textual edge IDs
//     stay monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices,
// but no edges and no attributes.
// Complexity: O(V) to copy vertices and initialize adjacency.
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := newEmptyLike(g)
	// Preserve the textual edge ID sequence to avoid collisions on future AddEdge.
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	// Copy vertices with fresh attribute maps.
	for id := range g.vertices {
		clone.vertices[id] = &Vertex{ID: id, Attrs: make(map[string]float64)}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// CloneStructure returns a new Graph with identical configuration, vertices,
// and edges (edge IDs preserved), but with fresh, empty attribute maps on
// every vertex and edge. This is the "same kind of graph" factory: the clone
// preserves the directed/undirected and simple/multi classification of the
// original while carrying none of its attribute data.
// Complexity: O(V + E).
func (g *Graph) CloneStructure() *Graph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Attrs: make(map[string]float64)}
		clone.edges[eid] = ne
		ensureAdjacency(clone, e.From, e.To)
		clone.adjacencyList[e.From][e.To][eid] = struct{}{}
		if !g.directed && e.From != e.To {
			ensureAdjacency(clone, e.To, e.From)
			clone.adjacencyList[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// Textual edge IDs will resume from "e1".
// Complexity: O(1) for map reallocation.
// Concurrency: acquires both write locks; not safe to call concurrently with readers.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// newEmptyLike allocates an empty graph carrying g's configuration flags.
// Callers hold g's read locks; the fresh instance needs no locking yet.
func newEmptyLike(g *Graph) *Graph {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return NewGraph(opts...)
}
