// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       incidence queries, and per-edge attribute storage. Also: nextEdgeID().
// Determinism:
//   - Edges(), OutEdges(), InEdges() return edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for generated edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = "e"

// AddEdge creates a new edge from→to and returns its generated ID.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Generate the edge ID atomically, store, and link adjacency.
//  5. Mirror adjacency for undirected edges.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, or ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops { // loop constraint
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti { // multi-edge existence check
		// Undirected edges are mirrored in adjacency, so this single
		// bucket check also rejects the reversed duplicate.
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 4) Generate a new unique textual edge ID and store.
	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Attrs: make(map[string]float64)}
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	// 5) Mirror undirected
	if !g.directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists
// (in an undirected graph, either stored orientation matches).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the edge with the given ID.
// Returns ErrEdgeNotFound when absent.
// Complexity: O(1).
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID ascending.
// The deterministic order keeps traversals and golden tests stable.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// OutEdges returns the edges leaving id under the graph's stored orientation,
// sorted by Edge.ID. In an undirected graph every incident edge leaves both
// endpoints. Returns ErrVertexNotFound when the vertex does not exist.
// Complexity: O(deg log deg).
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// InEdges returns the edges arriving at id under the graph's stored
// orientation, sorted by Edge.ID. In an undirected graph this equals
// OutEdges. Returns ErrVertexNotFound when the vertex does not exist.
// Complexity: O(E log E) for directed graphs (full scan).
func (g *Graph) InEdges(id string) ([]*Edge, error) {
	if !g.directed {
		return g.OutEdges(id)
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, e := range g.edges {
		if e.To == id {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// IncidentEdges returns every edge touching id regardless of orientation,
// sorted by Edge.ID. Returns ErrVertexNotFound when the vertex does not exist.
// Complexity: O(E log E) for directed graphs (full scan).
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	if !g.directed {
		return g.OutEdges(id)
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// SetEdgeAttr stores a named numeric attribute on an edge.
// Returns ErrEdgeNotFound when the edge does not exist.
// Complexity: O(1).
func (g *Graph) SetEdgeAttr(eid, key string, val float64) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Attrs[key] = val

	return nil
}

// EdgeAttr reads a named numeric attribute from an edge.
// The second return is false when the edge or the attribute is absent.
// Complexity: O(1).
func (g *Graph) EdgeAttr(eid, key string) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return 0, false
	}
	val, ok := e.Attrs[key]

	return val, ok
}

// AddEdgeAttr adds delta to a named numeric attribute on an edge,
// treating an absent attribute as 0.
// Returns ErrEdgeNotFound when the edge does not exist.
// Complexity: O(1).
func (g *Graph) AddEdgeAttr(eid, key string, delta float64) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Attrs[key] += delta

	return nil
}

// ensureAdjacency allocates the nested adjacency bucket from→to.
func ensureAdjacency(g *Graph, from, to string) {
	if _, ok := g.adjacencyList[from]; !ok {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if _, ok := g.adjacencyList[from][to]; !ok {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// nextEdgeID atomically increments the counter and renders "e<N>".
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)

	return edgeIDPrefix + strconv.FormatUint(n, 10)
}
