// File: methods_vertices.go
// Role: Vertex lifecycle, queries, and per-vertex attribute storage.
// Determinism:
//   - Vertices() returns IDs sorted ascending.
// Concurrency:
//   - Mutations under muVert write lock; queries under muVert read lock.

package core

import "sort"

// AddVertex inserts a vertex with the given ID if it does not already exist.
// Adding an existing vertex is a no-op (its attributes are preserved).
// Returns ErrEmptyVertexID when id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Attrs: make(map[string]float64)}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// The sorted order makes downstream traversals reproducible.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// SetVertexAttr stores a named numeric attribute on a vertex.
// Returns ErrVertexNotFound when the vertex does not exist.
// Complexity: O(1).
func (g *Graph) SetVertexAttr(id, key string, val float64) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Attrs[key] = val

	return nil
}

// VertexAttr reads a named numeric attribute from a vertex.
// The second return is false when the vertex or the attribute is absent.
// Complexity: O(1).
func (g *Graph) VertexAttr(id, key string) (float64, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return 0, false
	}
	val, ok := v.Attrs[key]

	return val, ok
}

// AddVertexAttr adds delta to a named numeric attribute on a vertex,
// treating an absent attribute as 0.
// Returns ErrVertexNotFound when the vertex does not exist.
// Complexity: O(1).
func (g *Graph) AddVertexAttr(id, key string, delta float64) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Attrs[key] += delta

	return nil
}
