// Package edgebfs implements the traversal declared in types.go.
package edgebfs

import (
	"fmt"

	"github.com/katalvlaran/thermograph/core"
)

// Iterator walks the edge stream lazily. Obtain one from Traverse;
// the zero value is not usable. The underlying graph must not be mutated
// while the Iterator is live.
type Iterator struct {
	graph  *core.Graph
	orient Orientation

	queue     []string            // discovered vertices pending expansion
	seenVerts map[string]struct{} // vertices ever enqueued
	seenEdges map[string]struct{} // edges ever emitted

	pending []Arc // arcs of the vertex currently being expanded
}

// Traverse prepares an edge-first breadth-first traversal of g seeded at
// sources, applying any number of functional Options.
// Duplicate sources are collapsed; order of first occurrence is kept.
// Returns ErrGraphNil, ErrSourceNotFound (wrapped with the offending ID),
// or ErrOptionViolation; the traversal itself cannot fail afterwards.
func Traverse(g *core.Graph, sources []string, opts ...Option) (*Iterator, error) {
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

	// Validate sources before any state is built
	for _, s := range sources {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, s)
		}
	}

	it := &Iterator{
		graph:     g,
		orient:    o.Orient,
		queue:     make([]string, 0, len(sources)),
		seenVerts: make(map[string]struct{}, g.VertexCount()),
		seenEdges: make(map[string]struct{}, g.EdgeCount()),
	}
	// Seed the frontier: all sources sit at depth 0
	for _, s := range sources {
		if _, ok := it.seenVerts[s]; ok {
			continue
		}
		it.seenVerts[s] = struct{}{}
		it.queue = append(it.queue, s)
	}

	return it, nil
}

// Next returns the next arc in discovery order, or ok == false when the
// traversal is exhausted.
func (it *Iterator) Next() (Arc, bool) {
	for {
		if len(it.pending) > 0 {
			arc := it.pending[0]
			it.pending = it.pending[1:]

			return arc, true
		}
		if len(it.queue) == 0 {
			return Arc{}, false
		}
		it.expand(it.dequeue())
	}
}

// All drains the remaining traversal into a slice.
func (it *Iterator) All() []Arc {
	var out []Arc
	for arc, ok := it.Next(); ok; arc, ok = it.Next() {
		out = append(out, arc)
	}

	return out
}

// dequeue pops the next frontier vertex.
func (it *Iterator) dequeue() string {
	u := it.queue[0]
	it.queue = it.queue[1:]

	return u
}

// expand emits every unseen edge leaving u (per the orientation mode) into
// pending and enqueues newly discovered far endpoints.
func (it *Iterator) expand(u string) {
	for _, e := range it.frontierEdges(u) {
		if _, ok := it.seenEdges[e.ID]; ok {
			continue
		}
		it.seenEdges[e.ID] = struct{}{}

		far := farEndpoint(u, e)
		it.pending = append(it.pending, Arc{Edge: e, From: u, To: far})
		if _, ok := it.seenVerts[far]; !ok {
			it.seenVerts[far] = struct{}{}
			it.queue = append(it.queue, far)
		}
	}
}

// frontierEdges lists the edges leaving u under the orientation mode,
// sorted by Edge.ID (core guarantees the ordering).
func (it *Iterator) frontierEdges(u string) []*core.Edge {
	var (
		edges []*core.Edge
		err   error
	)
	switch it.orient {
	case Reverse:
		edges, err = it.graph.InEdges(u)
	case Ignore:
		edges, err = it.graph.IncidentEdges(u)
	default:
		edges, err = it.graph.OutEdges(u)
	}
	if err != nil {
		// Vertices were validated up front and the graph is immutable during
		// iteration, so a lookup failure means the caller broke the contract;
		// treat the vertex as isolated.
		return nil
	}

	return edges
}

// farEndpoint resolves the endpoint of e opposite to u
// (u itself for a self-loop).
func farEndpoint(u string, e *core.Edge) string {
	if e.From == u {
		return e.To
	}

	return e.From
}
