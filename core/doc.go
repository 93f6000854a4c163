// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface and numeric attribute storage on every
// vertex and edge.
//
// The Graph G = (V,E) supports a mix of behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Named numeric attributes per vertex and per edge
//     (SetVertexAttr/VertexAttr/AddVertexAttr and the edge equivalents)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//     to minimize lock contention under concurrency
//
// Why use core.Graph?
//
//   - Single type, composable flags — no explosion of separate graph types.
//   - Deterministic iteration — Vertices(), Edges(), OutEdges() all return
//     sorted results, so every traversal built on top is reproducible.
//   - Clone support — CloneEmpty (vertices+flags) and CloneStructure
//     (vertices+edges with preserved IDs, fresh attribute maps), the
//     “same kind of graph” factory used by attribute-annotating algorithms.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Sets the orientation semantics of edges.
//	    • Directed graphs store only “from→to” pointers.
//	    • Undirected graphs mirror edges in adjacencyList[to][from].
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Attributes:
//
//	Every vertex and edge owns a map from attribute name to float64.
//	Reads are comma-ok (absent attribute ≠ error); writes on a missing
//	element return ErrVertexNotFound / ErrEdgeNotFound. AddVertexAttr and
//	AddEdgeAttr accumulate, treating an absent attribute as zero.
//
// Errors:
//
//   - ErrEmptyVertexID        empty vertex identifier
//   - ErrVertexNotFound       referenced vertex does not exist
//   - ErrEdgeNotFound         referenced edge does not exist
//   - ErrLoopNotAllowed       self-loop while loops are disabled
//   - ErrMultiEdgeNotAllowed  parallel edge while multi-edges are disabled
//
// Concurrency model:
//
//	muVert guards the vertex catalog and vertex attributes; muEdgeAdj guards
//	the edge catalog, edge attributes, and adjacency. All read queries take
//	read locks, so concurrent readers never block each other.
package core
