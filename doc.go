// Package thermograph computes scalar temperature fields over graphs:
// additive heat radiating outward from source nodes in breadth-first layers.
//
// 🔥 What is thermograph?
//
//	A thread-safe, pure-Go library that brings together:
//		• Core primitives: vertices, edges and numeric attributes under locks
//		• Edge-first BFS: every edge exactly once, in discovery-depth order
//		• Temperature fields: per-layer increments, weights, depth limits,
//		  and a baseline pass for unreachable elements
//
// ✨ Why choose thermograph?
//
//   - Deterministic – sorted enumeration makes every run reproducible
//   - Rock-solid guarantees – R/W locks, sentinel errors, in-code docs
//   - Pure Go – no cgo, no hidden deps
//   - Composable – the traversal and the field computation are separate
//     packages you can reuse on their own
//
// Under the hood, everything is organized under three subpackages:
//
//	core/    — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	edgebfs/ — edge-first breadth-first traversal with orientation modes
//	heat/    — the temperature-field computation itself
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	seeding heat at A with unit increments warms A to 1, B and C to 1,
//	and D to 1, with every edge carrying the increment of its layer.
//
// Dive into the per-package docs for the full contracts.
//
//	go get github.com/katalvlaran/thermograph
package thermograph
