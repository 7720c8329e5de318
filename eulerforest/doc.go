// Package eulerforest maintains a dynamic forest over a fixed set of N
// vertices: an undirected, acyclic edge set that changes online under
// Link and Cut, answering Connected queries in expected O(log n).
//
// What & why
//
//   - What is a dynamic forest?
//     A forest (an undirected graph with no cycles) whose edge set changes
//     over time via online insertions and deletions, with connectivity
//     queries interleaved — exactly the upper layer a fully dynamic graph
//     connectivity structure, an incremental MST maintainer, or a
//     network link-state tracker needs underneath it.
//
//   - Why an Euler tour on a treap?
//     Each tree in the forest is stored as one treap/ sequence: the Euler
//     tour of that tree, one directed-edge token per traversal step. Link
//     and Cut become a constant number of treap Split/Merge/MoveToFront
//     calls — no per-operation rebuild, no aggregate recomputation, just
//     pointer rewiring. Two vertices are connected iff their incident
//     tokens' sequence roots coincide (treap.RootOf), because every token
//     belonging to one tree lives in exactly one sequence.
//
// API surface
//
//	f := eulerforest.New(n, opts...)
//	f.Link(u, v) error           // u, v must be in distinct components
//	f.Cut(u, v) error            // edge {u,v} must currently exist
//	f.Connected(u, v) (bool, error)
//	f.ComponentCount() int       // == N - |edges|/2
//	f.VertexCount() int
//	f.EdgeCount() int
//
// Construction accepts a deterministic seed (WithSeed) for reproducible
// tree shapes across runs, and an optional Prometheus hook set
// (WithMetrics) for deployments that want to export forest-shape metrics
// — see metrics.go. Neither changes any observable connectivity behavior.
//
// Non-goals: weighted edges, subtree/path aggregates, persistence across
// process restarts, concurrent mutation (the forest carries no locks —
// callers serialize their own access), and non-tree ("fully dynamic
// graph") connectivity. Link between already-connected vertices and Cut of
// a nonexistent edge are precondition violations reported as errors, not
// recovered internally.
package eulerforest
