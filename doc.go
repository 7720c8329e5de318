// Package dynaforest is an online dynamic-forest connectivity library: a
// fixed set of N vertices, an undirected acyclic edge set that changes over
// time, and poly-logarithmic link/cut/connected? queries.
//
// 🌲 What is dynaforest?
//
//	A single-threaded, zero-lock library built from two layered primitives:
//
//	  • treap/       — implicit-key randomized BST: split/merge/rank/cycle-shift
//	                    over an opaque node sequence, in expected O(log n)
//	  • eulerforest/ — Euler-tour encoding of each tree in the forest on top
//	                    of one treap per component; link/cut become a
//	                    constant number of splits, cycle-shifts, and merges
//
// ✨ Why choose dynaforest?
//
//   - Online          — link, cut, and connected? interleave freely, no rebuild
//   - No aggregates   — the treap carries only subtree size, nothing heavier
//   - Deterministic   — a seeded PRNG makes tree shapes reproducible across runs
//   - Pure Go         — node storage is plain *Node values, no arena needed
//
// Under the hood:
//
//	treap/       — Node, Split, Merge, Rank, RootOf, CycleShiftLeft, MoveToFront
//	eulerforest/ — Forest, Link, Cut, Connected, ComponentCount
//
// Quick example:
//
//	f := eulerforest.New(6)
//	_ = f.Link(0, 1)
//	_ = f.Link(1, 2)
//	connected, _ := f.Connected(0, 2) // true
//	_ = f.Cut(1, 2)
//	connected, _ = f.Connected(0, 2) // false
//
// Out of scope: weighted edges, subtree/path aggregates, persistence across
// process restarts, concurrent mutation, and non-tree ("fully dynamic
// graph") connectivity. link is only legal between vertices in distinct
// components — see eulerforest.ErrAlreadyConnected.
//
//	go get github.com/katalvlaran/dynaforest
package dynaforest
