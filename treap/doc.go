// Package treap implements an implicit-key balanced binary search tree:
// a sequence of caller-supplied elements ordered by tree shape rather than
// by key comparison, kept balanced in expectation by a random priority
// drawn once per node (heap order on priority, in-order on position).
//
// What & why
//
//   - What is an implicit key?
//     A node's "key" is its 0-based rank in the in-order traversal of its
//     tree — nothing is stored for it. Split/merge/rank manipulate subtree
//     sizes instead of comparing stored keys, which is exactly what lets
//     the structure represent an arbitrary reorderable sequence rather than
//     a sorted set.
//
//   - Why a treap here?
//     Node(u→v) tokens need two properties a plain slice cannot give them
//     cheaply: stable identity (split/merge never copy or relocate a node)
//     and O(log n) locate-by-pointer (RootOf, Rank). A randomized BST gives
//     both: node addresses never move, and heap-order-by-random-priority
//     keeps expected depth O(log n) without any rebalancing logic.
//
// Operations
//
//   - SubtreeSize(n) — O(1)
//   - RootOf(n)      — O(log n) expected; n must be non-nil
//   - Rank(n)        — O(log n) expected; n must be non-nil
//   - Split(root, k) — O(log n) expected
//   - Merge(l, r)    — O(log n) expected; precondition: l and r draw
//     priorities from one shared random source, so the merged tree stays a
//     random heap
//   - InsertAt(root, n, k) — O(log n) expected
//   - CycleShiftLeft(root, k) — O(log n) expected
//   - MoveToFront(n) — O(log n) expected
//
// The tree never allocates or frees nodes; callers own node storage via
// NewNode and only ever pass existing *Node[T] pointers into this package,
// which rewires child/parent links in place. A node starts detached: size
// 1, nil children, nil parent.
//
// Failure semantics: all operations are total over their stated
// preconditions. Split with k > SubtreeSize(root) degenerates to k =
// SubtreeSize(root) (everything lands in the left half); Merge treats a
// nil operand as identity. RootOf and Rank require a non-nil node —
// passing nil is a caller bug, not a recoverable condition.
package treap
