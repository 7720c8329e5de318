package treap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynaforest/treap"
)

// BenchmarkInsertAt measures amortized InsertAt cost for a sequence built
// one element at a time by appending at the end.
func BenchmarkInsertAt(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	var root *treap.Node[int]
	for i := 0; i < b.N; i++ {
		root = treap.InsertAt(root, treap.NewNode(i, rng.Uint32()), treap.SubtreeSize(root))
	}
}

// BenchmarkRank measures Rank on a node buried in a mid-sized sequence.
func BenchmarkRank(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	var root *treap.Node[int]
	var target *treap.Node[int]
	const n = 100_000
	for i := 0; i < n; i++ {
		node := treap.NewNode(i, rng.Uint32())
		root = treap.InsertAt(root, node, treap.SubtreeSize(root))
		if i == n/2 {
			target = node
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = treap.Rank(target)
	}
}

// BenchmarkSplitMerge measures a split/merge round trip on a fixed-size
// sequence.
func BenchmarkSplitMerge(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	var root *treap.Node[int]
	const n = 100_000
	for i := 0; i < n; i++ {
		root = treap.InsertAt(root, treap.NewNode(i, rng.Uint32()), treap.SubtreeSize(root))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l, r := treap.Split(root, n/2)
		root = treap.Merge(l, r)
	}
}
