package eulerforest

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dynaforest/treap"
)

// Forest maintains a dynamic forest over vertices [0,N). Each tree in the
// forest is represented internally as one treap sequence holding the
// Euler tour of that tree; an isolated vertex owns no tokens at all.
//
// Forest is not safe for concurrent use: spec.md section 5 excludes
// concurrent mutation by design, so Forest carries no locks. Callers that
// need to share one Forest across goroutines must serialize their own
// access.
type Forest struct {
	n   int
	rng *rand.Rand

	// edges maps a directed-edge key (see key) to its token, for both
	// directions of every currently-linked undirected edge.
	edges map[int64]*token

	// incidence[v] lists v's currently incident neighbors, most recent
	// first; its front defines v's virtual node.
	incidence []incidenceList

	// incidencePos maps a directed-edge key to its handle in the incidence
	// list of that key's "from" vertex, for O(1) removal on Cut.
	incidencePos map[int64]*incidenceNode

	metrics *Metrics
}

// New constructs a Forest over n isolated vertices. n must be
// non-negative. By default the PRNG is seeded with defaultSeed; pass
// WithSeed to override, or WithMetrics to attach Prometheus hooks.
//
// Complexity: O(n).
func New(n int, opts ...Option) *Forest {
	f := &Forest{
		n:            n,
		rng:          rngFromSeed(0),
		edges:        make(map[int64]*token),
		incidence:    make([]incidenceList, n),
		incidencePos: make(map[int64]*incidenceNode),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// key encodes the directed pair (from,to) as a single map key, unique
// because from,to in [0,N) — spec.md section 3's key(from,to) = from*N+to.
func (f *Forest) key(from, to int) int64 {
	return int64(from)*int64(f.n) + int64(to)
}

// validate checks that id is a valid vertex id for this Forest.
func (f *Forest) validate(id int) error {
	if id < 0 || id >= f.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, id, f.n)
	}
	return nil
}

// virtual returns v's virtual node: the token t(v->u) where u is the
// front of incidence[v], or nil if v is isolated.
func (f *Forest) virtual(v int) *token {
	u, ok := f.incidence[v].front()
	if !ok {
		return nil
	}
	return f.edges[f.key(v, u)]
}

// VertexCount returns N, the fixed vertex count this Forest was
// constructed with.
//
// Complexity: O(1).
func (f *Forest) VertexCount() int {
	return f.n
}

// EdgeCount returns the number of currently-linked undirected edges.
//
// Complexity: O(1).
func (f *Forest) EdgeCount() int {
	return len(f.edges) / 2
}

// ComponentCount returns the number of connected components:
// N - EdgeCount(), since the forest has no cycles and every undirected
// edge reduces the component count by exactly one.
//
// Complexity: O(1).
func (f *Forest) ComponentCount() int {
	return f.n - f.EdgeCount()
}

// Connected reports whether u and v currently lie in the same component.
// Connected(v, v) is true for every valid v, including isolated vertices.
//
// Complexity: O(log n) expected.
func (f *Forest) Connected(u, v int) (bool, error) {
	if err := f.validate(u); err != nil {
		return false, err
	}
	if err := f.validate(v); err != nil {
		return false, err
	}
	if u == v {
		return true, nil
	}
	virtU, virtV := f.virtual(u), f.virtual(v)
	if virtU == nil || virtV == nil {
		return false, nil
	}
	return treap.RootOf(virtU) == treap.RootOf(virtV), nil
}

// Link adds the undirected edge {u,v}. u and v must be distinct and must
// not already be connected; violating either returns ErrSelfLoop or
// ErrAlreadyConnected and leaves the Forest unchanged.
//
// Complexity: O(log n) expected.
func (f *Forest) Link(u, v int) error {
	if err := f.validate(u); err != nil {
		return err
	}
	if err := f.validate(v); err != nil {
		return err
	}
	if u == v {
		return ErrSelfLoop
	}
	connected, err := f.Connected(u, v)
	if err != nil {
		return err
	}
	if connected {
		return ErrAlreadyConnected
	}

	// Allocate both tokens before any sequence-tree mutation, so that a
	// hypothetical allocation failure leaves the Forest untouched
	// (spec.md section 7's rollback-by-ordering requirement).
	fwd := treap.NewNode(edgeData{from: u, to: v}, f.nextPriority())
	bwd := treap.NewNode(edgeData{from: v, to: u}, f.nextPriority())

	var su, sv *token
	if virtU := f.virtual(u); virtU != nil {
		su = treap.MoveToFront(virtU)
	}
	if virtV := f.virtual(v); virtV != nil {
		sv = treap.MoveToFront(virtV)
	}
	treap.Merge(treap.Merge(su, fwd), treap.Merge(sv, bwd))

	fk, bk := f.key(u, v), f.key(v, u)
	f.edges[fk] = fwd
	f.edges[bk] = bwd
	f.incidencePos[fk] = f.incidence[u].pushFront(v)
	f.incidencePos[bk] = f.incidence[v].pushFront(u)

	f.metrics.observe(true, f.ComponentCount())
	return nil
}

// Cut removes the undirected edge {u,v}, which must currently exist.
//
// Complexity: O(log n) expected.
func (f *Forest) Cut(u, v int) error {
	if err := f.validate(u); err != nil {
		return err
	}
	if err := f.validate(v); err != nil {
		return err
	}
	if u == v {
		return ErrSelfLoop
	}
	fk, bk := f.key(u, v), f.key(v, u)
	e1, ok := f.edges[fk]
	if !ok {
		return ErrEdgeNotFound
	}
	e2 := f.edges[bk]

	p1, p2 := treap.Rank(e1), treap.Rank(e2)
	if p1 > p2 {
		e1, e2 = e2, e1
		p1, p2 = p2, p1
	}
	root := treap.RootOf(e1)

	mid, right := treap.Split(root, p2)
	_, afterE2 := treap.Split(right, 1) // peels off e2
	beforeE1, leftRemainder := treap.Split(mid, p1)
	_, between := treap.Split(leftRemainder, 1) // peels off e1

	treap.Merge(beforeE1, afterE2) // component outside the two removed tokens
	_ = between                    // component enclosed by them (may be nil: isolated)

	delete(f.edges, fk)
	delete(f.edges, bk)

	if n, ok := f.incidencePos[fk]; ok {
		f.incidence[u].remove(n)
		delete(f.incidencePos, fk)
	}
	if n, ok := f.incidencePos[bk]; ok {
		f.incidence[v].remove(n)
		delete(f.incidencePos, bk)
	}

	f.metrics.observe(false, f.ComponentCount())
	return nil
}
