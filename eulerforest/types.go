package eulerforest

import (
	"errors"

	"github.com/katalvlaran/dynaforest/treap"
)

// Sentinel errors for Forest operations.
var (
	// ErrOutOfRange indicates a vertex id outside [0, N).
	ErrOutOfRange = errors.New("eulerforest: vertex id out of range")

	// ErrSelfLoop indicates Link or Cut was called with u == v; self-loops
	// are not representable (Connected(v, v) is defined to be true without
	// this restriction, but Link/Cut operate on a pair of distinct
	// endpoints by construction).
	ErrSelfLoop = errors.New("eulerforest: u and v must be distinct")

	// ErrAlreadyConnected indicates Link was called between two vertices
	// already in the same component; link is only legal between distinct
	// components.
	ErrAlreadyConnected = errors.New("eulerforest: u and v are already connected")

	// ErrEdgeNotFound indicates Cut referenced an edge that does not
	// currently exist.
	ErrEdgeNotFound = errors.New("eulerforest: edge not found")
)

// edgeData is the payload carried by each directed-edge token.
type edgeData struct {
	from, to int
}

// token is one directed-edge element of a component's Euler-tour
// sequence. It is a plain alias for the treap node type this package
// builds its sequences from.
type token = treap.Node[edgeData]

// Option configures a Forest at construction time.
type Option func(*Forest)

// WithSeed sets the deterministic PRNG seed used to draw token
// priorities. Seed 0 is equivalent to not calling WithSeed at all: both
// map to defaultSeed, so a zero-value construction stays reproducible.
func WithSeed(seed uint64) Option {
	return func(f *Forest) {
		f.rng = rngFromSeed(seed)
	}
}

// WithMetrics attaches a Prometheus-backed hook set that Link and Cut
// update synchronously on every successful call. Passing a nil Metrics is
// a no-op.
func WithMetrics(m *Metrics) Option {
	return func(f *Forest) {
		if m != nil {
			f.metrics = m
		}
	}
}
