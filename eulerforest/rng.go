// Priority RNG for token creation.
//
// Goals, matching tsp/rng.go's policy in the teacher package:
//   - Determinism: same seed => identical tree shapes across runs.
//   - Encapsulation: a single factory function; no time-based source
//     hidden anywhere.
//   - Correctness is independent of the stream (spec.md section 6); only
//     expected performance depends on it.
package eulerforest

import "math/rand"

// defaultSeed is the fixed seed used when New is given no WithSeed option,
// or WithSeed(0) explicitly — spec.md section 6 calls for "a fixed
// constant" default so zero-configuration test runs stay reproducible.
const defaultSeed uint64 = 1337

// rngFromSeed returns a deterministic *rand.Rand. Policy: seed==0 maps to
// defaultSeed; any other seed is used verbatim.
func rngFromSeed(seed uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(int64(s)))
}

// nextPriority draws one token priority from f's stream. math/rand.Rand
// is not goroutine-safe; callers serialize their own access to Forest
// (spec.md section 5's single-threaded model), so a plain, unsynchronized
// *rand.Rand is sufficient here.
func (f *Forest) nextPriority() uint32 {
	return f.rng.Uint32()
}
