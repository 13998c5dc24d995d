// SPDX-License-Identifier: MIT

// Package matrix - RNG utilities for random fills.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across runs.
//   - Encapsulation: the generator is always passed explicitly; there is no
//     process-wide random state in this package.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package matrix

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// isFloat reports whether T is a floating-point type: 0.5 survives the
// conversion only for float32/float64 underlying types.
func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != 0
}

// randomValue draws one element: uniform [0,1) for floats, full range for integers.
// Integers truncate a uniform 64-bit draw to the width of T.
// Floats redraw on the rare float64 value that rounds up to 1 in a narrower T.
func randomValue[T Number](rng *rand.Rand) T {
	if !isFloat[T]() {
		return T(rng.Uint64())
	}
	for {
		v := T(rng.Float64())
		if v < 1 {
			return v
		}
	}
}
