// SPDX-License-Identifier: MIT
// Package matrix - public constructor facades for MatrixX.
//
// Purpose:
//   - Provide thin, intention-revealing factories (Eye, Zeros, Ones, Rand).
//   - Avoid logic duplication: each facade delegates to NewMatrixX plus one
//     *InPlace fill.
//
// Determinism & Policy:
//   - Rand takes the generator explicitly; pass NewRand(seed) for reproducible data.

package matrix

import "math/rand"

// Eye returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func Eye[T Number](n int) (*MatrixX[T], error) {
	m, err := NewMatrixX[T](n, n)
	if err != nil {
		return nil, err
	}
	m.eyeInPlace()

	return m, nil
}

// Zeros returns a rows×cols matrix of zeros. It is NewMatrixX under an
// intention-revealing name.
func Zeros[T Number](rows, cols int) (*MatrixX[T], error) {
	return NewMatrixX[T](rows, cols)
}

// Ones returns a rows×cols matrix of ones.
func Ones[T Number](rows, cols int) (*MatrixX[T], error) {
	m, err := NewMatrixX[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.FillOnesInPlace()

	return m, nil
}

// Rand returns a rows×cols matrix filled from rng (see FillRandInPlace).
func Rand[T Number](rows, cols int, rng *rand.Rand) (*MatrixX[T], error) {
	m, err := NewMatrixX[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.FillRandInPlace(rng)

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Number](m *MatrixX[T]) (*MatrixX[T], error) {
	if err := validateLive(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewMatrixX[T](m.r, m.c)
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike[T Number](m *MatrixX[T]) (*MatrixX[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Eye[T](m.r)
}
