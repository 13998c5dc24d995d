// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions; panics are reserved for nonsensical Option
// arguments and for Must, which callers opt into explicitly.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf("<Op>", ErrX) so the
// message reads "Mul: matrix: dimension mismatch" while errors.Is still matches.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> structural (square/vector/scalar)
// -> numeric degeneracy (ErrSingular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a flat index or a (row, col) pair is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a dynamic
	// matrix assigned into a fixed shape it does not match.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotVector signals that a column vector (cols == 1) was required.
	ErrNotVector = errors.New("matrix: matrix is not a column vector")

	// ErrNotScalar signals that a 1×1 matrix was required.
	ErrNotScalar = errors.New("matrix: matrix is not 1x1")

	// ErrLengthMismatch is returned by the row-major builders when the number of
	// supplied values differs from rows*cols.
	ErrLengthMismatch = errors.New("matrix: value count does not match shape")

	// ErrSingular is returned when Gauss-Jordan finds no usable pivot in a column.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *MatrixX or *Array (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Use only when err != nil; wrapping nil yields a non-nil error.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Must returns v when err is nil and panics with err otherwise.
// It is meant for expression chains whose shapes were validated up front,
// e.g. Must(Must(a.T()).Mul(b)).
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}

	return v
}
