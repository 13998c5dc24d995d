// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/square/vector checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Live → Shape).

package matrix

import "fmt"

// denseErrorf wraps an error with a uniform MatrixX context and callsite indices.
// Format: "MatrixX.<method>(row,col): %w".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("MatrixX.%s(%d,%d): %w", method, row, col, err)
}

// validateLive ensures m is non-nil and has not been released.
func validateLive[T Number](m *MatrixX[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r <= 0 || m.c <= 0 || m.arr == nil {
		return ErrInvalidDimensions
	}

	return nil
}

// ValidateLive ensures m is non-nil and has not been released.
// Returns ErrNilMatrix or ErrInvalidDimensions.
func ValidateLive[T Number](m *MatrixX[T]) error { return validateLive(m) }

// ValidateSameShape ensures a and b are live and share (rows, cols).
// Returns ErrNilMatrix, ErrInvalidDimensions or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T Number](a, b *MatrixX[T]) error {
	if err := validateLive(a); err != nil {
		return err
	}
	if err := validateLive(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare ensures m is live and rows == cols.
// Returns ErrNilMatrix, ErrInvalidDimensions or ErrNonSquare.
// Complexity: O(1).
func ValidateSquare[T Number](m *MatrixX[T]) error {
	if err := validateLive(m); err != nil {
		return err
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// ValidateVector ensures m is a live column vector (cols == 1).
// Complexity: O(1).
func ValidateVector[T Number](m *MatrixX[T]) error {
	if err := validateLive(m); err != nil {
		return err
	}
	if m.c != 1 {
		return ErrNotVector
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for the product a×b.
// Complexity: O(1).
func ValidateMulCompatible[T Number](a, b *MatrixX[T]) error {
	if err := validateLive(a); err != nil {
		return err
	}
	if err := validateLive(b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// validateShape ensures (rows, cols) from a Shape type are positive.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}

	return nil
}
