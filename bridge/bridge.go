// SPDX-License-Identifier: MIT

// Package bridge converts between matrix.MatrixX and gonum's mat types.
//
// Purpose:
//   - Hand kernel matrices to gonum (factorizations, solvers, printing) and
//     bring results back without reshaping by hand.
//   - Serve as an independent numeric reference for the kernel's own Det, Inv,
//     Mul and norms.
//
// Conversions always copy. Elements pass through float64: integer element
// types round-trip exactly within ±2⁵³, values coming back from gonum are
// truncated toward zero for integer T.
package bridge

import (
	"fmt"

	"github.com/katalvlaran/qs/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opToDense    = "ToDense"
	opToVecDense = "ToVecDense"
	opFromMatrix = "FromMatrix"
	opNorm       = "Norm"
)

func bridgeErrorf(op string, err error) error {
	return fmt.Errorf("bridge: %s: %w", op, err)
}

// float64s copies the row-major elements of m as float64.
func float64s[T matrix.Number](m *matrix.MatrixX[T]) []float64 {
	vals := m.Array().Values()
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}

	return out
}

// ToDense copies m into a new *mat.Dense of the same shape.
// Errors: matrix.ErrNilMatrix or matrix.ErrInvalidDimensions for a nil or
// released m.
func ToDense[T matrix.Number](m *matrix.MatrixX[T]) (*mat.Dense, error) {
	if err := matrix.ValidateLive(m); err != nil {
		return nil, bridgeErrorf(opToDense, err)
	}

	return mat.NewDense(m.Rows(), m.Cols(), float64s(m)), nil
}

// ToVecDense copies a column vector m into a new *mat.VecDense.
// Errors: matrix.ErrNotVector when m has more than one column.
func ToVecDense[T matrix.Number](m *matrix.MatrixX[T]) (*mat.VecDense, error) {
	if err := matrix.ValidateVector(m); err != nil {
		return nil, bridgeErrorf(opToVecDense, err)
	}

	return mat.NewVecDense(m.Rows(), float64s(m)), nil
}

// FromMatrix copies any gonum matrix (Dense, VecDense, a transpose view, ...)
// into a new MatrixX[T].
// Errors: matrix.ErrNilMatrix for a nil a; matrix.ErrInvalidDimensions for an
// empty one.
func FromMatrix[T matrix.Number](a mat.Matrix) (*matrix.MatrixX[T], error) {
	if a == nil {
		return nil, bridgeErrorf(opFromMatrix, matrix.ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := matrix.NewMatrixX[T](r, c)
	if err != nil {
		return nil, bridgeErrorf(opFromMatrix, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, T(a.At(i, j))); err != nil {
				return nil, bridgeErrorf(opFromMatrix, err)
			}
		}
	}

	return m, nil
}

// Norm returns the L-norm of the elements of a column vector via
// floats.Norm: L = 1 and L = 2 match Norm1 and Norm2 of the kernel, and
// L = math.Inf(1) gives the max-abs norm the kernel does not provide.
// The result is always float64, so integer vectors are not truncated.
func Norm[T matrix.Number](m *matrix.MatrixX[T], L float64) (float64, error) {
	if err := matrix.ValidateVector(m); err != nil {
		return 0, bridgeErrorf(opNorm, err)
	}

	return floats.Norm(float64s(m), L), nil
}
