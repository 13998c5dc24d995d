// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qs/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSameShape(t *testing.T) {
	a := MustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)

	require.NoError(t, matrix.ValidateSameShape(a, a.Clone()))
	require.ErrorIs(t, matrix.ValidateSameShape(a, matrix.Must(a.T())), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(nil, a), matrix.ErrNilMatrix)

	released := a.Clone()
	released.Release()
	require.ErrorIs(t, matrix.ValidateSameShape(a, released), matrix.ErrInvalidDimensions)
}

func TestValidateLive(t *testing.T) {
	m := MustEye(t, 2)
	require.NoError(t, matrix.ValidateLive(m))
	m.Release()
	require.ErrorIs(t, matrix.ValidateLive(m), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateLive[float64](nil), matrix.ErrNilMatrix)
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustEye(t, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(MustMatrix(t, 1, 2, 1, 2)), matrix.ErrNonSquare)

	var m *matrix.MatrixX[int]
	require.ErrorIs(t, matrix.ValidateSquare(m), matrix.ErrNilMatrix)
}

func TestValidateVector(t *testing.T) {
	require.NoError(t, matrix.ValidateVector(MustMatrix(t, 3, 1, 1, 2, 3)))
	require.NoError(t, matrix.ValidateVector(MustMatrix(t, 1, 1, 5)))
	require.ErrorIs(t, matrix.ValidateVector(MustMatrix(t, 1, 3, 1, 2, 3)), matrix.ErrNotVector)
}

func TestValidateMulCompatible(t *testing.T) {
	a := MustMatrix(t, 2, 3, 1, 2, 3, 4, 5, 6)

	require.NoError(t, matrix.ValidateMulCompatible(a, matrix.Must(a.T())))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
}

// TestErrorContext checks that wrapped errors carry the operation tag.
func TestErrorContext(t *testing.T) {
	_, err := MustEye(t, 2).At(5, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "MatrixX.At(5,0)")

	_, err = MustMatrix(t, 1, 2, 1, 2).Det()
	require.EqualError(t, err, "Det: "+matrix.ErrNonSquare.Error())
}

// TestMustPanics checks that Must re-raises the error.
func TestMustPanics(t *testing.T) {
	require.Panics(t, func() { matrix.Must(matrix.NewMatrixX[float64](0, 1)) })
	require.NotPanics(t, func() { matrix.Must(matrix.NewMatrixX[float64](1, 1)) })
}
