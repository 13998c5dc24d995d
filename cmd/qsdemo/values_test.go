// SPDX-License-Identifier: MIT
package main

import (
	"testing"

	"github.com/katalvlaran/qs/matrix"
	"github.com/stretchr/testify/require"
)

func TestParseValues(t *testing.T) {
	vals, err := parseValues(" 1, -2.5 ,3e2,")
	require.NoError(t, err)
	require.Equal(t, []float64{1, -2.5, 300}, vals)

	_, err = parseValues("1,x")
	require.Error(t, err)

	_, err = parseValues(" , ")
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)
}

func TestSquareFrom(t *testing.T) {
	m, err := squareFrom("1,2,3,4")
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())

	_, err = squareFrom("1,2,3")
	require.ErrorIs(t, err, errNotSquareCount)
}

func TestMatrixFrom(t *testing.T) {
	m, err := matrixFrom("1,2,3,4,5,6", 2, 0)
	require.NoError(t, err)
	require.Equal(t, 3, m.Cols())

	_, err = matrixFrom("1,2,3,4,5", 2, 0)
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)

	v, err := vectorFrom("4,6,9")
	require.NoError(t, err)
	require.Equal(t, 3, v.Rows())
	require.Equal(t, 1, v.Cols())
}
