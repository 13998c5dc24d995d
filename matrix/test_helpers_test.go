// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed so failures point at the kernel.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qs/matrix"
	"github.com/stretchr/testify/require"
)

// Shared tolerances for float64 comparisons.
const (
	rtol = 1e-9
	atol = 1e-9
)

// seedDet is the fixed seed used by random-fill tests.
const seedDet int64 = 42

// MustMatrix builds an r×c float64 matrix from row-major values or fails the test.
func MustMatrix(t testing.TB, r, c int, vals ...float64) *matrix.MatrixX[float64] {
	t.Helper()
	m, err := matrix.NewMatrixFrom(r, c, vals...)
	require.NoError(t, err)

	return m
}

// MustEye returns I_n as float64 or fails the test.
func MustEye(t testing.TB, n int) *matrix.MatrixX[float64] {
	t.Helper()
	m, err := matrix.Eye[float64](n)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt[T matrix.Number](t testing.TB, m *matrix.MatrixX[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireClose asserts same shape and element-wise closeness within rtol/atol.
func RequireClose(t testing.TB, want, got *matrix.MatrixX[float64]) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ:\nwant %v\n got %v", want, got)
}

// shape2x3 is a caller-declared rectangular shape.
type shape2x3 struct{}

func (shape2x3) Dims() (int, int) { return 2, 3 }

// shapeEmpty declares an invalid shape to exercise validation.
type shapeEmpty struct{}

func (shapeEmpty) Dims() (int, int) { return 0, 3 }

// shapeLiar claims to be square but is not.
type shapeLiar struct{}

func (shapeLiar) Dims() (int, int) { return 2, 3 }
func (shapeLiar) Square()          {}
