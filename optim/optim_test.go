// SPDX-License-Identifier: MIT
package optim_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/qs/matrix"
	"github.com/katalvlaran/qs/optim"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// spd3 is the symmetric positive definite form used by the quadratic solvers.
func spd3(t testing.TB) *matrix.MatrixX[float64] {
	t.Helper()
	a, err := matrix.NewMatrixFrom(3, 3,
		8.0, 2.0, 3.0,
		2.0, 9.0, 5.0,
		3.0, 5.0, 6.0)
	require.NoError(t, err)

	return a
}

func vec(t testing.TB, vals ...float64) *matrix.MatrixX[float64] {
	t.Helper()
	v, err := matrix.NewMatrixFrom(len(vals), 1, vals...)
	require.NoError(t, err)

	return v
}

// requireNear checks every element of v against want within tol.
func requireNear(t testing.TB, want []float64, v *matrix.MatrixX[float64], tol float64) {
	t.Helper()
	got := v.Array().Values()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], tol, "element %d", i)
	}
}

func TestSoftThreshold(t *testing.T) {
	x := vec(t, 3, -0.5, 1, -4)

	out, err := optim.SoftThreshold(x, 0.5, 2.0) // λτ = 1
	require.NoError(t, err)
	require.Equal(t, 4, out.Rows())
	require.Equal(t, 1, out.Cols())
	requireNear(t, []float64{2, 0, 0, -3}, out, 0)

	// input untouched
	requireNear(t, []float64{3, -0.5, 1, -4}, x, 0)

	_, err = optim.SoftThreshold[float64](nil, 1, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	x.Release()
	_, err = optim.SoftThreshold(x, 1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestSoftThresholdKeepsShape(t *testing.T) {
	m, err := matrix.NewMatrixFrom(2, 2, float32(5), -5, 0.25, -0.25)
	require.NoError(t, err)

	out, err := optim.SoftThreshold(m, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 2, out.Rows())
	require.Equal(t, 2, out.Cols())
	require.Equal(t, []float32{4, -4, 0, 0}, out.Array().Values())
}

func TestNewton(t *testing.T) {
	res, err := optim.Newton(spd3(t), vec(t, 4, 6, 9))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, 2, res.Iterations) // exact step, then a zero change
	requireNear(t, []float64{0, 0, 0}, res.X, 1e-9)
	require.InDelta(t, 0, res.F, 1e-12)
}

func TestNewtonFloat32(t *testing.T) {
	a, err := matrix.NewMatrixFrom(2, 2, float32(4), 1, 1, 3)
	require.NoError(t, err)
	x0, err := matrix.NewMatrixFrom(2, 1, float32(1), -2)
	require.NoError(t, err)

	res, err := optim.Newton(a, x0)
	require.NoError(t, err)
	require.True(t, res.Converged)
	for _, v := range res.X.Array().Values() {
		require.InDelta(t, 0, float64(v), 1e-5)
	}
}

func TestNewtonErrors(t *testing.T) {
	_, err := optim.Newton(spd3(t), vec(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	rect, _ := matrix.NewMatrixFrom(2, 3, 1.0, 2, 3, 4, 5, 6)
	_, err = optim.Newton(rect, vec(t, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	skew, _ := matrix.NewMatrixFrom(2, 2, 0.0, 1, -1, 0) // A + Aᵀ = 0
	_, err = optim.Newton(skew, vec(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestGradientDescent(t *testing.T) {
	x0 := vec(t, 4, 6, 9)
	res, err := optim.GradientDescent(spd3(t), x0)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Greater(t, res.Iterations, 100)
	require.Less(t, res.Iterations, optim.DefaultMaxIterations)
	require.Less(t, res.F, 1e-2)
	requireNear(t, []float64{0, 0, 0}, res.X, 0.1)

	// x0 is not modified
	requireNear(t, []float64{4, 6, 9}, x0, 0)
}

func TestGradientDescentBudget(t *testing.T) {
	res, err := optim.GradientDescent(spd3(t), vec(t, 4, 6, 9), optim.WithMaxIterations(10))
	require.ErrorIs(t, err, optim.ErrMaxIterations)
	require.False(t, res.Converged)
	require.Equal(t, 10, res.Iterations)
	require.NotNil(t, res.X)
	require.Less(t, res.F, 1790.0) // f(x0) = 1790
}

func TestADMM(t *testing.T) {
	a, err := matrix.NewMatrixFrom(3, 3,
		1.0, 1.0, -1.0,
		4.0, 2.0, 1.0,
		1.0, -2.0, -2.0)
	require.NoError(t, err)
	b := vec(t, 0, 7, -9)

	// A is non-singular and τ⁻¹ is small, so x approaches A⁻¹b.
	want := []float64{1.0 / 17, 38.0 / 17, 39.0 / 17}
	for _, seed := range []int64{0, 1, 42} {
		res, err := optim.ADMM(a, b, vec(t, 4, 6, 9), optim.WithRand(matrix.NewRand(seed)))
		require.NoError(t, err)
		require.True(t, res.Converged)
		require.Less(t, res.Iterations, 50)
		requireNear(t, want, res.X, 1e-2)
		require.InDelta(t, 0.5*(78.0/17), res.F, 1e-2) // λ‖x‖₁ with a zero residual
	}
}

func TestADMMErrors(t *testing.T) {
	a, _ := matrix.NewMatrixFrom(2, 3, 1.0, 2, 3, 4, 5, 6)

	_, err := optim.ADMM(a, vec(t, 1, 2, 3), vec(t, 1, 1, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = optim.ADMM(a, vec(t, 1, 2), vec(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	row, _ := matrix.NewMatrixFrom(1, 2, 1.0, 2)
	_, err = optim.ADMM(a, row, vec(t, 1, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNotVector)
}

func TestContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := optim.GradientDescent(spd3(t), vec(t, 4, 6, 9), optim.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, res.Iterations)
	require.False(t, res.Converged)
}

func TestIterationLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	res, err := optim.Newton(spd3(t), vec(t, 4, 6, 9), optim.WithLogger(logger))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, res.Iterations)
	for i, e := range entries {
		require.Equal(t, logrus.DebugLevel, e.Level)
		require.Equal(t, "Newton", e.Data["solver"])
		require.Equal(t, i+1, e.Data["iter"])
		require.Contains(t, e.Data, "fx")
		require.Contains(t, e.Data, "delta")
	}

	// Info level drops the per-iteration entries.
	hook.Reset()
	logger.SetLevel(logrus.InfoLevel)
	_, err = optim.Newton(spd3(t), vec(t, 4, 6, 9), optim.WithLogger(logger))
	require.NoError(t, err)
	require.Empty(t, hook.AllEntries())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { optim.WithTolerance(0) })
	require.Panics(t, func() { optim.WithTolerance(math.NaN()) })
	require.Panics(t, func() { optim.WithMaxIterations(0) })
	require.Panics(t, func() { optim.WithStep(-1) })
	require.Panics(t, func() { optim.WithLambda(-0.1) })
	require.Panics(t, func() { optim.WithTauInv(0) })
	require.NotPanics(t, func() { optim.WithLambda(0) })
}

func TestDefaultOptions(t *testing.T) {
	o := optim.DefaultOptions()
	require.NotNil(t, o.Ctx)
	require.Zero(t, o.Tol)
	require.Equal(t, optim.DefaultMaxIterations, o.MaxIter)
	require.Equal(t, optim.DefaultStep, o.Step)
	require.Equal(t, optim.DefaultLambda, o.Lambda)
	require.Equal(t, optim.DefaultTauInv, o.TauInv)
	require.NotNil(t, o.Logger)
}
