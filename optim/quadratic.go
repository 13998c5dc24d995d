// SPDX-License-Identifier: MIT

package optim

import (
	"fmt"

	"github.com/katalvlaran/qs/matrix"
)

const (
	solverNewton   = "Newton"
	solverGradient = "GradientDescent"
)

// validateQuadratic checks that a is square and x0 is a vector of matching size.
func validateQuadratic[T Float](solver string, a, x0 *matrix.MatrixX[T]) error {
	if err := matrix.ValidateSquare(a); err != nil {
		return fmt.Errorf("optim: %s: %w", solver, err)
	}
	if err := matrix.ValidateVector(x0); err != nil {
		return fmt.Errorf("optim: %s: %w", solver, err)
	}
	if err := matrix.ValidateMulCompatible(a, x0); err != nil {
		return fmt.Errorf("optim: %s: %w", solver, err)
	}

	return nil
}

// quadForm evaluates xᵀAx. Shapes must already be validated.
func quadForm[T Float](a, x *matrix.MatrixX[T]) T {
	ax := matrix.Must(a.Mul(x))
	return matrix.Must(matrix.Must(matrix.Must(x.T()).Mul(ax)).Scalar())
}

// hessian returns A + Aᵀ, both the Hessian of xᵀAx and the factor of its gradient.
func hessian[T Float](a *matrix.MatrixX[T]) *matrix.MatrixX[T] {
	return matrix.Must(a.Add(matrix.Must(a.T())))
}

// Newton minimizes f(x) = xᵀAx from x0 with full Newton steps θ = −H⁻¹J.
// H is constant, so it is inverted once up front.
//
// Errors:
//   - matrix shape sentinels when a is not square or x0 is not a matching vector.
//   - matrix.ErrSingular when A + Aᵀ has no inverse (e.g. skew-symmetric A).
//   - ErrMaxIterations or the context error, with the last iterate in Result.
//
// Options: WithTolerance (default DefaultNewtonTol), WithMaxIterations,
// WithContext, WithLogger.
func Newton[T Float](a, x0 *matrix.MatrixX[T], opts ...Option) (Result[T], error) {
	if err := validateQuadratic(solverNewton, a, x0); err != nil {
		return Result[T]{}, err
	}
	o := gatherOptions(DefaultNewtonTol, opts...)

	h := hessian(a)
	hinv, err := h.Inv()
	if err != nil {
		return Result[T]{}, fmt.Errorf("optim: %s: %w", solverNewton, err)
	}

	x := x0.Clone()
	step := func() (T, error) {
		j := matrix.Must(h.Mul(x))
		theta := matrix.Must(matrix.Must(hinv.Mul(j)).Scale(-1))
		x = matrix.Must(x.Add(theta))

		return quadForm(a, x), nil
	}
	iters, f, ok, err := iterate(o, solverNewton, quadForm(a, x), step)

	return Result[T]{X: x, F: f, Iterations: iters, Converged: ok}, err
}

// GradientDescent minimizes f(x) = xᵀAx from x0 with x ← x − ηJ, J = (A + Aᵀ)x.
// Convergence needs η < 2/λmax(A + Aᵀ) and a positive definite A.
//
// Options: WithStep (default DefaultStep), WithTolerance (default
// DefaultNewtonTol), WithMaxIterations, WithContext, WithLogger.
func GradientDescent[T Float](a, x0 *matrix.MatrixX[T], opts ...Option) (Result[T], error) {
	if err := validateQuadratic(solverGradient, a, x0); err != nil {
		return Result[T]{}, err
	}
	o := gatherOptions(DefaultNewtonTol, opts...)

	h := hessian(a)
	eta := T(o.Step)
	x := x0.Clone()
	step := func() (T, error) {
		j := matrix.Must(h.Mul(x))
		x = matrix.Must(x.Sub(matrix.Must(j.Scale(eta))))

		return quadForm(a, x), nil
	}
	iters, f, ok, err := iterate(o, solverGradient, quadForm(a, x), step)

	return Result[T]{X: x, F: f, Iterations: iters, Converged: ok}, err
}
