// SPDX-License-Identifier: MIT

package optim

import (
	"fmt"

	"github.com/katalvlaran/qs/matrix"
)

const solverADMM = "ADMM"

// lasso holds the loop-invariant pieces of an ADMM run.
type lasso[T Float] struct {
	a, b   *matrix.MatrixX[T]
	lambda T
}

// objective returns ‖Ax − b‖₂ + λ‖x‖₁.
func (l lasso[T]) objective(x *matrix.MatrixX[T]) T {
	r := matrix.Must(matrix.Must(l.a.Mul(x)).Sub(l.b))
	return matrix.Must(r.Norm2()) + l.lambda*matrix.Must(x.Norm1())
}

// ADMM solves min ½‖Ax − b‖² + λ‖x‖₁ for an m×n A and an m-vector b.
//
// Implementation:
//   - Stage 1: precompute (AᵀA + τ⁻¹I)⁻¹ and Aᵀb; draw z and y from the option RNG.
//   - Stage 2: repeat
//     x = (AᵀA + τ⁻¹I)⁻¹ (Aᵀb + τ⁻¹(z − y)),
//     z = SoftThreshold(x + y, λ, 1/τ⁻¹),
//     y = y + τ⁻¹(x − z),
//     until the objective ‖Ax − b‖₂ + λ‖x‖₁ changes by less than Tol.
//
// x0 is only used for the initial objective value; it must be an n-vector.
//
// Errors:
//   - matrix shape sentinels on mismatched a, b, x0.
//   - matrix.ErrSingular when AᵀA + τ⁻¹I cannot be inverted.
//   - ErrMaxIterations or the context error, with the last iterate in Result.
//
// Options: WithLambda, WithTauInv, WithRand, WithTolerance (default
// DefaultADMMTol), WithMaxIterations, WithContext, WithLogger.
func ADMM[T Float](a, b, x0 *matrix.MatrixX[T], opts ...Option) (Result[T], error) {
	if err := validateLasso(a, b, x0); err != nil {
		return Result[T]{}, fmt.Errorf("optim: %s: %w", solverADMM, err)
	}
	o := gatherOptions(DefaultADMMTol, opts...)
	n := a.Cols()
	tauInv := T(o.TauInv)
	p := lasso[T]{a: a, b: b, lambda: T(o.Lambda)}

	at := matrix.Must(a.T())
	eye := matrix.Must(matrix.Eye[T](n))
	sys := matrix.Must(matrix.Must(at.Mul(a)).Add(matrix.Must(eye.Scale(tauInv))))
	sysInv, err := sys.Inv()
	if err != nil {
		return Result[T]{}, fmt.Errorf("optim: %s: %w", solverADMM, err)
	}
	atb := matrix.Must(at.Mul(b))

	z := matrix.Must(matrix.Rand[T](n, 1, o.Rand))
	y := matrix.Must(matrix.Rand[T](n, 1, o.Rand))
	x := x0.Clone()

	step := func() (T, error) {
		zy := matrix.Must(z.Sub(y))
		rhs := matrix.Must(atb.Add(matrix.Must(zy.Scale(tauInv))))
		x = matrix.Must(sysInv.Mul(rhs))
		zz, err := SoftThreshold(matrix.Must(x.Add(y)), p.lambda, 1/tauInv)
		if err != nil {
			return 0, err
		}
		z = zz
		xz := matrix.Must(x.Sub(z))
		y = matrix.Must(y.Add(matrix.Must(xz.Scale(tauInv))))

		return p.objective(x), nil
	}
	iters, f, ok, err := iterate(o, solverADMM, p.objective(x), step)

	return Result[T]{X: x, F: f, Iterations: iters, Converged: ok}, err
}

// validateLasso checks a (m×n), b (m×1) and x0 (n×1).
func validateLasso[T Float](a, b, x0 *matrix.MatrixX[T]) error {
	if err := matrix.ValidateVector(b); err != nil {
		return err
	}
	if err := matrix.ValidateVector(x0); err != nil {
		return err
	}
	if err := matrix.ValidateMulCompatible(a, x0); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return matrix.ErrDimensionMismatch
	}

	return nil
}
