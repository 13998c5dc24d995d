// SPDX-License-Identifier: MIT

package optim

import (
	"fmt"

	"github.com/katalvlaran/qs/matrix"
)

// SoftThreshold returns sign(x) ⊙ max(|x| − λτ, 0) with the shape of x.
// Elements within λτ of zero become zero; the rest shrink toward zero by λτ.
// Note that sign(0) is −1, so an exact zero input yields −0.
//
// Errors: matrix.ErrNilMatrix for a nil x, matrix.ErrInvalidDimensions for a
// released one.
func SoftThreshold[T Float](x *matrix.MatrixX[T], lambda, tau T) (*matrix.MatrixX[T], error) {
	if err := matrix.ValidateLive(x); err != nil {
		return nil, fmt.Errorf("optim: SoftThreshold: %w", err)
	}
	a := x.Array()
	shrunk := a.Abs().SubScalar(lambda * tau).Max(0)
	out, err := a.Sign().Mul(shrunk)
	if err != nil {
		return nil, fmt.Errorf("optim: SoftThreshold: %w", err)
	}

	return matrix.NewMatrixFromArray(out, x.Rows(), x.Cols())
}
