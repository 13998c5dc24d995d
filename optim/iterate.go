// SPDX-License-Identifier: MIT

package optim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// iterate drives step until |f − last| < o.Tol, the budget runs out, or the
// context is done. f0 is the objective at the starting point.
//
// Returns the number of completed steps, the objective after the last step,
// whether the stopping rule was met, and ErrMaxIterations or the context error.
func iterate[T Float](o Options, solver string, f0 T, step func() (T, error)) (int, T, bool, error) {
	log := o.Logger.WithField("solver", solver)
	last := f0

	var it int
	for it = 1; it <= o.MaxIter; it++ {
		if err := o.Ctx.Err(); err != nil {
			return it - 1, last, false, fmt.Errorf("optim: %s: %w", solver, err)
		}
		f, err := step()
		if err != nil {
			return it - 1, last, false, fmt.Errorf("optim: %s: %w", solver, err)
		}
		delta := math.Abs(float64(f) - float64(last))
		log.WithFields(logrus.Fields{
			"iter":  it,
			"fx":    f,
			"delta": delta,
		}).Debug("step")
		if delta < o.Tol {
			return it, f, true, nil
		}
		last = f
	}

	return o.MaxIter, last, false, fmt.Errorf("optim: %s: %w", solver, ErrMaxIterations)
}
