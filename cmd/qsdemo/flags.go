// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
)

var errBadFlag = errors.New("invalid flag value")

// flagValues holds the numeric flags that end up in optim options.
type flagValues struct {
	precision int
	tol       float64
	maxIter   int
	step      float64
	lambda    float64
	tauInv    float64
}

// currentFlags snapshots the parsed command line.
func currentFlags() flagValues {
	return flagValues{
		precision: *precision,
		tol:       *tol,
		maxIter:   *maxIter,
		step:      *gdStep,
		lambda:    *admmLambda,
		tauInv:    *admmTauInv,
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// check rejects values the optim option constructors would panic on.
func (f flagValues) check() error {
	switch {
	case f.precision < 0:
		return fmt.Errorf("%w: --precision must be >= 0, got %d", errBadFlag, f.precision)
	case !finite(f.tol) || f.tol < 0:
		return fmt.Errorf("%w: --tol must be finite and >= 0, got %v", errBadFlag, f.tol)
	case f.maxIter < 1:
		return fmt.Errorf("%w: --max-iter must be >= 1, got %d", errBadFlag, f.maxIter)
	case !finite(f.step) || f.step <= 0:
		return fmt.Errorf("%w: --step must be finite and > 0, got %v", errBadFlag, f.step)
	case !finite(f.lambda) || f.lambda < 0:
		return fmt.Errorf("%w: --lambda must be finite and >= 0, got %v", errBadFlag, f.lambda)
	case !finite(f.tauInv) || f.tauInv <= 0:
		return fmt.Errorf("%w: --tau-inv must be finite and > 0, got %v", errBadFlag, f.tauInv)
	}

	return nil
}
