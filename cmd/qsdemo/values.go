// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/evilsocket/islazy/str"
	"github.com/katalvlaran/qs/matrix"
)

var errNotSquareCount = errors.New("value count is not a perfect square")

// parseValues splits a comma separated list ("1, 2,3") into float64 values.
func parseValues(csv string) ([]float64, error) {
	parts := str.Comma(csv)
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", p, err)
		}
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("no values in %q: %w", csv, matrix.ErrLengthMismatch)
	}

	return vals, nil
}

// squareFrom builds an n×n matrix from n² comma separated values.
func squareFrom(csv string) (*matrix.MatrixX[float64], error) {
	vals, err := parseValues(csv)
	if err != nil {
		return nil, err
	}
	n := int(math.Round(math.Sqrt(float64(len(vals)))))
	if n*n != len(vals) {
		return nil, fmt.Errorf("%d values: %w", len(vals), errNotSquareCount)
	}

	return matrix.NewMatrixFrom(n, n, vals...)
}

// matrixFrom builds a rows×cols matrix; cols <= 0 infers it from the value count.
func matrixFrom(csv string, rows, cols int) (*matrix.MatrixX[float64], error) {
	vals, err := parseValues(csv)
	if err != nil {
		return nil, err
	}
	if cols <= 0 && rows > 0 {
		cols = len(vals) / rows
	}

	return matrix.NewMatrixFrom(rows, cols, vals...)
}

// vectorFrom builds a column vector.
func vectorFrom(csv string) (*matrix.MatrixX[float64], error) {
	vals, err := parseValues(csv)
	if err != nil {
		return nil, err
	}

	return matrix.NewMatrixFrom(len(vals), 1, vals...)
}
