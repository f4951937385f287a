// Package mat builds gonum matrices from plain slices for the regression models
package mat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrEmpty       = errors.New("no rows or columns to build a matrix from")
	ErrColMismatch = errors.New("column size mismatch")
)

// NewDenseFromArray flattens a row ordered slice of rows into a dense matrix. Every row must have
// the same number of columns.
func NewDenseFromArray(x [][]float64) (*mat.Dense, error) {
	m := len(x)
	if m == 0 {
		return nil, ErrEmpty
	}

	n := len(x[0])
	for i, row := range x {
		if len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
	}
	if n == 0 {
		return nil, ErrEmpty
	}

	// flatten to row order
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// NewColumn returns an m x 1 matrix holding a copy of x, the shape of a single feature design
// matrix or a target vector.
func NewColumn(x []float64) (*mat.Dense, error) {
	if len(x) == 0 {
		return nil, ErrEmpty
	}
	data := make([]float64, len(x))
	copy(data, x)
	return mat.NewDense(len(x), 1, data), nil
}
