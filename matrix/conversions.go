// SPDX-License-Identifier: MIT

// Package matrix provides converters between Matrix and gonum's dense type,
// so engine values can be handed to gonum routines (factorizations, solvers)
// and results brought back under the engine's ownership rules.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense with identical row-major contents.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ToGonum(m *Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}

	return mat.NewDense(m.r, m.c, m.data.Values()), nil
}

// FromGonum copies any gonum matrix into a new Matrix.
// Elements are read through At in i→j order, so views and transposed
// gonum values are materialized correctly.
// Errors: ErrNilMatrix; ErrInvalidShape for an empty gonum matrix; ErrNaNInf under policy.
func FromGonum(src mat.Matrix, opts ...Option) (*Matrix, error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	rows, cols := src.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("FromGonum", fmt.Errorf("dims %dx%d: %w", rows, cols, ErrInvalidShape))
	}
	flat := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			flat = append(flat, src.At(i, j))
		}
	}
	m, err := FromFlat(rows, cols, flat, opts...)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}

	return m, nil
}
