// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/lvarray/matrix"
	"github.com/katalvlaran/lvarray/storage"
)

// FromMatrix returns the rank-2 array [m.Rows(), m.Cols()] holding m's
// elements in the same row-major order. The result owns a copy and keeps
// m's numeric policy.
// Errors: matrix.ErrNilMatrix for a nil m.
func FromMatrix(m *matrix.Matrix) (*NDArray, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ndarray.FromMatrix: %w", err)
	}
	st, err := storage.Adopt(m.Values(), policyOf(m.ValidatesNaNInf())...)
	if err != nil {
		return nil, fmt.Errorf("ndarray.FromMatrix: %w", err)
	}

	return &NDArray{sh: m.Shape(), data: st}, nil
}

// ToMatrix converts a rank-2 array into a Matrix with rows = Dims()[0] and
// cols = Dims()[1], same flat order, own copy, same policy.
// Errors: ErrNilArray; ErrDimensionality unless Ndim() == 2.
func ToMatrix(a *NDArray) (*matrix.Matrix, error) {
	if a == nil {
		return nil, fmt.Errorf("ndarray.ToMatrix: %w", ErrNilArray)
	}
	if a.sh.Rank() != 2 {
		return nil, fmt.Errorf("ndarray.ToMatrix: shape %v has rank %d, want 2: %w", a.sh, a.sh.Rank(), ErrDimensionality)
	}
	dims := a.sh.Dims()
	m, err := matrix.FromFlat(dims[0], dims[1], a.data.Raw(), a.data.Options()...)
	if err != nil {
		return nil, fmt.Errorf("ndarray.ToMatrix: %w", err)
	}

	return m, nil
}

func policyOf(validate bool) []Option {
	if validate {
		return []Option{WithValidateNaNInf()}
	}

	return []Option{WithNoValidateNaNInf()}
}
