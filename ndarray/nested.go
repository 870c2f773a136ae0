// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

// FromNested builds an array from nested sequences of float64.
//
// Accepted node types are float64, float32, int and int64 (leaves, widened
// to float64), []float64, [][]float64, [][][]float64 and []any. They may be
// mixed at different depths as long as the result is a regular
// hyper-rectangle. The rank is the nesting depth and each axis size is the
// (uniform) sequence length at that depth.
//
// Errors:
//   - ErrInvalidShape: a scalar, nil, or any empty sequence.
//   - ErrRaggedInput: lengths differ within a level, or scalars and
//     sequences are mixed as siblings.
//   - ErrUnsupportedValue: any other element type.
//   - ErrNaNInf: a non-finite leaf under WithValidateNaNInf.
func FromNested(v any, opts ...Option) (*NDArray, error) {
	switch v.(type) {
	case nil:
		return nil, fmt.Errorf("ndarray.FromNested(nil): %w", ErrInvalidShape)
	case float64, float32, int, int64:
		return nil, fmt.Errorf("ndarray.FromNested: scalar input has no shape: %w", ErrInvalidShape)
	}
	w := nestWalker{rank: -1}
	if err := w.walk(v, 0); err != nil {
		return nil, fmt.Errorf("ndarray.FromNested: %w", err)
	}
	a, err := FromFlat(w.flat, w.dims, opts...)
	if err != nil {
		return nil, fmt.Errorf("ndarray.FromNested: %w", err)
	}

	return a, nil
}

// nestWalker fixes dims along the first path to a leaf and holds every
// later path to them.
type nestWalker struct {
	dims []int
	rank int // depth of the first leaf; -1 until seen
	flat []float64
}

func (w *nestWalker) walk(v any, axis int) error {
	switch x := v.(type) {
	case float64:
		return w.leaves(axis, x)
	case float32:
		return w.leaves(axis, float64(x))
	case int:
		return w.leaves(axis, float64(x))
	case int64:
		return w.leaves(axis, float64(x))
	case []float64:
		if err := w.seq(axis, len(x)); err != nil {
			return err
		}
		return w.leaves(axis+1, x...)
	case [][]float64:
		if err := w.seq(axis, len(x)); err != nil {
			return err
		}
		for _, e := range x {
			if err := w.walk(e, axis+1); err != nil {
				return err
			}
		}
	case [][][]float64:
		if err := w.seq(axis, len(x)); err != nil {
			return err
		}
		for _, e := range x {
			if err := w.walk(e, axis+1); err != nil {
				return err
			}
		}
	case []any:
		if err := w.seq(axis, len(x)); err != nil {
			return err
		}
		for _, e := range x {
			if err := w.walk(e, axis+1); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("element of type %T at depth %d: %w", v, axis, ErrUnsupportedValue)
	}

	return nil
}

// seq records or checks a sequence of length n at depth axis.
func (w *nestWalker) seq(axis, n int) error {
	if n == 0 {
		return fmt.Errorf("empty sequence at depth %d: %w", axis, ErrInvalidShape)
	}
	if w.rank >= 0 && axis >= w.rank {
		return fmt.Errorf("sequence at depth %d where scalars were found: %w", axis, ErrRaggedInput)
	}
	if axis < len(w.dims) {
		if w.dims[axis] != n {
			return fmt.Errorf("length %d at depth %d, want %d: %w", n, axis, w.dims[axis], ErrRaggedInput)
		}
		return nil
	}
	w.dims = append(w.dims, n)

	return nil
}

// leaves appends scalars found at depth axis.
func (w *nestWalker) leaves(axis int, vs ...float64) error {
	if w.rank < 0 {
		w.rank = axis
	}
	if axis != w.rank {
		return fmt.Errorf("scalar at depth %d, want depth %d: %w", axis, w.rank, ErrRaggedInput)
	}
	w.flat = append(w.flat, vs...)

	return nil
}

// ToNested materializes the elements per shape: []float64 for rank 1,
// otherwise []any nested Ndim()-1 levels deep with []float64 leaves.
// The result shares nothing with a, and FromNested(a.ToNested()) equals a.
func (a *NDArray) ToNested() any {
	src := a.data.Raw()
	dims := a.sh.Dims()
	strides := a.sh.Strides()

	return buildNested(src, dims, strides, 0, 0)
}

func buildNested(src []float64, dims, strides []int, axis, base int) any {
	if axis == len(dims)-1 {
		row := make([]float64, dims[axis])
		copy(row, src[base:base+dims[axis]])
		return row
	}
	out := make([]any, dims[axis])
	for i := range out {
		out[i] = buildNested(src, dims, strides, axis+1, base+i*strides[axis])
	}

	return out
}
