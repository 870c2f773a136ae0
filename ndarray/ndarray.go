// SPDX-License-Identifier: MIT

// Package ndarray - arbitrary-rank row-major container.
//
// Purpose:
//   - Hold a shape.Shape and an exclusively owned storage.Storage.
//   - Index with a multi-index whose length must equal the rank.
//   - Reinterpret the flat buffer under a new shape (Reshape, Flatten) without
//     ever reordering elements: Flatten(Reshape(a, s)) has a's flat order.
//
// Ownership:
//   - Reshape, Flatten, Clone and the Matrix conversions return containers with
//     their own copy of the buffer; the source is never modified or shared.
//
// Complexity quicksheet:
//   - New/Zeros/Ones/Full: O(n); At/Set: O(k); Reshape/Flatten/Clone: O(n).
package ndarray

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvarray/shape"
	"github.com/katalvlaran/lvarray/storage"
)

// NDArray is an N-dimensional float64 container.
// Element idx lives at storage offset sum(idx[j] * strides[j]).
type NDArray struct {
	sh   shape.Shape
	data *storage.Storage
}

var _ fmt.Stringer = (*NDArray)(nil)

// New returns a zero-initialized array of the given shape.
// Errors: ErrInvalidShape for an empty, non-positive or overflowing shape.
func New(dims []int, opts ...Option) (*NDArray, error) {
	return Full(dims, 0, opts...)
}

// Zeros is New.
func Zeros(dims []int, opts ...Option) (*NDArray, error) {
	return Full(dims, 0, opts...)
}

// Ones returns an array filled with 1.0.
func Ones(dims []int, opts ...Option) (*NDArray, error) {
	return Full(dims, 1, opts...)
}

// Full returns an array with every element set to v.
// Errors: ErrInvalidShape; ErrNaNInf when v is rejected by the policy.
func Full(dims []int, v float64, opts ...Option) (*NDArray, error) {
	sh, err := shape.New(dims...)
	if err != nil {
		return nil, fmt.Errorf("ndarray.Full: %w", err)
	}
	st, err := storage.Filled(v, sh.Size(), opts...)
	if err != nil {
		return nil, fmt.Errorf("ndarray.Full%v: %w", dims, err)
	}

	return &NDArray{sh: sh, data: st}, nil
}

// FromFlat copies row-major values into an array of shape dims.
// A nil or empty dims means rank 1 with len(values) elements.
// Errors: ErrInvalidShape, ErrShapeMismatch (len(values) != size), ErrNaNInf.
func FromFlat(values []float64, dims []int, opts ...Option) (*NDArray, error) {
	if len(dims) == 0 {
		dims = []int{len(values)}
	}
	sh, err := shape.New(dims...)
	if err != nil {
		return nil, fmt.Errorf("ndarray.FromFlat: %w", err)
	}
	if len(values) != sh.Size() {
		return nil, fmt.Errorf("ndarray.FromFlat%v: got %d values, want %d: %w", dims, len(values), sh.Size(), ErrShapeMismatch)
	}
	st, err := storage.FromFlat(values, opts...)
	if err != nil {
		return nil, fmt.Errorf("ndarray.FromFlat%v: %w", dims, err)
	}

	return &NDArray{sh: sh, data: st}, nil
}

// Shape returns the array's shape.
func (a *NDArray) Shape() shape.Shape { return a.sh }

// Dims returns a copy of the per-axis sizes.
func (a *NDArray) Dims() []int { return a.sh.Dims() }

// Ndim returns the rank.
func (a *NDArray) Ndim() int { return a.sh.Rank() }

// Size returns the total element count.
func (a *NDArray) Size() int { return a.sh.Size() }

// Strides returns a copy of the row-major strides.
func (a *NDArray) Strides() []int { return a.sh.Strides() }

// AxisSize returns the length of one axis, or ErrIndexOutOfBounds.
func (a *NDArray) AxisSize(axis int) (int, error) {
	d, err := a.sh.Dim(axis)
	if err != nil {
		return 0, fmt.Errorf("NDArray.AxisSize(%d): %w", axis, err)
	}

	return d, nil
}

// ValidatesNaNInf reports whether Set rejects non-finite values.
func (a *NDArray) ValidatesNaNInf() bool { return a.data.ValidatesNaNInf() }

// At returns the element at idx.
// Errors: ErrRankMismatch when len(idx) != Ndim(); ErrIndexOutOfBounds.
func (a *NDArray) At(idx ...int) (float64, error) {
	off, err := a.sh.Offset(idx...)
	if err != nil {
		return 0, fmt.Errorf("NDArray.At: %w", err)
	}

	return a.data.At(off)
}

// Set writes v at idx. Nothing is written when an error is returned.
// Errors: ErrRankMismatch, ErrIndexOutOfBounds, ErrNaNInf.
func (a *NDArray) Set(v float64, idx ...int) error {
	off, err := a.sh.Offset(idx...)
	if err != nil {
		return fmt.Errorf("NDArray.Set: %w", err)
	}
	if err = a.data.Set(off, v); err != nil {
		return fmt.Errorf("NDArray.Set%v: %w", idx, err)
	}

	return nil
}

// Reshape returns a new array with the same flat values under dims.
// The flat order is preserved exactly; only the index mapping changes.
// Errors: ErrInvalidShape for bad dims; ErrReshapeSizeMismatch when the
// element counts differ.
func (a *NDArray) Reshape(dims ...int) (*NDArray, error) {
	sh, err := shape.New(dims...)
	if err != nil {
		return nil, fmt.Errorf("NDArray.Reshape: %w", err)
	}
	if sh.Size() != a.sh.Size() {
		return nil, fmt.Errorf("NDArray.Reshape %v -> %v: size %d != %d: %w",
			a.sh, sh, a.sh.Size(), sh.Size(), ErrReshapeSizeMismatch)
	}

	return &NDArray{sh: sh, data: a.data.Clone()}, nil
}

// Flatten returns the rank-1 array [Size()] with identical flat order.
// Always succeeds.
func (a *NDArray) Flatten() *NDArray {
	return &NDArray{sh: a.sh.Flat(), data: a.data.Clone()}
}

// Clone returns a deep copy with the same shape and policy.
func (a *NDArray) Clone() *NDArray {
	return &NDArray{sh: a.sh, data: a.data.Clone()}
}

// Values returns a row-major copy of all elements.
func (a *NDArray) Values() []float64 { return a.data.Values() }

// Equal reports identical shapes and element-wise equal values.
func (a *NDArray) Equal(o *NDArray) bool {
	if a == nil || o == nil {
		return a == o
	}

	return a.sh.Equal(o.sh) && a.data.Equal(o.data)
}

// Do visits every element in row-major order with its multi-index.
// idx is reused between calls; copy it to retain. Stops when f returns false.
func (a *NDArray) Do(f func(idx []int, v float64) bool) {
	idx := make([]int, a.sh.Rank())
	dims := a.sh.Dims()
	for _, v := range a.data.Raw() {
		if !f(idx, v) {
			return
		}
		// odometer increment, last axis fastest
		for j := len(idx) - 1; j >= 0; j-- {
			idx[j]++
			if idx[j] < dims[j] {
				break
			}
			idx[j] = 0
		}
	}
}

// String renders rank 1 as "[1, 2, 3]" and higher ranks as nested brackets,
// one innermost row per line.
func (a *NDArray) String() string {
	var b strings.Builder
	writeNested(&b, a.data.Raw(), a.sh.Dims(), a.sh.Strides(), 0, 0)

	return b.String()
}

func writeNested(b *strings.Builder, src []float64, dims, strides []int, axis, base int) {
	b.WriteByte('[')
	last := axis == len(dims)-1
	for i := 0; i < dims[axis]; i++ {
		if i > 0 {
			if last {
				b.WriteString(", ")
			} else {
				b.WriteString(",\n")
				b.WriteString(strings.Repeat(" ", axis+1))
			}
		}
		if last {
			fmt.Fprintf(b, "%g", src[base+i])
			continue
		}
		writeNested(b, src, dims, strides, axis+1, base+i*strides[axis])
	}
	b.WriteByte(']')
}
