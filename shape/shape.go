// SPDX-License-Identifier: MIT

// Package shape - validated dimension lists & row-major layout arithmetic.
//
// Purpose:
//   - Single source of truth for size, strides and multi-index → offset mapping.
//   - Both matrix.Matrix and ndarray.NDArray delegate bounds checking here, so
//     the index formula sum(i_j * stride_j) lives in exactly one place.
//
// Invariants:
//   - rank >= 1, every dim >= 1, size fits in int.
//   - strides are derived once at construction and never mutated; a Shape is
//     immutable after New returns.
//
// Complexity quicksheet:
//   - New: O(k); Size/Rank: O(1); Offset/Unravel: O(k); Dims/Strides: O(k) copy.
package shape

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvarray/numerr"
)

// Re-exported sentinels so callers can match without importing numerr.
var (
	ErrInvalidShape     = numerr.ErrInvalidShape
	ErrIndexOutOfBounds = numerr.ErrIndexOutOfBounds
	ErrRankMismatch     = numerr.ErrRankMismatch
)

// Shape is an immutable, validated list of positive dimension sizes
// together with its row-major strides and total element count.
// The zero value is not a valid Shape; obtain one from New.
type Shape struct {
	dims    []int // per-axis sizes, each >= 1
	strides []int // stride[k-1] = 1, stride[i] = stride[i+1]*dims[i+1]
	size    int   // product of dims
}

// New validates dims and derives the row-major layout.
// Stage 1 (Validate): reject empty lists and non-positive dims.
// Stage 2 (Prepare): multiply sizes with overflow detection.
// Stage 3 (Finalize): compute strides from the innermost axis outwards.
// Errors: ErrInvalidShape.
// Complexity: O(k).
func New(dims ...int) (Shape, error) {
	if len(dims) == 0 {
		return Shape{}, fmt.Errorf("shape.New(): rank must be >= 1: %w", ErrInvalidShape)
	}
	size := 1
	for axis, d := range dims {
		if d <= 0 {
			return Shape{}, fmt.Errorf("shape.New%v: dim %d is %d: %w", dims, axis, d, ErrInvalidShape)
		}
		if size > math.MaxInt/d {
			return Shape{}, fmt.Errorf("shape.New%v: size overflows int: %w", dims, ErrInvalidShape)
		}
		size *= d
	}

	own := make([]int, len(dims))
	copy(own, dims)

	return Shape{dims: own, strides: computeStrides(own), size: size}, nil
}

// computeStrides calculates row-major strides; dims must already be valid.
func computeStrides(dims []int) []int {
	strides := make([]int, len(dims))
	strides[len(dims)-1] = 1
	for i := len(dims) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * dims[i+1]
	}

	return strides
}

// Reversed returns the shape with its axes in reverse order; for rank 2
// this is the transposed shape. Size is unchanged, so it cannot fail.
func (s Shape) Reversed() Shape {
	own := make([]int, len(s.dims))
	for i, d := range s.dims {
		own[len(own)-1-i] = d
	}

	return Shape{dims: own, strides: computeStrides(own), size: s.size}
}

// Flat returns the rank-1 shape [Size()].
func (s Shape) Flat() Shape {
	return Shape{dims: []int{s.size}, strides: []int{1}, size: s.size}
}

// Rank returns the number of axes.
func (s Shape) Rank() int { return len(s.dims) }

// Size returns the total element count.
func (s Shape) Size() int { return s.size }

// Dims returns a copy of the per-axis sizes.
func (s Shape) Dims() []int {
	out := make([]int, len(s.dims))
	copy(out, s.dims)

	return out
}

// Strides returns a copy of the row-major strides.
func (s Shape) Strides() []int {
	out := make([]int, len(s.strides))
	copy(out, s.strides)

	return out
}

// Dim returns the size of one axis or ErrIndexOutOfBounds for a bad axis.
func (s Shape) Dim(axis int) (int, error) {
	if axis < 0 || axis >= len(s.dims) {
		return 0, fmt.Errorf("shape.Dim(%d) on rank %d: %w", axis, len(s.dims), ErrIndexOutOfBounds)
	}

	return s.dims[axis], nil
}

// Equal reports whether both shapes have identical dims.
func (s Shape) Equal(o Shape) bool {
	if len(s.dims) != len(o.dims) {
		return false
	}
	for i := range s.dims {
		if s.dims[i] != o.dims[i] {
			return false
		}
	}

	return true
}

// Offset maps a multi-index to its flat row-major position.
// Stage 1 (Validate): len(idx) must equal Rank, else ErrRankMismatch.
// Stage 2 (Execute): check 0 <= idx[j] < dims[j] and accumulate idx[j]*stride[j].
// Complexity: O(k), no allocations.
func (s Shape) Offset(idx ...int) (int, error) {
	if len(idx) != len(s.dims) {
		return 0, fmt.Errorf("index %v for rank %d: %w", idx, len(s.dims), ErrRankMismatch)
	}
	off := 0
	for j, i := range idx {
		if i < 0 || i >= s.dims[j] {
			return 0, fmt.Errorf("index %v for shape %v: %w", idx, s.dims, ErrIndexOutOfBounds)
		}
		off += i * s.strides[j]
	}

	return off, nil
}

// Unravel is the inverse of Offset: it writes the multi-index of a flat
// offset into dst (len(dst) must equal Rank) and returns dst.
// Errors: ErrRankMismatch for a wrong dst length, ErrIndexOutOfBounds for a bad offset.
func (s Shape) Unravel(off int, dst []int) ([]int, error) {
	if len(dst) != len(s.dims) {
		return nil, fmt.Errorf("unravel into %d slots for rank %d: %w", len(dst), len(s.dims), ErrRankMismatch)
	}
	if off < 0 || off >= s.size {
		return nil, fmt.Errorf("unravel offset %d for size %d: %w", off, s.size, ErrIndexOutOfBounds)
	}
	for j, st := range s.strides {
		dst[j] = off / st
		off %= st
	}

	return dst, nil
}

// String renders the dims as "[2 3 4]".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, d := range s.dims {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(d))
	}
	b.WriteByte(']')

	return b.String()
}
