// SPDX-License-Identifier: MIT

// Package matrix - two-dimensional row-major container & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula r*cols + c.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Delegate layout arithmetic to shape and element ownership to storage, so the
//     Matrix and the N-dimensional ndarray.NDArray share one bounds-checking path.
//
// Ownership:
//   - Every Matrix exclusively owns its storage.Storage. Transpose, Clone, and the
//     ndarray conversions copy; no two live containers share a backing slice.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone/Transpose: O(r*c); Row: O(c); Col: O(r).
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvarray/shape"
	"github.com/katalvlaran/lvarray/storage"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxApply = "Apply"
	ctxRow   = "Row"
	ctxCol   = "Col"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixAtErrorf wraps an error with a uniform Matrix context and callsite indices.
func matrixAtErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a concrete rows×cols container of float64 values.
//   - r,c cache the dimensions for hot loops.
//   - sh is the rank-2 shape (dims [r, c]) used for bounds checking.
//   - data holds r*c elements in row-major order (offset = i*c + j).
type Matrix struct {
	r, c int
	sh   shape.Shape
	data *storage.Storage
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates an rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and configurable numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 through shape.New.
//   - Stage 2: allocate a zero-filled storage buffer.
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	return Full(rows, cols, 0, opts...)
}

// Full creates an rows×cols matrix with every element set to v.
// Errors: ErrInvalidShape; ErrNaNInf when v is rejected by the policy.
func Full(rows, cols int, v float64, opts ...Option) (*Matrix, error) {
	sh, err := shape.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("matrix.New(%d,%d): %w", rows, cols, err)
	}
	st, err := storage.Filled(v, sh.Size(), opts...)
	if err != nil {
		return nil, fmt.Errorf("matrix.New(%d,%d): %w", rows, cols, err)
	}

	return &Matrix{r: rows, c: cols, sh: sh, data: st}, nil
}

// FromNested builds a matrix from a rectangular sequence of rows.
// MAIN DESCRIPTION:
//   - rows = len(data), cols = len(data[0]); values are copied row by row.
//
// Implementation:
//   - Stage 1: reject an empty outer or first inner sequence (ErrInvalidShape).
//   - Stage 2: verify every row has len == cols (ErrRaggedInput).
//   - Stage 3: copy into a contiguous buffer, then apply the numeric policy.
//
// Errors:
//   - ErrInvalidShape, ErrRaggedInput, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromNested(data [][]float64, opts ...Option) (*Matrix, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, fmt.Errorf("matrix.FromNested: empty input: %w", ErrInvalidShape)
	}
	rows, cols := len(data), len(data[0])
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("matrix.FromNested: row %d has %d values, want %d: %w", i, len(row), cols, ErrRaggedInput)
		}
	}
	flat := make([]float64, 0, rows*cols)
	for _, row := range data {
		flat = append(flat, row...)
	}

	return FromFlat(rows, cols, flat, opts...)
}

// FromFlat builds a rows×cols matrix from row-major values (copied).
// Errors: ErrInvalidShape, ErrShapeMismatch when len(values) != rows*cols, ErrNaNInf.
func FromFlat(rows, cols int, values []float64, opts ...Option) (*Matrix, error) {
	sh, err := shape.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("matrix.FromFlat(%d,%d): %w", rows, cols, err)
	}
	if len(values) != sh.Size() {
		return nil, fmt.Errorf("matrix.FromFlat(%d,%d): got %d values: %w", rows, cols, len(values), ErrShapeMismatch)
	}
	st, err := storage.FromFlat(values, opts...)
	if err != nil {
		return nil, fmt.Errorf("matrix.FromFlat(%d,%d): %w", rows, cols, err)
	}

	return &Matrix{r: rows, c: cols, sh: sh, data: st}, nil
}

// Identity returns the n×n identity matrix (1.0 on the diagonal, 0.0 elsewhere).
// Errors: ErrInvalidShape when n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int, opts ...Option) (*Matrix, error) {
	m, err := New(n, n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Identity(%d): %w", n, err)
	}
	buf := m.data.Raw()
	for i := 0; i < n; i++ { // fixed i order
		buf[i*n+i] = 1.0
	}

	return m, nil
}

// fromStorage wraps an already-owned buffer under a validated rank-2 shape;
// internal callers guarantee st.Len() == sh.Size().
func fromStorage(sh shape.Shape, st *storage.Storage) *Matrix {
	d := sh.Dims()
	return &Matrix{r: d[0], c: d[1], sh: sh, data: st}
}

// Rows returns the row count. No side effects.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Matrix) Cols() int { return m.c }

// Dimensions packs Rows() and Cols() into a single call.
func (m *Matrix) Dimensions() (rows, cols int) { return m.r, m.c }

// Size returns rows*cols.
func (m *Matrix) Size() int { return m.sh.Size() }

// Shape returns the rank-2 shape backing this matrix.
func (m *Matrix) Shape() shape.Shape { return m.sh }

// ValidatesNaNInf reports whether Set rejects non-finite values.
func (m *Matrix) ValidatesNaNInf() bool { return m.data.ValidatesNaNInf() }

// At returns the value at (row, col) or ErrIndexOutOfBounds.
// Never panics on out-of-range; the bounds check is shared with ndarray via shape.Offset.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	off, err := m.sh.Offset(row, col)
	if err != nil {
		return 0, matrixAtErrorf(ctxAt, row, col, err)
	}
	v, err := m.data.At(off)
	if err != nil {
		return 0, matrixAtErrorf(ctxAt, row, col, err)
	}

	return v, nil
}

// Set stores v at (row, col).
// Implementation:
//   - Stage 1: compute offset via shape.Offset (bounds check).
//   - Stage 2: storage.Set enforces the numeric policy, then writes.
//
// Errors: ErrIndexOutOfBounds, ErrNaNInf. Nothing is written on error.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	off, err := m.sh.Offset(row, col)
	if err != nil {
		return matrixAtErrorf(ctxSet, row, col, err)
	}
	if err = m.data.Set(off, v); err != nil {
		return matrixAtErrorf(ctxSet, row, col, err)
	}

	return nil
}

// Row returns a copy of row r.
func (m *Matrix) Row(r int) ([]float64, error) {
	if r < 0 || r >= m.r {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, r, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data.Raw()[r*m.c:(r+1)*m.c])

	return out, nil
}

// Col returns a copy of column c.
func (m *Matrix) Col(c int) ([]float64, error) {
	if c < 0 || c >= m.c {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxCol, c, ErrIndexOutOfBounds)
	}
	buf := m.data.Raw()
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = buf[i*m.c+c]
	}

	return out, nil
}

// Transpose returns a new cols×rows matrix with T(i,j) = m(j,i).
// The source is never mutated; the result owns a fresh buffer and inherits the policy.
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	src := m.data.Raw()
	dst := make([]float64, len(src))
	// data[i*cols + j] → dst[j*rows + i]
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		for j := 0; j < m.c; j++ {
			dst[j*m.r+i] = src[base+j]
		}
	}

	return fromStorage(m.sh.Reversed(), m.data.Derive(dst))
}

// ToNested materializes the elements as rows of values in row-major order.
// The result shares nothing with m.
func (m *Matrix) ToNested() [][]float64 {
	src := m.data.Raw()
	out := make([][]float64, m.r)
	for i := range out {
		row := make([]float64, m.c)
		copy(row, src[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Values returns a row-major copy of all elements.
func (m *Matrix) Values() []float64 { return m.data.Values() }

// Clone returns a deep copy (new buffer, same numeric policy).
func (m *Matrix) Clone() *Matrix {
	return fromStorage(m.sh, m.data.Clone())
}

// Equal reports identical dimensions and element-wise equal values.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.r == o.r && m.c == o.c && m.data.Equal(o.data)
}

// String renders rows as lines of comma-separated values, e.g. "[1, 2]\n[3, 4]\n".
// Intended for diagnostics; fixed traversal order.
// Complexity: O(r*c).
func (m *Matrix) String() string {
	var b strings.Builder
	src := m.data.Raw()
	var base int
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", src[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only; stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Matrix) Do(f func(i, j int, v float64) bool) {
	src := m.data.Raw()
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		for j := 0; j < m.c; j++ {
			if !f(i, j, src[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v).
// MAIN DESCRIPTION:
//   - All-or-nothing map: new values are computed into a scratch buffer and
//     committed only when every value passes the numeric policy.
//
// Errors:
//   - ErrNaNInf (policy on and f produced a non-finite value); m is unchanged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) scratch.
func (m *Matrix) Apply(f func(i, j int, v float64) float64) error {
	src := m.data.Raw()
	scratch := make([]float64, len(src))
	var base int
	var nv float64
	for i := 0; i < m.r; i++ {
		base = i * m.c
		for j := 0; j < m.c; j++ {
			nv = f(i, j, src[base+j])
			if err := m.data.CheckValue(nv); err != nil {
				return matrixAtErrorf(ctxApply, i, j, err)
			}
			scratch[base+j] = nv
		}
	}
	copy(src, scratch)

	return nil
}
