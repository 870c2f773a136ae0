// SPDX-License-Identifier: MIT
// Package matrix provides arithmetic on Matrix values: element-wise addition
// and subtraction, matrix multiplication, transpose, scaling, Hadamard
// product and matrix-vector product. All functions perform strict fail-fast
// validation and return clear errors on shape mismatches.
//
// Determinism:
//   - Every kernel uses a fixed loop order. Mul accumulates each output cell
//     over k = 0..n-1 in increasing order with no reordering or zero-skipping,
//     so results are bitwise reproducible across runs and platforms.
//
// Atomicity:
//   - Results are computed into a private buffer and wrapped only on success;
//     a failed call never yields a partially filled matrix.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvarray/shape"
	"github.com/katalvlaran/lvarray/storage"
)

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opMatVec    = "MatVec"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// wrapResult turns a freshly computed buffer into a Matrix that inherits
// policy from the left operand. The policy is re-applied to computed values.
func wrapResult(tag string, rows, cols int, buf []float64, like *Matrix) (*Matrix, error) {
	sh, err := shape.New(rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	st, err := storage.Adopt(buf, like.data.Options()...)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return fromStorage(sh, st), nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and the flat loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 into a fresh buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Matrix, sign float64, opTag string) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	da, db := a.data.Raw(), b.data.Raw()
	out := make([]float64, len(da))
	for idx := range out { // deterministic 0..n-1
		out[idx] = da[idx] + sign*db[idx]
	}

	return wrapResult(opTag, a.r, a.c, out, a)
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
// Inputs are never mutated; result(i,j) = a(i,j) + b(i,j).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh result.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop; each C[i,j] is a single accumulator summed
//     over k in increasing order.
//
// Inputs:
//   - A: left matrix with shape (m × n).
//   - B: right matrix with shape (n × p).
//
// Returns:
//   - *Matrix: new C with shape (m × p).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order; no parallel reduction, no zero-skip (0*Inf stays NaN).
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.r, a.c, b.c
	da, db := a.data.Raw(), b.data.Raw()
	out := make([]float64, aRows*bCols)
	var (
		i, j, k    int
		rowOffsetA int
		acc        float64
	)
	// da layout: i*inner + k; db layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * inner
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < inner; k++ {
				acc += float64(da[rowOffsetA+k] * db[k*bCols+j]) // conversion blocks FMA fusion
			}
			out[i*bCols+j] = acc
		}
	}

	return wrapResult(opMul, aRows, bCols, out, a)
}

// Transpose returns mᵀ as a new matrix; the nil-checked form of (*Matrix).Transpose.
// Errors: ErrNilMatrix.
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape.
// Errors: ErrNilMatrix; ErrNaNInf when the policy rejects a product.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m *Matrix, alpha float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	src := m.data.Raw()
	out := make([]float64, len(src))
	for idx := range out {
		out[idx] = src[idx] * alpha
	}

	return wrapResult(opScale, m.r, m.c, out, m)
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh result.
// Hadamard ≠ matrix multiplication; use Mul for A×B.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func Hadamard(a, b *Matrix) (*Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	da, db := a.data.Raw(), b.data.Raw()
	out := make([]float64, len(da))
	for idx := range out {
		out[idx] = da[idx] * db[idx]
	}

	return wrapResult(opHadamard, a.r, a.c, out, a)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order, increasing j accumulation.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	src := m.data.Raw()
	y := make([]float64, m.r)
	var base int
	var acc float64
	for i := 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c
		for j := 0; j < m.c; j++ {
			acc += float64(src[base+j] * x[j])
		}
		y[i] = acc
	}

	return y, nil
}

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Negative tolerances are normalized to their absolute value.
// Errors: ErrNilMatrix, ErrShapeMismatch.
func AllClose(a, b *Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}

	da, db := a.data.Raw(), b.data.Raw()
	var diff, absb float64
	for idx := range da {
		diff = da[idx] - db[idx]
		if diff < 0 {
			diff = -diff
		}
		absb = db[idx]
		if absb < 0 {
			absb = -absb
		}
		if !(diff <= atol+rtol*absb) { // NaN fails the comparison
			return false, nil
		}
	}

	return true, nil
}
