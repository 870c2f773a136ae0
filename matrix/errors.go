// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// The values are the engine-wide sentinels from numerr re-exported under
// matrix-local names. All operations MUST return these sentinels (wrapped with
// call-site context via %w) and tests MUST check them via errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "github.com/katalvlaran/lvarray/numerr"

// ERROR PRIORITY (enforced in tests):
// nil operand -> shape validity -> operand compatibility -> index -> numeric policy.

var (
	// ErrInvalidShape is returned when rows <= 0, cols <= 0, or the size overflows.
	ErrInvalidShape = numerr.ErrInvalidShape

	// ErrRaggedInput is returned by FromNested when rows differ in length.
	ErrRaggedInput = numerr.ErrRaggedInput

	// ErrIndexOutOfBounds indicates a row or column outside [0, Rows) x [0, Cols).
	// Public indexers (At/Set/Row/Col) MUST return this, not panic.
	ErrIndexOutOfBounds = numerr.ErrIndexOutOfBounds

	// ErrShapeMismatch indicates incompatible operands, e.g. Add of different
	// shapes, Mul where a.Cols != b.Rows, or FromFlat with len != rows*cols.
	ErrShapeMismatch = numerr.ErrShapeMismatch

	// ErrNaNInf signals a NaN or ±Inf rejected by WithValidateNaNInf.
	ErrNaNInf = numerr.ErrNaNInf

	// ErrNilMatrix indicates that a nil *Matrix operand was used.
	ErrNilMatrix = numerr.ErrNilContainer
)
