// SPDX-License-Identifier: MIT

// Package numerr: unified sentinel error set for the lvarray engine.
// This file defines ONLY the sentinels and their stable Kind identifiers.
// Every public operation in shape, storage, matrix and ndarray returns one of
// these sentinels (possibly wrapped with call-site context via %w); tests and
// host adapters MUST match them with errors.Is or KindOf, never by message.
package numerr

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "lvarray: ..." so failures are easy to grep.
// Container packages re-export these values under the same names; the
// identity is shared, so errors.Is(err, matrix.ErrIndexOutOfBounds) and
// errors.Is(err, numerr.ErrIndexOutOfBounds) are always equivalent.

var (
	// ErrInvalidShape is returned when a requested shape is non-positive, empty
	// where rank >= 1 is required, or has an element count that does not fit in int.
	ErrInvalidShape = errors.New("lvarray: invalid shape")

	// ErrRaggedInput indicates nested input whose lengths differ at some level.
	ErrRaggedInput = errors.New("lvarray: ragged nested input")

	// ErrIndexOutOfBounds indicates an index that is negative or >= its dimension.
	ErrIndexOutOfBounds = errors.New("lvarray: index out of bounds")

	// ErrRankMismatch indicates an index sequence whose length differs from the rank.
	ErrRankMismatch = errors.New("lvarray: rank mismatch")

	// ErrShapeMismatch indicates operand shapes incompatible with the operation,
	// e.g. Add of different shapes or Mul where a.Cols != b.Rows.
	ErrShapeMismatch = errors.New("lvarray: shape mismatch")

	// ErrReshapeSizeMismatch indicates a reshape target whose size differs from the source.
	ErrReshapeSizeMismatch = errors.New("lvarray: reshape size mismatch")

	// ErrDimensionality indicates conversion of an NDArray whose rank is not 2 into a Matrix.
	ErrDimensionality = errors.New("lvarray: array is not two-dimensional")

	// ErrUnsupportedValue indicates a nested input element of a type the engine cannot ingest.
	ErrUnsupportedValue = errors.New("lvarray: unsupported nested value")

	// ErrNaNInf signals a NaN or ±Inf value rejected by an enabled numeric policy.
	ErrNaNInf = errors.New("lvarray: NaN or Inf encountered")

	// ErrNilContainer indicates a nil Matrix or NDArray passed as an operand.
	ErrNilContainer = errors.New("lvarray: nil container")
)
