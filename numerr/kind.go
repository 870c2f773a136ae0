// SPDX-License-Identifier: MIT

package numerr

import "errors"

// Kind is a stable identifier for one failure category of the engine.
// Host adapters switch on Kind to choose their native failure idiom
// (exception class, result variant, error code) without parsing messages.
type Kind int

const (
	// KindNone is reported for a nil error.
	KindNone Kind = iota
	KindInvalidShape
	KindRaggedInput
	KindIndexOutOfBounds
	KindRankMismatch
	KindShapeMismatch
	KindReshapeSizeMismatch
	KindDimensionality
	KindUnsupportedValue
	KindNaNInf
	KindNilContainer
	// KindUnknown is reported for errors that did not originate in the engine.
	KindUnknown
)

// kindTable pairs every sentinel with its Kind. Order is irrelevant because
// sentinels are distinct; a slice keeps KindOf deterministic.
var kindTable = []struct {
	err  error
	kind Kind
}{
	{ErrInvalidShape, KindInvalidShape},
	{ErrRaggedInput, KindRaggedInput},
	{ErrIndexOutOfBounds, KindIndexOutOfBounds},
	{ErrRankMismatch, KindRankMismatch},
	{ErrShapeMismatch, KindShapeMismatch},
	{ErrReshapeSizeMismatch, KindReshapeSizeMismatch},
	{ErrDimensionality, KindDimensionality},
	{ErrUnsupportedValue, KindUnsupportedValue},
	{ErrNaNInf, KindNaNInf},
	{ErrNilContainer, KindNilContainer},
}

// KindOf maps err (possibly wrapped) to its Kind.
// Complexity: O(k * depth) where k is the number of sentinels.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, e := range kindTable {
		if errors.Is(err, e.err) {
			return e.kind
		}
	}

	return KindUnknown
}

// String returns the canonical CamelCase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindInvalidShape:
		return "InvalidShape"
	case KindRaggedInput:
		return "RaggedInput"
	case KindIndexOutOfBounds:
		return "IndexOutOfBounds"
	case KindRankMismatch:
		return "RankMismatch"
	case KindShapeMismatch:
		return "ShapeMismatch"
	case KindReshapeSizeMismatch:
		return "ReshapeSizeMismatch"
	case KindDimensionality:
		return "DimensionalityError"
	case KindUnsupportedValue:
		return "UnsupportedValue"
	case KindNaNInf:
		return "NaNInf"
	case KindNilContainer:
		return "NilContainer"
	default:
		return "Unknown"
	}
}
