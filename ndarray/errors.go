// SPDX-License-Identifier: MIT

package ndarray

import (
	"github.com/katalvlaran/lvarray/numerr"
	"github.com/katalvlaran/lvarray/storage"
)

// Sentinels, shared with every other lvarray package.
var (
	ErrInvalidShape        = numerr.ErrInvalidShape
	ErrRaggedInput         = numerr.ErrRaggedInput
	ErrIndexOutOfBounds    = numerr.ErrIndexOutOfBounds
	ErrRankMismatch        = numerr.ErrRankMismatch
	ErrShapeMismatch       = numerr.ErrShapeMismatch
	ErrReshapeSizeMismatch = numerr.ErrReshapeSizeMismatch
	ErrDimensionality      = numerr.ErrDimensionality
	ErrUnsupportedValue    = numerr.ErrUnsupportedValue
	ErrNaNInf              = numerr.ErrNaNInf

	// ErrNilArray is returned when a nil *NDArray is passed where a value is required.
	ErrNilArray = numerr.ErrNilContainer
)

// Option configures the numeric policy of a new NDArray.
type Option = storage.Option

// DefaultValidateNaNInf mirrors storage.DefaultValidateNaNInf.
const DefaultValidateNaNInf = storage.DefaultValidateNaNInf

// WithValidateNaNInf rejects NaN/±Inf with ErrNaNInf on ingestion and Set.
func WithValidateNaNInf() Option { return storage.WithValidateNaNInf() }

// WithNoValidateNaNInf accepts any float64 (default).
func WithNoValidateNaNInf() Option { return storage.WithNoValidateNaNInf() }
