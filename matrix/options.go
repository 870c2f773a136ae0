// SPDX-License-Identifier: MIT

// Package matrix: numeric policy options.
// The policy itself lives in storage (single source of truth); this file only
// re-exports the setters so callers configure a Matrix without importing storage.
package matrix

import "github.com/katalvlaran/lvarray/storage"

// Option configures the numeric policy of a new Matrix.
type Option = storage.Option

// DefaultValidateNaNInf mirrors storage.DefaultValidateNaNInf.
const DefaultValidateNaNInf = storage.DefaultValidateNaNInf

// WithValidateNaNInf makes Set and all ingestion paths reject NaN/±Inf with ErrNaNInf.
func WithValidateNaNInf() Option { return storage.WithValidateNaNInf() }

// WithNoValidateNaNInf accepts any float64 (default).
func WithNoValidateNaNInf() Option { return storage.WithNoValidateNaNInf() }
