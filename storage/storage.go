// SPDX-License-Identifier: MIT

// Package storage - the contiguous float64 buffer shared by every container kind.
//
// Purpose:
//   - Own element data exclusively: a Storage is referenced by exactly one live
//     Matrix or NDArray. Derived containers receive a Clone, never the same buffer.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce the optional finite-only numeric policy in one place.
//
// Complexity quicksheet:
//   - Filled/FromFlat/Clone/Values: O(n); At/Set: O(1).
package storage

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvarray/numerr"
)

// Re-exported sentinels.
var (
	ErrInvalidShape     = numerr.ErrInvalidShape
	ErrIndexOutOfBounds = numerr.ErrIndexOutOfBounds
	ErrNaNInf           = numerr.ErrNaNInf
)

// Storage is a flat, contiguous sequence of float64 values.
type Storage struct {
	data           []float64 // len == owning container's shape size
	validateNaNInf bool      // reject NaN/±Inf in Set when true
}

// Filled allocates n slots, each set to value.
// Errors: ErrInvalidShape when n <= 0; ErrNaNInf when the policy rejects value.
func Filled(value float64, n int, opts ...Option) (*Storage, error) {
	if n <= 0 {
		return nil, fmt.Errorf("storage.Filled(n=%d): %w", n, ErrInvalidShape)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf && !isFinite(value) {
		return nil, fmt.Errorf("storage.Filled(%g): %w", value, ErrNaNInf)
	}
	buf := make([]float64, n)
	if value != 0 {
		for i := range buf {
			buf[i] = value
		}
	}

	return &Storage{data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// FromFlat copies values into a new Storage.
// The length contract (len(values) == shape size) belongs to the caller.
// Errors: ErrInvalidShape for an empty slice; ErrNaNInf when the policy rejects an element.
func FromFlat(values []float64, opts ...Option) (*Storage, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("storage.FromFlat(len=0): %w", ErrInvalidShape)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for i, v := range values {
			if !isFinite(v) {
				return nil, fmt.Errorf("storage.FromFlat: element %d: %w", i, ErrNaNInf)
			}
		}
	}
	buf := make([]float64, len(values))
	copy(buf, values)

	return &Storage{data: buf, validateNaNInf: o.validateNaNInf}, nil
}

// Adopt takes ownership of values without copying. It is meant for kernels
// that allocate a fresh result slice; the caller MUST NOT touch values afterwards.
// Errors: same as FromFlat.
func Adopt(values []float64, opts ...Option) (*Storage, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("storage.Adopt(len=0): %w", ErrInvalidShape)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for i, v := range values {
			if !isFinite(v) {
				return nil, fmt.Errorf("storage.Adopt: element %d: %w", i, ErrNaNInf)
			}
		}
	}

	return &Storage{data: values, validateNaNInf: o.validateNaNInf}, nil
}

// Derive wraps values produced by rearranging s's own elements (a permutation
// such as a transpose). The values already satisfied s's policy, so the
// result inherits it without re-checking. The caller MUST NOT touch values afterwards.
func (s *Storage) Derive(values []float64) *Storage {
	return &Storage{data: values, validateNaNInf: s.validateNaNInf}
}

// Len returns the number of slots.
func (s *Storage) Len() int { return len(s.data) }

// ValidatesNaNInf reports whether Set rejects non-finite values.
func (s *Storage) ValidatesNaNInf() bool { return s.validateNaNInf }

// Options returns setters reproducing this Storage's policy, for derived buffers.
func (s *Storage) Options() []Option {
	if s.validateNaNInf {
		return []Option{WithValidateNaNInf()}
	}

	return []Option{WithNoValidateNaNInf()}
}

// At reads slot off.
func (s *Storage) At(off int) (float64, error) {
	if off < 0 || off >= len(s.data) {
		return 0, fmt.Errorf("storage.At(%d) len %d: %w", off, len(s.data), ErrIndexOutOfBounds)
	}

	return s.data[off], nil
}

// Set writes v into slot off after bounds and policy checks; nothing is
// written when an error is returned.
func (s *Storage) Set(off int, v float64) error {
	if off < 0 || off >= len(s.data) {
		return fmt.Errorf("storage.Set(%d) len %d: %w", off, len(s.data), ErrIndexOutOfBounds)
	}
	if s.validateNaNInf && !isFinite(v) {
		return fmt.Errorf("storage.Set(%d, %g): %w", off, v, ErrNaNInf)
	}
	s.data[off] = v

	return nil
}

// CheckValue applies the numeric policy to v without writing it.
func (s *Storage) CheckValue(v float64) error {
	if s.validateNaNInf && !isFinite(v) {
		return ErrNaNInf
	}

	return nil
}

// Clone returns an independent copy with the same policy.
func (s *Storage) Clone() *Storage {
	cp := make([]float64, len(s.data))
	copy(cp, s.data)

	return &Storage{data: cp, validateNaNInf: s.validateNaNInf}
}

// Values returns a copy of the flat contents.
func (s *Storage) Values() []float64 {
	out := make([]float64, len(s.data))
	copy(out, s.data)

	return out
}

// Raw exposes the backing slice to kernels that own the Storage.
// The slice MUST NOT be retained past the call or handed to another container.
func (s *Storage) Raw() []float64 { return s.data }

// Equal reports element-wise equality (NaN never equals NaN).
func (s *Storage) Equal(o *Storage) bool {
	if len(s.data) != len(o.data) {
		return false
	}
	for i := range s.data {
		if s.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
