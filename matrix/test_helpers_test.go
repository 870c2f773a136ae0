// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvarray/matrix"
	"github.com/stretchr/testify/require"
)

// MustMatrix ALLOCATES an r×c zero matrix or fails the test (fatal on error).
func MustMatrix(tb testing.TB, r, c int, opts ...matrix.Option) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(r, c, opts...)
	require.NoError(tb, err) // allocation must succeed for valid shapes

	return m
}

// MustNested builds a matrix from rows or fails the test.
func MustNested(tb testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.FromNested(rows, opts...)
	require.NoError(tb, err) // fixture rows are rectangular

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m *matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err) // index is in range by construction

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(tb testing.TB, m *matrix.Matrix, i, j int, v float64) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, v)) // index is in range by construction
}

// RandomFill overwrites every element with a deterministic value in [-1, 1).
// Same seed → same matrix.
func RandomFill(tb testing.TB, m *matrix.Matrix, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	require.NoError(tb, m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1
	}))
}

// RandomMatrix allocates an r×c matrix filled by RandomFill(seed).
func RandomMatrix(tb testing.TB, r, c int, seed int64) *matrix.Matrix {
	tb.Helper()
	m := MustMatrix(tb, r, c)
	RandomFill(tb, m, seed)

	return m
}
