// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/lvarray/ndarray"
	"github.com/katalvlaran/lvarray/numerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNested_Scenario(t *testing.T) {
	a, err := ndarray.FromNested([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	v, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
	assert.Equal(t, []int{2, 3}, a.Dims())
}

func TestFromNested_Forms(t *testing.T) {
	tests := []struct {
		name string
		in   any
		dims []int
		flat []float64
	}{
		{"flat", []float64{1, 2, 3}, []int{3}, []float64{1, 2, 3}},
		{"rank3 typed", [][][]float64{{{1, 2}}, {{3, 4}}}, []int{2, 1, 2}, []float64{1, 2, 3, 4}},
		{"any leaves", []any{1.0, 2.0}, []int{2}, []float64{1, 2}},
		{"any of rows", []any{[]float64{1, 2}, []float64{3, 4}}, []int{2, 2}, []float64{1, 2, 3, 4}},
		{"int rows", []any{[]any{1, 2, 3}, []any{4, 5, 6}}, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6}},
		{"mixed numeric leaves", []any{int64(-2), float32(0.5), 3}, []int{3}, []float64{-2, 0.5, 3}},
		{"mixed depth types", []any{[][]float64{{1}, {2}}, []any{[]float64{3}, []any{4.0}}}, []int{2, 2, 1}, []float64{1, 2, 3, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := ndarray.FromNested(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.dims, a.Dims())
			assert.Equal(t, tc.flat, a.Values())
		})
	}
}

func TestFromNested_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want error
	}{
		{"nil", nil, ndarray.ErrInvalidShape},
		{"scalar", 3.0, ndarray.ErrInvalidShape},
		{"empty flat", []float64{}, ndarray.ErrInvalidShape},
		{"empty inner", [][]float64{{1}, {}}, ndarray.ErrInvalidShape},
		{"ragged rows", [][]float64{{1, 2}, {3}}, ndarray.ErrRaggedInput},
		{"ragged deep", []any{[]any{[]float64{1, 2}}, []any{[]float64{3}}}, ndarray.ErrRaggedInput},
		{"scalar then seq", []any{1.0, []float64{2}}, ndarray.ErrRaggedInput},
		{"seq then scalar", []any{[]float64{1}, 2.0}, ndarray.ErrRaggedInput},
		{"int scalar", 7, ndarray.ErrInvalidShape},
		{"ragged ints", []any{[]any{1, 2, 3}, []any{4, 5}}, ndarray.ErrRaggedInput},
		{"bool leaf", []any{true, false}, ndarray.ErrUnsupportedValue},
		{"uint leaf", []any{uint(1)}, ndarray.ErrUnsupportedValue},
		{"string", "[1,2]", ndarray.ErrUnsupportedValue},
		{"nil element", []any{nil}, ndarray.ErrUnsupportedValue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ndarray.FromNested(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromNested_KindsForAdapters(t *testing.T) {
	_, err := ndarray.FromNested([][]float64{{1}, {2, 3}})
	assert.Equal(t, numerr.KindRaggedInput, numerr.KindOf(err))
	assert.Equal(t, "RaggedInput", numerr.KindOf(err).String())
}

func TestToNested(t *testing.T) {
	r1, err := ndarray.FromFlat([]float64{1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, r1.ToNested())

	r2, err := ndarray.FromNested([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, []any{[]float64{1, 2}, []float64{3, 4}}, r2.ToNested())

	r3 := mustRange(t, 2, 1, 2)
	assert.Equal(t, []any{
		[]any{[]float64{0, 1}},
		[]any{[]float64{2, 3}},
	}, r3.ToNested())
}

func TestToNested_RoundTrip(t *testing.T) {
	for _, dims := range [][]int{{4}, {2, 3}, {2, 3, 4}, {1, 2, 1, 2}} {
		a := mustRange(t, dims...)
		back, err := ndarray.FromNested(a.ToNested())
		require.NoError(t, err, "dims %v", dims)
		assert.True(t, back.Equal(a), "dims %v", dims)
	}
}

func TestToNested_Independent(t *testing.T) {
	a := mustRange(t, 2, 2)
	out := a.ToNested().([]any)
	out[0].([]float64)[0] = 99
	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}
