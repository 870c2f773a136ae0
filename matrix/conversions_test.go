// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvarray/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestToGonum_RoundTrip(t *testing.T) {
	m := RandomMatrix(t, 3, 4, 5)
	g, err := matrix.ToGonum(m)
	require.NoError(t, err)
	r, c := g.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, MustAt(t, m, 2, 3), g.At(2, 3))

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	assert.True(t, back.Equal(m))

	g.Set(0, 0, 123)
	assert.NotEqual(t, 123.0, MustAt(t, m, 0, 0)) // ToGonum copies
}

func TestFromGonum_TransposedView(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	m, err := matrix.FromGonum(d.T())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, m.ToNested())

	native := MustNested(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).Transpose()
	assert.True(t, native.Equal(m)) // agrees with gonum's transpose
}

func TestGonum_Errors(t *testing.T) {
	_, err := matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	d := mat.NewDense(1, 1, []float64{math.NaN()})
	_, err = matrix.FromGonum(d, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
