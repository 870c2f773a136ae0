// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvarray/matrix"
	"github.com/katalvlaran/lvarray/ndarray"
	"github.com/katalvlaran/lvarray/numerr"
	"github.com/stretchr/testify/suite"
)

// ConversionSuite exercises Matrix <-> NDArray in both directions.
type ConversionSuite struct {
	suite.Suite
	m *matrix.Matrix
}

func (s *ConversionSuite) SetupTest() {
	m, err := matrix.FromNested([][]float64{{1, 2, 3}, {4, 5, 6}})
	s.Require().NoError(err)
	s.m = m
}

func (s *ConversionSuite) TestFromMatrix_SameLayout() {
	a, err := ndarray.FromMatrix(s.m)
	s.Require().NoError(err)
	s.Equal([]int{2, 3}, a.Dims())
	s.Equal(s.m.Values(), a.Values())
	v, err := a.At(1, 0)
	s.Require().NoError(err)
	s.Equal(4.0, v)
}

func (s *ConversionSuite) TestRoundTrip() {
	a, err := ndarray.FromMatrix(s.m)
	s.Require().NoError(err)
	back, err := ndarray.ToMatrix(a)
	s.Require().NoError(err)
	s.True(back.Equal(s.m))
}

func (s *ConversionSuite) TestIndependentStorage() {
	a, err := ndarray.FromMatrix(s.m)
	s.Require().NoError(err)
	s.Require().NoError(a.Set(-1, 0, 0))
	v, err := s.m.At(0, 0)
	s.Require().NoError(err)
	s.Equal(1.0, v)

	back, err := ndarray.ToMatrix(a)
	s.Require().NoError(err)
	s.Require().NoError(back.Set(1, 1, 42))
	w, err := a.At(1, 1)
	s.Require().NoError(err)
	s.Equal(5.0, w)
}

func (s *ConversionSuite) TestToMatrix_Dimensionality() {
	z, err := ndarray.Zeros([]int{2, 2, 3})
	s.Require().NoError(err)
	_, err = ndarray.ToMatrix(z)
	s.ErrorIs(err, ndarray.ErrDimensionality)
	s.Equal(numerr.KindDimensionality, numerr.KindOf(err))
	s.Equal("DimensionalityError", numerr.KindOf(err).String())

	flat, err := ndarray.FromMatrix(s.m)
	s.Require().NoError(err)
	_, err = ndarray.ToMatrix(flat.Flatten())
	s.ErrorIs(err, ndarray.ErrDimensionality) // rank 1
}

func (s *ConversionSuite) TestToMatrix_AfterReshape() {
	a, err := ndarray.FromMatrix(s.m)
	s.Require().NoError(err)
	r, err := a.Reshape(3, 2)
	s.Require().NoError(err)
	m, err := ndarray.ToMatrix(r)
	s.Require().NoError(err)
	s.Equal([][]float64{{1, 2}, {3, 4}, {5, 6}}, m.ToNested()) // reinterpretation, not transpose
}

func (s *ConversionSuite) TestNilInputs() {
	_, err := ndarray.FromMatrix(nil)
	s.ErrorIs(err, matrix.ErrNilMatrix)
	_, err = ndarray.ToMatrix(nil)
	s.ErrorIs(err, ndarray.ErrNilArray)
}

func (s *ConversionSuite) TestPolicyTravels() {
	strict, err := matrix.New(2, 2, matrix.WithValidateNaNInf())
	s.Require().NoError(err)
	a, err := ndarray.FromMatrix(strict)
	s.Require().NoError(err)
	s.True(a.ValidatesNaNInf())
	s.ErrorIs(a.Set(math.NaN(), 0, 0), ndarray.ErrNaNInf)

	back, err := ndarray.ToMatrix(a)
	s.Require().NoError(err)
	s.True(back.ValidatesNaNInf())
}

func TestConversionSuite(t *testing.T) {
	suite.Run(t, new(ConversionSuite))
}
