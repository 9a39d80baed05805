// SPDX-License-Identifier: MIT

package array_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvunit/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// m23 is [[1 2 3] [4 5 6]].
func m23(t *testing.T) *array.Dense {
	return mustDense(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
}

func TestReduce_Axes(t *testing.T) {
	tests := []struct {
		op    array.ReduceOp
		axis  int
		shape array.Shape
		want  []float64
	}{
		{array.ReduceSum, array.AllAxes, array.Shape{}, []float64{21}},
		{array.ReduceSum, 0, array.Shape{3}, []float64{5, 7, 9}},
		{array.ReduceSum, 1, array.Shape{2}, []float64{6, 15}},
		{array.ReduceSum, -1, array.Shape{2}, []float64{6, 15}},
		{array.ReduceMean, 0, array.Shape{3}, []float64{2.5, 3.5, 4.5}},
		{array.ReduceMin, 1, array.Shape{2}, []float64{1, 4}},
		{array.ReduceMax, array.AllAxes, array.Shape{}, []float64{6}},
		{array.ReducePtp, 0, array.Shape{3}, []float64{3, 3, 3}},
		{array.ReduceProd, 1, array.Shape{2}, []float64{6, 120}},
		{array.ReduceVar, 0, array.Shape{3}, []float64{2.25, 2.25, 2.25}},
		{array.ReduceStd, 0, array.Shape{3}, []float64{1.5, 1.5, 1.5}},
		{array.ReduceMedian, 1, array.Shape{2}, []float64{2, 5}},
		{array.ReduceMedian, array.AllAxes, array.Shape{}, []float64{3.5}},
	}
	for _, tc := range tests {
		t.Run(tc.op.String(), func(t *testing.T) {
			got, err := array.Eager{}.Reduce(tc.op, m23(t), tc.axis)
			require.NoError(t, err)
			assert.Equal(t, tc.shape, got.Shape())
			assert.InDeltaSlice(t, tc.want, asDense(t, got).Data(), 1e-12)
		})
	}
}

func TestReduce_Empty(t *testing.T) {
	empty, err := array.NewDense(0)
	require.NoError(t, err)

	s, err := array.Eager{}.Reduce(array.ReduceSum, empty, array.AllAxes)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, asDense(t, s).Data())

	p, err := array.Eager{}.Reduce(array.ReduceProd, empty, array.AllAxes)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, asDense(t, p).Data())

	for _, op := range []array.ReduceOp{array.ReduceMean, array.ReduceMin, array.ReduceMax, array.ReduceVar, array.ReduceMedian} {
		_, err = array.Eager{}.Reduce(op, empty, array.AllAxes)
		require.ErrorIs(t, err, array.ErrEmpty, op.String())
	}
}

func TestReduce_NaNPropagates(t *testing.T) {
	a := mustDense(t, []float64{1, math.NaN(), 3})
	for _, op := range []array.ReduceOp{array.ReduceMin, array.ReduceMax, array.ReduceMedian, array.ReduceSum} {
		got, err := array.Eager{}.Reduce(op, a, array.AllAxes)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(asDense(t, got).Data()[0]), op.String())
	}
}

func TestReduce_BadAxis(t *testing.T) {
	_, err := array.Eager{}.Reduce(array.ReduceSum, m23(t), 2)
	require.ErrorIs(t, err, array.ErrBadAxis)
}

func TestScan(t *testing.T) {
	cs, err := array.Eager{}.Scan(array.ScanCumsum, m23(t), 1)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 3}, cs.Shape())
	assert.Equal(t, []float64{1, 3, 6, 4, 9, 15}, asDense(t, cs).Data())

	cs0, err := array.Eager{}.Scan(array.ScanCumsum, m23(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 5, 7, 9}, asDense(t, cs0).Data())

	cp, err := array.Eager{}.Scan(array.ScanCumprod, m23(t), array.AllAxes)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{6}, cp.Shape())
	assert.Equal(t, []float64{1, 2, 6, 24, 120, 720}, asDense(t, cp).Data())
}
