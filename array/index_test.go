// SPDX-License-Identifier: MIT

package array_test

import (
	"testing"

	"github.com/katalvlaran/lvunit/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	m := m23(t)

	row, err := array.Eager{}.Index(m, 1)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{3}, row.Shape())
	assert.Equal(t, []float64{4, 5, 6}, asDense(t, row).Data())

	el, err := array.Eager{}.Index(m, -1, -2)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{}, el.Shape())
	assert.Equal(t, []float64{5}, asDense(t, el).Data())

	_, err = array.Eager{}.Index(m, 2)
	require.ErrorIs(t, err, array.ErrOutOfRange)
	_, err = array.Eager{}.Index(m, 0, 0, 0)
	require.ErrorIs(t, err, array.ErrOutOfRange)
}

func TestSlice(t *testing.T) {
	m := m23(t)

	cols, err := array.Eager{}.Slice(m, 1, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 2}, cols.Shape())
	assert.Equal(t, []float64{2, 3, 5, 6}, asDense(t, cols).Data())

	rows, err := array.Eager{}.Slice(m, 0, -1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, asDense(t, rows).Data())

	_, err = array.Eager{}.Slice(m, 1, 2, 1)
	require.ErrorIs(t, err, array.ErrOutOfRange)
	_, err = array.Eager{}.Slice(m, 5, 0, 1)
	require.ErrorIs(t, err, array.ErrBadAxis)
}

func TestSetAt_IsPureAndBroadcasts(t *testing.T) {
	m := m23(t)

	out, err := array.Eager{}.SetAt(m, array.Scalar(0), 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 4, 5, 6}, asDense(t, out).Data())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data(), "input must not be mutated")

	out, err = array.Eager{}.SetAt(m, array.Scalar(9), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 9}, asDense(t, out).Data())

	_, err = array.Eager{}.SetAt(m, mustDense(t, []float64{1, 2}), 0)
	require.ErrorIs(t, err, array.ErrShapeMismatch)

	_, err = array.Eager{}.SetAt(m, mustDense(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3), 0)
	require.ErrorIs(t, err, array.ErrShapeMismatch, "value may not widen the block")
}

func TestReshape(t *testing.T) {
	r, err := array.Eager{}.Reshape(m23(t), array.Shape{3, -1})
	require.NoError(t, err)
	assert.Equal(t, array.Shape{3, 2}, r.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, asDense(t, r).Data())

	_, err = array.Eager{}.Reshape(m23(t), array.Shape{4})
	require.ErrorIs(t, err, array.ErrBadShape)
}

func TestConcatStack(t *testing.T) {
	a := m23(t)
	b := mustDense(t, []float64{7, 8}, 2, 1)

	c, err := array.Eager{}.Concat([]array.Tensor{a, b}, 1)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 4}, c.Shape())
	assert.Equal(t, []float64{1, 2, 3, 7, 4, 5, 6, 8}, asDense(t, c).Data())

	c0, err := array.Eager{}.Concat([]array.Tensor{a, mustDense(t, []float64{0, 0, 0}, 1, 3)}, 0)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{3, 3}, c0.Shape())

	s, err := array.Eager{}.Stack([]array.Tensor{array.Scalar(0.5), array.Scalar(1)})
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2}, s.Shape())
	assert.Equal(t, []float64{0.5, 1}, asDense(t, s).Data())

	_, err = array.Eager{}.Stack(nil)
	require.ErrorIs(t, err, array.ErrEmpty)
	_, err = array.Eager{}.Concat([]array.Tensor{a, b}, 0)
	require.ErrorIs(t, err, array.ErrShapeMismatch)
}
