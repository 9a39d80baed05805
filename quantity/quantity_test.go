// SPDX-License-Identifier: MIT

package quantity_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvunit/array"
	"github.com/katalvlaran/lvunit/array/lazy"
	"github.com/katalvlaran/lvunit/dimension"
	"github.com/katalvlaran/lvunit/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StoresSIScale(t *testing.T) {
	q := mustQ(t, 500, millisecond)
	v, err := q.Scalar()
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)
	assert.Equal(t, dimension.Time, q.Dim())

	km := mustQ(t, []float64{1, 2.5}, kilometre)
	assert.Equal(t, []float64{1000, 2500}, values(t, km.Magnitude()))
	assert.Equal(t, array.Shape{2}, km.Shape())
	assert.Equal(t, 2, km.Size())
	assert.Equal(t, 1, km.NDim())
	assert.Equal(t, array.Float64, km.DType())
	assert.False(t, km.IsScalar())
}

func TestNew_Payloads(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []float64
	}{
		{"float64", 1.5, []float64{1.5}},
		{"float32", float32(2), []float64{2}},
		{"int64", int64(-4), []float64{-4}},
		{"uint8", uint8(7), []float64{7}},
		{"[]int", []int{1, 2}, []float64{1, 2}},
		{"[][]float64", [][]float64{{1, 2}, {3, 4}}, []float64{1, 2, 3, 4}},
		{"tensor", array.Scalar(9), []float64{9}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q, err := quantity.Dimensionless(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, values(t, q.Magnitude()))
			assert.True(t, q.IsDimensionless())
		})
	}

	for _, bad := range []any{nil, "3", struct{}{}, [][]float64{{1}, {2, 3}}, (*array.Dense)(nil)} {
		_, err := quantity.Dimensionless(bad)
		require.ErrorIs(t, err, quantity.ErrInvalidConstruction, "%#v", bad)
	}
	_, err := quantity.New(1, nil)
	require.ErrorIs(t, err, quantity.ErrInvalidConstruction)
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	data := []float64{1, 2}
	q := mustQ(t, data, metre)
	data[0] = 99
	assert.Equal(t, []float64{1, 2}, values(t, q.Magnitude()))
}

func TestNew_DoesNotAliasDense(t *testing.T) {
	d, err := array.FromSlice([]float64{1, 2, 3})
	require.NoError(t, err)

	q := mustQ(t, d, metre)
	require.NoError(t, d.Set(99, 0))
	assert.Equal(t, []float64{1, 2, 3}, values(t, q.Magnitude()))

	mag, ok := array.Concrete(q.Magnitude())
	require.True(t, ok)
	require.NoError(t, mag.Set(-7, 1))
	assert.Equal(t, []float64{1, 2, 3}, values(t, q.Magnitude()))

	in, err := q.In(metre)
	require.NoError(t, err)
	out, ok := array.Concrete(in)
	require.True(t, ok)
	require.NoError(t, out.Set(-7, 2))
	assert.Equal(t, []float64{1, 2, 3}, values(t, q.Magnitude()))

	fromT, err := quantity.FromTensor(d, dimension.Length)
	require.NoError(t, err)
	require.NoError(t, d.Set(5, 0))
	assert.Equal(t, []float64{99, 2, 3}, values(t, fromT.Magnitude()))

	v := quantity.NumericValue(d)
	require.NoError(t, d.Set(6, 0))
	n, ok := v.Numeric()
	require.True(t, ok)
	assert.Equal(t, []float64{5, 2, 3}, values(t, n))
}

func TestNew_RejectsOverflowedDim(t *testing.T) {
	bad := dimension.Length.PowInt(math.MaxInt64).Mul(dimension.Length)
	require.False(t, bad.Valid())

	_, err := quantity.New(1, scaler{bad, 0})
	require.ErrorIs(t, err, quantity.ErrInvalidConstruction)

	_, err = quantity.FromTensor(array.Scalar(1), bad)
	require.ErrorIs(t, err, quantity.ErrInvalidConstruction)
	require.ErrorIs(t, err, dimension.ErrExponentOverflow)
}

func TestFromTensor(t *testing.T) {
	q, err := quantity.FromTensor(array.Scalar(3), dimension.Mass)
	require.NoError(t, err)
	assert.Equal(t, dimension.Mass, q.Dim())
	assert.True(t, q.IsScalar())

	_, err = quantity.FromTensor(nil, dimension.Mass)
	require.ErrorIs(t, err, quantity.ErrInvalidConstruction)
	require.ErrorIs(t, err, array.ErrNilTensor)
}

func TestIn(t *testing.T) {
	q := mustQ(t, 3, kilometre)

	m, err := q.In(metre)
	require.NoError(t, err)
	assert.Equal(t, []float64{3000}, values(t, m))

	km, err := q.In(kilometre)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, values(t, km))

	ms, err := mustQ(t, 0.5, second).In(millisecond)
	require.NoError(t, err)
	assert.Equal(t, []float64{500}, values(t, ms))

	// One rounding each way: the round trip is within an ulp, not exact.
	nanofarad := scaler{dimension.Of(-2, -1, 4, 2, 0, 0, 0), -9}
	nf, err := mustQ(t, 123.456, nanofarad).In(nanofarad)
	require.NoError(t, err)
	assert.InEpsilon(t, 123.456, values(t, nf)[0], 1e-15)

	_, err = q.In(second)
	var mm *quantity.MismatchError
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, "In", mm.Op)
	assert.Equal(t, dimension.Length, mm.A)
	assert.Equal(t, dimension.Time, mm.B)
	require.ErrorIs(t, err, quantity.ErrDimensionMismatch)
}

func TestString(t *testing.T) {
	q := mustQ(t, []float64{0.5, 1}, second)
	assert.Equal(t, "[0.5 1] s", q.String())

	n, err := quantity.Dimensionless(2)
	require.NoError(t, err)
	assert.Equal(t, "2", n.String())

	assert.Equal(t, "<nil quantity>", quantity.Quantity{}.String())
}

func TestDeferredPayload(t *testing.T) {
	calls := 0
	src := lazy.Defer("Load", array.Shape{2}, func() (*array.Dense, error) {
		calls++
		return array.FromSlice([]float64{1, 2})
	})

	q := mustQ(t, src, kilometre)
	assert.True(t, q.Deferred())
	assert.Equal(t, array.Shape{2}, q.Shape())

	sq, err := q.Square()
	require.NoError(t, err)
	assert.True(t, sq.Deferred())
	assert.Equal(t, dimension.Length.PowInt(2), sq.Dim())
	assert.Equal(t, 0, calls, "building the graph must not evaluate it")

	assert.Equal(t, []float64{1e6, 4e6}, values(t, sq.Magnitude()))
	assert.Equal(t, 1, calls)
}
