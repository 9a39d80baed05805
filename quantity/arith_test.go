// SPDX-License-Identifier: MIT

package quantity_test

import (
	"testing"

	"github.com/katalvlaran/lvunit/array"
	"github.com/katalvlaran/lvunit/dimension"
	"github.com/katalvlaran/lvunit/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub_RoundTrip(t *testing.T) {
	a := mustQ(t, []float64{1.25, -3, 1e-7}, metre)
	b := mustQ(t, []float64{0.1, 2, 5e3}, kilometre)

	sum, err := a.Add(b)
	require.NoError(t, err)
	back, err := sum.Sub(b)
	require.NoError(t, err)

	assert.Equal(t, dimension.Length, back.Dim())
	ok, err := quantity.AllClose(back, a, 1e-12, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMismatch(t *testing.T) {
	m := mustQ(t, 1, metre)
	s := mustQ(t, 1, second)

	ops := map[string]func() error{
		"Add":       func() error { _, err := m.Add(s); return err },
		"Sub":       func() error { _, err := m.Sub(s); return err },
		"Maximum":   func() error { _, err := m.Maximum(s); return err },
		"Less":      func() error { _, err := m.Less(s); return err },
		"GreaterEq": func() error { _, err := m.GreaterEq(s); return err },
		"Equal":     func() error { _, err := m.Equal(s); return err },
		"AllClose":  func() error { _, err := quantity.AllClose(m, s, 0, 0); return err },
	}
	for name, run := range ops {
		t.Run(name, func(t *testing.T) {
			err := run()
			var mm *quantity.MismatchError
			require.ErrorAs(t, err, &mm)
			assert.Equal(t, name, mm.Op)
			require.ErrorIs(t, err, quantity.ErrDimensionMismatch)
			require.NotErrorIs(t, err, quantity.ErrAggregationMismatch)
		})
	}

	_, err := quantity.Add(m, 1)
	require.ErrorIs(t, err, quantity.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "[m] vs dimensionless")
}

func TestMulDiv_Dimensions(t *testing.T) {
	m := mustQ(t, 3, metre)
	s := mustQ(t, 2, second)

	speed, err := m.Div(s)
	require.NoError(t, err)
	assert.False(t, speed.IsNumeric())
	assert.Equal(t, dimension.Length.Div(dimension.Time), speed.Dim())
	v, err := speed.Scalar()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	back, err := speed.Quantity().Mul(s)
	require.NoError(t, err)
	assert.Equal(t, dimension.Length, back.Dim())
}

func TestDiv_SelfIsBareNumber(t *testing.T) {
	q := mustQ(t, []float64{2, 4}, volt)

	r, err := q.Div(q)
	require.NoError(t, err)
	require.True(t, r.IsNumeric())
	n, ok := r.Numeric()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 1}, values(t, n))
	assert.Equal(t, dimension.Dimensionless, r.Dim())
	assert.Equal(t, "[1 1]", r.String())
}

func TestDiv_KilometreOverMetre(t *testing.T) {
	r, err := quantity.Div(mustQ(t, 1, kilometre), mustQ(t, 1, metre))
	require.NoError(t, err)
	require.True(t, r.IsNumeric())
	v, err := r.Scalar()
	require.NoError(t, err)
	assert.Equal(t, 1000.0, v)
}

func TestMul_PackageLevelCollapses(t *testing.T) {
	hz := mustQ(t, 50, scaler{dimension.Time.Inv(), 0})

	method, err := hz.Mul(mustQ(t, 2, second))
	require.NoError(t, err)
	assert.True(t, method.IsDimensionless(), "method keeps a Quantity")

	val, err := quantity.Mul(hz, mustQ(t, 2, second))
	require.NoError(t, err)
	assert.True(t, val.IsNumeric())

	scaled, err := quantity.Mul(hz, 3)
	require.NoError(t, err)
	assert.False(t, scaled.IsNumeric())
	v, err := scaled.Scalar()
	require.NoError(t, err)
	assert.Equal(t, 150.0, v)
}

func TestPow(t *testing.T) {
	area := mustQ(t, []float64{4, 9}, scaler{dimension.Length.PowInt(2), 0})

	side, err := area.Pow(dimension.Rat(1, 2))
	require.NoError(t, err)
	assert.Equal(t, dimension.Length, side.Dim())
	assert.Equal(t, []float64{2, 3}, values(t, side.Magnitude()))

	sqrt, err := area.Sqrt()
	require.NoError(t, err)
	assert.Equal(t, side.Dim(), sqrt.Dim())

	cube, err := mustQ(t, 8, metre).PowFloat(1.0 / 3)
	require.NoError(t, err)
	assert.Equal(t, "m^(1/3)", cube.Dim().String())

	_, err = mustQ(t, 8, metre).PowFloat(0.1234567891)
	require.ErrorIs(t, err, dimension.ErrIrrationalExponent)

	free, err := quantity.Pow(2.0, 0.1234567891)
	require.NoError(t, err)
	assert.True(t, free.IsNumeric())
}

func TestCompare_AcrossUnits(t *testing.T) {
	a := mustQ(t, []float64{999, 1000, 1001}, metre)
	b := mustQ(t, 1, kilometre)

	lt, err := a.Less(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0}, values(t, lt))

	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, values(t, eq))

	ne, err := a.NotEqual(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 1}, values(t, ne))

	ge, err := a.GreaterEq(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1}, values(t, ge))

	le, err := a.LessEq(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 0}, values(t, le))

	gt, err := a.Greater(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, values(t, gt))
}

func TestUnary(t *testing.T) {
	q := mustQ(t, []float64{-1.5, 2.5}, second)

	tests := []struct {
		name string
		run  func() (quantity.Quantity, error)
		want []float64
		dim  dimension.Dim
	}{
		{"Neg", q.Neg, []float64{1.5, -2.5}, dimension.Time},
		{"Abs", q.Abs, []float64{1.5, 2.5}, dimension.Time},
		{"Floor", q.Floor, []float64{-2, 2}, dimension.Time},
		{"Ceil", q.Ceil, []float64{-1, 3}, dimension.Time},
		{"Round", q.Round, []float64{-2, 2}, dimension.Time},
		{"Square", q.Square, []float64{2.25, 6.25}, dimension.Time.PowInt(2)},
		{"Reciprocal", q.Reciprocal, []float64{-1 / 1.5, 0.4}, dimension.Time.Inv()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := tc.run()
			require.NoError(t, err)
			assert.Equal(t, tc.dim, r.Dim())
			assert.InDeltaSlice(t, tc.want, values(t, r.Magnitude()), 1e-15)
		})
	}

	c, err := mustQ(t, 27, scaler{dimension.Length.PowInt(3), 0}).Cbrt()
	require.NoError(t, err)
	assert.Equal(t, dimension.Length, c.Dim())
	assert.InDelta(t, 3.0, values(t, c.Magnitude())[0], 1e-12)
}

func TestMaximumMinimumScale(t *testing.T) {
	a := mustQ(t, []float64{1, 5}, metre)
	b := mustQ(t, []float64{0.003, 0.002}, kilometre)

	hi, err := a.Maximum(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5}, values(t, hi.Magnitude()))

	lo, err := a.Minimum(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, values(t, lo.Magnitude()))

	x2, err := a.Scale(2)
	require.NoError(t, err)
	assert.Equal(t, dimension.Length, x2.Dim())
	assert.Equal(t, []float64{2, 10}, values(t, x2.Magnitude()))
}

func TestOperandsNotMutated(t *testing.T) {
	d, err := array.FromSlice([]float64{1, 2})
	require.NoError(t, err)
	q, err := quantity.FromTensor(d, dimension.Length)
	require.NoError(t, err)

	_, err = q.Add(q)
	require.NoError(t, err)
	_, err = q.SetAt(mustQ(t, 7, metre), 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, d.Data())
}
