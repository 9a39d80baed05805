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

func TestReductions(t *testing.T) {
	q := mustQ(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, second)
	s := dimension.Time

	tests := []struct {
		name string
		run  func(axis int) (quantity.Quantity, error)
		axis int
		want []float64
		dim  dimension.Dim
	}{
		{"Sum/all", q.Sum, array.AllAxes, []float64{21}, s},
		{"Sum/0", q.Sum, 0, []float64{5, 7, 9}, s},
		{"Mean/1", q.Mean, 1, []float64{2, 5}, s},
		{"Min/-1", q.Min, -1, []float64{1, 4}, s},
		{"Max/0", q.Max, 0, []float64{4, 5, 6}, s},
		{"Median/all", q.Median, array.AllAxes, []float64{3.5}, s},
		{"Ptp/1", q.Ptp, 1, []float64{2, 2}, s},
		{"Var/0", q.Var, 0, []float64{2.25, 2.25, 2.25}, s.PowInt(2)},
		{"Std/0", q.Std, 0, []float64{1.5, 1.5, 1.5}, s},
		{"Prod/1", q.Prod, 1, []float64{6, 120}, s.PowInt(3)},
		{"Prod/all", q.Prod, array.AllAxes, []float64{720}, s.PowInt(6)},
		{"Cumsum/1", q.Cumsum, 1, []float64{1, 3, 6, 4, 9, 15}, s},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := tc.run(tc.axis)
			require.NoError(t, err)
			assert.Equal(t, tc.dim, r.Dim())
			assert.InDeltaSlice(t, tc.want, values(t, r.Magnitude()), 1e-12)
		})
	}
}

func TestVar_SquaresDimension(t *testing.T) {
	v, err := mustQ(t, []float64{500, 1500}, millisecond).Var(array.AllAxes)
	require.NoError(t, err)
	assert.Equal(t, "s^2", v.Dim().String())
	got, err := v.Scalar()
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got, 1e-15)
}

func TestCumprod_RequiresDimensionless(t *testing.T) {
	_, err := mustQ(t, []float64{1, 2}, metre).Cumprod(0)
	require.ErrorIs(t, err, dimension.ErrNotDimensionless)

	n, err := quantity.Dimensionless([]float64{1, 2, 3})
	require.NoError(t, err)
	c, err := n.Cumprod(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 6}, values(t, c.Magnitude()))
}

func TestReduce_Errors(t *testing.T) {
	q := mustQ(t, []float64{1, 2}, metre)

	_, err := q.Sum(1)
	require.ErrorIs(t, err, array.ErrBadAxis)
	_, err = q.Prod(4)
	require.ErrorIs(t, err, array.ErrBadAxis)

	empty := mustQ(t, []float64{}, metre)
	_, err = empty.Mean(array.AllAxes)
	require.ErrorIs(t, err, array.ErrEmpty)
	zero, err := empty.Sum(array.AllAxes)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, values(t, zero.Magnitude()))
}
