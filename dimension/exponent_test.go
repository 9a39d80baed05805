// SPDX-License-Identifier: MIT

package dimension_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvunit/dimension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponent_ZeroValueIsZero(t *testing.T) {
	var e dimension.Exponent
	assert.True(t, e.IsZero())
	assert.True(t, e.IsInt())
	assert.Equal(t, int64(1), e.Den())
	assert.Equal(t, dimension.Int(0), e)
	assert.Equal(t, dimension.Rat(0, 7), e)
}

func TestExponent_RatNormalises(t *testing.T) {
	assert.Equal(t, dimension.Rat(1, 2), dimension.Rat(2, 4))
	assert.Equal(t, dimension.Rat(-1, 3), dimension.Rat(1, -3))
	assert.Equal(t, dimension.Int(3), dimension.Rat(6, 2))
	assert.Equal(t, "-1/3", dimension.Rat(2, -6).String())
	assert.Panics(t, func() { dimension.Rat(1, 0) })
}

func TestExponent_Arithmetic(t *testing.T) {
	half, third := dimension.Rat(1, 2), dimension.Rat(1, 3)

	assert.Equal(t, dimension.Rat(5, 6), half.Add(third))
	assert.Equal(t, dimension.Rat(1, 6), half.Sub(third))
	assert.Equal(t, dimension.Rat(1, 6), half.Mul(third))
	assert.Equal(t, dimension.Int(1), half.Add(half))
	assert.Equal(t, dimension.Int(1), dimension.Int(2).Mul(half))
	assert.Equal(t, dimension.Rat(-1, 2), half.Neg())
	assert.InDelta(t, 1.0/3, third.Float64(), 1e-15)
}

func TestExponent_Overflow(t *testing.T) {
	maxInt := dimension.Int(math.MaxInt64)
	require.True(t, maxInt.Valid())

	tests := []struct {
		name string
		got  dimension.Exponent
	}{
		{"add", maxInt.Add(dimension.Int(1))},
		{"sub", maxInt.Neg().Sub(dimension.Int(2))},
		{"mul", dimension.Int(5_000_000_000).Mul(dimension.Int(5_000_000_000))},
		{"rational mul", dimension.Rat(math.MaxInt64, 2).Mul(dimension.Rat(3, 5))},
		{"rational add", dimension.Rat(1, math.MaxInt64).Add(dimension.Rat(1, 3))},
		{"sticky", maxInt.Add(dimension.Int(1)).Sub(dimension.Int(1))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.got.Valid())
			assert.False(t, tc.got.IsZero())
			assert.Equal(t, "overflow", tc.got.String())
			assert.True(t, math.IsNaN(tc.got.Float64()))
		})
	}

	// Cross-reduction keeps in-range products exact.
	assert.Equal(t, dimension.Int(1), dimension.Rat(math.MaxInt64, 2).Mul(dimension.Rat(2, math.MaxInt64)))
	assert.Equal(t, dimension.Int(3_000_000_000*3_000_000_000), dimension.Int(3_000_000_000).Mul(dimension.Int(3_000_000_000)))
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want dimension.Exponent
	}{
		{2, dimension.Int(2)},
		{-3, dimension.Int(-3)},
		{0.5, dimension.Rat(1, 2)},
		{-1.5, dimension.Rat(-3, 2)},
		{1.0 / 3, dimension.Rat(1, 3)},
		{0.333333333, dimension.Rat(1, 3)},
		{0.001, dimension.Rat(1, 1000)},
	}
	for _, tc := range tests {
		got, err := dimension.FromFloat(tc.in)
		require.NoError(t, err, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}

	for _, bad := range []float64{math.Pi, math.Sqrt2, math.NaN(), math.Inf(1), 1.0 / 1001} {
		_, err := dimension.FromFloat(bad)
		require.ErrorIs(t, err, dimension.ErrIrrationalExponent, "%v", bad)
	}
}
