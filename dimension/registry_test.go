// SPDX-License-Identifier: MIT

package dimension_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lvunit/dimension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_InterningIsIdempotent(t *testing.T) {
	r := dimension.NewRegistry()
	require.Equal(t, 1, r.Len())
	assert.Equal(t, dimension.Dimensionless, r.GetOrCreate(dimension.Vector{}))

	v := dimension.NewVector(1, 0, -2, 0, 0, 0, 0)
	a := r.GetOrCreate(v)
	b := r.GetOrCreate(dimension.NewVector(1, 0, -2, 0, 0, 0, 0))
	assert.Equal(t, a, b)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, v, r.Vector(a))

	assert.Panics(t, func() { r.Vector(dimension.Dim(99)) })
}

func TestRegistry_MulMatchesVectorSum(t *testing.T) {
	r := dimension.NewRegistry()
	d1 := dimension.NewVector(2, 1, -3, 0, 0, 0, 0)
	d2 := dimension.NewVector(0, 0, 0, -1, 0, 0, 0)

	got := r.Mul(r.GetOrCreate(d1), r.GetOrCreate(d2))
	assert.Equal(t, r.GetOrCreate(d1.Mul(d2)), got)
	assert.Equal(t, got, r.Mul(r.GetOrCreate(d2), r.GetOrCreate(d1)), "Mul is commutative")

	assert.Equal(t, r.GetOrCreate(d1), r.Div(got, r.GetOrCreate(d2)))
	assert.Equal(t, dimension.Dimensionless, r.Div(got, got))
	assert.Equal(t, r.GetOrCreate(d1.Pow(dimension.Int(2))), r.Pow(r.GetOrCreate(d1), dimension.Int(2)))
	assert.Equal(t, dimension.Dimensionless, r.Pow(got, dimension.Int(0)))
}

func TestDim_DefaultRegistry(t *testing.T) {
	volt := dimension.Of(2, 1, -3, -1, 0, 0, 0)

	derived := dimension.Length.PowInt(2).Mul(dimension.Mass).Div(dimension.Time.PowInt(3).Mul(dimension.Current))
	assert.Equal(t, volt, derived)
	assert.Equal(t, "m^2 kg s^-3 A^-1", volt.String())

	area := dimension.Length.PowInt(2)
	root := area.Pow(dimension.Rat(1, 2))
	assert.Equal(t, dimension.Length, root)

	hz := dimension.Time.Inv()
	assert.Equal(t, dimension.Dimensionless, hz.Mul(dimension.Time))
	assert.True(t, hz.Mul(dimension.Time).IsDimensionless())
	assert.False(t, hz.IsDimensionless())

	cube, err := dimension.Length.PowFloat(1.0 / 3)
	require.NoError(t, err)
	assert.Equal(t, "m^(1/3)", cube.String())

	_, err = dimension.Length.PowFloat(0.1234567891)
	require.ErrorIs(t, err, dimension.ErrIrrationalExponent)

	free, err := dimension.Dimensionless.PowFloat(0.1234567891)
	require.NoError(t, err)
	assert.Equal(t, dimension.Dimensionless, free)
}

func TestRegistry_Concurrent(t *testing.T) {
	r := dimension.NewRegistry()
	const workers = 16

	var wg sync.WaitGroup
	got := make([][]dimension.Dim, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := int64(-10); i <= 10; i++ {
				d := r.GetOrCreate(dimension.NewVector(i, 0, 0, 0, 0, 0, 0))
				got[w] = append(got[w], r.Mul(d, d))
			}
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		assert.Equal(t, got[0], got[w], "worker %d saw different handles", w)
	}
	// -20..20 even exponents plus -10..10 and the dimensionless seed.
	assert.Equal(t, 1+20+10, r.Len())
}
