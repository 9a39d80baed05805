// SPDX-License-Identifier: MIT

package unit_test

import (
	"testing"

	"github.com/katalvlaran/lvunit/dimension"
	"github.com/katalvlaran/lvunit/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		expr  string
		dim   dimension.Dim
		scale int
	}{
		{"m", dimension.Length, 0},
		{"km", dimension.Length, 3},
		{"kg*m^2/s^3", unit.Watt.Dim(), 0},
		{"kg·m^2/(s^3·A)", unit.Volt.Dim(), 0},
		{"m / s ^ 2", dimension.Length.Div(dimension.Time.PowInt(2)), 0},
		{"1/ms", dimension.Time.Inv(), 3},
		{"(km/s)^2", dimension.Length.Div(dimension.Time).PowInt(2), 6},
		{"s^-1", dimension.Time.Inv(), 0},
		{"um", dimension.Length, -6},
		{"uM", unit.Molar.Dim(), -3},
		{"mmol/L", unit.Molar.Dim(), 0},
		{"kilometre", dimension.Length, 3},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			u, err := unit.Parse(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.dim, u.Dim())
			assert.Equal(t, tc.scale, u.Scale())
		})
	}
}

func TestParse_SingleUnitKeepsName(t *testing.T) {
	u, err := unit.Parse("mV")
	require.NoError(t, err)
	assert.Equal(t, "millivolt", u.Name())

	u, err = unit.Parse("um")
	require.NoError(t, err)
	assert.Equal(t, "µm", u.Symbol())
}

func TestParse_Errors(t *testing.T) {
	for _, expr := range []string{"", "m^", "m^x", "(m/s", "m)", "kg**m", "3m"} {
		_, err := unit.Parse(expr)
		require.ErrorIs(t, err, unit.ErrInvalidExpression, "%q", expr)
	}
	for _, expr := range []string{"furlong", "m/fortnight", "qm"} {
		_, err := unit.Parse(expr)
		require.ErrorIs(t, err, unit.ErrUnknownUnit, "%q", expr)
	}
}

func TestParse_ExponentOverflow(t *testing.T) {
	for _, expr := range []string{
		"(m^5000000000)^5000000000",
		"m^9223372036854775807*m",
		"(km^3000000000)^3000000000",
	} {
		_, err := unit.Parse(expr)
		require.ErrorIs(t, err, unit.ErrInvalidExpression, "%q", expr)
		require.ErrorIs(t, err, dimension.ErrExponentOverflow, "%q", expr)
	}

	u, err := unit.Parse("(m^3000000000)^3")
	require.NoError(t, err)
	assert.Equal(t, dimension.Length.PowInt(9_000_000_000), u.Dim())
}
