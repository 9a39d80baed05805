// SPDX-License-Identifier: MIT

package quantity_test

import (
	"testing"

	"github.com/katalvlaran/lvunit/array"
	"github.com/katalvlaran/lvunit/dimension"
	"github.com/katalvlaran/lvunit/quantity"
	"github.com/stretchr/testify/require"
)

// scaler is a minimal quantity.Scaler fixture.
type scaler struct {
	d dimension.Dim
	s int
}

func (u scaler) Dim() dimension.Dim { return u.d }

func (u scaler) Scale() int { return u.s }

var (
	metre       = scaler{dimension.Length, 0}
	kilometre   = scaler{dimension.Length, 3}
	second      = scaler{dimension.Time, 0}
	millisecond = scaler{dimension.Time, -3}
	volt        = scaler{dimension.Of(2, 1, -3, -1, 0, 0, 0), 0}
)

// mustQ builds x·s or fails the test.
func mustQ(t *testing.T, x any, s quantity.Scaler) quantity.Quantity {
	t.Helper()
	q, err := quantity.New(x, s)
	require.NoError(t, err)

	return q
}

// values materializes a tensor and returns its elements.
func values(t *testing.T, tt array.Tensor) []float64 {
	t.Helper()
	d, err := array.Materialize(tt)
	require.NoError(t, err)

	return d.Data()
}
