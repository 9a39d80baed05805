// SPDX-License-Identifier: MIT
// Package array_test contains test helpers.
//
// Purpose:
//   - Small, deterministic fixtures shared by the kernel tests.

package array_test

import (
	"testing"

	"github.com/katalvlaran/lvunit/array"
	"github.com/stretchr/testify/require"
)

// hide wraps a Tensor to mask its concrete type while keeping it
// materializable, forcing the Materializer path of the eager backend.
type hide struct{ d *array.Dense }

func (h hide) Shape() array.Shape { return h.d.Shape() }

func (h hide) DType() array.DType { return h.d.DType() }

func (h hide) Backend() array.Backend { return array.Eager{} }

func (h hide) Materialize() (*array.Dense, error) { return h.d, nil }

// mustDense builds a tensor from data and shape or fails the test.
func mustDense(t *testing.T, data []float64, shape ...int) *array.Dense {
	t.Helper()
	d, err := array.FromSlice(data, shape...)
	require.NoError(t, err)

	return d
}

// asDense asserts that a backend result is concrete.
func asDense(t *testing.T, tt array.Tensor) *array.Dense {
	t.Helper()
	d, ok := array.Concrete(tt)
	require.True(t, ok, "expected concrete *Dense, got %T", tt)

	return d
}
