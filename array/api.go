// SPDX-License-Identifier: MIT
// Package array — public constructors.
//
// Purpose:
//   - Thin, intention-revealing constructors (Zeros, Ones, Full, Arange,
//     Linspace, ZerosLike) over NewDense.
//
// Determinism:
//   - Each constructor performs a single allocation and a fixed-order fill.

package array

import "math"

// Zeros returns a zero-filled tensor of the given shape.
// Thin alias of NewDense with an intention-revealing name.
func Zeros(shape ...int) (*Dense, error) { return NewDense(shape...) }

// Ones returns a tensor of the given shape filled with 1.
func Ones(shape ...int) (*Dense, error) { return Full(1, shape...) }

// Full returns a tensor of the given shape filled with v.
func Full(v float64, shape ...int) (*Dense, error) {
	m, err := NewDense(shape...)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// ZerosLike returns a zero tensor with the same shape as t.
// t is not evaluated; only its shape is read.
func ZerosLike(t Tensor) (*Dense, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, arrayErrorf("ZerosLike", err)
	}

	return NewDense(t.Shape()...)
}

// Arange returns evenly spaced values in [start, stop) with the given step.
//
// Errors:
//   - ErrNonFinite for NaN/Inf parameters; ErrBadShape for step == 0.
//
// Complexity: O(ceil((stop-start)/step)).
func Arange(start, stop, step float64) (*Dense, error) {
	if err := ValidateFinite(start, stop, step); err != nil {
		return nil, arrayErrorf("Arange", err)
	}
	if step == 0 {
		return nil, arrayErrorf("Arange", ErrBadShape)
	}
	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}
	m := newDenseShape(Shape{n})
	for i := 0; i < n; i++ {
		m.data[i] = start + float64(i)*step
	}

	return m, nil
}

// Linspace returns n evenly spaced values over [start, stop], endpoints included.
func Linspace(start, stop float64, n int) (*Dense, error) {
	if err := ValidateFinite(start, stop); err != nil {
		return nil, arrayErrorf("Linspace", err)
	}
	if n < 0 {
		return nil, arrayErrorf("Linspace", ErrBadShape)
	}
	m := newDenseShape(Shape{n})
	if n == 1 {
		m.data[0] = start
		return m, nil
	}
	step := (stop - start) / float64(n-1)
	for i := 0; i < n; i++ {
		m.data[i] = start + float64(i)*step
	}
	if n > 1 {
		m.data[n-1] = stop // exact endpoint
	}

	return m, nil
}
