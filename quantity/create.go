// SPDX-License-Identifier: MIT

package quantity

import (
	"github.com/katalvlaran/lvunit/array"
	"github.com/katalvlaran/lvunit/dimension"
)

// Full returns a quantity of the given shape with every element equal to
// fill. fill may be a single-element Quantity, Value or bare number; its
// dimension is kept.
//
// Errors:
//   - ErrInvalidConstruction when fill does not coerce or has more than one
//     element.
//   - array.ErrBadShape for negative extents.
func Full(shape []int, fill any) (Quantity, error) {
	f, err := From(fill)
	if err != nil {
		return Quantity{}, quantityErrorf("Full", err)
	}
	v, err := f.Scalar()
	if err != nil {
		return Quantity{}, quantityErrorf("Full", wrapConstruction(err))
	}
	d, err := array.Full(v, shape...)
	if err != nil {
		return Quantity{}, quantityErrorf("Full", err)
	}

	return Quantity{mag: d, dim: f.dim}, nil
}

// Arange returns evenly spaced values in [start, stop) advancing by step.
// All three bounds must share one dimension, which the result carries:
// Arange(0 s, 1 s, 250 ms) is [0 0.25 0.5 0.75] s.
//
// Errors:
//   - *MismatchError when stop or step has another dimension than start.
//   - array.ErrBadShape for a zero step; array.ErrNonFinite for NaN/Inf.
func Arange(start, stop, step any) (Quantity, error) {
	vs, d, err := bounds("Arange", start, stop, step)
	if err != nil {
		return Quantity{}, err
	}
	t, err := array.Arange(vs[0], vs[1], vs[2])
	if err != nil {
		return Quantity{}, quantityErrorf("Arange", err)
	}

	return Quantity{mag: t, dim: d}, nil
}

// Linspace returns n evenly spaced values over [start, stop], both ends
// included. start and stop must share a dimension.
//
// Errors:
//   - *MismatchError for differing dimensions.
//   - array.ErrBadShape for n < 0; array.ErrNonFinite for NaN/Inf.
func Linspace(start, stop any, n int) (Quantity, error) {
	vs, d, err := bounds("Linspace", start, stop)
	if err != nil {
		return Quantity{}, err
	}
	t, err := array.Linspace(vs[0], vs[1], n)
	if err != nil {
		return Quantity{}, quantityErrorf("Linspace", err)
	}

	return Quantity{mag: t, dim: d}, nil
}

// bounds coerces scalar range operands and checks they share the dimension
// of the first. Values come back at SI scale.
func bounds(op string, xs ...any) ([]float64, dimension.Dim, error) {
	vs := make([]float64, len(xs))
	var d dimension.Dim
	for i, x := range xs {
		q, err := From(x)
		if err != nil {
			return nil, 0, quantityErrorf(op, err)
		}
		if i == 0 {
			d = q.dim
		} else if q.dim != d {
			return nil, 0, &MismatchError{Op: op, A: d, B: q.dim}
		}
		if vs[i], err = q.Scalar(); err != nil {
			return nil, 0, quantityErrorf(op, wrapConstruction(err))
		}
	}

	return vs, d, nil
}
