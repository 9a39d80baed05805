// SPDX-License-Identifier: MIT

package quantity

import (
	"github.com/katalvlaran/lvunit/array"
	"github.com/katalvlaran/lvunit/dimension"
)

// Index selects along the leading axes (negative indices count from the end).
func (q Quantity) Index(idx ...int) (Quantity, error) {
	t, err := array.BackendFor(q.mag).Index(q.mag, idx...)
	if err != nil {
		return Quantity{}, quantityErrorf("Index", err)
	}

	return Quantity{mag: t, dim: q.dim}, nil
}

// Slice keeps [start, stop) along axis.
func (q Quantity) Slice(axis, start, stop int) (Quantity, error) {
	t, err := array.BackendFor(q.mag).Slice(q.mag, axis, start, stop)
	if err != nil {
		return Quantity{}, quantityErrorf("Slice", err)
	}

	return Quantity{mag: t, dim: q.dim}, nil
}

// Reshape changes the shape; one extent may be -1.
func (q Quantity) Reshape(shape ...int) (Quantity, error) {
	t, err := array.BackendFor(q.mag).Reshape(q.mag, array.Shape(shape))
	if err != nil {
		return Quantity{}, quantityErrorf("Reshape", err)
	}

	return Quantity{mag: t, dim: q.dim}, nil
}

// SetAt returns a copy of q with the block at idx replaced by v (broadcast to
// the block shape). v must have exactly q's dimension.
func (q Quantity) SetAt(v Quantity, idx ...int) (Quantity, error) {
	if v.dim != q.dim {
		return Quantity{}, &MismatchError{Op: "SetAt", A: q.dim, B: v.dim}
	}
	t, err := array.BackendFor(q.mag, v.mag).SetAt(q.mag, v.mag, idx...)
	if err != nil {
		return Quantity{}, quantityErrorf("SetAt", err)
	}

	return Quantity{mag: t, dim: q.dim}, nil
}

// Array gathers items into one quantity along a new leading axis. Items may
// be quantities, values or bare numbers (dimensionless); all must share the
// dimension of the first.
//
// Example: Array(500 ms, 1 s) is [0.5 1] s, Array(500 ms, 1) fails with
// *AggregationError.
func Array(items ...any) (Quantity, error) {
	qs := make([]Quantity, len(items))
	for i, it := range items {
		q, err := From(it)
		if err != nil {
			return Quantity{}, quantityErrorf("Array", err)
		}
		qs[i] = q
	}

	return Stack(qs)
}

// Stack joins quantities of one dimension along a new leading axis.
func Stack(qs []Quantity) (Quantity, error) {
	d, ts, err := gather(qs)
	if err != nil {
		return Quantity{}, quantityErrorf("Stack", err)
	}
	t, err := array.BackendFor(ts...).Stack(ts)
	if err != nil {
		return Quantity{}, quantityErrorf("Stack", err)
	}

	return Quantity{mag: t, dim: d}, nil
}

// Concat joins quantities of one dimension along an existing axis.
func Concat(qs []Quantity, axis int) (Quantity, error) {
	d, ts, err := gather(qs)
	if err != nil {
		return Quantity{}, quantityErrorf("Concat", err)
	}
	t, err := array.BackendFor(ts...).Concat(ts, axis)
	if err != nil {
		return Quantity{}, quantityErrorf("Concat", err)
	}

	return Quantity{mag: t, dim: d}, nil
}

// gather checks that every element shares the first element's dimension.
func gather(qs []Quantity) (dimension.Dim, []array.Tensor, error) {
	if len(qs) == 0 {
		return 0, nil, array.ErrEmpty
	}
	want := qs[0].dim
	ts := make([]array.Tensor, len(qs))
	for i, q := range qs {
		if _, err := dimension.Apply(dimension.OpStack, want, q.dim, dimension.Exponent{}); err != nil {
			return 0, nil, &AggregationError{Index: i, Want: want, Got: q.dim}
		}
		ts[i] = q.mag
	}

	return want, ts, nil
}
