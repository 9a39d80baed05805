// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Shape inference for every Backend operation, shared by the eager kernels
//     and by the deferred backend (which must know result shapes without
//     evaluating anything).
//
// Determinism:
//   - Pure functions over small int slices; no allocation beyond the result.

package array

// Operation tags for shape inference errors.
const (
	opBroadcast = "Broadcast"
	opReduce    = "Reduce"
	opScan      = "Scan"
	opIndex     = "Index"
	opSlice     = "Slice"
	opSetAt     = "SetAt"
	opReshape   = "Reshape"
	opConcat    = "Concat"
	opStack     = "Stack"
)

// BroadcastShapes returns the numpy-style broadcast of a and b.
// Axes are aligned from the right; extents must be equal or one of them 1.
//
// Errors:
//   - ErrShapeMismatch when an aligned pair differs and neither is 1.
//
// Complexity: O(max(ndim)).
func BroadcastShapes(a, b Shape) (Shape, error) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Shape, n)
	for i := 0; i < n; i++ {
		da, db := 1, 1
		if k := len(a) - n + i; k >= 0 {
			da = a[k]
		}
		if k := len(b) - n + i; k >= 0 {
			db = b[k]
		}
		switch {
		case da == db:
			out[i] = da
		case da == 1:
			out[i] = db
		case db == 1:
			out[i] = da
		default:
			return nil, arrayErrorf(opBroadcast, ErrShapeMismatch)
		}
	}

	return out, nil
}

// normalizeAxis maps a possibly negative axis into [0, ndim).
// AllAxes is NOT accepted here; callers handle it before.
func normalizeAxis(axis, ndim int) (int, error) {
	if axis < 0 {
		axis += ndim
	}
	if axis < 0 || axis >= ndim {
		return 0, ErrBadAxis
	}

	return axis, nil
}

// ReducedShape returns the shape left after reducing s along axis.
// AllAxes reduces to a scalar.
func ReducedShape(s Shape, axis int) (Shape, error) {
	if axis == AllAxes {
		return Shape{}, nil
	}
	ax, err := normalizeAxis(axis, len(s))
	if err != nil {
		return nil, arrayErrorf(opReduce, err)
	}
	out := make(Shape, 0, len(s)-1)
	out = append(out, s[:ax]...)
	out = append(out, s[ax+1:]...)

	return out, nil
}

// ReducedCount returns how many elements feed each output of a reduction of
// s along axis (s.Size() for AllAxes).
func ReducedCount(s Shape, axis int) (int, error) {
	if axis == AllAxes {
		return s.Size(), nil
	}
	ax, err := normalizeAxis(axis, len(s))
	if err != nil {
		return 0, arrayErrorf(opReduce, err)
	}

	return s[ax], nil
}

// ScannedShape returns the result shape of a cumulative op: s itself along an
// axis, the flattened 1-d shape for AllAxes.
func ScannedShape(s Shape, axis int) (Shape, error) {
	if axis == AllAxes {
		return Shape{s.Size()}, nil
	}
	if _, err := normalizeAxis(axis, len(s)); err != nil {
		return nil, arrayErrorf(opScan, err)
	}

	return s.Clone(), nil
}

// normalizeIndex resolves negative indices and checks bounds on every
// leading axis. It returns the resolved indices.
func normalizeIndex(s Shape, idx []int) ([]int, error) {
	if len(idx) > len(s) {
		return nil, ErrOutOfRange
	}
	out := make([]int, len(idx))
	for i, v := range idx {
		if v < 0 {
			v += s[i]
		}
		if v < 0 || v >= s[i] {
			return nil, ErrOutOfRange
		}
		out[i] = v
	}

	return out, nil
}

// IndexedShape returns the shape of s indexed by idx on its leading axes.
func IndexedShape(s Shape, idx ...int) (Shape, error) {
	if _, err := normalizeIndex(s, idx); err != nil {
		return nil, arrayErrorf(opIndex, err)
	}

	return s[len(idx):].Clone(), nil
}

// normalizeBounds resolves negative slice bounds along an axis of extent n.
func normalizeBounds(n, start, stop int) (int, int, error) {
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 || stop > n || start > stop {
		return 0, 0, ErrOutOfRange
	}

	return start, stop, nil
}

// SlicedShape returns the shape of s restricted to [start, stop) on axis.
func SlicedShape(s Shape, axis, start, stop int) (Shape, error) {
	ax, err := normalizeAxis(axis, len(s))
	if err != nil {
		return nil, arrayErrorf(opSlice, err)
	}
	start, stop, err = normalizeBounds(s[ax], start, stop)
	if err != nil {
		return nil, arrayErrorf(opSlice, err)
	}
	out := s.Clone()
	out[ax] = stop - start

	return out, nil
}

// ReshapedShape resolves target against s: at most one -1 extent is
// inferred; the element count must be preserved.
func ReshapedShape(s Shape, target Shape) (Shape, error) {
	out := target.Clone()
	if out == nil {
		out = Shape{}
	}
	infer := -1
	known := 1
	for i, d := range out {
		switch {
		case d == -1 && infer < 0:
			infer = i
		case d < 0:
			return nil, arrayErrorf(opReshape, ErrBadShape)
		default:
			known *= d
		}
	}
	size := s.Size()
	if infer >= 0 {
		if known == 0 || size%known != 0 {
			return nil, arrayErrorf(opReshape, ErrBadShape)
		}
		out[infer] = size / known
		known *= out[infer]
	}
	if known != size {
		return nil, arrayErrorf(opReshape, ErrBadShape)
	}

	return out, nil
}

// ConcatShape validates that shapes agree on every axis but axis and returns
// the joined shape.
func ConcatShape(shapes []Shape, axis int) (Shape, error) {
	if len(shapes) == 0 {
		return nil, arrayErrorf(opConcat, ErrEmpty)
	}
	first := shapes[0]
	if len(first) == 0 {
		return nil, arrayErrorf(opConcat, ErrBadAxis)
	}
	ax, err := normalizeAxis(axis, len(first))
	if err != nil {
		return nil, arrayErrorf(opConcat, err)
	}
	out := first.Clone()
	for _, s := range shapes[1:] {
		if len(s) != len(first) {
			return nil, arrayErrorf(opConcat, ErrShapeMismatch)
		}
		for i := range s {
			if i != ax && s[i] != first[i] {
				return nil, arrayErrorf(opConcat, ErrShapeMismatch)
			}
		}
		out[ax] += s[ax]
	}

	return out, nil
}

// StackShape validates that all shapes are identical and returns the shape
// with a new leading axis of extent len(shapes).
func StackShape(shapes []Shape) (Shape, error) {
	if len(shapes) == 0 {
		return nil, arrayErrorf(opStack, ErrEmpty)
	}
	first := shapes[0]
	for _, s := range shapes[1:] {
		if !s.Equal(first) {
			return nil, arrayErrorf(opStack, ErrShapeMismatch)
		}
	}
	out := make(Shape, 0, len(first)+1)
	out = append(out, len(shapes))
	out = append(out, first...)

	return out, nil
}
