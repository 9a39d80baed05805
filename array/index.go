// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Copy-based structural kernels: Index, Slice, SetAt, Reshape, Concat, Stack.
//   - Every kernel allocates its result; inputs are never aliased or mutated.
//
// Layout:
//   - Indexing leading axes of a row-major buffer selects one contiguous block,
//     so Index and SetAt are single copy() calls.

package array

// index selects the block at idx on the leading axes.
func index(a *Dense, idx []int) (*Dense, error) {
	resolved, err := normalizeIndex(a.shape, idx)
	if err != nil {
		return nil, arrayErrorf(opIndex, err)
	}
	off, block := blockOf(a.shape, resolved)
	out := newDenseShape(a.shape[len(idx):])
	copy(out.data, a.data[off:off+block])

	return out, nil
}

// blockOf returns the flat offset and length of the contiguous block that
// idx addresses on the leading axes of shape.
func blockOf(shape Shape, idx []int) (off, block int) {
	block = shape[len(idx):].Size()
	for i, v := range idx {
		off = off*shape[i] + v
	}

	return off * block, block
}

// slice copies [start, stop) along axis.
func slice(a *Dense, axis, start, stop int) (*Dense, error) {
	shape, err := SlicedShape(a.shape, axis, start, stop)
	if err != nil {
		return nil, err
	}
	ax, _ := normalizeAxis(axis, len(a.shape))
	start, _, _ = normalizeBounds(a.shape[ax], start, stop)
	outer, n, inner, _ := reduceLayout(a.shape, ax)
	m := shape[ax]
	out := newDenseShape(shape)
	// Each outer row contributes one contiguous run of m*inner values.
	for o := 0; o < outer; o++ {
		src := (o*n + start) * inner
		dst := o * m * inner
		copy(out.data[dst:dst+m*inner], a.data[src:src+m*inner])
	}

	return out, nil
}

// setAt returns a copy of a with the block at idx replaced by v, where v is
// broadcast to the block shape.
func setAt(a, v *Dense, idx []int) (*Dense, error) {
	resolved, err := normalizeIndex(a.shape, idx)
	if err != nil {
		return nil, arrayErrorf(opSetAt, err)
	}
	blockShape := a.shape[len(idx):]
	// v must broadcast to exactly the block shape.
	bs, err := BroadcastShapes(blockShape, v.shape)
	if err != nil || !bs.Equal(blockShape) {
		return nil, arrayErrorf(opSetAt, ErrShapeMismatch)
	}
	fill, err := ewBinary(OpAdd, newDenseShape(blockShape), v)
	if err != nil {
		return nil, arrayErrorf(opSetAt, err)
	}
	out := a.Clone()
	off, block := blockOf(a.shape, resolved)
	copy(out.data[off:off+block], fill.data)

	return out, nil
}

// reshape copies a into a new shape with the same element count.
func reshape(a *Dense, target Shape) (*Dense, error) {
	shape, err := ReshapedShape(a.shape, target)
	if err != nil {
		return nil, err
	}
	out := newDenseShape(shape)
	copy(out.data, a.data)

	return out, nil
}

// concat joins tensors along axis.
func concat(ts []*Dense, axis int) (*Dense, error) {
	shapes := make([]Shape, len(ts))
	for i, t := range ts {
		shapes[i] = t.shape
	}
	shape, err := ConcatShape(shapes, axis)
	if err != nil {
		return nil, err
	}
	ax, _ := normalizeAxis(axis, len(shape))
	outer, _, inner, _ := reduceLayout(shape, ax)
	out := newDenseShape(shape)
	// Walk outer rows; within each, append every input's run in order.
	pos := 0
	for o := 0; o < outer; o++ {
		for _, t := range ts {
			run := t.shape[ax] * inner
			src := o * run
			copy(out.data[pos:pos+run], t.data[src:src+run])
			pos += run
		}
	}

	return out, nil
}

// stack joins equally shaped tensors along a new leading axis.
func stack(ts []*Dense) (*Dense, error) {
	shapes := make([]Shape, len(ts))
	for i, t := range ts {
		shapes[i] = t.shape
	}
	shape, err := StackShape(shapes)
	if err != nil {
		return nil, err
	}
	out := newDenseShape(shape)
	block := shapes[0].Size()
	for i, t := range ts {
		copy(out.data[i*block:(i+1)*block], t.data)
	}

	return out, nil
}
