// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Provide the element-wise binary (broadcasting) and unary kernels used
//     by the eager backend.
//   - Keep all loops deterministic and cache-friendly with same-shape and
//     scalar fast-paths.
//
// Determinism & Performance:
//   - Fixed flat loop order 0..n-1 over the output buffer.
//   - Same-shape operands run a single flat loop; a scalar operand is hoisted.
//   - The general broadcast path walks an odometer over the output index and
//     uses zero strides on broadcast axes. O(n·ndim) time, O(n) space.

package array

import "math"

// binaryKernel returns the scalar function for op.
func binaryKernel(op BinaryOp) (func(x, y float64) float64, bool) {
	switch op {
	case OpAdd:
		return func(x, y float64) float64 { return x + y }, true
	case OpSub:
		return func(x, y float64) float64 { return x - y }, true
	case OpMul:
		return func(x, y float64) float64 { return x * y }, true
	case OpDiv:
		return func(x, y float64) float64 { return x / y }, true
	case OpPow:
		return math.Pow, true
	case OpMaximum:
		return math.Max, true
	case OpMinimum:
		return math.Min, true
	case OpLess:
		return func(x, y float64) float64 { return boolf(x < y) }, true
	case OpLessEq:
		return func(x, y float64) float64 { return boolf(x <= y) }, true
	case OpGreater:
		return func(x, y float64) float64 { return boolf(x > y) }, true
	case OpGreaterEq:
		return func(x, y float64) float64 { return boolf(x >= y) }, true
	case OpEqual:
		return func(x, y float64) float64 { return boolf(x == y) }, true
	case OpNotEqual:
		return func(x, y float64) float64 { return boolf(x != y) }, true
	default:
		return nil, false
	}
}

// boolf maps a predicate onto the 0/1 mask encoding.
func boolf(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

// ewBinary computes out = f(a, b) with numpy broadcasting.
//
// Errors:
//   - ErrShapeMismatch when shapes are not broadcast-compatible.
//   - ErrUnsupported for an unknown op.
func ewBinary(op BinaryOp, a, b *Dense) (*Dense, error) {
	f, ok := binaryKernel(op)
	if !ok {
		return nil, arrayErrorf(op.String(), ErrUnsupported)
	}
	shape, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		return nil, arrayErrorf(op.String(), err)
	}
	out := newDenseShape(shape)
	n := len(out.data)

	// Same-shape fast-path: single flat loop.
	if a.shape.Equal(b.shape) {
		for i := 0; i < n; i++ {
			out.data[i] = f(a.data[i], b.data[i])
		}
		return out, nil
	}
	// Scalar fast-paths: hoist the constant operand.
	if len(b.data) == 1 && len(a.data) == n {
		y := b.data[0]
		for i := 0; i < n; i++ {
			out.data[i] = f(a.data[i], y)
		}
		return out, nil
	}
	if len(a.data) == 1 && len(b.data) == n {
		x := a.data[0]
		for i := 0; i < n; i++ {
			out.data[i] = f(x, b.data[i])
		}
		return out, nil
	}

	// General broadcast: odometer over the output index.
	sa := broadcastStrides(a.shape, shape)
	sb := broadcastStrides(b.shape, shape)
	ctr := make([]int, len(shape))
	offA, offB := 0, 0
	for i := 0; i < n; i++ {
		out.data[i] = f(a.data[offA], b.data[offB])
		// Advance the odometer from the last axis.
		for ax := len(shape) - 1; ax >= 0; ax-- {
			ctr[ax]++
			offA += sa[ax]
			offB += sb[ax]
			if ctr[ax] < shape[ax] {
				break
			}
			offA -= sa[ax] * ctr[ax]
			offB -= sb[ax] * ctr[ax]
			ctr[ax] = 0
		}
	}

	return out, nil
}

// broadcastStrides returns strides of src aligned to dst (right-aligned);
// broadcast axes (extent 1 or missing) get stride 0.
func broadcastStrides(src, dst Shape) []int {
	st := make([]int, len(dst))
	own := src.strides()
	lead := len(dst) - len(src)
	for i := range src {
		if src[i] != 1 {
			st[lead+i] = own[i]
		}
	}

	return st
}

// unaryKernel returns the scalar function for op.
func unaryKernel(op UnaryOp) (func(float64) float64, bool) {
	switch op {
	case OpNeg:
		return func(x float64) float64 { return -x }, true
	case OpAbs:
		return math.Abs, true
	case OpSqrt:
		return math.Sqrt, true
	case OpCbrt:
		return math.Cbrt, true
	case OpSquare:
		return func(x float64) float64 { return x * x }, true
	case OpReciprocal:
		return func(x float64) float64 { return 1 / x }, true
	case OpFloor:
		return math.Floor, true
	case OpCeil:
		return math.Ceil, true
	case OpRound:
		// Half-to-even, matching numpy.round.
		return math.RoundToEven, true
	default:
		return nil, false
	}
}

// ewUnary computes out = f(a) element-wise.
func ewUnary(op UnaryOp, a *Dense) (*Dense, error) {
	f, ok := unaryKernel(op)
	if !ok {
		return nil, arrayErrorf(op.String(), ErrUnsupported)
	}

	return a.Apply(f), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| under broadcasting.
// Both operands are materialized; this is an explicit forcing point.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|; NaN never compares close.
func AllClose(a, b Tensor, rtol, atol float64) (bool, error) {
	da, err := Materialize(a)
	if err != nil {
		return false, arrayErrorf("AllClose", err)
	}
	db, err := Materialize(b)
	if err != nil {
		return false, arrayErrorf("AllClose", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	diff, err := ewBinary(OpSub, da, db)
	if err != nil {
		return false, arrayErrorf("AllClose", err)
	}
	// Broadcast b to the common shape so both buffers align.
	ref, err := ewBinary(OpAdd, newDenseShape(diff.shape), db)
	if err != nil {
		return false, arrayErrorf("AllClose", err)
	}
	for i, d := range diff.data {
		if !(math.Abs(d) <= atol+rtol*math.Abs(ref.data[i])) {
			return false, nil
		}
	}

	return true, nil
}
