// SPDX-License-Identifier: MIT
// Package array — eager backend facade.
//
// Purpose:
//   - Implement Backend on concrete *Dense tensors by delegating to the
//     canonical kernels (ops_elementwise.go, reduce.go, index.go).
//   - Pick the backend for a set of operands (BackendFor) so that deferred
//     payloads stay deferred.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of the kernels.
//   - Non-Dense tensors are accepted only when they implement Materializer.

package array

// Eager computes every operation immediately on *Dense tensors.
type Eager struct{}

var _ Backend = Eager{}

// Name implements Backend.
func (Eager) Name() string { return "eager" }

// Deferred implements Backend; eager results are always concrete.
func (Eager) Deferred() bool { return false }

// Binary implements Backend.
func (Eager) Binary(op BinaryOp, a, b Tensor) (Tensor, error) {
	da, db, err := dense2(op.String(), a, b)
	if err != nil {
		return nil, err
	}

	return ewBinary(op, da, db)
}

// Unary implements Backend.
func (Eager) Unary(op UnaryOp, a Tensor) (Tensor, error) {
	da, err := denseOf(op.String(), a)
	if err != nil {
		return nil, err
	}

	return ewUnary(op, da)
}

// Reduce implements Backend.
func (Eager) Reduce(op ReduceOp, a Tensor, axis int) (Tensor, error) {
	da, err := denseOf(op.String(), a)
	if err != nil {
		return nil, err
	}

	return reduce(op, da, axis)
}

// Scan implements Backend.
func (Eager) Scan(op ScanOp, a Tensor, axis int) (Tensor, error) {
	da, err := denseOf(op.String(), a)
	if err != nil {
		return nil, err
	}

	return scan(op, da, axis)
}

// Index implements Backend.
func (Eager) Index(a Tensor, idx ...int) (Tensor, error) {
	da, err := denseOf(opIndex, a)
	if err != nil {
		return nil, err
	}

	return index(da, idx)
}

// Slice implements Backend.
func (Eager) Slice(a Tensor, axis, start, stop int) (Tensor, error) {
	da, err := denseOf(opSlice, a)
	if err != nil {
		return nil, err
	}

	return slice(da, axis, start, stop)
}

// SetAt implements Backend. The result is a modified copy of a.
func (Eager) SetAt(a, v Tensor, idx ...int) (Tensor, error) {
	da, dv, err := dense2(opSetAt, a, v)
	if err != nil {
		return nil, err
	}

	return setAt(da, dv, idx)
}

// Reshape implements Backend.
func (Eager) Reshape(a Tensor, shape Shape) (Tensor, error) {
	da, err := denseOf(opReshape, a)
	if err != nil {
		return nil, err
	}

	return reshape(da, shape)
}

// Concat implements Backend.
func (Eager) Concat(ts []Tensor, axis int) (Tensor, error) {
	ds, err := denseAll(opConcat, ts)
	if err != nil {
		return nil, err
	}

	return concat(ds, axis)
}

// Stack implements Backend.
func (Eager) Stack(ts []Tensor) (Tensor, error) {
	ds, err := denseAll(opStack, ts)
	if err != nil {
		return nil, err
	}

	return stack(ds)
}

// BackendFor returns the backend that must execute an operation over ts:
// the first deferred backend found, otherwise Eager. Mixing a deferred
// operand with concrete ones keeps the result deferred.
func BackendFor(ts ...Tensor) Backend {
	for _, t := range ts {
		if t == nil {
			continue
		}
		if b := t.Backend(); b != nil && b.Deferred() {
			return b
		}
	}

	return Eager{}
}

// Concrete returns t as *Dense without forcing evaluation.
// ok is false for deferred or foreign tensors.
func Concrete(t Tensor) (d *Dense, ok bool) {
	d, ok = t.(*Dense)

	return d, ok && d != nil
}

// Materialize returns a concrete *Dense for t, evaluating deferred tensors.
//
// Errors:
//   - ErrNilTensor for nil; ErrUnsupported for tensors that cannot materialize;
//     any evaluation error of a deferred tensor.
func Materialize(t Tensor) (*Dense, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, err
	}
	if d, ok := Concrete(t); ok {
		return d, nil
	}
	if m, ok := t.(Materializer); ok {
		return m.Materialize()
	}

	return nil, ErrUnsupported
}

// denseOf materializes one operand under an op tag.
func denseOf(tag string, t Tensor) (*Dense, error) {
	d, err := Materialize(t)
	if err != nil {
		return nil, arrayErrorf(tag, err)
	}

	return d, nil
}

// dense2 materializes two operands under an op tag.
func dense2(tag string, a, b Tensor) (*Dense, *Dense, error) {
	da, err := denseOf(tag, a)
	if err != nil {
		return nil, nil, err
	}
	db, err := denseOf(tag, b)
	if err != nil {
		return nil, nil, err
	}

	return da, db, nil
}

// denseAll materializes a list of operands under an op tag.
func denseAll(tag string, ts []Tensor) ([]*Dense, error) {
	if len(ts) == 0 {
		return nil, arrayErrorf(tag, ErrEmpty)
	}
	out := make([]*Dense, len(ts))
	for i, t := range ts {
		d, err := denseOf(tag, t)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}

	return out, nil
}
