// SPDX-License-Identifier: MIT

package quantity

import (
	"errors"

	"github.com/katalvlaran/lvunit/array"
	"github.com/katalvlaran/lvunit/dimension"
)

// Dimension rule for each backend operation.
var (
	binaryRule = [...]dimension.Op{
		array.OpAdd:       dimension.OpAdd,
		array.OpSub:       dimension.OpSub,
		array.OpMul:       dimension.OpMul,
		array.OpDiv:       dimension.OpDiv,
		array.OpPow:       dimension.OpPow,
		array.OpMaximum:   dimension.OpMaximum,
		array.OpMinimum:   dimension.OpMinimum,
		array.OpLess:      dimension.OpLess,
		array.OpLessEq:    dimension.OpLessEq,
		array.OpGreater:   dimension.OpGreater,
		array.OpGreaterEq: dimension.OpGreaterEq,
		array.OpEqual:     dimension.OpEqual,
		array.OpNotEqual:  dimension.OpNotEqual,
	}
	unaryRule = [...]dimension.Op{
		array.OpNeg:        dimension.OpNeg,
		array.OpAbs:        dimension.OpAbs,
		array.OpSqrt:       dimension.OpSqrt,
		array.OpCbrt:       dimension.OpCbrt,
		array.OpSquare:     dimension.OpSquare,
		array.OpReciprocal: dimension.OpReciprocal,
		array.OpFloor:      dimension.OpFloor,
		array.OpCeil:       dimension.OpCeil,
		array.OpRound:      dimension.OpRound,
	}
)

// applyRule resolves the result dimension, turning a plain mismatch into a
// *MismatchError that names both operands.
func applyRule(op dimension.Op, a, b dimension.Dim, n dimension.Exponent) (dimension.Dim, error) {
	d, err := dimension.Apply(op, a, b, n)
	if errors.Is(err, dimension.ErrDimensionMismatch) {
		return 0, &MismatchError{Op: op.String(), A: a, B: b}
	}
	if err != nil {
		return 0, quantityErrorf(op.String(), err)
	}

	return d, nil
}

// binary runs an element-wise backend op after the dimension check, so a
// mismatch is reported before any numeric work is scheduled.
func (q Quantity) binary(op array.BinaryOp, o Quantity) (Quantity, error) {
	d, err := applyRule(binaryRule[op], q.dim, o.dim, dimension.Exponent{})
	if err != nil {
		return Quantity{}, err
	}
	t, err := array.BackendFor(q.mag, o.mag).Binary(op, q.mag, o.mag)
	if err != nil {
		return Quantity{}, quantityErrorf(op.String(), err)
	}

	return Quantity{mag: t, dim: d}, nil
}

func (q Quantity) unary(op array.UnaryOp) (Quantity, error) {
	d, err := applyRule(unaryRule[op], q.dim, dimension.Dimensionless, dimension.Exponent{})
	if err != nil {
		return Quantity{}, err
	}
	t, err := array.BackendFor(q.mag).Unary(op, q.mag)
	if err != nil {
		return Quantity{}, quantityErrorf(op.String(), err)
	}

	return Quantity{mag: t, dim: d}, nil
}

// Add returns q + o. Dimensions must be equal.
func (q Quantity) Add(o Quantity) (Quantity, error) { return q.binary(array.OpAdd, o) }

// Sub returns q - o. Dimensions must be equal.
func (q Quantity) Sub(o Quantity) (Quantity, error) { return q.binary(array.OpSub, o) }

// Mul returns q·o with dimension q.Dim()·o.Dim(). The result stays a
// Quantity even when dimensionless; use the package-level Mul for the
// collapsing variant.
func (q Quantity) Mul(o Quantity) (Quantity, error) { return q.binary(array.OpMul, o) }

// Div returns q/o. A dimensionless result is returned as a bare number.
func (q Quantity) Div(o Quantity) (Value, error) {
	r, err := q.binary(array.OpDiv, o)
	if err != nil {
		return Value{}, err
	}

	return collapse(r), nil
}

// Maximum returns the element-wise maximum; dimensions must be equal.
func (q Quantity) Maximum(o Quantity) (Quantity, error) { return q.binary(array.OpMaximum, o) }

// Minimum returns the element-wise minimum; dimensions must be equal.
func (q Quantity) Minimum(o Quantity) (Quantity, error) { return q.binary(array.OpMinimum, o) }

// Scale multiplies the magnitude by a bare factor.
func (q Quantity) Scale(f float64) (Quantity, error) {
	return q.binary(array.OpMul, Quantity{mag: array.Scalar(f)})
}

// Pow raises q to an exact rational power.
func (q Quantity) Pow(e dimension.Exponent) (Quantity, error) {
	d, err := applyRule(dimension.OpPow, q.dim, dimension.Dimensionless, e)
	if err != nil {
		return Quantity{}, err
	}
	t, err := array.BackendFor(q.mag).Binary(array.OpPow, q.mag, array.Scalar(e.Float64()))
	if err != nil {
		return Quantity{}, quantityErrorf("Pow", err)
	}

	return Quantity{mag: t, dim: d}, nil
}

// PowFloat raises q to p. Dimensionless quantities accept any p; otherwise p
// must be a rational with a small denominator (dimension.FromFloat).
func (q Quantity) PowFloat(p float64) (Quantity, error) {
	if q.dim != dimension.Dimensionless {
		e, err := dimension.FromFloat(p)
		if err != nil {
			return Quantity{}, quantityErrorf("Pow", err)
		}
		return q.Pow(e)
	}
	t, err := array.BackendFor(q.mag).Binary(array.OpPow, q.mag, array.Scalar(p))
	if err != nil {
		return Quantity{}, quantityErrorf("Pow", err)
	}

	return Quantity{mag: t}, nil
}

// compare returns the 0/1 mask of op. Magnitudes are in SI scale, so
// quantities created from different units of one dimension compare by value.
func (q Quantity) compare(op array.BinaryOp, o Quantity) (array.Tensor, error) {
	r, err := q.binary(op, o)
	if err != nil {
		return nil, err
	}

	return r.mag, nil
}

// Less returns the mask q < o.
func (q Quantity) Less(o Quantity) (array.Tensor, error) { return q.compare(array.OpLess, o) }

// LessEq returns the mask q <= o.
func (q Quantity) LessEq(o Quantity) (array.Tensor, error) { return q.compare(array.OpLessEq, o) }

// Greater returns the mask q > o.
func (q Quantity) Greater(o Quantity) (array.Tensor, error) { return q.compare(array.OpGreater, o) }

// GreaterEq returns the mask q >= o.
func (q Quantity) GreaterEq(o Quantity) (array.Tensor, error) {
	return q.compare(array.OpGreaterEq, o)
}

// Equal returns the mask q == o.
func (q Quantity) Equal(o Quantity) (array.Tensor, error) { return q.compare(array.OpEqual, o) }

// NotEqual returns the mask q != o.
func (q Quantity) NotEqual(o Quantity) (array.Tensor, error) {
	return q.compare(array.OpNotEqual, o)
}

// AllClose reports whether a and b have equal dimensions and agree
// element-wise within atol + rtol·|b|. Deferred payloads are evaluated.
func AllClose(a, b Quantity, rtol, atol float64) (bool, error) {
	if a.dim != b.dim {
		return false, &MismatchError{Op: "AllClose", A: a.dim, B: b.dim}
	}
	ok, err := array.AllClose(a.mag, b.mag, rtol, atol)
	if err != nil {
		return false, quantityErrorf("AllClose", err)
	}

	return ok, nil
}

// Neg returns -q.
func (q Quantity) Neg() (Quantity, error) { return q.unary(array.OpNeg) }

// Abs returns |q|.
func (q Quantity) Abs() (Quantity, error) { return q.unary(array.OpAbs) }

// Floor rounds toward -Inf in SI scale.
func (q Quantity) Floor() (Quantity, error) { return q.unary(array.OpFloor) }

// Ceil rounds toward +Inf in SI scale.
func (q Quantity) Ceil() (Quantity, error) { return q.unary(array.OpCeil) }

// Round rounds half to even in SI scale.
func (q Quantity) Round() (Quantity, error) { return q.unary(array.OpRound) }

// Sqrt halves every exponent of the dimension.
func (q Quantity) Sqrt() (Quantity, error) { return q.unary(array.OpSqrt) }

// Cbrt divides every exponent of the dimension by three.
func (q Quantity) Cbrt() (Quantity, error) { return q.unary(array.OpCbrt) }

// Square doubles every exponent of the dimension.
func (q Quantity) Square() (Quantity, error) { return q.unary(array.OpSquare) }

// Reciprocal returns 1/q.
func (q Quantity) Reciprocal() (Quantity, error) { return q.unary(array.OpReciprocal) }

// Add returns a + b for any operands accepted by From. Bare numbers are
// dimensionless, so adding one to a dimensioned quantity is a mismatch.
func Add(a, b any) (Value, error) { return apply(Quantity.Add, a, b) }

// Sub returns a - b (see Add).
func Sub(a, b any) (Value, error) { return apply(Quantity.Sub, a, b) }

// Mul returns a·b; a dimensionless product is returned as a bare number.
func Mul(a, b any) (Value, error) { return apply(Quantity.Mul, a, b) }

// Div returns a/b; a dimensionless quotient is returned as a bare number.
func Div(a, b any) (Value, error) {
	qa, qb, err := from2(a, b)
	if err != nil {
		return Value{}, err
	}

	return qa.Div(qb)
}

// Pow returns a^p (see Quantity.PowFloat).
func Pow(a any, p float64) (Value, error) {
	qa, err := From(a)
	if err != nil {
		return Value{}, err
	}
	r, err := qa.PowFloat(p)
	if err != nil {
		return Value{}, err
	}

	return collapse(r), nil
}

func apply(f func(Quantity, Quantity) (Quantity, error), a, b any) (Value, error) {
	qa, qb, err := from2(a, b)
	if err != nil {
		return Value{}, err
	}
	r, err := f(qa, qb)
	if err != nil {
		return Value{}, err
	}

	return collapse(r), nil
}

func from2(a, b any) (Quantity, Quantity, error) {
	qa, err := From(a)
	if err != nil {
		return Quantity{}, Quantity{}, err
	}
	qb, err := From(b)
	if err != nil {
		return Quantity{}, Quantity{}, err
	}

	return qa, qb, nil
}
