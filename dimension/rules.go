// SPDX-License-Identifier: MIT

package dimension

import "strconv"

// Op names an operation whose result dimension is governed by a Rule.
type Op uint8

// Operations with dimension rules.
const (
	OpAdd Op = iota
	OpSub
	OpMaximum
	OpMinimum
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	OpEqual
	OpNotEqual
	OpMul
	OpDiv
	OpPow
	OpNeg
	OpAbs
	OpFloor
	OpCeil
	OpRound
	OpIndex
	OpSlice
	OpReshape
	OpSqrt
	OpCbrt
	OpSquare
	OpReciprocal
	OpSum
	OpMean
	OpMin
	OpMax
	OpMedian
	OpPtp
	OpStd
	OpVar
	OpProd
	OpCumsum
	OpCumprod
	OpConcat
	OpStack

	numOps
)

var opNames = [numOps]string{
	OpAdd: "Add", OpSub: "Sub", OpMaximum: "Maximum", OpMinimum: "Minimum",
	OpLess: "Less", OpLessEq: "LessEq", OpGreater: "Greater", OpGreaterEq: "GreaterEq",
	OpEqual: "Equal", OpNotEqual: "NotEqual",
	OpMul: "Mul", OpDiv: "Div", OpPow: "Pow",
	OpNeg: "Neg", OpAbs: "Abs", OpFloor: "Floor", OpCeil: "Ceil", OpRound: "Round",
	OpIndex: "Index", OpSlice: "Slice", OpReshape: "Reshape",
	OpSqrt: "Sqrt", OpCbrt: "Cbrt", OpSquare: "Square", OpReciprocal: "Reciprocal",
	OpSum: "Sum", OpMean: "Mean", OpMin: "Min", OpMax: "Max", OpMedian: "Median",
	OpPtp: "Ptp", OpStd: "Std", OpVar: "Var", OpProd: "Prod",
	OpCumsum: "Cumsum", OpCumprod: "Cumprod",
	OpConcat: "Concat", OpStack: "Stack",
}

func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}

	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Rule computes the result dimension of an operation.
// a is the (first) operand, b the second operand for binary and aggregating
// operations (ignored otherwise), n the power for OpPow or the number of
// reduced elements for OpProd.
type Rule func(a, b Dim, n Exponent) (Dim, error)

// rules is the exhaustive per-operation dimension table. Every Op declared
// above has an entry.
var rules = map[Op]Rule{
	OpAdd:     same,
	OpSub:     same,
	OpMaximum: same,
	OpMinimum: same,

	OpLess:      mask,
	OpLessEq:    mask,
	OpGreater:   mask,
	OpGreaterEq: mask,
	OpEqual:     mask,
	OpNotEqual:  mask,

	OpMul: func(a, b Dim, _ Exponent) (Dim, error) { return a.Mul(b), nil },
	OpDiv: func(a, b Dim, _ Exponent) (Dim, error) { return a.Div(b), nil },
	OpPow: power,

	OpNeg:     keep,
	OpAbs:     keep,
	OpFloor:   keep,
	OpCeil:    keep,
	OpRound:   keep,
	OpIndex:   keep,
	OpSlice:   keep,
	OpReshape: keep,
	OpCumsum:  keep,

	OpSqrt:       fixedPower(Rat(1, 2)),
	OpCbrt:       fixedPower(Rat(1, 3)),
	OpSquare:     fixedPower(Int(2)),
	OpReciprocal: fixedPower(Int(-1)),

	OpSum:    keep,
	OpMean:   keep,
	OpMin:    keep,
	OpMax:    keep,
	OpMedian: keep,
	OpPtp:    keep,
	OpStd:    keep,
	OpVar:    fixedPower(Int(2)),
	OpProd:   power,

	OpCumprod: func(a, _ Dim, _ Exponent) (Dim, error) {
		if a != Dimensionless {
			return 0, ErrNotDimensionless
		}
		return Dimensionless, nil
	},

	OpConcat: same,
	OpStack:  same,
}

// RuleFor returns the rule registered for op. The table itself is fixed at
// init and cannot be changed by callers.
func RuleFor(op Op) (Rule, bool) {
	rule, ok := rules[op]

	return rule, ok
}

// Apply looks up and runs the rule for op, tagging errors with the op name.
// A result whose exponents overflowed int64 is reported as
// ErrExponentOverflow.
func Apply(op Op, a, b Dim, n Exponent) (Dim, error) {
	rule, ok := rules[op]
	if !ok {
		return 0, dimErrorf(op.String(), ErrUnknownOp)
	}
	d, err := rule(a, b, n)
	if err != nil {
		return 0, dimErrorf(op.String(), err)
	}
	if !d.Valid() {
		return 0, dimErrorf(op.String(), ErrExponentOverflow)
	}

	return d, nil
}

func same(a, b Dim, _ Exponent) (Dim, error) {
	if a != b {
		return 0, ErrDimensionMismatch
	}

	return a, nil
}

func mask(a, b Dim, _ Exponent) (Dim, error) {
	if a != b {
		return 0, ErrDimensionMismatch
	}

	return Dimensionless, nil
}

func keep(a, _ Dim, _ Exponent) (Dim, error) { return a, nil }

func power(a, _ Dim, n Exponent) (Dim, error) { return a.Pow(n), nil }

func fixedPower(e Exponent) Rule {
	return func(a, _ Dim, _ Exponent) (Dim, error) { return a.Pow(e), nil }
}
