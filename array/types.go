// SPDX-License-Identifier: MIT

// Package array: domain types shared by the eager and deferred backends.
// This file contains ONLY the Tensor/Backend contracts, the shape type and the
// operation enums. Kernels live in ops_elementwise.go, reduce.go and index.go.
package array

import (
	"math"
	"strconv"
	"strings"
)

// AllAxes selects a reduction or scan over the flattened tensor.
// Negative axes otherwise count from the end, so -1 is the last axis.
const AllAxes = math.MinInt32

// DType names the element type of a tensor. The eager backend stores float64.
type DType string

// Float64 is the only element type produced by this package.
const Float64 DType = "float64"

// Shape lists the extent of every axis. A nil/empty Shape is a 0-d scalar.
type Shape []int

// NDim returns the number of axes.
func (s Shape) NDim() int { return len(s) }

// Size returns the number of elements (1 for a scalar, 0 if any extent is 0).
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Equal reports whether two shapes have identical extents.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// String renders the shape as "(2, 3)"; a scalar renders as "()".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, d := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(d))
	}
	if len(s) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')

	return b.String()
}

// strides returns row-major strides for s (last axis contiguous).
func (s Shape) strides() []int {
	st := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= s[i]
	}

	return st
}

// Tensor is the opaque numeric payload carried by quantities.
// Implementations: *Dense (eager, concrete) and lazy.Node (deferred).
// Shape and DType must be answerable without evaluating the payload.
type Tensor interface {
	// Shape returns the tensor extents; callers must not mutate the result.
	Shape() Shape
	// DType returns the element type.
	DType() DType
	// Backend returns the backend that knows how to operate on this tensor.
	Backend() Backend
}

// Materializer is implemented by deferred tensors that can be forced into a
// concrete *Dense. Evaluation may be expensive; call only where a concrete
// value is genuinely required.
type Materializer interface {
	Materialize() (*Dense, error)
}

// Backend executes tensor operations. Every method is pure: inputs are never
// mutated and a fresh Tensor is returned.
type Backend interface {
	// Name identifies the backend in diagnostics.
	Name() string
	// Deferred reports whether results are recorded rather than computed.
	Deferred() bool

	Binary(op BinaryOp, a, b Tensor) (Tensor, error)
	Unary(op UnaryOp, a Tensor) (Tensor, error)
	Reduce(op ReduceOp, a Tensor, axis int) (Tensor, error)
	Scan(op ScanOp, a Tensor, axis int) (Tensor, error)
	Index(a Tensor, idx ...int) (Tensor, error)
	Slice(a Tensor, axis, start, stop int) (Tensor, error)
	SetAt(a, v Tensor, idx ...int) (Tensor, error)
	Reshape(a Tensor, shape Shape) (Tensor, error)
	Concat(ts []Tensor, axis int) (Tensor, error)
	Stack(ts []Tensor) (Tensor, error)
}

// BinaryOp enumerates element-wise binary kernels (with broadcasting).
type BinaryOp uint8

// Binary operations.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMaximum
	OpMinimum
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	OpEqual
	OpNotEqual
)

var binaryNames = [...]string{
	OpAdd:       "Add",
	OpSub:       "Sub",
	OpMul:       "Mul",
	OpDiv:       "Div",
	OpPow:       "Pow",
	OpMaximum:   "Maximum",
	OpMinimum:   "Minimum",
	OpLess:      "Less",
	OpLessEq:    "LessEq",
	OpGreater:   "Greater",
	OpGreaterEq: "GreaterEq",
	OpEqual:     "Equal",
	OpNotEqual:  "NotEqual",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryNames) {
		return binaryNames[op]
	}

	return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
}

// IsComparison reports whether op yields a 0/1 mask.
func (op BinaryOp) IsComparison() bool { return op >= OpLess && op <= OpNotEqual }

// UnaryOp enumerates element-wise unary kernels.
type UnaryOp uint8

// Unary operations.
const (
	OpNeg UnaryOp = iota
	OpAbs
	OpSqrt
	OpCbrt
	OpSquare
	OpReciprocal
	OpFloor
	OpCeil
	OpRound
)

var unaryNames = [...]string{
	OpNeg:        "Neg",
	OpAbs:        "Abs",
	OpSqrt:       "Sqrt",
	OpCbrt:       "Cbrt",
	OpSquare:     "Square",
	OpReciprocal: "Reciprocal",
	OpFloor:      "Floor",
	OpCeil:       "Ceil",
	OpRound:      "Round",
}

func (op UnaryOp) String() string {
	if int(op) < len(unaryNames) {
		return unaryNames[op]
	}

	return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
}

// ReduceOp enumerates axis reductions.
type ReduceOp uint8

// Reductions. Var and Std are population statistics (divisor N).
const (
	ReduceSum ReduceOp = iota
	ReduceMean
	ReduceMin
	ReduceMax
	ReduceMedian
	ReducePtp
	ReduceVar
	ReduceStd
	ReduceProd
)

var reduceNames = [...]string{
	ReduceSum:    "Sum",
	ReduceMean:   "Mean",
	ReduceMin:    "Min",
	ReduceMax:    "Max",
	ReduceMedian: "Median",
	ReducePtp:    "Ptp",
	ReduceVar:    "Var",
	ReduceStd:    "Std",
	ReduceProd:   "Prod",
}

func (op ReduceOp) String() string {
	if int(op) < len(reduceNames) {
		return reduceNames[op]
	}

	return "ReduceOp(" + strconv.Itoa(int(op)) + ")"
}

// ScanOp enumerates cumulative kernels.
type ScanOp uint8

// Scans. With AllAxes the result is the flattened 1-d running total.
const (
	ScanCumsum ScanOp = iota
	ScanCumprod
)

func (op ScanOp) String() string {
	switch op {
	case ScanCumsum:
		return "Cumsum"
	case ScanCumprod:
		return "Cumprod"
	default:
		return "ScanOp(" + strconv.Itoa(int(op)) + ")"
	}
}
