// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"

	"github.com/katalvlaran/lvunit/array"
	"github.com/katalvlaran/lvunit/dimension"
)

// Value is the result of an operation that may drop its dimension: either a
// bare number (IsNumeric) or a dimensioned Quantity.
type Value struct {
	q       Quantity
	numeric bool
}

// collapse turns a dimensionless quantity into a bare number.
func collapse(q Quantity) Value {
	return Value{q: q, numeric: q.dim == dimension.Dimensionless}
}

// NumericValue wraps a bare numeric payload. A concrete t is copied.
func NumericValue(t array.Tensor) Value {
	return Value{q: Quantity{mag: own(t), dim: dimension.Dimensionless}, numeric: true}
}

// IsNumeric reports whether v is a bare number.
func (v Value) IsNumeric() bool { return v.numeric }

// Numeric returns the payload when v is a bare number.
func (v Value) Numeric() (array.Tensor, bool) {
	if !v.numeric {
		return nil, false
	}

	return v.q.Magnitude(), true
}

// Quantity returns v as a quantity; bare numbers become dimensionless
// quantities.
func (v Value) Quantity() Quantity { return v.q }

// Magnitude returns the payload of either variant, copied like
// Quantity.Magnitude.
func (v Value) Magnitude() array.Tensor { return v.q.Magnitude() }

// Dim returns the dimension (Dimensionless for bare numbers).
func (v Value) Dim() dimension.Dim { return v.q.dim }

// Scalar returns the single element of v (see Quantity.Scalar).
func (v Value) Scalar() (float64, error) { return v.q.Scalar() }

func (v Value) String() string {
	if v.numeric {
		return fmt.Sprint(v.q.mag)
	}

	return v.q.String()
}
