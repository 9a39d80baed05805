// SPDX-License-Identifier: MIT

// Package quantity threads physical dimensions through numeric computation.
//
// A Quantity pairs an array.Tensor payload with a dimension.Dim. Every
// operation first decides the result dimension from the dimension rule table
// and only then forwards the numeric work to the payload's backend, so a
// deferred payload (array/lazy) stays deferred and a dimension error never
// leaves half-computed state behind.
//
// Rules in brief:
//   - Add, Sub, Maximum, Minimum, comparisons: equal dimensions or
//     *MismatchError. Comparisons return a bare 0/1 mask tensor.
//   - Mul, Div, Pow combine dimensions. Div (and the package-level Mul, Div,
//     Pow, Add, Sub) return a Value that drops to a bare number when the
//     result is dimensionless: q/q is a plain number, not a dimensionless
//     quantity.
//   - Var squares the dimension, Prod raises it to the element count,
//     Cumprod needs a dimensionless operand.
//   - Array, Stack, Concat need one shared dimension or fail with
//     *AggregationError, which is distinct from *MismatchError.
//   - Arange and Linspace need every bound in one dimension; Full keeps the
//     dimension of its fill value.
//
// Magnitudes are held in coherent SI scale. Construction from a Scaler
// (unit.Unit) multiplies by 10^scale and Quantity.In divides it back out.
// Concrete payloads are copied on the way in and on the way out
// (Magnitude, In), so a Quantity never shares a writable buffer with its
// caller.
//
// Errors:
//   - ErrDimensionMismatch (via *MismatchError)
//   - ErrAggregationMismatch (via *AggregationError)
//   - ErrInvalidConstruction
//   - array errors (shape, axis, range) wrapped with the operation name.
package quantity
