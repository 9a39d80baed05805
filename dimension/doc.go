// SPDX-License-Identifier: MIT

// Package dimension models physical dimensions as exponent vectors over the
// seven SI base dimensions and interns them, so that a dimension can be
// compared and hashed as a small integer handle.
//
// # Model
//
//   - Exponent: exact rational p/q (fractional powers such as m^(1/2) arise
//     from square roots).
//   - Vector:   [7]Exponent in the order length, mass, time, current,
//     temperature, substance, luminosity.
//   - Dim:      handle returned by Registry.GetOrCreate. Dim(0) is always
//     the dimensionless vector.
//
// A single process-wide registry (Default) backs the Dim methods, which is
// what every other package of lvunit uses:
//
//	v := dimension.Of(2, 1, -3, -1, 0, 0, 0) // m^2 kg s^-3 A^-1
//	d := dimension.Length.PowInt(2).Mul(dimension.Mass)
//	fmt.Println(d) // m^2 kg
//
// # Rules
//
// rules.go holds the table that decides the result dimension of every
// quantity operation (RuleFor, Apply): additive operations require equal
// dimensions, comparisons produce a dimensionless mask, Var squares,
// Prod raises to the element count and Cumprod only accepts dimensionless
// input.
//
// # Errors
//
//   - ErrDimensionMismatch, ErrNotDimensionless from rules.
//   - ErrIrrationalExponent from FromFloat / Dim.PowFloat.
//   - ErrExponentOverflow from Apply / Dim.PowFloat when an exponent leaves
//     the int64 range; Exponent.Valid and Dim.Valid expose the same check.
//   - ErrUnknownOp from Apply.
package dimension
