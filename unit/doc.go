// SPDX-License-Identifier: MIT

// Package unit defines physical units as a dimension plus a power-of-ten
// scale, the SI prefix table, and a registry of named units.
//
// What:
//
//   - Unit: {dimension, scale, name, symbol}. The factor is 10^scale, so a
//     unit never introduces rounding beyond one multiplication by a power
//     of ten. Units compare Equal by dimension and scale; names are display
//     only.
//   - CreateScaled applies a prefix from yocto (10^-24) to yotta (10^24);
//     "µ", "μ" and "u" all mean micro. Unknown prefixes fail with
//     ErrInvalidPrefix.
//   - Registry: name/symbol lookup plus, per dimension, the ordered display
//     candidates consulted by format.InBestUnit. The Default registry holds
//     the SI base and derived units with every prefix; prefixes that are
//     multiples of three are display candidates, c/d/da/h are lookup-only.
//   - Parse reads unit expressions such as "kg*m^2/s^3".
//
// Unit implements quantity.Scaler, so values are built directly:
//
//	q := unit.Volt.Of(0.003)                   // 0.003 V
//	km, _ := unit.CreateScaled(unit.Metre, "k")
//	r, _ := quantity.Div(km.Of(1), unit.Metre.Of(1)) // bare 1000
//
// Errors:
//   - ErrInvalidPrefix, ErrDuplicateUnit, ErrUnknownUnit,
//     ErrInvalidExpression, ErrUnnamed.
package unit
