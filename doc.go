// Package lvunit attaches physical dimensions to numeric arrays and checks
// them as you compute.
//
// 🚀 What is lvunit?
//
//	A dimensional-analysis engine for Go:
//		• Dimensions: exact rational exponents over the seven SI base axes,
//		  interned to integer handles for O(1) equality
//		• Quantities: scalars and n-d arrays with a dimension, stored at SI scale
//		• Arithmetic: add/sub/compare require equal dimensions, mul/div combine
//		  them, q/q collapses to a bare number
//		• Reductions: sum, mean, std, var, prod, cumulative scans per axis
//		• Units: power-of-ten prefixes yocto..yotta and the SI derived units
//		• Formatting: "3. V", "3. mV", best unit chosen so values read in [1, 1000)
//		• Deferred arrays: record a computation now, evaluate it on demand
//
// ✨ Why choose lvunit?
//
//   - Mismatched dimensions fail at the operation, not three functions later
//   - Unit factors are powers of ten, so conversions add one rounding at most
//   - Formatting never forces a deferred computation
//
// Packages:
//
//	array/        — dense float64 tensors, shape rules and the eager backend
//	array/lazy/   — deferred backend: nodes evaluated once on Materialize
//	dimension/    — exponents, vectors, the interning registry and op rules
//	quantity/     — Quantity, Value and every dimension-checked operation
//	unit/         — Unit, prefixes, the registry and unit expressions
//	unit/catalog/ — custom units loaded from YAML
//	format/       — InUnit / InBestUnit rendering
//	cmd/lvunit/   — command-line converter
//
// Quick example:
//
//	ms, _ := unit.CreateScaled(unit.Second, "m")
//	q, _ := quantity.Array(ms.Of(500), unit.Second.Of(1))
//	fmt.Println(format.InBestUnit(q)) // [0.5 1.] s
//
//	go get github.com/katalvlaran/lvunit
package lvunit
