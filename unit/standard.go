// SPDX-License-Identifier: MIT

package unit

import (
	"github.com/katalvlaran/lvunit/dimension"
)

// SI base units. Kilogram is gram with the kilo prefix, so both spellings
// resolve to one unit.
var (
	Metre    = Create(dimension.Length, "metre", "m")
	Gram     = CreateAt(dimension.Mass, -3, "gram", "g")
	Kilogram = mustScaled(Gram, "k")
	Second   = Create(dimension.Time, "second", "s")
	Ampere   = Create(dimension.Current, "ampere", "A")
	Kelvin   = Create(dimension.Temperature, "kelvin", "K")
	Mole     = Create(dimension.Substance, "mole", "mol")
	Candela  = Create(dimension.Luminosity, "candela", "cd")
)

// Coherent derived units.
var (
	Radian    = Create(dimension.Dimensionless, "radian", "rad")
	Steradian = Create(dimension.Dimensionless, "steradian", "sr")
	Hertz     = Create(dimension.Of(0, 0, -1, 0, 0, 0, 0), "hertz", "Hz")
	Newton    = Create(dimension.Of(1, 1, -2, 0, 0, 0, 0), "newton", "N")
	Pascal    = Create(dimension.Of(-1, 1, -2, 0, 0, 0, 0), "pascal", "Pa")
	Joule     = Create(dimension.Of(2, 1, -2, 0, 0, 0, 0), "joule", "J")
	Watt      = Create(dimension.Of(2, 1, -3, 0, 0, 0, 0), "watt", "W")
	Coulomb   = Create(dimension.Of(0, 0, 1, 1, 0, 0, 0), "coulomb", "C")
	Volt      = Create(dimension.Of(2, 1, -3, -1, 0, 0, 0), "volt", "V")
	Farad     = Create(dimension.Of(-2, -1, 4, 2, 0, 0, 0), "farad", "F")
	Ohm       = Create(dimension.Of(2, 1, -3, -2, 0, 0, 0), "ohm", "Ω")
	Siemens   = Create(dimension.Of(-2, -1, 3, 2, 0, 0, 0), "siemens", "S")
	Weber     = Create(dimension.Of(2, 1, -2, -1, 0, 0, 0), "weber", "Wb")
	Tesla     = Create(dimension.Of(0, 1, -2, -1, 0, 0, 0), "tesla", "T")
	Henry     = Create(dimension.Of(2, 1, -2, -2, 0, 0, 0), "henry", "H")
	Lumen     = Create(dimension.Luminosity, "lumen", "lm")
	Lux       = Create(dimension.Of(-2, 0, 0, 0, 0, 0, 1), "lux", "lx")
	Becquerel = Create(dimension.Of(0, 0, -1, 0, 0, 0, 0), "becquerel", "Bq")
	Gray      = Create(dimension.Of(2, 0, -2, 0, 0, 0, 0), "gray", "Gy")
	Sievert   = Create(dimension.Of(2, 0, -2, 0, 0, 0, 0), "sievert", "Sv")
	Katal     = Create(dimension.Of(0, 0, -1, 0, 0, 1, 0), "katal", "kat")
)

// Non-SI units accepted for lookup.
var (
	Litre = CreateAt(dimension.Of(3, 0, 0, 0, 0, 0, 0), -3, "litre", "L")
	Molar = CreateAt(dimension.Of(-3, 0, 0, 0, 0, 1, 0), 3, "molar", "M")
)

// displayUnits are best-unit candidates, each with its engineering prefixes.
// Where two units share a dimension (Hz/Bq, Gy/Sv, cd/lm) only the first is
// listed here and the other is lookup-only.
var displayUnits = []Unit{
	Metre, Gram, Second, Ampere, Kelvin, Mole, Candela,
	Hertz, Newton, Pascal, Joule, Watt, Coulomb, Volt, Farad, Ohm,
	Siemens, Weber, Tesla, Henry, Lux, Gray, Katal,
}

var lookupUnits = []Unit{Radian, Steradian, Lumen, Becquerel, Sievert, Litre, Molar}

// RegisterStandard adds the SI units, every prefixed variant and the lookup
// units to r.
func RegisterStandard(r *Registry) error {
	syms := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		syms = append(syms, p.Symbol)
	}
	for _, u := range displayUnits {
		if err := r.RegisterPrefixed(u, true, syms...); err != nil {
			return err
		}
	}
	for _, u := range lookupUnits {
		if err := r.RegisterPrefixed(u, false, syms...); err != nil {
			return err
		}
	}

	return nil
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	if err := RegisterStandard(r); err != nil {
		panic(err)
	}

	return r
}()

// Default returns the process-wide registry holding the standard units.
// Custom units (unit/catalog) are added to it as well.
func Default() *Registry { return defaultRegistry }

// Lookup resolves s in the default registry.
func Lookup(s string) (Unit, error) { return defaultRegistry.Lookup(s) }

// Register adds a display unit to the default registry.
func Register(u Unit) error { return defaultRegistry.Register(u) }

// ForDim returns the default registry's display candidates for d.
func ForDim(d dimension.Dim) []Unit { return defaultRegistry.ForDim(d) }

func mustScaled(base Unit, prefix string) Unit {
	u, err := CreateScaled(base, prefix)
	if err != nil {
		panic(err)
	}

	return u
}
