// SPDX-License-Identifier: MIT

package format

import (
	"fmt"

	"github.com/katalvlaran/lvunit/unit"
)

// DimStyle selects how a dimension without a display unit is written.
type DimStyle uint8

const (
	// DimPlain writes every base unit with its exponent: "m^2 kg s^-3 A^-1".
	DimPlain DimStyle = iota
	// DimFraction moves negative exponents under a slash: "m^2 kg/(s^3 A)".
	DimFraction
)

// Defaults.
const (
	DefaultPrecision = 15
	maxPrecision     = 17
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithRegistry selects the unit registry consulted for display candidates.
// It panics on nil.
func WithRegistry(r *unit.Registry) Option {
	if r == nil {
		panic("format: WithRegistry(nil)")
	}

	return func(f *Formatter) { f.reg = r }
}

// WithPrecision sets the number of significant digits kept before the
// shortest rendering is chosen. It panics outside [1, 17].
func WithPrecision(n int) Option {
	if n < 1 || n > maxPrecision {
		panic(fmt.Sprintf("format: WithPrecision(%d) out of [1, %d]", n, maxPrecision))
	}

	return func(f *Formatter) { f.precision = n }
}

// WithDimStyle selects the dimension rendering style. It panics on an
// unknown style.
func WithDimStyle(s DimStyle) Option {
	if s > DimFraction {
		panic(fmt.Sprintf("format: WithDimStyle(%d) unknown style", s))
	}

	return func(f *Formatter) { f.style = s }
}
