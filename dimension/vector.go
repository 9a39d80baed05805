// SPDX-License-Identifier: MIT

package dimension

import (
	"strings"
)

// Axis indexes one of the seven SI base dimensions.
type Axis int

// Base dimensions in canonical order.
const (
	AxisLength Axis = iota
	AxisMass
	AxisTime
	AxisCurrent
	AxisTemperature
	AxisSubstance
	AxisLuminosity

	NumAxes = 7
)

var axisNames = [NumAxes]string{"length", "mass", "time", "current", "temperature", "substance", "luminosity"}

var axisSymbols = [NumAxes]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// String returns the axis name, e.g. "length".
func (a Axis) String() string {
	if a < 0 || int(a) >= NumAxes {
		return "Axis(?)"
	}

	return axisNames[a]
}

// Symbol returns the SI base-unit symbol of the axis, e.g. "kg".
func (a Axis) Symbol() string {
	if a < 0 || int(a) >= NumAxes {
		return "?"
	}

	return axisSymbols[a]
}

// AxisByName resolves an axis from its name ("mass") or base-unit symbol ("kg").
func AxisByName(s string) (Axis, bool) {
	for i := 0; i < NumAxes; i++ {
		if s == axisNames[i] || s == axisSymbols[i] {
			return Axis(i), true
		}
	}

	return 0, false
}

// Vector holds the exponent of each base dimension. The zero Vector is the
// unique dimensionless value. Vectors are comparable values.
type Vector [NumAxes]Exponent

// NewVector builds a Vector from integer exponents in canonical order:
// length, mass, time, current, temperature, substance, luminosity.
func NewVector(length, mass, time, current, temperature, substance, luminosity int64) Vector {
	return Vector{
		Int(length), Int(mass), Int(time), Int(current),
		Int(temperature), Int(substance), Int(luminosity),
	}
}

// Base returns the Vector with exponent 1 on axis a.
func Base(a Axis) Vector {
	var v Vector
	v[a] = Int(1)

	return v
}

// Exp returns the exponent on axis a.
func (v Vector) Exp(a Axis) Exponent { return v[a] }

// Mul adds exponents axis-wise.
func (v Vector) Mul(o Vector) Vector {
	for i := range v {
		v[i] = v[i].Add(o[i])
	}

	return v
}

// Div subtracts exponents axis-wise.
func (v Vector) Div(o Vector) Vector {
	for i := range v {
		v[i] = v[i].Sub(o[i])
	}

	return v
}

// Pow scales every exponent by e.
func (v Vector) Pow(e Exponent) Vector {
	for i := range v {
		v[i] = v[i].Mul(e)
	}

	return v
}

// Inv negates every exponent.
func (v Vector) Inv() Vector {
	for i := range v {
		v[i] = v[i].Neg()
	}

	return v
}

// Valid reports whether every exponent of v is representable.
func (v Vector) Valid() bool {
	for _, e := range v {
		if !e.Valid() {
			return false
		}
	}

	return true
}

// Equal reports exponent-wise equality.
func (v Vector) Equal(o Vector) bool { return v == o }

// IsDimensionless reports whether every exponent is zero.
func (v Vector) IsDimensionless() bool { return v == Vector{} }

// String renders the vector with base-unit symbols in canonical order:
// "m^2 kg s^-3 A^-1". Exponent 1 is omitted, fractions are parenthesised
// ("m^(1/3)"), and the dimensionless vector renders as "".
func (v Vector) String() string {
	var b strings.Builder
	for i, e := range v {
		if e.IsZero() {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(axisSymbols[i])
		writePower(&b, e)
	}

	return b.String()
}

// writePower appends "^n" / "^(p/q)" for e != 1.
func writePower(b *strings.Builder, e Exponent) {
	switch {
	case e == Int(1):
	case e.IsInt():
		b.WriteByte('^')
		b.WriteString(e.String())
	default:
		b.WriteString("^(")
		b.WriteString(e.String())
		b.WriteByte(')')
	}
}

// Terms splits v into its non-zero axes, positive exponents first, each group
// in canonical order. Renderers use it to build fraction-style output.
func (v Vector) Terms() (num, den []Term) {
	for i, e := range v {
		switch {
		case e.Num() > 0:
			num = append(num, Term{Axis: Axis(i), Exp: e})
		case e.Num() < 0:
			den = append(den, Term{Axis: Axis(i), Exp: e.Neg()})
		}
	}

	return num, den
}

// Term is one axis raised to a (positive, in Terms output) exponent.
type Term struct {
	Axis Axis
	Exp  Exponent
}

// String renders "kg" or "s^3".
func (t Term) String() string {
	var b strings.Builder
	b.WriteString(t.Axis.Symbol())
	writePower(&b, t.Exp)

	return b.String()
}
