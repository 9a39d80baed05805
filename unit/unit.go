// SPDX-License-Identifier: MIT

package unit

import (
	"math"
	"strconv"

	"github.com/katalvlaran/lvunit/dimension"
	"github.com/katalvlaran/lvunit/quantity"
)

// Unit is a dimension with a power-of-ten scale relative to the coherent SI
// unit of that dimension, plus an optional display name and symbol.
//
// Units are comparable values; two units are Equal when dimension and scale
// agree, whatever their names.
type Unit struct {
	dim    dimension.Dim
	scale  int
	name   string
	symbol string
}

var _ quantity.Scaler = Unit{}

// Create returns the named unit of d at scale 0.
func Create(d dimension.Dim, name, symbol string) Unit {
	return Unit{dim: d, name: name, symbol: symbol}
}

// CreateAt returns the named unit of d at the given power-of-ten scale.
// Gram, for instance, is mass at scale -3.
func CreateAt(d dimension.Dim, scale int, name, symbol string) Unit {
	return Unit{dim: d, scale: scale, name: name, symbol: symbol}
}

// CreateScaled applies a prefix ("k", "kilo", "µ", "u", ...) to base:
// the scale grows by the prefix exponent and the prefix is prepended to
// name and symbol.
//
// Errors:
//   - ErrInvalidPrefix when the prefix is not in the SI table.
func CreateScaled(base Unit, prefix string) (Unit, error) {
	p, ok := LookupPrefix(prefix)
	if !ok {
		return Unit{}, unitErrorf("CreateScaled", errorWithValue(ErrInvalidPrefix, prefix))
	}

	return Unit{
		dim:    base.dim,
		scale:  base.scale + p.Exp,
		name:   p.Name + base.name,
		symbol: p.Symbol + base.symbol,
	}, nil
}

// Dim implements quantity.Scaler.
func (u Unit) Dim() dimension.Dim { return u.dim }

// Scale implements quantity.Scaler.
func (u Unit) Scale() int { return u.scale }

// Factor returns 10^scale, the size of the unit in coherent SI units.
func (u Unit) Factor() float64 { return math.Pow10(u.scale) }

// Name returns the long name ("kilometre"), empty for derived units.
func (u Unit) Name() string { return u.name }

// Symbol returns the display symbol ("km"), empty for derived units.
func (u Unit) Symbol() string { return u.symbol }

// IsNamed reports whether u carries a symbol.
func (u Unit) IsNamed() bool { return u.symbol != "" }

// Equal reports whether u and v have the same dimension and factor.
func (u Unit) Equal(v Unit) bool { return u.dim == v.dim && u.scale == v.scale }

// Mul returns the unnamed unit u·v.
func (u Unit) Mul(v Unit) Unit {
	return Unit{dim: u.dim.Mul(v.dim), scale: u.scale + v.scale}
}

// Div returns the unnamed unit u/v.
func (u Unit) Div(v Unit) Unit {
	return Unit{dim: u.dim.Div(v.dim), scale: u.scale - v.scale}
}

// Pow returns the unnamed unit u^n.
func (u Unit) Pow(n int) Unit {
	return Unit{dim: u.dim.PowInt(int64(n)), scale: u.scale * n}
}

// Inv returns the unnamed unit 1/u.
func (u Unit) Inv() Unit { return u.Pow(-1) }

// Named returns u with a display name and symbol, e.g. to name km/h.
func (u Unit) Named(name, symbol string) Unit {
	u.name, u.symbol = name, symbol

	return u
}

// New builds the quantity x·u (see quantity.New for accepted payloads).
func (u Unit) New(x any) (quantity.Quantity, error) { return quantity.New(x, u) }

// Of returns the scalar quantity x·u.
func (u Unit) Of(x float64) quantity.Quantity {
	q, err := quantity.New(x, u)
	if err != nil {
		// float64 payloads always convert
		panic(err)
	}

	return q
}

// Quantity returns the unit as a reference quantity of one u.
func (u Unit) Quantity() quantity.Quantity { return u.Of(1) }

// String renders the symbol of a named unit. Unnamed units render as the
// power of ten and the dimension: "10^3 m s^-1", "m^2" or "1".
func (u Unit) String() string {
	if u.symbol != "" {
		return u.symbol
	}
	dims := u.dim.String()
	switch {
	case u.scale == 0 && dims == "":
		return "1"
	case u.scale == 0:
		return dims
	case dims == "":
		return "10^" + strconv.Itoa(u.scale)
	default:
		return "10^" + strconv.Itoa(u.scale) + " " + dims
	}
}
