// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvunit/array"
	"github.com/katalvlaran/lvunit/dimension"
	"github.com/katalvlaran/lvunit/quantity"
	"github.com/katalvlaran/lvunit/unit"
)

const (
	// tieEpsilon is the |log10| distance under which two candidates tie.
	tieEpsilon = 1e-12

	// bandDecades is the width of the preferred display band [1, 1000).
	bandDecades = 3
)

// Formatter renders quantities against a unit registry.
// A Formatter is immutable after New and safe for concurrent use.
type Formatter struct {
	reg       *unit.Registry
	precision int
	style     DimStyle
}

// New returns a Formatter over the default unit registry with 15
// significant digits and plain dimension rendering, adjusted by opts.
func New(opts ...Option) *Formatter {
	f := &Formatter{precision: DefaultPrecision, style: DimPlain}
	for _, opt := range opts {
		opt(f)
	}
	if f.reg == nil {
		f.reg = unit.Default()
	}

	return f
}

var std = New()

// InUnit renders q in the default formatter. See Formatter.InUnit.
func InUnit(q quantity.Quantity, u unit.Unit) (string, error) { return std.InUnit(q, u) }

// InBestUnit renders q in the default formatter. See Formatter.InBestUnit.
func InBestUnit(q quantity.Quantity) string { return std.InBestUnit(q) }

// BestUnit picks a display unit in the default formatter. See
// Formatter.BestUnit.
func BestUnit(q quantity.Quantity) (unit.Unit, bool) { return std.BestUnit(q) }

// Value renders v in the default formatter. See Formatter.Value.
func Value(v quantity.Value) string { return std.Value(v) }

// InUnit renders q expressed in u: "<value> <symbol>". Unnamed units use
// their symbolic form ("3. m^2"). A deferred payload is described, not
// evaluated.
//
// Errors:
//   - quantity.ErrDimensionMismatch (as *quantity.MismatchError) when u
//     has a different dimension.
func (f *Formatter) InUnit(q quantity.Quantity, u unit.Unit) (string, error) {
	if q.Magnitude() == nil {
		return "", fmt.Errorf("format.InUnit: %w", quantity.ErrInvalidConstruction)
	}
	t, err := q.In(u)
	if err != nil {
		return "", fmt.Errorf("format.InUnit: %w", err)
	}

	return f.join(f.tensor(t), f.unitLabel(u)), nil
}

// InBestUnit renders q in the display unit of its dimension in which the
// largest finite non-zero magnitude reads within [1, 1000): 0.003 V renders
// "3. mV", 70 kg stays "70. kg". When no unit reaches the band, the one
// nearest to it on a log10 scale is used. Ties prefer the unscaled unit,
// then the unit registered first. Without a candidate the SI value is
// followed by the symbolic dimension. A deferred payload is never
// evaluated; its node description is rendered instead.
func (f *Formatter) InBestUnit(q quantity.Quantity) string {
	mag := q.Magnitude()
	if mag == nil {
		return q.String()
	}
	d, ok := array.Concrete(mag)
	if !ok {
		return f.join(fmt.Sprint(mag), f.Dim(q.Dim()))
	}
	u, ok := f.BestUnit(q)
	if !ok {
		return f.join(f.Tensor(d), f.Dim(q.Dim()))
	}
	t, err := q.In(u)
	if err != nil {
		return f.join(f.Tensor(d), f.Dim(q.Dim()))
	}

	return f.join(f.tensor(t), f.unitLabel(u))
}

// BestUnit returns the display unit InBestUnit would choose for q.
// ok is false when the registry has no display unit for q's dimension.
// A deferred payload yields the unscaled candidate when one exists.
func (f *Formatter) BestUnit(q quantity.Quantity) (unit.Unit, bool) {
	cands := f.reg.ForDim(q.Dim())
	if len(cands) == 0 {
		return unit.Unit{}, false
	}
	rep := 0.0
	if d, ok := array.Concrete(q.Magnitude()); ok {
		rep = representative(d)
	}

	return choose(cands, rep), true
}

// Value renders a bare number as a number and a quantity via InBestUnit.
func (f *Formatter) Value(v quantity.Value) string {
	if t, ok := v.Numeric(); ok {
		return f.tensor(t)
	}

	return f.InBestUnit(v.Quantity())
}

// representative returns the largest finite non-zero |x| of d, or 0.
func representative(d *array.Dense) float64 {
	rep := 0.0
	d.Do(func(_ int, v float64) bool {
		a := math.Abs(v)
		if a != 0 && !math.IsInf(a, 0) && !math.IsNaN(a) && a > rep {
			rep = a
		}
		return true
	})

	return rep
}

// choose picks the candidate in which rep reads within [1, 1000). When no
// candidate puts rep in that band, the one closest to it on a log10 scale
// wins. Ties prefer the unscaled candidate, then registration order.
// rep == 0 selects the unscaled candidate, or the first one.
func choose(cands []unit.Unit, rep float64) unit.Unit {
	if rep == 0 {
		for _, u := range cands {
			if u.Scale() == 0 {
				return u
			}
		}
		return cands[0]
	}
	lg := math.Log10(rep)
	best := cands[0]
	bestIn, bestDist := bandDistance(lg, best.Scale())
	for _, u := range cands[1:] {
		in, dist := bandDistance(lg, u.Scale())
		switch {
		case in != bestIn:
			if in {
				best, bestIn, bestDist = u, in, dist
			}
		case dist < bestDist-tieEpsilon:
			best, bestDist = u, dist
		case dist <= bestDist+tieEpsilon && u.Scale() == 0 && best.Scale() != 0:
			best, bestDist = u, dist
		}
	}

	return best
}

// bandDistance reports whether a magnitude of 10^lg reads within [1, 1000)
// at scale and, when it does not, how many decades it lies outside.
func bandDistance(lg float64, scale int) (in bool, dist float64) {
	x := lg - float64(scale)
	switch {
	case x < -tieEpsilon:
		return false, -x
	case x >= bandDecades-tieEpsilon:
		return false, math.Max(x-bandDecades, 0)
	default:
		return true, 0
	}
}

// unitLabel is the symbol of a named unit, else its symbolic form.
func (f *Formatter) unitLabel(u unit.Unit) string {
	if u.IsNamed() {
		return u.Symbol()
	}
	if u.Scale() != 0 {
		return u.String()
	}

	return f.Dim(u.Dim())
}

func (f *Formatter) join(value, label string) string {
	if label == "" {
		return value
	}

	return value + " " + label
}

// tensor renders a concrete tensor, or describes a deferred one.
func (f *Formatter) tensor(t array.Tensor) string {
	if d, ok := array.Concrete(t); ok {
		return f.Tensor(d)
	}

	return fmt.Sprint(t)
}

// Tensor renders d with Number per element: "[0.5 1.]".
func (f *Formatter) Tensor(d *array.Dense) string {
	return array.Format(d, f.Number)
}

// Number renders v numpy-style: rounded to the formatter's precision, the
// shortest form that reads back to the rounded value, and a trailing "."
// when the result is integral ("3.", "0.5", "1e+20", "nan", "-inf").
func (f *Formatter) Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', f.precision, 64), 64)
	if err != nil {
		r = v
	}
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	s := strconv.FormatFloat(r, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += "."
	}

	return s
}

// Dim renders d in the formatter's style. The dimensionless handle renders
// as "".
func (f *Formatter) Dim(d dimension.Dim) string {
	v := d.Vector()
	if f.style == DimPlain {
		return v.String()
	}
	num, den := v.Terms()
	var b strings.Builder
	writeTerms(&b, num)
	if len(den) == 0 {
		return b.String()
	}
	if len(num) == 0 {
		b.WriteByte('1')
	}
	b.WriteByte('/')
	if len(den) > 1 {
		b.WriteByte('(')
		writeTerms(&b, den)
		b.WriteByte(')')
	} else {
		writeTerms(&b, den)
	}

	return b.String()
}

func writeTerms(b *strings.Builder, ts []dimension.Term) {
	for i, t := range ts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
}
