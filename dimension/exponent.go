// SPDX-License-Identifier: MIT

package dimension

import (
	"fmt"
	"math"
	"strconv"
)

// Exponent is an exact rational power p/q of a base dimension, always kept
// in lowest terms with a positive denominator.
//
// The denominator is stored minus one so that the zero value Exponent{} is
// the integer 0; this keeps Vector{} dimensionless and lets Exponent be used
// with == and as a map key.
type Exponent struct {
	num  int64
	den1 int64 // denominator - 1
}

// maxDenominator bounds the continued-fraction search in FromFloat.
const maxDenominator = 1000

// floatTolerance is the largest |f - p/q| accepted by FromFloat.
const floatTolerance = 1e-9

// Int returns the integer exponent n.
func Int(n int64) Exponent { return Exponent{num: n} }

// overflow marks an Exponent whose numerator or denominator left the
// int64 range. It compares unequal to every valid Exponent and absorbs
// every arithmetic operation it takes part in.
var overflow = Exponent{den1: -1}

// Rat returns p/q in lowest terms. It panics if q == 0. Operands equal to
// math.MinInt64 yield an invalid Exponent (see Valid).
func Rat(p, q int64) Exponent {
	if q == 0 {
		panic("dimension: Rat with zero denominator")
	}
	if p == math.MinInt64 || q == math.MinInt64 {
		return overflow
	}
	if q < 0 {
		p, q = -p, -q
	}
	if g := gcd(abs64(p), q); g > 1 {
		p, q = p/g, q/g
	}
	if p == 0 {
		q = 1
	}

	return Exponent{num: p, den1: q - 1}
}

// Num returns the numerator.
func (e Exponent) Num() int64 { return e.num }

// Den returns the (positive) denominator, or 0 for an invalid Exponent.
func (e Exponent) Den() int64 { return e.den1 + 1 }

// IsZero reports whether e == 0.
func (e Exponent) IsZero() bool { return e.num == 0 && e.Valid() }

// IsInt reports whether e has denominator 1.
func (e Exponent) IsInt() bool { return e.den1 == 0 }

// Valid reports whether e is a representable rational. Arithmetic whose
// exact result does not fit in int64 returns an invalid Exponent.
func (e Exponent) Valid() bool { return e.den1 >= 0 }

// Add returns e + o.
func (e Exponent) Add(o Exponent) Exponent {
	if !e.Valid() || !o.Valid() {
		return overflow
	}
	if e.IsInt() && o.IsInt() {
		n, ok := addInt64(e.num, o.num)
		if !ok {
			return overflow
		}
		return Exponent{num: n}
	}
	a, ok1 := mulInt64(e.num, o.Den())
	b, ok2 := mulInt64(o.num, e.Den())
	d, ok3 := mulInt64(e.Den(), o.Den())
	n, ok4 := addInt64(a, b)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return overflow
	}

	return Rat(n, d)
}

// Sub returns e - o.
func (e Exponent) Sub(o Exponent) Exponent { return e.Add(o.Neg()) }

// Mul returns e · o.
func (e Exponent) Mul(o Exponent) Exponent {
	if !e.Valid() || !o.Valid() {
		return overflow
	}
	if e.IsInt() && o.IsInt() {
		n, ok := mulInt64(e.num, o.num)
		if !ok {
			return overflow
		}
		return Exponent{num: n}
	}
	// Cross-reduce first so that in-range results never overflow midway.
	g1, g2 := gcd(abs64(e.num), o.Den()), gcd(abs64(o.num), e.Den())
	n, ok1 := mulInt64(e.num/g1, o.num/g2)
	d, ok2 := mulInt64(e.Den()/g2, o.Den()/g1)
	if !ok1 || !ok2 {
		return overflow
	}

	return Rat(n, d)
}

// Neg returns -e.
func (e Exponent) Neg() Exponent {
	if !e.Valid() || e.num == math.MinInt64 {
		return overflow
	}

	return Exponent{num: -e.num, den1: e.den1}
}

// Float64 returns the nearest float64 to e, or NaN when e is invalid.
func (e Exponent) Float64() float64 {
	if !e.Valid() {
		return math.NaN()
	}

	return float64(e.num) / float64(e.Den())
}

// String renders "2", "-1" or "1/3"; an invalid Exponent renders "overflow".
func (e Exponent) String() string {
	switch {
	case !e.Valid():
		return "overflow"
	case e.IsInt():
		return strconv.FormatInt(e.num, 10)
	}

	return strconv.FormatInt(e.num, 10) + "/" + strconv.FormatInt(e.Den(), 10)
}

// FromFloat converts f to the closest rational with denominator at most 1000.
// Implementation:
//   - Stage 1: integers (the common case) return immediately.
//   - Stage 2: walk the continued-fraction convergents of f until the
//     denominator bound is hit or the error drops below 1e-9.
//
// Errors:
//   - ErrIrrationalExponent if f is NaN/Inf or no convergent is within 1e-9.
func FromFloat(f float64) (Exponent, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Exponent{}, fmt.Errorf("%w: %v", ErrIrrationalExponent, f)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return Int(int64(f)), nil
	}

	// Convergents h/k with h(-1)=1, h(-2)=0, k(-1)=0, k(-2)=1.
	var (
		h0, h1 int64 = 0, 1
		k0, k1 int64 = 1, 0
		x            = f
	)
	for {
		a := math.Floor(x)
		if math.Abs(a) > math.MaxInt32 {
			break
		}
		ai := int64(a)
		h2, k2 := ai*h1+h0, ai*k1+k0
		if k2 > maxDenominator {
			break
		}
		h0, h1, k0, k1 = h1, h2, k1, k2
		if math.Abs(f-float64(h1)/float64(k1)) <= floatTolerance {
			return Rat(h1, k1), nil
		}
		frac := x - a
		if frac == 0 {
			break
		}
		x = 1 / frac
	}

	return Exponent{}, fmt.Errorf("%w: %v", ErrIrrationalExponent, f)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// addInt64 returns a+b and false when the sum leaves (MinInt64, MaxInt64].
func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) || c == math.MinInt64 {
		return 0, false
	}

	return c, true
}

// mulInt64 returns a*b and false when the product leaves (MinInt64, MaxInt64].
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		return 0, false
	}
	c := a * b
	if c/b != a || c == math.MinInt64 {
		return 0, false
	}

	return c, true
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
