// SPDX-License-Identifier: MIT

package unit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/lvunit/dimension"
)

// maxExprScale bounds the power-of-ten scale an expression may reach.
const maxExprScale = math.MaxInt32

// Resolve finds a unit by name or symbol and, failing that, as a prefix
// followed by a registered unit ("um" → µm, "uM" → µM).
func (r *Registry) Resolve(s string) (Unit, error) {
	if u, err := r.Lookup(s); err == nil {
		return u, nil
	}
	// Longest prefix first so "da" wins over "d".
	for _, n := range []int{5, 4, 3, 2, 1} {
		if len(s) <= n {
			continue
		}
		head, rest := s[:n], s[n:]
		p, ok := LookupPrefix(head)
		if !ok {
			continue
		}
		base, err := r.Lookup(rest)
		if err != nil {
			continue
		}
		return CreateScaled(base, p.Symbol)
	}

	return Unit{}, unitErrorf("Resolve", errorWithValue(ErrUnknownUnit, s))
}

// Parse reads a unit expression against the default registry.
func Parse(expr string) (Unit, error) { return defaultRegistry.Parse(expr) }

// Parse reads a unit expression such as "kg*m^2/s^3", "m/s^2", "1/s" or
// "(m/s)^2". Operators: '*' or '·' multiply, '/' divides the next factor,
// '^' takes an integer power (negative allowed). A single unit keeps its
// name; compound results are unnamed.
//
// Errors:
//   - ErrInvalidExpression for syntax errors.
//   - ErrInvalidExpression wrapping dimension.ErrExponentOverflow when a
//     power leaves the representable exponent or scale range.
//   - ErrUnknownUnit for names that do not resolve.
func (r *Registry) Parse(expr string) (Unit, error) {
	p := &parser{src: expr, reg: r}
	u, err := p.product()
	if err != nil {
		return Unit{}, unitErrorf("Parse", err)
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return Unit{}, unitErrorf("Parse", p.errorf("unexpected %q", p.src[p.pos:]))
	}

	return u, nil
}

type parser struct {
	src string
	pos int
	reg *Registry
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d in %q", ErrInvalidExpression, fmt.Sprintf(format, args...), p.pos, p.src)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

// product := factor (('*' | '·' | '/') factor)*
func (p *parser) product() (Unit, error) {
	u, err := p.factor()
	if err != nil {
		return Unit{}, err
	}
	for {
		p.skipSpace()
		switch {
		case strings.HasPrefix(p.src[p.pos:], "*"):
			p.pos++
			v, err := p.factor()
			if err != nil {
				return Unit{}, err
			}
			if u, err = p.checked(u.Mul(v)); err != nil {
				return Unit{}, err
			}
		case strings.HasPrefix(p.src[p.pos:], "·"):
			p.pos += len("·")
			v, err := p.factor()
			if err != nil {
				return Unit{}, err
			}
			if u, err = p.checked(u.Mul(v)); err != nil {
				return Unit{}, err
			}
		case strings.HasPrefix(p.src[p.pos:], "/"):
			p.pos++
			v, err := p.factor()
			if err != nil {
				return Unit{}, err
			}
			if u, err = p.checked(u.Div(v)); err != nil {
				return Unit{}, err
			}
		default:
			return u, nil
		}
	}
}

// factor := atom ('^' integer)?
func (p *parser) factor() (Unit, error) {
	u, err := p.atom()
	if err != nil {
		return Unit{}, err
	}
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '^' {
		p.pos++
		p.skipSpace()
		start := p.pos
		if p.pos < len(p.src) && (p.src[p.pos] == '-' || p.src[p.pos] == '+') {
			p.pos++
		}
		for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
			p.pos++
		}
		n, err := strconv.Atoi(p.src[start:p.pos])
		if err != nil {
			return Unit{}, p.errorf("bad exponent %q", p.src[start:p.pos])
		}
		if u.scale != 0 && n != 0 && (u.scale*n)/n != u.scale {
			return Unit{}, p.overflow()
		}
		return p.checked(u.Pow(n))
	}

	return u, nil
}

func (p *parser) overflow() error {
	return fmt.Errorf("%w: %w in %q", ErrInvalidExpression, dimension.ErrExponentOverflow, p.src)
}

// checked rejects units whose exponents or scale overflowed.
func (p *parser) checked(u Unit) (Unit, error) {
	if !u.dim.Valid() || u.scale > maxExprScale || u.scale < -maxExprScale {
		return Unit{}, p.overflow()
	}

	return u, nil
}

// atom := '1' | '(' product ')' | name
func (p *parser) atom() (Unit, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return Unit{}, p.errorf("missing unit")
	}
	switch c := p.src[p.pos]; {
	case c == '(':
		p.pos++
		u, err := p.product()
		if err != nil {
			return Unit{}, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ')' {
			return Unit{}, p.errorf("missing ')'")
		}
		p.pos++
		return u, nil
	case c == '1':
		p.pos++
		return Unit{}, nil
	}

	start := p.pos
	for p.pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsLetter(r) {
			break
		}
		p.pos += size
	}
	if start == p.pos {
		return Unit{}, p.errorf("unexpected %q", p.src[p.pos:])
	}
	name := p.src[start:p.pos]
	u, err := p.reg.Resolve(name)
	if err != nil {
		return Unit{}, err
	}

	return u, nil
}
