// SPDX-License-Identifier: MIT

package dimension

import (
	"sync"
)

// Dim is an interned dimension: a handle into a Registry arena. Two Dims from
// the same registry are equal iff their Vectors are equal, so == and map keys
// on Dim are the cheap equality and hash.
//
// Dim methods resolve against the process-wide default registry.
type Dim uint32

// Dimensionless is the handle of the zero Vector in every registry.
const Dimensionless Dim = 0

// pair keys the product memo.
type pair struct{ a, b Dim }

// Registry interns Vectors. It is append-only: handles stay valid for the
// lifetime of the registry. Safe for concurrent use.
//
// Complexity:
//   - GetOrCreate: O(1) expected (map lookup under a read lock; write lock on miss).
//   - Vector: O(1).
type Registry struct {
	mu    sync.RWMutex
	vecs  []Vector
	index map[Vector]Dim
	prods map[pair]Dim
}

// NewRegistry returns a registry seeded with the dimensionless Vector at
// handle 0.
func NewRegistry() *Registry {
	r := &Registry{
		vecs:  []Vector{{}},
		index: map[Vector]Dim{{}: Dimensionless},
		prods: make(map[pair]Dim),
	}

	return r
}

// GetOrCreate returns the handle for v, interning it on first sight.
func (r *Registry) GetOrCreate(v Vector) Dim {
	r.mu.RLock()
	d, ok := r.index[v]
	r.mu.RUnlock()
	if ok {
		return d
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another writer may have won the race between the two locks.
	if d, ok = r.index[v]; ok {
		return d
	}
	d = Dim(len(r.vecs))
	r.vecs = append(r.vecs, v)
	r.index[v] = d

	return d
}

// Vector returns the exponents behind d. It panics if d was not issued by r.
func (r *Registry) Vector(d Dim) Vector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(d) >= len(r.vecs) {
		panic("dimension: handle not issued by this registry")
	}

	return r.vecs[d]
}

// Len returns the number of interned dimensions (at least 1).
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.vecs)
}

// Mul returns the handle of a·b. Products are memoised per unordered pair.
func (r *Registry) Mul(a, b Dim) Dim {
	switch {
	case a == Dimensionless:
		return b
	case b == Dimensionless:
		return a
	}
	if b < a {
		a, b = b, a
	}
	k := pair{a, b}
	r.mu.RLock()
	d, ok := r.prods[k]
	r.mu.RUnlock()
	if ok {
		return d
	}
	d = r.GetOrCreate(r.Vector(a).Mul(r.Vector(b)))
	r.mu.Lock()
	r.prods[k] = d
	r.mu.Unlock()

	return d
}

// Div returns the handle of a/b.
func (r *Registry) Div(a, b Dim) Dim {
	if b == Dimensionless {
		return a
	}
	if a == b {
		return Dimensionless
	}

	return r.GetOrCreate(r.Vector(a).Div(r.Vector(b)))
}

// Pow returns the handle of d^e.
func (r *Registry) Pow(d Dim, e Exponent) Dim {
	switch {
	case d == Dimensionless || e == Int(1):
		return d
	case e.IsZero():
		return Dimensionless
	}

	return r.GetOrCreate(r.Vector(d).Pow(e))
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by Dim methods and the
// package-level helpers.
func Default() *Registry { return defaultRegistry }

// GetOrCreate interns v in the default registry.
func GetOrCreate(v Vector) Dim { return defaultRegistry.GetOrCreate(v) }

// Of interns the Vector built from integer exponents (see NewVector).
func Of(length, mass, time, current, temperature, substance, luminosity int64) Dim {
	return GetOrCreate(NewVector(length, mass, time, current, temperature, substance, luminosity))
}

// Base dimensions, interned at init.
var (
	Length      = GetOrCreate(Base(AxisLength))
	Mass        = GetOrCreate(Base(AxisMass))
	Time        = GetOrCreate(Base(AxisTime))
	Current     = GetOrCreate(Base(AxisCurrent))
	Temperature = GetOrCreate(Base(AxisTemperature))
	Substance   = GetOrCreate(Base(AxisSubstance))
	Luminosity  = GetOrCreate(Base(AxisLuminosity))
)

// Vector returns the exponents of d.
func (d Dim) Vector() Vector { return defaultRegistry.Vector(d) }

// Mul returns d·o.
func (d Dim) Mul(o Dim) Dim { return defaultRegistry.Mul(d, o) }

// Div returns d/o.
func (d Dim) Div(o Dim) Dim { return defaultRegistry.Div(d, o) }

// Pow returns d^e.
func (d Dim) Pow(e Exponent) Dim { return defaultRegistry.Pow(d, e) }

// Valid reports whether d carries no overflowed exponent. Handles produced
// by Mul, Div and Pow on extreme exponents may be invalid; Apply and
// PowFloat report those as ErrExponentOverflow.
func (d Dim) Valid() bool { return d.Vector().Valid() }

// PowInt returns d^n.
func (d Dim) PowInt(n int64) Dim { return d.Pow(Int(n)) }

// PowFloat returns d^f. Dimensionless bases accept any f; otherwise f must be
// rationalisable (see FromFloat).
func (d Dim) PowFloat(f float64) (Dim, error) {
	if d == Dimensionless {
		return Dimensionless, nil
	}
	e, err := FromFloat(f)
	if err != nil {
		return 0, dimErrorf("PowFloat", err)
	}
	p := d.Pow(e)
	if !p.Valid() {
		return 0, dimErrorf("PowFloat", ErrExponentOverflow)
	}

	return p, nil
}

// Inv returns 1/d.
func (d Dim) Inv() Dim { return defaultRegistry.Div(Dimensionless, d) }

// IsDimensionless reports whether d is the zero Vector.
func (d Dim) IsDimensionless() bool { return d == Dimensionless }

// String renders the symbolic form, e.g. "m^2 kg s^-3 A^-1".
func (d Dim) String() string { return d.Vector().String() }
