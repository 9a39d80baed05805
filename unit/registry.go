// SPDX-License-Identifier: MIT

package unit

import (
	"log/slog"
	"sync"

	"github.com/katalvlaran/lvunit/dimension"
	"github.com/katalvlaran/lvunit/internal/logger"
)

// Registry indexes units by name and symbol and keeps, per dimension, the
// ordered list of display candidates used by best-unit formatting.
//
// Two kinds of registration:
//   - Register:       display candidate and lookup key (e.g. km, mV).
//   - RegisterLookup: lookup key only (e.g. cm, L), never chosen for display.
//
// Registry is safe for concurrent use; registration order is preserved.
type Registry struct {
	mu      sync.RWMutex
	display []Unit
	byDim   map[dimension.Dim][]int
	shown   map[Unit]bool
	index   map[string]Unit
	all     []Unit
	log     *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger routes registry debug records to l instead of logger.L().
// It panics on a nil logger.
func WithLogger(l *slog.Logger) RegistryOption {
	if l == nil {
		panic("unit: WithLogger(nil)")
	}

	return func(r *Registry) { r.log = l }
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		byDim: make(map[dimension.Dim][]int),
		shown: make(map[Unit]bool),
		index: make(map[string]Unit),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Registry) logger() *slog.Logger {
	if r.log != nil {
		return r.log
	}

	return logger.L()
}

// Register adds u as a display candidate for its dimension and as a lookup
// key under its name and symbol. Registering the same unit twice is a no-op.
//
// Errors:
//   - ErrUnnamed when u has no symbol.
//   - ErrDuplicateUnit when the name or symbol is bound to another unit.
func (r *Registry) Register(u Unit) error { return r.add("Register", u, true) }

// RegisterLookup adds u as a lookup key only.
func (r *Registry) RegisterLookup(u Unit) error { return r.add("RegisterLookup", u, false) }

// RegisterPrefixed registers base and its scaled variants. Prefixes whose
// exponent is a multiple of three join the display candidates when display is
// true; the others (c, d, da, h) are lookup-only.
func (r *Registry) RegisterPrefixed(base Unit, display bool, prefixes ...string) error {
	if err := r.add("RegisterPrefixed", base, display); err != nil {
		return err
	}
	for _, p := range prefixes {
		pre, ok := LookupPrefix(p)
		if !ok {
			return unitErrorf("RegisterPrefixed", errorWithValue(ErrInvalidPrefix, p))
		}
		u, err := CreateScaled(base, p)
		if err != nil {
			return err
		}
		if err := r.add("RegisterPrefixed", u, display && pre.IsEngineering()); err != nil {
			return err
		}
	}

	return nil
}

func (r *Registry) add(tag string, u Unit, display bool) error {
	if u.symbol == "" || u.name == "" {
		return unitErrorf(tag, ErrUnnamed)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range []string{u.name, u.symbol} {
		if prev, ok := r.index[key]; ok && prev != u {
			return unitErrorf(tag, errorWithValue(ErrDuplicateUnit, key))
		}
	}
	if _, known := r.index[u.symbol]; !known {
		r.index[u.name] = u
		r.index[u.symbol] = u
		r.all = append(r.all, u)
	}
	if display && !r.shown[u] {
		r.shown[u] = true
		r.byDim[u.dim] = append(r.byDim[u.dim], len(r.display))
		r.display = append(r.display, u)
	}
	r.logger().Debug("unit.registered", "symbol", u.symbol, "scale", u.scale, "dim", u.dim.String(), "display", display)

	return nil
}

// Lookup resolves a unit by name or symbol.
func (r *Registry) Lookup(s string) (Unit, error) {
	r.mu.RLock()
	u, ok := r.index[s]
	r.mu.RUnlock()
	if !ok {
		return Unit{}, unitErrorf("Lookup", errorWithValue(ErrUnknownUnit, s))
	}

	return u, nil
}

// ForDim returns the display candidates of d in registration order.
func (r *Registry) ForDim(d dimension.Dim) []Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.byDim[d]
	out := make([]Unit, len(idx))
	for i, j := range idx {
		out[i] = r.display[j]
	}

	return out
}

// Units returns every registered unit (display and lookup-only) in
// registration order.
func (r *Registry) Units() []Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Unit(nil), r.all...)
}

// IsDisplay reports whether u is a display candidate.
func (r *Registry) IsDisplay(u Unit) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.shown[u]
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.all)
}
