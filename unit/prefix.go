// SPDX-License-Identifier: MIT

package unit

// Prefix is an SI decimal prefix.
type Prefix struct {
	Name   string
	Symbol string
	Exp    int
}

// IsEngineering reports whether the exponent is a multiple of three.
func (p Prefix) IsEngineering() bool { return p.Exp%3 == 0 }

// prefixes lists the SI prefixes from yocto to yotta.
var prefixes = [...]Prefix{
	{"yocto", "y", -24},
	{"zepto", "z", -21},
	{"atto", "a", -18},
	{"femto", "f", -15},
	{"pico", "p", -12},
	{"nano", "n", -9},
	{"micro", "µ", -6},
	{"milli", "m", -3},
	{"centi", "c", -2},
	{"deci", "d", -1},
	{"deca", "da", 1},
	{"hecto", "h", 2},
	{"kilo", "k", 3},
	{"mega", "M", 6},
	{"giga", "G", 9},
	{"tera", "T", 12},
	{"peta", "P", 15},
	{"exa", "E", 18},
	{"zetta", "Z", 21},
	{"yotta", "Y", 24},
}

// prefixAliases maps alternative spellings to canonical symbols.
var prefixAliases = map[string]string{
	"u":    "µ", // ASCII
	"μ":    "µ", // U+03BC GREEK SMALL LETTER MU
	"deka": "da",
}

var prefixIndex = func() map[string]Prefix {
	m := make(map[string]Prefix, 2*len(prefixes)+len(prefixAliases))
	for _, p := range prefixes {
		m[p.Symbol] = p
		m[p.Name] = p
	}
	for alias, sym := range prefixAliases {
		m[alias] = m[sym]
	}

	return m
}()

// LookupPrefix resolves a prefix by symbol ("k", "µ", "u") or name ("kilo").
func LookupPrefix(s string) (Prefix, bool) {
	p, ok := prefixIndex[s]

	return p, ok
}

// Prefixes returns the prefix table in ascending exponent order.
func Prefixes() []Prefix {
	out := make([]Prefix, len(prefixes))
	copy(out, prefixes[:])

	return out
}
