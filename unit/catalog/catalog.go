// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvunit/dimension"
	"github.com/katalvlaran/lvunit/internal/logger"
	"github.com/katalvlaran/lvunit/unit"
	"gopkg.in/yaml.v3"
)

// Load reads the catalogue file at path and registers its units in r.
// It returns the units defined by the file, without their prefixed variants.
//
// Errors:
//   - *Error wrapping the os error when the file cannot be read.
//   - ErrInvalidCatalog (as *Error) for malformed content.
//   - unit.ErrDuplicateUnit / unit.ErrInvalidPrefix (as *Error) when
//     registration fails.
func Load(path string, r *unit.Registry) ([]unit.Unit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Op: "Load", Path: path, Err: err}
	}
	defer f.Close()

	return decode("Load", path, f, r)
}

// Decode reads a YAML catalogue from rd and registers its units in r.
// An empty stream is an empty catalogue. See Load for errors.
func Decode(rd io.Reader, r *unit.Registry) ([]unit.Unit, error) {
	return decode("Decode", "", rd, r)
}

func decode(op, path string, rd io.Reader, r *unit.Registry) ([]unit.Unit, error) {
	if r == nil {
		return nil, &Error{Op: op, Path: path, Err: fmt.Errorf("%w: nil registry", ErrInvalidCatalog)}
	}

	var dto yamlCatalog
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return nil, &Error{Op: op, Path: path, Err: fmt.Errorf("%w: %v", ErrInvalidCatalog, err)}
	}

	out := make([]unit.Unit, 0, len(dto.Units))
	for i, yu := range dto.Units {
		field := fmt.Sprintf("units[%d]", i)
		u, err := mapUnit(op, path, field, yu, r)
		if err != nil {
			return out, err
		}
		if err := register(r, u, yu); err != nil {
			return out, &Error{Op: op, Path: path, Field: field, Err: err}
		}
		out = append(out, u)
	}
	logger.L().Debug("catalog.loaded", "path", path, "units", len(out))

	return out, nil
}

// mapUnit turns one YAML entry into a Unit. Base units are resolved in r,
// so an entry may build on one defined earlier in the same catalogue.
func mapUnit(op, path, field string, yu yamlUnit, r *unit.Registry) (unit.Unit, error) {
	name, symbol := strings.TrimSpace(yu.Name), strings.TrimSpace(yu.Symbol)
	if name == "" {
		return unit.Unit{}, invalidField(op, path, field+".name", "name is required")
	}
	if symbol == "" {
		return unit.Unit{}, invalidField(op, path, field+".symbol", "symbol is required")
	}

	base := strings.TrimSpace(yu.Base)
	switch {
	case base != "" && yu.Dims != nil:
		return unit.Unit{}, invalidField(op, path, field, "base and dims are mutually exclusive")
	case base != "":
		b, err := r.Parse(base)
		if err != nil {
			return unit.Unit{}, &Error{Op: op, Path: path, Field: field + ".base", Err: fmt.Errorf("%w: %v", ErrInvalidCatalog, err)}
		}
		return unit.CreateAt(b.Dim(), b.Scale()+yu.Scale, name, symbol), nil
	case yu.Dims != nil:
		v, err := mapDims(op, path, field+".dims", yu.Dims)
		if err != nil {
			return unit.Unit{}, err
		}
		return unit.CreateAt(dimension.GetOrCreate(v), yu.Scale, name, symbol), nil
	default:
		return unit.Unit{}, invalidField(op, path, field, "one of base or dims is required")
	}
}

func mapDims(op, path, field string, dims map[string]string) (dimension.Vector, error) {
	keys := make([]string, 0, len(dims))
	for k := range dims {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var v dimension.Vector
	for _, k := range keys {
		a, ok := dimension.AxisByName(strings.TrimSpace(k))
		if !ok {
			return v, invalidField(op, path, field+"."+k, "unknown axis")
		}
		e, err := parseExponent(dims[k])
		if err != nil {
			return v, invalidField(op, path, field+"."+k, err.Error())
		}
		v[a] = v[a].Add(e)
		if !v[a].Valid() {
			return v, invalidField(op, path, field+"."+k, dimension.ErrExponentOverflow.Error())
		}
	}

	return v, nil
}

// parseExponent reads "2", "-1" or "1/3".
func parseExponent(s string) (dimension.Exponent, error) {
	s = strings.TrimSpace(s)
	p, q, frac := strings.Cut(s, "/")
	num, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
	if err != nil {
		return dimension.Exponent{}, fmt.Errorf("bad exponent %q", s)
	}
	if !frac {
		return dimension.Int(num), nil
	}
	den, err := strconv.ParseInt(strings.TrimSpace(q), 10, 64)
	if err != nil || den == 0 {
		return dimension.Exponent{}, fmt.Errorf("bad exponent %q", s)
	}

	return dimension.Rat(num, den), nil
}

func register(r *unit.Registry, u unit.Unit, yu yamlUnit) error {
	if len(yu.Prefixes) > 0 {
		return r.RegisterPrefixed(u, yu.Display, yu.Prefixes...)
	}
	if yu.Display {
		return r.Register(u)
	}

	return r.RegisterLookup(u)
}
