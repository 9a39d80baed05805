// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog classifies every malformed catalogue: bad YAML, a missing
// or contradictory field, an unknown axis or base unit.
var ErrInvalidCatalog = errors.New("catalog: invalid catalog")

// Error carries the operation, file and offending field of a catalogue
// failure. It unwraps to the underlying cause.
type Error struct {
	Op    string
	Path  string // optional
	Field string // optional, e.g. "units[2].dims.length"
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := "catalog." + e.Op
	if e.Path != "" {
		s += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Field != "" {
		s += ": " + e.Field
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}

	return s
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// invalidField reports a malformed field as ErrInvalidCatalog.
func invalidField(op, path, field, msg string) error {
	return &Error{Op: op, Path: path, Field: field, Err: fmt.Errorf("%w: %s", ErrInvalidCatalog, msg)}
}
