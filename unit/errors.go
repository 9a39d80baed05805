// SPDX-License-Identifier: MIT

package unit

import (
	"errors"
	"fmt"
)

// Sentinel errors of the unit package. Match with errors.Is.
var (
	// ErrInvalidPrefix indicates a prefix missing from the SI prefix table.
	ErrInvalidPrefix = errors.New("unit: invalid prefix")

	// ErrDuplicateUnit indicates a name or symbol already bound to another unit.
	ErrDuplicateUnit = errors.New("unit: duplicate name or symbol")

	// ErrUnknownUnit indicates a name or symbol with no registered unit.
	ErrUnknownUnit = errors.New("unit: unknown unit")

	// ErrInvalidExpression indicates a malformed unit expression.
	ErrInvalidExpression = errors.New("unit: invalid expression")

	// ErrUnnamed indicates an attempt to register a unit without name or symbol.
	ErrUnnamed = errors.New("unit: unit needs a name and a symbol")
)

// unitErrorf tags err with the operation that detected it.
func unitErrorf(tag string, err error) error {
	return fmt.Errorf("unit.%s: %w", tag, err)
}

// errorWithValue attaches the offending input to a sentinel.
func errorWithValue(err error, v string) error {
	return fmt.Errorf("%w: %q", err, v)
}
