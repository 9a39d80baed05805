// SPDX-License-Identifier: MIT

package dimension

import (
	"errors"
	"fmt"
)

// Sentinel errors of the dimension package. Match with errors.Is.
var (
	// ErrDimensionMismatch indicates that an operation needed equal dimensions.
	ErrDimensionMismatch = errors.New("dimension: mismatch")

	// ErrNotDimensionless indicates that an operation requires a dimensionless operand.
	ErrNotDimensionless = errors.New("dimension: operand must be dimensionless")

	// ErrIrrationalExponent indicates a float exponent with no close small-denominator rational.
	ErrIrrationalExponent = errors.New("dimension: exponent is not a representable rational")

	// ErrExponentOverflow indicates an exponent whose exact value does not fit in int64.
	ErrExponentOverflow = errors.New("dimension: exponent overflow")

	// ErrUnknownOp indicates an operation with no dimension rule.
	ErrUnknownOp = errors.New("dimension: no rule for operation")
)

// dimErrorf tags err with the operation that detected it.
func dimErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
