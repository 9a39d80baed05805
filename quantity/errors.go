// SPDX-License-Identifier: MIT

package quantity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvunit/dimension"
)

// Sentinel errors. Match with errors.Is; structured errors below unwrap to them.
var (
	// ErrDimensionMismatch indicates operands whose dimensions the operation
	// cannot combine. It is the same sentinel as dimension.ErrDimensionMismatch.
	ErrDimensionMismatch = dimension.ErrDimensionMismatch

	// ErrAggregationMismatch indicates that elements gathered into one array
	// do not share a dimension.
	ErrAggregationMismatch = errors.New("quantity: aggregation mismatch")

	// ErrInvalidConstruction indicates a payload that cannot become a magnitude.
	ErrInvalidConstruction = errors.New("quantity: invalid construction")
)

// MismatchError reports the two dimensions an operation refused to combine.
type MismatchError struct {
	Op   string
	A, B dimension.Dim
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("quantity.%s: %v: %s vs %s", e.Op, ErrDimensionMismatch, dimName(e.A), dimName(e.B))
}

// Unwrap returns ErrDimensionMismatch.
func (e *MismatchError) Unwrap() error { return ErrDimensionMismatch }

// AggregationError reports the first element whose dimension differs from
// the dimension of element 0.
type AggregationError struct {
	Index     int
	Want, Got dimension.Dim
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("%v: element %d is %s, want %s", ErrAggregationMismatch, e.Index, dimName(e.Got), dimName(e.Want))
}

// Unwrap returns ErrAggregationMismatch.
func (e *AggregationError) Unwrap() error { return ErrAggregationMismatch }

// dimName renders d for messages; the empty rendering becomes "dimensionless".
func dimName(d dimension.Dim) string {
	if d == dimension.Dimensionless {
		return "dimensionless"
	}

	return "[" + d.String() + "]"
}

// quantityErrorf tags err with the operation that detected it.
func quantityErrorf(tag string, err error) error {
	return fmt.Errorf("quantity.%s: %w", tag, err)
}

// wrapConstruction marks err as an ErrInvalidConstruction while keeping it
// matchable.
func wrapConstruction(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidConstruction, err)
}
