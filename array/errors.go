// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the array
// package. Kernels return these sentinels wrapped with an operation tag via
// arrayErrorf; callers match them with errors.Is. Public kernels never panic
// on user-triggered conditions.

package array

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "array: ..." for consistency and grep-ability.
// Wrap with arrayErrorf(op, ErrX) at the detection site; callers still use
// errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative extent, ragged nested input, size mismatch on construction).
	ErrBadShape = errors.New("array: invalid shape")

	// ErrOutOfRange indicates that an index or slice bound is outside valid bounds.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrShapeMismatch indicates operand shapes that cannot be broadcast,
	// concatenated or stacked together.
	ErrShapeMismatch = errors.New("array: shape mismatch")

	// ErrBadAxis indicates an axis argument outside [-ndim, ndim) that is not
	// AllAxes.
	ErrBadAxis = errors.New("array: axis out of range")

	// ErrEmpty signals a reduction without identity (mean, min, max, ...)
	// applied to zero elements, or an aggregation over no inputs.
	ErrEmpty = errors.New("array: empty input")

	// ErrNilTensor indicates that a nil Tensor (receiver or argument) was used.
	ErrNilTensor = errors.New("array: nil tensor")

	// ErrNonFinite signals a NaN or ±Inf parameter where a finite value is
	// required (range bounds, steps, counts).
	ErrNonFinite = errors.New("array: NaN or Inf parameter")

	// ErrUnsupported marks a tensor implementation the eager backend cannot read.
	ErrUnsupported = errors.New("array: unsupported tensor implementation")
)

// arrayErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
