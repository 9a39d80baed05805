// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//  - Single source of truth for argument checks shared by kernels and by the
//    deferred backend.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.

package array

import "math"

// ValidateNotNil ensures the tensor reference is non-nil, including a typed
// nil *Dense stored in the interface.
func ValidateNotNil(t Tensor) error {
	if t == nil {
		return ErrNilTensor
	}
	if d, ok := t.(*Dense); ok && d == nil {
		return ErrNilTensor
	}

	return nil
}

// ValidateAxis accepts AllAxes or an axis in [-ndim, ndim).
func ValidateAxis(s Shape, axis int) error {
	if axis == AllAxes {
		return nil
	}
	_, err := normalizeAxis(axis, len(s))

	return err
}

// ValidateFinite rejects NaN/±Inf parameters of range constructors
// (Arange/Linspace bounds and steps).
func ValidateFinite(vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}

	return nil
}
