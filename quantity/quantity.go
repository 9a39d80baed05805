// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvunit/array"
	"github.com/katalvlaran/lvunit/dimension"
)

// Scaler describes a unit: a dimension and a power-of-ten scale relative to
// the coherent SI unit of that dimension. unit.Unit implements it.
type Scaler interface {
	Dim() dimension.Dim
	Scale() int
}

// Quantity is a numeric payload tagged with one dimension shared by every
// element. The magnitude is held in coherent SI scale (1 km is stored as
// 1000 with dimension length), so quantities of equal dimension combine
// without conversion.
//
// Quantity is an immutable value: every operation returns a new Quantity and
// never mutates its operands' payloads.
type Quantity struct {
	mag array.Tensor
	dim dimension.Dim
}

// New builds the quantity x·s. x may be any payload accepted by Dimensionless.
//
// Errors:
//   - ErrInvalidConstruction for unsupported payloads or a nil Scaler.
func New(x any, s Scaler) (Quantity, error) {
	if s == nil || !s.Dim().Valid() {
		return Quantity{}, quantityErrorf("New", ErrInvalidConstruction)
	}
	t, err := toTensor(x)
	if err != nil {
		return Quantity{}, quantityErrorf("New", err)
	}
	t, err = rescale(t, s.Scale())
	if err != nil {
		return Quantity{}, quantityErrorf("New", err)
	}

	return Quantity{mag: t, dim: s.Dim()}, nil
}

// Dimensionless wraps x as a quantity without dimension. Accepted payloads:
// array.Tensor (concrete tensors are copied, deferred tensors stay deferred), float64, float32,
// any signed or unsigned integer, []float64, []int, [][]float64.
func Dimensionless(x any) (Quantity, error) {
	t, err := toTensor(x)
	if err != nil {
		return Quantity{}, quantityErrorf("Dimensionless", err)
	}

	return Quantity{mag: t, dim: dimension.Dimensionless}, nil
}

// FromTensor tags an SI-scale tensor with d. A concrete tensor is copied,
// so later writes to t do not reach the quantity.
func FromTensor(t array.Tensor, d dimension.Dim) (Quantity, error) {
	if err := array.ValidateNotNil(t); err != nil {
		return Quantity{}, quantityErrorf("FromTensor", fmt.Errorf("%w: %w", ErrInvalidConstruction, err))
	}
	if !d.Valid() {
		return Quantity{}, quantityErrorf("FromTensor", fmt.Errorf("%w: %w", ErrInvalidConstruction, dimension.ErrExponentOverflow))
	}

	return Quantity{mag: own(t), dim: d}, nil
}

// From coerces an operand: a Quantity or Value is returned as a Quantity,
// anything else is treated as a bare (dimensionless) number.
func From(x any) (Quantity, error) {
	switch v := x.(type) {
	case Quantity:
		if v.mag == nil {
			return Quantity{}, quantityErrorf("From", ErrInvalidConstruction)
		}
		return v, nil
	case *Quantity:
		if v == nil {
			return Quantity{}, quantityErrorf("From", ErrInvalidConstruction)
		}
		return From(*v)
	case Value:
		return From(v.q)
	default:
		return Dimensionless(x)
	}
}

// toTensor converts the supported payload kinds.
func toTensor(x any) (array.Tensor, error) {
	switch v := x.(type) {
	case nil:
		return nil, ErrInvalidConstruction
	case *array.Dense:
		if v == nil {
			return nil, ErrInvalidConstruction
		}
		return v.Clone(), nil
	case array.Tensor:
		if err := array.ValidateNotNil(v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConstruction, err)
		}
		return own(v), nil
	case float64:
		return array.Scalar(v), nil
	case float32:
		return array.Scalar(float64(v)), nil
	case int:
		return array.Scalar(float64(v)), nil
	case int8:
		return array.Scalar(float64(v)), nil
	case int16:
		return array.Scalar(float64(v)), nil
	case int32:
		return array.Scalar(float64(v)), nil
	case int64:
		return array.Scalar(float64(v)), nil
	case uint:
		return array.Scalar(float64(v)), nil
	case uint8:
		return array.Scalar(float64(v)), nil
	case uint16:
		return array.Scalar(float64(v)), nil
	case uint32:
		return array.Scalar(float64(v)), nil
	case uint64:
		return array.Scalar(float64(v)), nil
	case []float64:
		return array.FromSlice(v)
	case []int:
		data := make([]float64, len(v))
		for i, n := range v {
			data[i] = float64(n)
		}
		return array.FromSlice(data)
	case [][]float64:
		d, err := array.FromRows(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConstruction, err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: unsupported payload %T", ErrInvalidConstruction, x)
	}
}

// own returns a private copy of a concrete tensor. Deferred tensors are
// immutable descriptions and are shared as is.
func own(t array.Tensor) array.Tensor {
	if d, ok := array.Concrete(t); ok {
		return d.Clone()
	}

	return t
}

// rescale multiplies t by 10^scale on t's backend. Negative scales divide by
// 10^-scale, which keeps values such as 500 ms → 0.5 s exact.
func rescale(t array.Tensor, scale int) (array.Tensor, error) {
	switch {
	case scale == 0:
		return t, nil
	case scale > 0:
		return array.BackendFor(t).Binary(array.OpMul, t, array.Scalar(math.Pow10(scale)))
	default:
		return array.BackendFor(t).Binary(array.OpDiv, t, array.Scalar(math.Pow10(-scale)))
	}
}

// Magnitude returns the SI-scale payload. A concrete payload is returned as
// a copy; writing to it leaves q unchanged.
func (q Quantity) Magnitude() array.Tensor {
	if q.mag == nil {
		return nil
	}

	return own(q.mag)
}

// Dim returns the dimension handle.
func (q Quantity) Dim() dimension.Dim { return q.dim }

// Shape returns the payload shape without evaluating it.
func (q Quantity) Shape() array.Shape {
	if q.mag == nil {
		return nil
	}

	return q.mag.Shape()
}

// Size returns the number of elements.
func (q Quantity) Size() int { return q.Shape().Size() }

// NDim returns the number of axes.
func (q Quantity) NDim() int { return q.Shape().NDim() }

// DType returns the payload element type.
func (q Quantity) DType() array.DType {
	if q.mag == nil {
		return ""
	}

	return q.mag.DType()
}

// IsScalar reports whether the payload is 0-d.
func (q Quantity) IsScalar() bool { return q.mag != nil && q.NDim() == 0 }

// IsDimensionless reports whether q carries no dimension.
func (q Quantity) IsDimensionless() bool { return q.dim == dimension.Dimensionless }

// HasSameDim reports whether q and o share a dimension.
func (q Quantity) HasSameDim(o Quantity) bool { return q.dim == o.dim }

// Deferred reports whether the payload is a deferred computation.
func (q Quantity) Deferred() bool {
	return q.mag != nil && array.BackendFor(q.mag).Deferred()
}

// Scalar returns the SI value of a single-element quantity. Deferred
// payloads are evaluated.
func (q Quantity) Scalar() (float64, error) {
	d, err := array.Materialize(q.mag)
	if err != nil {
		return 0, quantityErrorf("Scalar", err)
	}
	v, err := d.Item()
	if err != nil {
		return 0, quantityErrorf("Scalar", err)
	}

	return v, nil
}

// In returns the payload expressed in units of s (magnitude / 10^scale).
// The result never aliases q's payload.
//
// Conversion is one IEEE division or multiplication by an exact power of
// ten, so each element carries at most one rounding. A value built as
// x·s and read back with In(s) can therefore differ from x in the last
// ulp (123.456 nF reads back as 123.45599999999999). The format package
// rounds to 15 significant digits and renders such values as entered.
//
// Errors:
//   - *MismatchError when s has a different dimension.
func (q Quantity) In(s Scaler) (array.Tensor, error) {
	if s == nil {
		return nil, quantityErrorf("In", ErrInvalidConstruction)
	}
	if s.Dim() != q.dim {
		return nil, &MismatchError{Op: "In", A: q.dim, B: s.Dim()}
	}
	if s.Scale() == 0 {
		return own(q.mag), nil
	}
	t, err := rescale(q.mag, -s.Scale())
	if err != nil {
		return nil, quantityErrorf("In", err)
	}

	return t, nil
}

// String renders the raw SI payload and the symbolic dimension, e.g.
// "[0.5 1] s". Deferred payloads are described, not evaluated. Use the
// format package for unit-aware output.
func (q Quantity) String() string {
	if q.mag == nil {
		return "<nil quantity>"
	}
	s := fmt.Sprint(q.mag)
	if q.dim == dimension.Dimensionless {
		return s
	}

	return s + " " + q.dim.String()
}
