// SPDX-License-Identifier: MIT

// Package array - Dense storage (row-major, N-d) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with explicit strides.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(n) zero-init; At/Set: O(ndim); Clone: O(n).

package array

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxItem = "Item"
	ctxNew  = "NewDense"
	ctxFrom = "FromSlice"
	ctxRows = "FromRows"
)

// Dense is a concrete row-major N-d tensor of float64 values.
//   - shape holds the extents (empty for a 0-d scalar).
//   - data is a flat buffer of length shape.Size() in row-major order.
type Dense struct {
	shape Shape
	data  []float64
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Tensor       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates a zero tensor of the given shape.
// Zero extents are legal and produce an empty tensor; a call without
// arguments produces a 0-d scalar holding 0.
//
// Errors:
//   - ErrBadShape when any extent is negative.
//
// Complexity: Time O(n), Space O(n).
func NewDense(shape ...int) (*Dense, error) {
	for _, d := range shape {
		if d < 0 {
			return nil, arrayErrorf(ctxNew, ErrBadShape)
		}
	}
	s := Shape(shape).Clone()
	if s == nil {
		s = Shape{}
	}

	return &Dense{shape: s, data: make([]float64, s.Size())}, nil
}

// newDenseShape allocates a zero tensor for an already validated shape.
func newDenseShape(s Shape) *Dense {
	s = s.Clone()
	if s == nil {
		s = Shape{}
	}

	return &Dense{shape: s, data: make([]float64, s.Size())}
}

// Scalar returns a 0-d tensor holding v.
func Scalar(v float64) *Dense {
	return &Dense{shape: Shape{}, data: []float64{v}}
}

// FromSlice copies data into a tensor of the given shape. Without a shape the
// result is 1-d of length len(data).
//
// Errors:
//   - ErrBadShape when the shape is invalid or its size differs from len(data).
func FromSlice(data []float64, shape ...int) (*Dense, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	m, err := NewDense(shape...)
	if err != nil {
		return nil, arrayErrorf(ctxFrom, err)
	}
	if len(m.data) != len(data) {
		return nil, arrayErrorf(ctxFrom, ErrBadShape)
	}
	copy(m.data, data)

	return m, nil
}

// FromRows builds a 2-d tensor from row slices. Ragged input is rejected.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return NewDense(0, 0)
	}
	c := len(rows[0])
	m, err := NewDense(len(rows), c)
	if err != nil {
		return nil, arrayErrorf(ctxRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, arrayErrorf(ctxRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Shape returns the extents. The returned slice must not be mutated.
func (m *Dense) Shape() Shape { return m.shape }

// DType always reports Float64.
func (m *Dense) DType() DType { return Float64 }

// Backend returns the eager backend.
func (m *Dense) Backend() Backend { return Eager{} }

// Size returns the number of elements.
func (m *Dense) Size() int { return len(m.data) }

// NDim returns the number of axes.
func (m *Dense) NDim() int { return len(m.shape) }

// Materialize returns m itself; a Dense is always concrete.
func (m *Dense) Materialize() (*Dense, error) { return m, nil }

// offsetOf computes the row-major offset of a full index or returns ErrOutOfRange.
// Negative indices count from the end of their axis.
func (m *Dense) offsetOf(idx []int) (int, error) {
	if len(idx) != len(m.shape) {
		return 0, ErrOutOfRange
	}
	resolved, err := normalizeIndex(m.shape, idx)
	if err != nil {
		return 0, err
	}
	off := 0
	for i, v := range resolved {
		off = off*m.shape[i] + v
	}

	return off, nil
}

// At returns the element at a full index.
//
// Errors:
//   - ErrOutOfRange when the index rank or any coordinate is invalid.
func (m *Dense) At(idx ...int) (float64, error) {
	off, err := m.offsetOf(idx)
	if err != nil {
		return 0, arrayErrorf(fmt.Sprintf("Dense.%s%v", ctxAt, idx), err)
	}

	return m.data[off], nil
}

// Set stores v at a full index, in place.
// Set is the only mutating method of Dense; backends never call it on inputs.
func (m *Dense) Set(v float64, idx ...int) error {
	off, err := m.offsetOf(idx)
	if err != nil {
		return arrayErrorf(fmt.Sprintf("Dense.%s%v", ctxSet, idx), err)
	}
	m.data[off] = v

	return nil
}

// Item returns the single element of a size-1 tensor.
func (m *Dense) Item() (float64, error) {
	if len(m.data) != 1 {
		return 0, arrayErrorf(ctxItem, ErrBadShape)
	}

	return m.data[0], nil
}

// Data returns a copy of the flat row-major buffer.
func (m *Dense) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy.
// Complexity: Time O(n), Space O(n).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{shape: m.shape.Clone(), data: cp}
}

// Do visits every element in row-major order with its flat offset.
// Iteration stops early when f returns false.
func (m *Dense) Do(f func(off int, v float64) bool) {
	for i, v := range m.data {
		if !f(i, v) {
			return
		}
	}
}

// Apply returns a new tensor with f applied to every element.
func (m *Dense) Apply(f func(v float64) float64) *Dense {
	out := newDenseShape(m.shape)
	for i, v := range m.data {
		out.data[i] = f(v)
	}

	return out
}

// String renders the tensor with %g elements, numpy-style nesting.
func (m *Dense) String() string {
	return Format(m, func(v float64) string { return fmt.Sprintf("%g", v) })
}

// Format renders m with a caller-supplied element formatter.
// A scalar renders as the bare element; axes nest as "[a b]" with single
// spaces between items: "[[1 2] [3 4]]".
func Format(m *Dense, elem func(float64) string) string {
	if len(m.shape) == 0 {
		return elem(m.data[0])
	}
	var b strings.Builder
	formatAxis(&b, m.shape, m.data, elem)

	return b.String()
}

// formatAxis writes one nesting level; data is the row-major block for shape.
func formatAxis(b *strings.Builder, shape Shape, data []float64, elem func(float64) string) {
	b.WriteByte('[')
	n := shape[0]
	if len(shape) == 1 {
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(elem(data[i]))
		}
		b.WriteByte(']')
		return
	}
	block := shape[1:].Size()
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		formatAxis(b, shape[1:], data[i*block:(i+1)*block], elem)
	}
	b.WriteByte(']')
}
