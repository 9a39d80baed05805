// SPDX-License-Identifier: MIT

package lazy

import (
	"fmt"

	"github.com/katalvlaran/lvunit/array"
)

// Backend records operations as Nodes. Shapes are validated eagerly through
// the array shape-inference helpers, so shape errors surface at the call site
// exactly as with array.Eager; only the numeric work is deferred.
type Backend struct{}

var _ array.Backend = Backend{}

// Name implements array.Backend.
func (Backend) Name() string { return "lazy" }

// Deferred implements array.Backend.
func (Backend) Deferred() bool { return true }

// node assembles a Node; operands are already validated by the caller.
func node(op string, shape array.Shape, inputs []array.Tensor, run func(in []*array.Dense) (array.Tensor, error)) (array.Tensor, error) {
	return &Node{op: op, shape: shape, inputs: inputs, run: run}, nil
}

// Binary implements array.Backend.
func (Backend) Binary(op array.BinaryOp, a, b array.Tensor) (array.Tensor, error) {
	if err := validate2(op.String(), a, b); err != nil {
		return nil, err
	}
	shape, err := array.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, fmt.Errorf("lazy.%s: %w", op, err)
	}

	return node(op.String(), shape, []array.Tensor{a, b}, func(in []*array.Dense) (array.Tensor, error) {
		return array.Eager{}.Binary(op, in[0], in[1])
	})
}

// Unary implements array.Backend.
func (Backend) Unary(op array.UnaryOp, a array.Tensor) (array.Tensor, error) {
	if err := validate1(op.String(), a); err != nil {
		return nil, err
	}

	return node(op.String(), a.Shape().Clone(), []array.Tensor{a}, func(in []*array.Dense) (array.Tensor, error) {
		return array.Eager{}.Unary(op, in[0])
	})
}

// Reduce implements array.Backend.
func (Backend) Reduce(op array.ReduceOp, a array.Tensor, axis int) (array.Tensor, error) {
	if err := validate1(op.String(), a); err != nil {
		return nil, err
	}
	shape, err := array.ReducedShape(a.Shape(), axis)
	if err != nil {
		return nil, fmt.Errorf("lazy.%s: %w", op, err)
	}

	return node(op.String(), shape, []array.Tensor{a}, func(in []*array.Dense) (array.Tensor, error) {
		return array.Eager{}.Reduce(op, in[0], axis)
	})
}

// Scan implements array.Backend.
func (Backend) Scan(op array.ScanOp, a array.Tensor, axis int) (array.Tensor, error) {
	if err := validate1(op.String(), a); err != nil {
		return nil, err
	}
	shape, err := array.ScannedShape(a.Shape(), axis)
	if err != nil {
		return nil, fmt.Errorf("lazy.%s: %w", op, err)
	}

	return node(op.String(), shape, []array.Tensor{a}, func(in []*array.Dense) (array.Tensor, error) {
		return array.Eager{}.Scan(op, in[0], axis)
	})
}

// Index implements array.Backend.
func (Backend) Index(a array.Tensor, idx ...int) (array.Tensor, error) {
	if err := validate1("Index", a); err != nil {
		return nil, err
	}
	shape, err := array.IndexedShape(a.Shape(), idx...)
	if err != nil {
		return nil, fmt.Errorf("lazy.Index: %w", err)
	}
	idx = append([]int(nil), idx...)

	return node("Index", shape, []array.Tensor{a}, func(in []*array.Dense) (array.Tensor, error) {
		return array.Eager{}.Index(in[0], idx...)
	})
}

// Slice implements array.Backend.
func (Backend) Slice(a array.Tensor, axis, start, stop int) (array.Tensor, error) {
	if err := validate1("Slice", a); err != nil {
		return nil, err
	}
	shape, err := array.SlicedShape(a.Shape(), axis, start, stop)
	if err != nil {
		return nil, fmt.Errorf("lazy.Slice: %w", err)
	}

	return node("Slice", shape, []array.Tensor{a}, func(in []*array.Dense) (array.Tensor, error) {
		return array.Eager{}.Slice(in[0], axis, start, stop)
	})
}

// SetAt implements array.Backend.
func (Backend) SetAt(a, v array.Tensor, idx ...int) (array.Tensor, error) {
	if err := validate2("SetAt", a, v); err != nil {
		return nil, err
	}
	block, err := array.IndexedShape(a.Shape(), idx...)
	if err != nil {
		return nil, fmt.Errorf("lazy.SetAt: %w", err)
	}
	if bs, err := array.BroadcastShapes(block, v.Shape()); err != nil || !bs.Equal(block) {
		return nil, fmt.Errorf("lazy.SetAt: %w", array.ErrShapeMismatch)
	}
	idx = append([]int(nil), idx...)

	return node("SetAt", a.Shape().Clone(), []array.Tensor{a, v}, func(in []*array.Dense) (array.Tensor, error) {
		return array.Eager{}.SetAt(in[0], in[1], idx...)
	})
}

// Reshape implements array.Backend.
func (Backend) Reshape(a array.Tensor, shape array.Shape) (array.Tensor, error) {
	if err := validate1("Reshape", a); err != nil {
		return nil, err
	}
	out, err := array.ReshapedShape(a.Shape(), shape)
	if err != nil {
		return nil, fmt.Errorf("lazy.Reshape: %w", err)
	}

	return node("Reshape", out, []array.Tensor{a}, func(in []*array.Dense) (array.Tensor, error) {
		return array.Eager{}.Reshape(in[0], out)
	})
}

// Concat implements array.Backend.
func (Backend) Concat(ts []array.Tensor, axis int) (array.Tensor, error) {
	shapes, err := shapesOf("Concat", ts)
	if err != nil {
		return nil, err
	}
	shape, err := array.ConcatShape(shapes, axis)
	if err != nil {
		return nil, fmt.Errorf("lazy.Concat: %w", err)
	}
	inputs := append([]array.Tensor(nil), ts...)

	return node("Concat", shape, inputs, func(in []*array.Dense) (array.Tensor, error) {
		return array.Eager{}.Concat(asTensors(in), axis)
	})
}

// Stack implements array.Backend.
func (Backend) Stack(ts []array.Tensor) (array.Tensor, error) {
	shapes, err := shapesOf("Stack", ts)
	if err != nil {
		return nil, err
	}
	shape, err := array.StackShape(shapes)
	if err != nil {
		return nil, fmt.Errorf("lazy.Stack: %w", err)
	}
	inputs := append([]array.Tensor(nil), ts...)

	return node("Stack", shape, inputs, func(in []*array.Dense) (array.Tensor, error) {
		return array.Eager{}.Stack(asTensors(in))
	})
}

func validate1(op string, a array.Tensor) error {
	if err := array.ValidateNotNil(a); err != nil {
		return fmt.Errorf("lazy.%s: %w", op, err)
	}

	return nil
}

func validate2(op string, a, b array.Tensor) error {
	if err := validate1(op, a); err != nil {
		return err
	}

	return validate1(op, b)
}

func shapesOf(op string, ts []array.Tensor) ([]array.Shape, error) {
	shapes := make([]array.Shape, len(ts))
	for i, t := range ts {
		if err := validate1(op, t); err != nil {
			return nil, err
		}
		shapes[i] = t.Shape()
	}

	return shapes, nil
}

func asTensors(ds []*array.Dense) []array.Tensor {
	out := make([]array.Tensor, len(ds))
	for i, d := range ds {
		out[i] = d
	}

	return out
}
