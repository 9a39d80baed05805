// SPDX-License-Identifier: MIT

// Package lazy provides a deferred array backend: operations build a graph
// of Nodes whose shapes are known immediately but whose values are computed
// only when a Node is materialized.
//
// A Node evaluates at most once (sync.Once); concurrent Materialize calls are
// safe and share the result. Evaluation delegates to array.Eager, so a deferred
// computation yields bit-identical results to the eager one.
//
//	x := lazy.Constant(d)                 // wrap a concrete tensor
//	y, _ := lazy.Backend{}.Unary(array.OpSquare, x)
//	fmt.Println(y)                        // lazy.Square(shape=(3,))
//	v, _ := y.(*lazy.Node).Materialize()  // forces evaluation
package lazy

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lvunit/array"
)

// Node is a deferred tensor.
type Node struct {
	op     string
	shape  array.Shape
	inputs []array.Tensor
	run    func(in []*array.Dense) (array.Tensor, error)

	once sync.Once
	done atomic.Bool
	val  *array.Dense
	err  error
}

var (
	_ array.Tensor       = (*Node)(nil)
	_ array.Materializer = (*Node)(nil)
	_ fmt.Stringer       = (*Node)(nil)
)

// Constant wraps a concrete tensor as a leaf node. Materialize returns d.
func Constant(d *array.Dense) *Node {
	return &Node{
		op:    "Constant",
		shape: d.Shape().Clone(),
		run:   func([]*array.Dense) (array.Tensor, error) { return d, nil },
	}
}

// Defer creates a leaf whose value is produced by src on first use.
// The caller promises that src returns a tensor of the given shape;
// a different shape is reported as array.ErrShapeMismatch at evaluation.
func Defer(name string, shape array.Shape, src func() (*array.Dense, error)) *Node {
	return &Node{
		op:    name,
		shape: shape.Clone(),
		run:   func([]*array.Dense) (array.Tensor, error) { return src() },
	}
}

// Shape implements array.Tensor without evaluating the node.
func (n *Node) Shape() array.Shape { return n.shape }

// DType implements array.Tensor.
func (n *Node) DType() array.DType { return array.Float64 }

// Backend implements array.Tensor.
func (n *Node) Backend() array.Backend { return Backend{} }

// Op returns the recorded operation name.
func (n *Node) Op() string { return n.op }

// Inputs returns the operand tensors of the node.
func (n *Node) Inputs() []array.Tensor { return n.inputs }

// Evaluated reports whether Materialize has already run.
func (n *Node) Evaluated() bool { return n.done.Load() }

// Materialize evaluates the node (and its inputs) once and returns the value.
func (n *Node) Materialize() (*array.Dense, error) {
	n.once.Do(n.evaluate)

	return n.val, n.err
}

func (n *Node) evaluate() {
	defer n.done.Store(true)
	in := make([]*array.Dense, len(n.inputs))
	for i, t := range n.inputs {
		d, err := array.Materialize(t)
		if err != nil {
			n.err = fmt.Errorf("lazy.%s: input %d: %w", n.op, i, err)
			return
		}
		in[i] = d
	}
	out, err := n.run(in)
	if err != nil {
		n.err = fmt.Errorf("lazy.%s: %w", n.op, err)
		return
	}
	d, err := array.Materialize(out)
	if err != nil {
		n.err = fmt.Errorf("lazy.%s: %w", n.op, err)
		return
	}
	if !d.Shape().Equal(n.shape) {
		n.err = fmt.Errorf("lazy.%s: got shape %v, want %v: %w", n.op, d.Shape(), n.shape, array.ErrShapeMismatch)
		return
	}
	n.val = d
}

// String describes the node without evaluating it: "lazy.Add(shape=(3,))".
func (n *Node) String() string {
	return fmt.Sprintf("lazy.%s(shape=%v)", n.op, n.shape)
}
