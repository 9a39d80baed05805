// SPDX-License-Identifier: MIT

package quantity

import (
	"github.com/katalvlaran/lvunit/array"
	"github.com/katalvlaran/lvunit/dimension"
)

var reduceRule = [...]dimension.Op{
	array.ReduceSum:    dimension.OpSum,
	array.ReduceMean:   dimension.OpMean,
	array.ReduceMin:    dimension.OpMin,
	array.ReduceMax:    dimension.OpMax,
	array.ReduceMedian: dimension.OpMedian,
	array.ReducePtp:    dimension.OpPtp,
	array.ReduceVar:    dimension.OpVar,
	array.ReduceStd:    dimension.OpStd,
	array.ReduceProd:   dimension.OpProd,
}

// reduce applies op along axis. Prod needs the element count for its
// dimension, which is known from the shape alone.
func (q Quantity) reduce(op array.ReduceOp, axis int) (Quantity, error) {
	var n dimension.Exponent
	if op == array.ReduceProd {
		cnt, err := array.ReducedCount(q.Shape(), axis)
		if err != nil {
			return Quantity{}, quantityErrorf(op.String(), err)
		}
		n = dimension.Int(int64(cnt))
	}
	d, err := applyRule(reduceRule[op], q.dim, dimension.Dimensionless, n)
	if err != nil {
		return Quantity{}, err
	}
	t, err := array.BackendFor(q.mag).Reduce(op, q.mag, axis)
	if err != nil {
		return Quantity{}, quantityErrorf(op.String(), err)
	}

	return Quantity{mag: t, dim: d}, nil
}

// Sum totals along axis (array.AllAxes for the whole payload).
func (q Quantity) Sum(axis int) (Quantity, error) { return q.reduce(array.ReduceSum, axis) }

// Mean averages along axis.
func (q Quantity) Mean(axis int) (Quantity, error) { return q.reduce(array.ReduceMean, axis) }

// Min returns the minimum along axis.
func (q Quantity) Min(axis int) (Quantity, error) { return q.reduce(array.ReduceMin, axis) }

// Max returns the maximum along axis.
func (q Quantity) Max(axis int) (Quantity, error) { return q.reduce(array.ReduceMax, axis) }

// Median returns the median along axis.
func (q Quantity) Median(axis int) (Quantity, error) { return q.reduce(array.ReduceMedian, axis) }

// Ptp returns max - min along axis.
func (q Quantity) Ptp(axis int) (Quantity, error) { return q.reduce(array.ReducePtp, axis) }

// Std returns the population standard deviation along axis.
func (q Quantity) Std(axis int) (Quantity, error) { return q.reduce(array.ReduceStd, axis) }

// Var returns the population variance along axis; the dimension is squared.
func (q Quantity) Var(axis int) (Quantity, error) { return q.reduce(array.ReduceVar, axis) }

// Prod multiplies along axis; the dimension is raised to the number of
// multiplied elements.
func (q Quantity) Prod(axis int) (Quantity, error) { return q.reduce(array.ReduceProd, axis) }

// Cumsum returns running totals along axis.
func (q Quantity) Cumsum(axis int) (Quantity, error) {
	return q.scan(array.ScanCumsum, dimension.OpCumsum, axis)
}

// Cumprod returns running products along axis. Each output element would
// carry a different power of the dimension, so q must be dimensionless.
func (q Quantity) Cumprod(axis int) (Quantity, error) {
	return q.scan(array.ScanCumprod, dimension.OpCumprod, axis)
}

func (q Quantity) scan(op array.ScanOp, rule dimension.Op, axis int) (Quantity, error) {
	d, err := applyRule(rule, q.dim, dimension.Dimensionless, dimension.Exponent{})
	if err != nil {
		return Quantity{}, err
	}
	t, err := array.BackendFor(q.mag).Scan(op, q.mag, axis)
	if err != nil {
		return Quantity{}, quantityErrorf(op.String(), err)
	}

	return Quantity{mag: t, dim: d}, nil
}
