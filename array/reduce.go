// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Provide axis reductions (sum, mean, min, max, median, ptp, var, std,
//     prod) and cumulative scans (cumsum, cumprod) as deterministic kernels.
//
// Layout:
//   - A reduction along axis k views the buffer as [outer][n][inner] where
//     n = shape[k]; element (o, j, i) lives at (o*n + j)*inner + i.
//   - AllAxes is the degenerate case outer = inner = 1, n = size.
//
// Policy:
//   - Sum over zero elements is 0 and Prod is 1; every other reduction of
//     zero elements returns ErrEmpty.
//   - Var/Std use the population divisor N (numpy ddof=0).
//   - NaN propagates through every reduction.

package array

import (
	"math"
	"sort"
)

// reduceLayout returns (outer, n, inner) for a reduction of s along axis.
func reduceLayout(s Shape, axis int) (outer, n, inner int, err error) {
	if axis == AllAxes {
		return 1, s.Size(), 1, nil
	}
	ax, err := normalizeAxis(axis, len(s))
	if err != nil {
		return 0, 0, 0, err
	}
	outer, inner = 1, 1
	for i := 0; i < ax; i++ {
		outer *= s[i]
	}
	for i := ax + 1; i < len(s); i++ {
		inner *= s[i]
	}

	return outer, s[ax], inner, nil
}

// reduceLane folds one lane of n values spaced by stride.
func reduceLane(op ReduceOp, data []float64, base, n, stride int, scratch []float64) (float64, error) {
	if n == 0 {
		switch op {
		case ReduceSum:
			return 0, nil
		case ReduceProd:
			return 1, nil
		default:
			return 0, ErrEmpty
		}
	}
	at := func(j int) float64 { return data[base+j*stride] }

	switch op {
	case ReduceSum, ReduceMean:
		s := 0.0
		for j := 0; j < n; j++ {
			s += at(j)
		}
		if op == ReduceMean {
			s /= float64(n)
		}
		return s, nil
	case ReduceProd:
		p := 1.0
		for j := 0; j < n; j++ {
			p *= at(j)
		}
		return p, nil
	case ReduceMin, ReduceMax, ReducePtp:
		lo, hi := at(0), at(0)
		for j := 1; j < n; j++ {
			v := at(j)
			if math.IsNaN(v) {
				return math.NaN(), nil
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if math.IsNaN(lo) {
			return math.NaN(), nil
		}
		switch op {
		case ReduceMin:
			return lo, nil
		case ReduceMax:
			return hi, nil
		default:
			return hi - lo, nil
		}
	case ReduceVar, ReduceStd:
		// Two-pass: mean first, then squared deviations (numerically stable enough
		// for the sizes this package targets and fully deterministic).
		mean := 0.0
		for j := 0; j < n; j++ {
			mean += at(j)
		}
		mean /= float64(n)
		ss := 0.0
		for j := 0; j < n; j++ {
			d := at(j) - mean
			ss += d * d
		}
		v := ss / float64(n)
		if op == ReduceStd {
			return math.Sqrt(v), nil
		}
		return v, nil
	case ReduceMedian:
		buf := scratch[:n]
		for j := 0; j < n; j++ {
			v := at(j)
			if math.IsNaN(v) {
				return math.NaN(), nil
			}
			buf[j] = v
		}
		sort.Float64s(buf)
		if n%2 == 1 {
			return buf[n/2], nil
		}
		return (buf[n/2-1] + buf[n/2]) / 2, nil
	default:
		return 0, ErrUnsupported
	}
}

// reduce applies op along axis (AllAxes flattens) and returns a new tensor.
// Complexity: O(size) time (O(size·log n) for median), O(size/n) space.
func reduce(op ReduceOp, a *Dense, axis int) (*Dense, error) {
	outer, n, inner, err := reduceLayout(a.shape, axis)
	if err != nil {
		return nil, arrayErrorf(op.String(), err)
	}
	shape, err := ReducedShape(a.shape, axis)
	if err != nil {
		return nil, arrayErrorf(op.String(), err)
	}
	out := newDenseShape(shape)
	var scratch []float64
	if op == ReduceMedian {
		scratch = make([]float64, n)
	}
	// Fixed o→i traversal; each lane reads n strided values.
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			v, err := reduceLane(op, a.data, o*n*inner+i, n, inner, scratch)
			if err != nil {
				return nil, arrayErrorf(op.String(), err)
			}
			out.data[o*inner+i] = v
		}
	}
	// A reduction with no lanes (outer or inner zero) but n == 0 still has to
	// report emptiness for identity-less ops.
	if len(out.data) == 0 && n == 0 && op != ReduceSum && op != ReduceProd {
		return nil, arrayErrorf(op.String(), ErrEmpty)
	}

	return out, nil
}

// scan computes a running sum or product along axis. AllAxes flattens first.
func scan(op ScanOp, a *Dense, axis int) (*Dense, error) {
	shape, err := ScannedShape(a.shape, axis)
	if err != nil {
		return nil, arrayErrorf(op.String(), err)
	}
	outer, n, inner, err := reduceLayout(a.shape, axis)
	if err != nil {
		return nil, arrayErrorf(op.String(), err)
	}
	out := newDenseShape(shape)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			base := o*n*inner + i
			acc := 0.0
			if op == ScanCumprod {
				acc = 1
			}
			for j := 0; j < n; j++ {
				off := base + j*inner
				if op == ScanCumprod {
					acc *= a.data[off]
				} else {
					acc += a.data[off]
				}
				out.data[off] = acc
			}
		}
	}

	return out, nil
}
