// Package array is the numeric payload layer underneath quantities: an
// N-dimensional float64 tensor with numpy-style broadcasting, axis
// reductions and copy-based indexing.
//
// The package provides:
//
//   - Tensor and Backend, the contracts the quantity layer forwards to.
//   - Dense, a row-major eager tensor, and Eager, the backend operating on it.
//   - Shape inference helpers (BroadcastShapes, ReducedShape, ...) so that a
//     deferred backend (see array/lazy) can answer Shape() without evaluating.
//
// All kernels are pure: every operation allocates its result and leaves the
// inputs untouched. Errors are package sentinels (ErrShapeMismatch,
// ErrOutOfRange, ...) wrapped with an operation tag; match them with errors.Is.
//
//	a, _ := array.FromSlice([]float64{1, 2, 3})
//	b := array.Scalar(10)
//	c, _ := array.Eager{}.Binary(array.OpMul, a, b) // [10 20 30]
package array
