package array_test

import (
	"fmt"

	"github.com/katalvlaran/lvunit/array"
)

// ExampleEager_Binary shows broadcasting a row vector over a matrix.
func ExampleEager_Binary() {
	m, _ := array.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	row, _ := array.FromSlice([]float64{10, 20, 30})

	sum, _ := array.Eager{}.Binary(array.OpAdd, m, row)
	fmt.Println(sum)
	// Output:
	// [[11 22 33] [14 25 36]]
}

// ExampleEager_Reduce sums each column of a matrix.
func ExampleEager_Reduce() {
	m, _ := array.FromRows([][]float64{{1, 2}, {3, 4}})
	cols, _ := array.Eager{}.Reduce(array.ReduceSum, m, 0)
	total, _ := array.Eager{}.Reduce(array.ReduceSum, m, array.AllAxes)
	fmt.Println(cols, total)
	// Output:
	// [4 6] 10
}
