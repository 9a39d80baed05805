// SPDX-License-Identifier: MIT

package format_test

import (
	"fmt"

	"github.com/katalvlaran/lvunit/format"
	"github.com/katalvlaran/lvunit/quantity"
	"github.com/katalvlaran/lvunit/unit"
)

func ExampleInBestUnit() {
	fmt.Println(format.InBestUnit(unit.Volt.Of(3)))
	fmt.Println(format.InBestUnit(unit.Volt.Of(0.003)))

	ms, _ := unit.CreateScaled(unit.Second, "m")
	arr, _ := quantity.Array(ms.Of(500), unit.Second.Of(1))
	fmt.Println(format.InBestUnit(arr))
	fmt.Println(format.InBestUnit(unit.Kilogram.Of(70)))
	// Output:
	// 3. V
	// 3. mV
	// [0.5 1.] s
	// 70. kg
}

func ExampleFormatter_InUnit() {
	f := format.New(format.WithDimStyle(format.DimFraction))
	km, _ := unit.CreateScaled(unit.Metre, "k")

	s, _ := f.InUnit(unit.Metre.Of(1500), km)
	fmt.Println(s)

	accel := unit.Metre.Div(unit.Second.Pow(2))
	s, _ = f.InUnit(accel.Of(9.81), accel)
	fmt.Println(s)
	// Output:
	// 1.5 km
	// 9.81 m/s^2
}
