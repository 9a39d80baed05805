// SPDX-License-Identifier: MIT

// Command lvunit converts values between units and inspects dimensions.
package main

import "github.com/katalvlaran/lvunit/internal/cli"

func main() {
	cli.Execute()
}
