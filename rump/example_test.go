// SPDX-License-Identifier: MIT

package rump_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/rump"
)

// ExampleExactAtPoint prints the exact value at (77617, 33096).
func ExampleExactAtPoint() {
	v := rump.ExactAtPoint()
	fmt.Println(v.RatString(), v.FloatString(12))
	// Output: -54767/66192 -0.827396059947
}
