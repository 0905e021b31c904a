// SPDX-License-Identifier: MIT

package hilbert_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/hilbert"
	"github.com/katalvlaran/numlab/numeric"
)

// ExampleExact prints the first exact determinants.
func ExampleExact() {
	for n := 1; n <= 4; n++ {
		fmt.Printf("det(H_%d) = %s\n", n, hilbert.Exact(n).RatString())
	}
	// Output:
	// det(H_1) = 1
	// det(H_2) = 1/12
	// det(H_3) = 1/2160
	// det(H_4) = 1/6048000
}

// ExampleDeterminant computes det(H_3) in double precision.
func ExampleDeterminant() {
	res, err := hilbert.Determinant[numeric.Plain[float64]](numeric.PlainField[float64]{}, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.10e\n", res.Det.Float64())
	// Output: 4.6296296296e-04
}
