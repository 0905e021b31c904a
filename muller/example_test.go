// SPDX-License-Identifier: MIT

package muller_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/muller"
	"github.com/katalvlaran/numlab/numeric"
)

// ExampleSequence prints the first terms next to their exact values.
func ExampleSequence() {
	terms, err := muller.Sequence(numeric.PlainField[float64]{}, muller.WithLast[numeric.Plain[float64]](4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, tm := range terms {
		fmt.Printf("U(%d) = %.9f exact %s\n", tm.N, tm.U.Float64(), muller.Exact(tm.N).FloatString(9))
	}
	// Output:
	// U(2) = 5.590163934 exact 5.590163934
	// U(3) = 5.633431085 exact 5.633431085
	// U(4) = 5.674648621 exact 5.674648621
}
