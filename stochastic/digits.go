// SPDX-License-Identifier: MIT

package stochastic

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// tau is Student's t quantile at 95% confidence for Samples-1 degrees of freedom.
var tau = distuv.StudentsT{Mu: 0, Sigma: 1, Nu: Samples - 1}.Quantile(0.975)

// significantDigits estimates the exact decimal digits shared by xs:
//
//	C = log10( sqrt(N)*|mean| / (tau*stddev) )
//
// truncated and clamped to [0, maxDigits]. Identical non-zero samples carry
// maxDigits; all-zero samples carry none.
func significantDigits(xs []float64, maxDigits int) int {
	mean := stats.Mean(xs)
	if mean == 0 || math.IsNaN(mean) {
		return 0
	}
	if math.IsInf(mean, 0) {
		return maxDigits
	}
	sd := stats.StdDev(xs)
	if sd == 0 {
		return maxDigits
	}
	c := math.Log10(math.Sqrt(float64(len(xs))) * math.Abs(mean) / (tau * sd))
	switch {
	case c <= 0 || math.IsNaN(c):
		return 0
	case c >= float64(maxDigits):
		return maxDigits
	default:
		return int(c)
	}
}
