// SPDX-License-Identifier: MIT

package stochastic

import (
	"math"

	"github.com/katalvlaran/numlab/numeric"
)

// The errSign* helpers return the sign of (exact - r) for r, the
// round-to-nearest result of one operation: +1 when the exact result lies
// above r, -1 below, 0 when r is exact. Non-finite results report 0.

// errSignAdd uses TwoSum, valid in any binary format with round-to-nearest.
func errSignAdd[T numeric.Float](a, b, r T) int {
	if !finite(r) {
		return 0
	}
	bv := T(r - a)
	av := T(r - bv)
	e := T(T(a-av) + T(b-bv))

	return sign(float64(e))
}

// errSignMul uses FMA for float64; a float32 product is exact in float64.
func errSignMul[T numeric.Float](a, b, r T) int {
	if !finite(r) {
		return 0
	}
	if numeric.IsDouble[T]() {
		return sign(math.FMA(float64(a), float64(b), -float64(r)))
	}

	return sign(float64(a)*float64(b) - float64(r))
}

// errSignDiv looks at the remainder a - r*b, exact through FMA for float64
// and through the exact float64 product for float32.
func errSignDiv[T numeric.Float](a, b, r T) int {
	if !finite(r) || b == 0 {
		return 0
	}
	var rem float64
	if numeric.IsDouble[T]() {
		rem = -math.FMA(float64(r), float64(b), -float64(a))
	} else {
		rem = float64(a) - float64(r)*float64(b)
	}
	if b < 0 {
		return -sign(rem)
	}

	return sign(rem)
}

// nextUp and nextDown move r by one ulp in T.
func nextUp[T numeric.Float](r T) T {
	if numeric.IsDouble[T]() {
		return T(math.Nextafter(float64(r), math.Inf(1)))
	}

	return T(math.Nextafter32(float32(r), float32(math.Inf(1))))
}

func nextDown[T numeric.Float](r T) T {
	if numeric.IsDouble[T]() {
		return T(math.Nextafter(float64(r), math.Inf(-1)))
	}

	return T(math.Nextafter32(float32(r), float32(math.Inf(-1))))
}

// randomRound turns the nearest result r into either the upward or the
// downward rounding of the exact result, picked by a fair coin.
// A nil context leaves r untouched.
func randomRound[T numeric.Float](c *Context, r T, s int) T {
	if c == nil || s == 0 {
		return r
	}
	if c.coin() { // round toward +Inf
		if s > 0 {
			return nextUp(r)
		}

		return r
	}
	if s < 0 { // round toward -Inf
		return nextDown(r)
	}

	return r
}

func finite[T numeric.Float](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
