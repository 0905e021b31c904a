// SPDX-License-Identifier: MIT

// Package matrix - bridge into gonum for LAPACK-backed reference answers.
package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a new *mat.Dense. The copy is independent of m.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	src, ok := m.(*Dense)
	if !ok {
		var err error
		if src, err = denseCopy(m); err != nil {
			return nil, err
		}
	}
	r, c := src.Shape()
	buf := make([]float64, r*c)
	copy(buf, src.data)

	return mat.NewDense(r, c, buf), nil
}
