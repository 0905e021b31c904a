// SPDX-License-Identifier: MIT

// Package matrix - builders for the classic lab matrices.
package matrix

// NewHilbert returns the n×n Hilbert matrix H[i][j] = 1/(i+j+1) (zero-based).
// Every cell is the correctly rounded float64 reciprocal.
// Complexity: O(n^2).
func NewHilbert(n int) (*Dense, error) {
	h, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			h.data[i*n+j] = 1.0 / float64(i+j+1)
		}
	}

	return h, nil
}
