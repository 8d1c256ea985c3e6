// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   - n ≥ 1; edges {i,j} for i<j in (i asc, j asc) order; no loops.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) edges. Space: O(1) extra.

package builder

import "github.com/katalvlaran/degrees/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		b := addBlock(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, methodComplete, b+i, b+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
