// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_cycle.go - Cycle(n).
//
// Contract:
//   - n ≥ 3; path edges in ascending order, then the closing edge (b+n-1, b).
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges. Space: O(1) extra.

package builder

import "github.com/katalvlaran/degrees/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		b := addBlock(g, n)
		for i := 0; i < n; i++ {
			if err := connect(g, methodCycle, b+i, b+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
