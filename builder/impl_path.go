// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_path.go - Path(n) and Isolated(n).
//
// Contract:
//   - Path: n ≥ 2; edges (b,b+1),(b+1,b+2),… in ascending order.
//   - Isolated: n ≥ 1; vertices only.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(1) extra.

package builder

import "github.com/katalvlaran/degrees/core"

const (
	methodPath       = "Path"
	methodIsolated   = "Isolated"
	minPathNodes     = 2
	minIsolatedNodes = 1
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		b := addBlock(g, n)
		for i := 0; i+1 < n; i++ {
			if err := connect(g, methodPath, b+i, b+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that adds n vertices with no edges.
func Isolated(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minIsolatedNodes {
			return tooFew(methodIsolated, "n", n, minIsolatedNodes)
		}
		addBlock(g, n)

		return nil
	}
}
