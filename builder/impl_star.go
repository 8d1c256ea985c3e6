// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first vertex of the block; leaves follow in ascending order.
//   - Emits spokes in stable order hub → leaf[i], i = 1..n-1.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(1) extra.

package builder

import "github.com/katalvlaran/degrees/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		hub := addBlock(g, n)
		for i := 1; i < n; i++ {
			if err := connect(g, methodStar, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}
