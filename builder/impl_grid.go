// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1, cols ≥ 1. Vertex (r,c) is b + r*cols + c (row-major).
//   - For each cell in row-major order: edge to the right neighbor, then to the
//     neighbor below.
//
// Complexity:
//   - Time: O(R*C) vertices + O(2*R*C) edges. Space: O(1) extra.

package builder

import "github.com/katalvlaran/degrees/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim {
			return tooFew(methodGrid, "rows", rows, minGridDim)
		}
		if cols < minGridDim {
			return tooFew(methodGrid, "cols", cols, minGridDim)
		}
		b := addBlock(g, rows*cols)
		cell := func(r, c int) int { return b + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(g, methodGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, methodGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
