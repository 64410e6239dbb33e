// SPDX-License-Identifier: MIT
// Package: relaxwalk/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Nodes are created in row-major order, so cell (r,c) gets id first+r*cols+c.
//   • For each cell, the Right link is emitted before the Bottom link.

package builder

import (
	"fmt"

	"github.com/katalvlaran/relaxwalk/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewNodes)
		}

		ids := g.CreateNodes(rows * cols)
		at := func(r, c int) core.NodeID { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
