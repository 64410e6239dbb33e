// SPDX-License-Identifier: MIT
// Package: relaxwalk/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Both create n fresh nodes and link consecutive ones in creation order;
// Cycle adds the closing link from the last node back to the first.

package builder

import (
	"fmt"

	"github.com/katalvlaran/relaxwalk/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor for a simple chain of n nodes.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}

		return chain(g, cfg, methodPath, n, false)
	}
}

// Cycle returns a Constructor for a ring of n nodes.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}

		return chain(g, cfg, methodCycle, n, true)
	}
}

func chain(g *core.Graph, cfg builderConfig, method string, n int, closed bool) error {
	ids := g.CreateNodes(n)
	for i := 0; i+1 < n; i++ {
		if err := link(g, cfg, method, ids[i], ids[i+1]); err != nil {
			return err
		}
	}
	if closed {
		return link(g, cfg, method, ids[n-1], ids[0])
	}

	return nil
}
