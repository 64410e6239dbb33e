// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for relaxwalk/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared across core tests.
//   - Keep magic numbers out of test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relaxwalk/core"
)

// Common weights used across core tests.
const (
	Weight0  = 0
	Weight5  = 5
	Weight7  = 7
	Weight10 = 10
	Weight20 = 20
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentNodes = 200
	NReaders         = 50
)

// link is a compact connection literal for fixtures.
type link struct {
	a, b core.NodeID
	d    int64
}

// buildGraph creates n nodes and the given links, failing the test on any error.
func buildGraph(t *testing.T, n int, links ...link) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	ids := g.CreateNodes(n)
	require.Len(t, ids, n)
	for _, l := range links {
		require.NoError(t, g.CreateLink(l.a, l.b, l.d))
	}

	return g
}

// scanDistance mirrors Distance with a full scan of Connections().
func scanDistance(g *core.Graph, x, y core.NodeID) int64 {
	for _, c := range g.Connections() {
		if c.Joins(x, y) {
			return c.Distance
		}
	}

	return core.NoConnection
}

// scanNeighbors mirrors Neighbors with a full scan of Connections().
func scanNeighbors(g *core.Graph, id core.NodeID) []core.NodeID {
	out := []core.NodeID{}
	for _, c := range g.Connections() {
		if c.A == id {
			out = append(out, c.B)
		} else if c.B == id {
			out = append(out, c.A)
		}
	}

	return out
}
