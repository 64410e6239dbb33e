// SPDX-License-Identifier: MIT
// Package walker_test contains fixtures shared by walker tests.

package walker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relaxwalk/core"
)

// seedLinks is the seed scenario: nodes 1–7 form one component,
// 8–10 a separate chain.
var seedLinks = []struct {
	a, b core.NodeID
	d    int64
}{
	{1, 2, 20},
	{1, 6, 99},
	{2, 3, 20},
	{2, 5, 10},
	{3, 4, 30},
	{5, 4, 30},
	{4, 6, 5},
	{1, 7, 5},
	{7, 2, 5},
	{8, 9, 21},
	{9, 10, 21},
}

// seedNodeCount is the number of nodes in the seed scenario.
const seedNodeCount = 10

// seedRelaxations1to6 is the number of FIFO relaxations for the query 1 → 6.
const seedRelaxations1to6 = 16

// newSeedGraph builds the seed scenario.
func newSeedGraph(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	g.CreateNodes(seedNodeCount)
	for _, l := range seedLinks {
		require.NoError(t, g.CreateLink(l.a, l.b, l.d))
	}

	return g
}

// pathWeight sums Distance over consecutive pairs; -1 if a hop has no connection.
func pathWeight(g *core.Graph, nodes []core.NodeID) int64 {
	var total int64
	for i := 1; i < len(nodes); i++ {
		d := g.Distance(nodes[i-1], nodes[i])
		if d == core.NoConnection {
			return core.NoConnection
		}
		total += d
	}

	return total
}

// reverse returns a reversed copy of ids.
func reverse(ids []core.NodeID) []core.NodeID {
	out := make([]core.NodeID, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}

	return out
}
