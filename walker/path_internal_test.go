package walker

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/relaxwalk/core"
)

// TestPathRejectsCyclicPredecessors feeds path() a predecessor table that loops
// between two nodes without reaching the source.
func TestPathRejectsCyclicPredecessors(t *testing.T) {
	g := core.NewGraph()
	g.CreateNodes(3)

	w := newWalker(g, DefaultOptions(), zap.NewNop(), 1, 3)
	w.visits[2].from, w.visits[2].best = 3, 1
	w.visits[3].from, w.visits[3].best = 2, 1

	_, err := w.path()
	require.ErrorIs(t, err, ErrBrokenChain)
	require.Contains(t, err.Error(), "1 → 3")
}

// TestPathWalksPredecessors rebuilds a valid chain in source → target order.
func TestPathWalksPredecessors(t *testing.T) {
	g := core.NewGraph()
	g.CreateNodes(3)

	w := newWalker(g, DefaultOptions(), zap.NewNop(), 1, 3)
	w.visits[2].from, w.visits[2].best = 1, 4
	w.visits[3].from, w.visits[3].best = 2, 9

	p, err := w.path()
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{1, 2, 3}, p.Nodes)
	require.Equal(t, int64(9), p.TotalDistance)
}
