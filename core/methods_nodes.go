// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries: CreateNode, CreateNodes, HasNode, NodeIDs, NodeCount.
// Determinism:
//   - Ids are handed out sequentially from 1; NodeIDs() returns creation order.
// Concurrency:
//   - CreateNode/CreateNodes take the write lock; queries take the read lock.

package core

// CreateNode allocates the next sequential node id and registers it.
//
// Implementation:
//   - Stage 1: Acquire the write lock.
//   - Stage 2: Take the counter value, record it, advance the counter.
//
// Behavior highlights:
//   - Never fails; the counter belongs to this Graph only.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) CreateNode() NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.createNodeLocked()
}

// CreateNodes allocates n nodes and returns their ids in creation order.
// n <= 0 returns an empty slice.
// Complexity: O(n).
func (g *Graph) CreateNodes(n int) []NodeID {
	if n <= 0 {
		return []NodeID{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]NodeID, n)
	for i := range ids {
		ids[i] = g.createNodeLocked()
	}

	return ids
}

// createNodeLocked must be called with g.mu held for writing.
func (g *Graph) createNodeLocked() NodeID {
	id := g.nextNodeID
	g.nodeIDs = append(g.nodeIDs, id)
	g.nextNodeID++

	return id
}

// HasNode reports whether id was created by this Graph.
//
// Ids are dense and never removed, so membership is a range check.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNodeLocked(id)
}

func (g *Graph) hasNodeLocked(id NodeID) bool {
	return id >= firstNodeID && id < g.nextNodeID
}

// NodeIDs returns a snapshot of all node ids in creation order.
//
// The returned slice is a copy: mutating it never affects the Graph.
// Complexity: O(V).
func (g *Graph) NodeIDs() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, len(g.nodeIDs))
	copy(out, g.nodeIDs)

	return out
}

// NodeCount returns the number of created nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodeIDs)
}
