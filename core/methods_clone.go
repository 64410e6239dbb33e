// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clones carry nextNodeID, so CreateNode on a clone continues the source's sequence.
// Concurrency:
//   - Read lock on the source for snapshotting; the source is never mutated.

package core

// CloneEmpty returns a new Graph with the same configuration and nodes, but no connections.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneNodesLocked(0)
}

// Clone returns a deep copy of the Graph: configuration, nodes, connections and
// incidence order. Later mutations of either graph are invisible to the other.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneNodesLocked(len(g.connections))
	clone.connections = append(clone.connections, g.connections...)
	for id, idx := range g.incidence {
		clone.incidence[id] = append([]int(nil), idx...)
	}

	return clone
}

// cloneNodesLocked copies flags, the id counter and the node catalog.
// Caller must hold at least g.mu.RLock.
func (g *Graph) cloneNodesLocked(connCap int) *Graph {
	clone := NewGraph(WithCapacity(len(g.nodeIDs), connCap))
	clone.allowNegative = g.allowNegative
	clone.nextNodeID = g.nextNodeID
	clone.nodeIDs = append(clone.nodeIDs, g.nodeIDs...)

	return clone
}
