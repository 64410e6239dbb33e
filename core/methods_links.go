// SPDX-License-Identifier: MIT
//
// File: methods_links.go
// Role: Connection lifecycle & catalog queries: CreateLink, Connections, ConnectionCount.
// Determinism:
//   - Connections() returns insertion order.
// Concurrency:
//   - CreateLink takes the write lock; queries take the read lock.

package core

import "fmt"

// CreateLink appends an undirected connection between a and b.
//
// Implementation:
//   - Stage 1: Under the write lock, check both endpoints were created by this Graph.
//   - Stage 2: Reject negative distances unless WithNegativeWeights was given.
//   - Stage 3: Append the connection and index it under both endpoints
//     (once for a self-loop).
//
// Behavior highlights:
//   - Parallel connections are kept; Distance() always reports the earliest one.
//   - Self-loops are accepted.
//
// Errors:
//   - ErrUnknownNode: a or b was never returned by CreateNode.
//   - ErrInvalidWeight: distance < 0 on a graph without WithNegativeWeights.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) CreateLink(a, b NodeID, distance int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasNodeLocked(a) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, a)
	}
	if !g.hasNodeLocked(b) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, b)
	}
	if distance < 0 && !g.allowNegative {
		return fmt.Errorf("%w: %d between %d and %d", ErrInvalidWeight, distance, a, b)
	}

	idx := len(g.connections)
	g.connections = append(g.connections, Connection{A: a, B: b, Distance: distance})
	g.incidence[a] = append(g.incidence[a], idx)
	if a != b {
		g.incidence[b] = append(g.incidence[b], idx)
	}

	return nil
}

// Connections returns a snapshot of all connections in insertion order.
// Complexity: O(E).
func (g *Graph) Connections() []Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Connection, len(g.connections))
	copy(out, g.connections)

	return out
}

// ConnectionCount returns the number of connections, parallel ones included.
// Complexity: O(1).
func (g *Graph) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.connections)
}
