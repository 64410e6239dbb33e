// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors, Distance) backed by the incidence index.
// Determinism:
//   - Neighbors() follows connection insertion order.
//   - Distance() reports the first inserted matching connection.
// Concurrency:
//   - Read lock only; safe alongside other queries.

package core

// Neighbors returns, for every connection incident to id, the opposite endpoint.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Walk incidence[id] (insertion order) and map each connection to its other end.
//
// Behavior highlights:
//   - Parallel connections yield the neighbor once per connection.
//   - A self-loop yields id once.
//   - Unknown or isolated nodes yield an empty, non-nil slice.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the number of incident connections.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	incident := g.incidence[id]
	out := make([]NodeID, 0, len(incident))
	for _, idx := range incident {
		out = append(out, g.connections[idx].Other(id))
	}

	return out
}

// Distance returns the weight of the earliest inserted connection joining x and y
// in either orientation, or NoConnection when none exists.
//
// Later parallel connections are never consulted, even when shorter.
// Scanning incidence[x] gives the same answer as scanning every connection because
// the index preserves insertion order.
//
// Complexity:
//   - Time O(d) where d is the number of connections incident to x.
func (g *Graph) Distance(x, y NodeID) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, idx := range g.incidence[x] {
		if c := g.connections[idx]; c.Joins(x, y) {
			return c.Distance
		}
	}

	return NoConnection
}
