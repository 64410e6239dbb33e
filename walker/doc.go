// Package walker finds the shortest path between two nodes of a core.Graph.
//
// Overview:
//
//   - FindShortestPath(g, source, target, opts...) returns a Path value.
//   - Unreachable targets are data, not errors: Path.TotalDistance == core.NoConnection
//     and Path.Nodes is empty (see NoPath and Path.Found).
//   - Describe and Fprint render a Path for humans; they read only its public fields.
//
// Algorithm (StrategyFIFO, default):
//
//  1. One visit record per graph node: best distance 0, predecessor core.NoConnection.
//  2. A FIFO queue is seeded with the source.
//  3. For each dequeued node and each of its neighbors (core.Graph.Neighbors, insertion
//     order) the candidate is best(curr) + Distance(curr, next). The neighbor is relaxed
//     (best, predecessor, pushed to the back of the queue) when it was never reached or
//     the candidate is strictly shorter.
//  4. When the queue drains, the target's predecessor chain is walked back to the source
//     and reversed.
//
// Nodes are not finalized: a node is re-queued every time its distance improves, in the
// manner of a queue-based Bellman–Ford. For non-negative weights this yields exact shortest
// distances; the FIFO discipline together with insertion-ordered neighbors fixes which of
// several equal-length paths is reported.
//
// StrategyHeap finalizes nodes in distance order using a binary min-heap with lazy
// decrease-key and stops once the target is settled. Distances are identical for
// non-negative weights; ties may resolve to a different path.
//
// Parallel connections: core.Graph.Distance reports the earliest inserted connection, so a
// later, cheaper parallel connection is never used.
// Self-loops are skipped by both strategies.
//
// Same-node queries: source == target returns the zero-hop path [source] with distance 0.
//
// Options:
//
//	– WithContext(ctx):        cancellation, checked once per dequeued node.
//	– WithLogger(*zap.Logger): debug traces of every relaxation and a per-query summary.
//	– WithOnRelax(fn):         hook fired on every relaxation.
//	– WithStrategy(s):         StrategyFIFO (default) or StrategyHeap.
//	– WithMaxRelaxations(n):   abort with ErrRelaxationLimit after n relaxations.
//
// Errors (sentinel):
//
//	– ErrNilGraph         graph pointer is nil.
//	– ErrUnknownNode      source or target is not a node of the graph.
//	– ErrOptionViolation  an option was invalid.
//	– ErrRelaxationLimit  MaxRelaxations exceeded.
//	– ErrBrokenChain      predecessor table holds a cycle (invariant check; strict
//	                      relaxation never produces one).
//
// Complexity (StrategyFIFO):
//
//   - Time:  no tight bound; each improvement re-queues a node. O(V·E·d) worst case,
//     where d is the maximum degree (neighbor and distance lookups are O(d)).
//   - Space: O(V) visit records plus the queue.
//
// Thread safety:
//
//   - Each call owns its visit records and queue; the graph is only read.
//     core.Graph locks each lookup, so queries may run concurrently with each other.
//   - A query does not hold the graph lock between lookups. Nodes created while it
//     runs have no visit record and are skipped; the caller should not mutate the
//     graph during a query.
package walker
