// Package core provides the thread-safe, in-memory graph container used by the
// shortest-path walker.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Nodes are opaque NodeID values handed out sequentially from 1 by CreateNode.
//     The counter belongs to the Graph instance; a new Graph starts over at 1.
//   - Connections are undirected and weighted. A connection A–B answers
//     neighbor and distance queries for both A and B.
//   - Parallel connections and self-loops are kept as inserted.
//   - A per-node incidence index (connection indices in insertion order) keeps
//     Neighbors and Distance proportional to the node degree.
//
// Ordering guarantees:
//
//	– NodeIDs()       creation order.
//	– Connections()   insertion order.
//	– Neighbors(id)   insertion order of the incident connections.
//	– Distance(x, y)  weight of the FIRST inserted connection joining x and y,
//	                  even if a later parallel connection is shorter.
//
// Validation:
//
//	CreateLink rejects endpoints never returned by CreateNode (ErrUnknownNode)
//	and negative distances (ErrInvalidWeight). WithNegativeWeights() lifts the
//	weight check; shortest paths over such graphs are undefined.
//
// Sentinel value:
//
//	NoConnection (-1) means "no edge" for Distance and is reused by the walker
//	for "no predecessor" and "unreachable".
//
// Concurrency:
//
//	A single sync.RWMutex guards the Graph. Queries share the read lock, so any
//	number of walkers may run against the same Graph; CreateNode and CreateLink
//	take the write lock. Snapshots (NodeIDs, Connections) are copies and never
//	alias internal storage.
//
// Example:
//
//	g := core.NewGraph()
//	a, b := g.CreateNode(), g.CreateNode()
//	if err := g.CreateLink(a, b, 7); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Neighbors(a), g.Distance(b, a)) // [2] 7
package core
