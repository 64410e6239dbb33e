// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeID, Connection, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - Graph state is guarded by a single sync.RWMutex (mu).
//   - Configuration flags are written only by options during NewGraph.

package core

import (
	"errors"
	"sync"
)

// NoConnection marks "no edge", "no predecessor" and "unreachable" depending on context.
// Node ids start at 1 and weights are non-negative by default, so -1 never collides
// with a valid value.
const NoConnection = -1

// firstNodeID is the identifier handed out by the first CreateNode call of a Graph.
const firstNodeID NodeID = 1

// Sentinel errors for graph construction.
var (
	// ErrUnknownNode indicates a connection endpoint that was never returned by CreateNode.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrInvalidWeight indicates a negative distance on a graph that does not allow it.
	ErrInvalidWeight = errors.New("core: invalid connection weight")
)

// NodeID is an opaque, positive node identifier, unique within its Graph.
type NodeID int

// Connection is an undirected, weighted link between two nodes.
//
// A connection between A and B answers adjacency queries for both A and B.
// Parallel connections between the same pair are kept as-is.
type Connection struct {
	// A is the first endpoint as passed to CreateLink.
	A NodeID

	// B is the second endpoint as passed to CreateLink.
	B NodeID

	// Distance is the weight of the connection.
	Distance int64
}

// Joins reports whether c links x and y, in either orientation.
func (c Connection) Joins(x, y NodeID) bool {
	return (c.A == x && c.B == y) || (c.B == x && c.A == y)
}

// Other returns the endpoint of c opposite to id.
// For a self-loop it returns id itself.
func (c Connection) Other(id NodeID) NodeID {
	if c.A == id {
		return c.B
	}

	return c.A
}

// GraphOption configures a Graph during NewGraph.
type GraphOption func(g *Graph)

// WithNegativeWeights lets CreateLink accept negative distances.
// Shortest-path results on such graphs are not defined.
func WithNegativeWeights() GraphOption {
	return func(g *Graph) { g.allowNegative = true }
}

// WithCapacity preallocates room for the expected number of nodes and connections.
func WithCapacity(nodes, connections int) GraphOption {
	return func(g *Graph) {
		if nodes > 0 {
			g.nodeIDs = make([]NodeID, 0, nodes)
			g.incidence = make(map[NodeID][]int, nodes)
		}
		if connections > 0 {
			g.connections = make([]Connection, 0, connections)
		}
	}
}

// Graph is an in-memory, undirected, weighted graph with sequential node ids.
//
// nodeIDs keeps creation order and connections keeps insertion order.
// incidence[id] lists indices into connections for every connection touching id,
// in insertion order, so per-node scans see exactly what a full scan would.
type Graph struct {
	mu sync.RWMutex // guards everything below

	allowNegative bool // accept negative distances in CreateLink

	nextNodeID  NodeID           // next id handed out by CreateNode
	nodeIDs     []NodeID         // creation order
	connections []Connection     // insertion order
	incidence   map[NodeID][]int // node → indices into connections
}

// NewGraph creates an empty Graph. The first created node gets id 1.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nextNodeID: firstNodeID,
		incidence:  make(map[NodeID][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
