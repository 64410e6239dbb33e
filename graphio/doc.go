// Package graphio loads shortest-path scenarios from YAML and runs them.
//
// A scenario names a node count, the undirected links between nodes 1..N, and the
// queries to answer:
//
//	nodes: 3
//	links:
//	  - {a: 1, b: 2, distance: 4}
//	  - {a: 2, b: 3, distance: 1}
//	queries:
//	  - {from: 1, to: 3}
//
// Decode/Load parse (gopkg.in/yaml.v3, unknown keys rejected) and validate
// (go-playground/validator: node count in 0..1<<20, non-negative distances, endpoints
// in 1..N).
// Document.Build turns a document into a core.Graph; FromGraph and Encode go the
// other way. Runner.Run answers every query through walker.FindShortestPath, and
// Report prints the results.
//
// Errors (sentinel):
//
//	– ErrDecode           malformed YAML or unknown keys.
//	– ErrInvalidDocument  validation failed; the message names the first bad field.
//	– ErrNilDocument      nil *Document.
//	– ErrNilGraph         nil *core.Graph passed to FromGraph.
package graphio
