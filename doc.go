// Package relaxwalk answers shortest-path queries over small undirected,
// non-negatively weighted graphs.
//
// The module is organized into four packages and one command:
//
//	core/           Graph container: sequential node ids, undirected links, neighbor
//	                and distance lookups, all guarded by an RWMutex
//	walker/         FindShortestPath (FIFO label-correcting relaxation, optional heap
//	                strategy), Path results and their textual report
//	graphio/        YAML scenario documents: decode, validate, build, run, encode
//	builder/        deterministic graph fixtures: path, cycle, grid, random sparse
//	cmd/relaxwalk/  command-line runner for scenario files
//
// Quick start:
//
//	g := core.NewGraph()
//	a, b, c := g.CreateNode(), g.CreateNode(), g.CreateNode()
//	_ = g.CreateLink(a, b, 4)
//	_ = g.CreateLink(b, c, 1)
//
//	p, err := walker.FindShortestPath(g, a, c)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(walker.Describe(p))
//	// Shortest distance between nodes 1 and 3 is: 5
//	// Full path is composed of nodes: [1, 2, 3]
//
// Logging goes through go.uber.org/zap and is silent unless a logger is supplied.
package relaxwalk
