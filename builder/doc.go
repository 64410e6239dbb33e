// SPDX-License-Identifier: MIT

// Package builder generates deterministic core.Graph fixtures: chains, rings,
// grids and random sparse graphs.
//
// BuildGraph is the single entry point. It creates the graph, resolves the
// BuilderOption values and applies constructors in order; each constructor
// appends its own fresh nodes, so several can be combined into one graph with
// disconnected components:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 9)},
//		builder.Grid(30, 30),
//		builder.Path(5),
//	)
//
// Link distances come from the configured WeightFn (constant 1 by default).
// With a fixed seed the same options and constructor order always give the same
// graph, which keeps benchmarks and property tests reproducible.
//
// Errors (sentinel, wrapped with the constructor name):
//
//	– ErrTooFewNodes         size parameter below the minimum.
//	– ErrInvalidProbability  p outside [0,1].
//	– ErrNeedRandSource      stochastic sampling without an RNG.
//	– ErrConstructFailed     nil constructor.
//	– ErrOptionViolation     invalid option value.
package builder
