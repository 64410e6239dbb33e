// SPDX-License-Identifier: MIT
// Package: relaxwalk/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Determinism: same options, seed and constructor order give identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/relaxwalk/core"
)

// Constructor adds nodes and links to g using the resolved configuration.
// Constructors validate their parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies cons in
// order. Constructor errors are wrapped as "BuildGraph: %w".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}

	g := core.NewGraph(gopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// link draws a distance and connects a and b.
func link(g *core.Graph, cfg builderConfig, method string, a, b core.NodeID) error {
	d := cfg.weightFn(cfg.rng)
	if err := g.CreateLink(a, b, d); err != nil {
		return fmt.Errorf("%s: CreateLink(%d, %d, %d): %w", method, a, b, d, err)
	}

	return nil
}
