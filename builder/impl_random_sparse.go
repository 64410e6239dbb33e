// SPDX-License-Identifier: MIT
// Package: relaxwalk/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Contract:
//   • n ≥ 1, p ∈ [0,1].
//   • An RNG is required only when 0 < p < 1.
//   • Pairs (i,j) with i < j are sampled in ascending order, so a fixed seed
//     yields the same links in the same order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/relaxwalk/core"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
	probMin, probMax     = 0.0, 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n nodes with independent link probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseNodes, ErrTooFewNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := g.CreateNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !sample(cfg, p) {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// sample runs one Bernoulli trial; p of 0 or 1 never consumes the RNG.
func sample(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
