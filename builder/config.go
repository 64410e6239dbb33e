// SPDX-License-Identifier: MIT
// Package: relaxwalk/builder
//
// config.go - builder configuration resolved from BuilderOption values.
//
// Defaults are deterministic: no RNG and a constant link distance of 1.

package builder

import (
	"fmt"
	"math/rand"
)

// defaultDistance is the link distance used when no weight option is given.
const defaultDistance = int64(1)

// WeightFn draws one link distance. rng may be nil when no source was configured.
type WeightFn func(rng *rand.Rand) int64

// BuilderOption configures BuildGraph.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn
	err      error // first option violation
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: ConstantWeight(defaultDistance),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand sets the random source. nil disables randomness.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed sets a deterministic random source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the distance generator. nil keeps the current one.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithUniformWeight draws distances uniformly from [lo, hi].
// Requires 0 <= lo <= hi; violations surface from BuildGraph as ErrOptionViolation.
func WithUniformWeight(lo, hi int64) BuilderOption {
	return func(c *builderConfig) {
		if lo < 0 || hi < lo {
			if c.err == nil {
				c.err = fmt.Errorf("%w: uniform weight range [%d,%d]", ErrOptionViolation, lo, hi)
			}
			return
		}
		c.weightFn = UniformWeight(lo, hi)
	}
}

// ConstantWeight always returns w.
func ConstantWeight(w int64) WeightFn {
	return func(*rand.Rand) int64 { return w }
}

// UniformWeight returns lo + [0, hi-lo]. Without an RNG it returns lo.
func UniformWeight(lo, hi int64) WeightFn {
	return func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}
