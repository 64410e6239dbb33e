// SPDX-License-Identifier: MIT
// Package: relaxwalk/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach the method name via %w.

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, rows, cols) is below the
// constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid BuilderOption value.
var ErrOptionViolation = errors.New("builder: invalid option value")
