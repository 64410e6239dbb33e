// Package walker defines the path result, tunable options and error definitions
// for shortest-path queries over a core.Graph.
package walker

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/relaxwalk/core"
)

// Sentinel errors for FindShortestPath.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("walker: graph is nil")

	// ErrUnknownNode is returned when the source or target is not a node of the graph.
	ErrUnknownNode = errors.New("walker: node not found in graph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walker: invalid option supplied")

	// ErrRelaxationLimit is returned when a query exceeds Options.MaxRelaxations.
	ErrRelaxationLimit = errors.New("walker: relaxation limit exceeded")

	// ErrBrokenChain is returned when the predecessor chain of the target does not
	// lead back to the source within NodeCount steps. Strict relaxation keeps the
	// predecessor table acyclic, so the public API does not produce it.
	ErrBrokenChain = errors.New("walker: predecessor chain does not reach source")
)

// Path is the outcome of a shortest-path query.
//
// TotalDistance == core.NoConnection means no path exists; Nodes is then empty.
// Otherwise Nodes runs from Start to End inclusive, in traversal order.
type Path struct {
	Start         core.NodeID
	End           core.NodeID
	TotalDistance int64
	Nodes         []core.NodeID
}

// NoPath returns the "unreachable" result for start → end.
func NoPath(start, end core.NodeID) Path {
	return Path{
		Start:         start,
		End:           end,
		TotalDistance: core.NoConnection,
		Nodes:         []core.NodeID{},
	}
}

// Found reports whether p describes an existing path.
func (p Path) Found() bool {
	return p.TotalDistance != core.NoConnection
}

// Strategy selects the frontier discipline used by FindShortestPath.
type Strategy int

const (
	// StrategyFIFO re-relaxes nodes through a FIFO work queue until it drains.
	// It is the default and fixes the tie-break between equal-length paths.
	StrategyFIFO Strategy = iota

	// StrategyHeap finalizes nodes in distance order with a binary min-heap
	// (lazy decrease-key). Distances match StrategyFIFO for non-negative weights;
	// the chosen path may differ when several shortest paths exist.
	StrategyHeap
)

// String returns the flag spelling of s.
func (s Strategy) String() string {
	switch s {
	case StrategyFIFO:
		return "fifo"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "fifo" or "heap" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "fifo", "":
		return StrategyFIFO, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return StrategyFIFO, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Option configures FindShortestPath via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation at call time.
type Option func(*Options)

// Options holds parameters and callbacks for a single query.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued node.
	Ctx context.Context

	// Logger receives debug-level traces of the search. Never nil after DefaultOptions.
	Logger *zap.Logger

	// OnRelax is called each time a node's best distance and predecessor are updated.
	OnRelax func(from, to core.NodeID, distance int64)

	// Strategy selects FIFO relaxation (default) or heap-ordered relaxation.
	Strategy Strategy

	// MaxRelaxations, if > 0, aborts the query with ErrRelaxationLimit once exceeded.
	MaxRelaxations int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a no-op zap logger
//   - a no-op OnRelax hook
//   - StrategyFIFO and no relaxation limit.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Logger:         zap.NewNop(),
		OnRelax:        func(core.NodeID, core.NodeID, int64) {},
		Strategy:       StrategyFIFO,
		MaxRelaxations: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes search traces to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnRelax registers a callback run on every relaxation.
func WithOnRelax(fn func(from, to core.NodeID, distance int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithStrategy picks the frontier discipline.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case StrategyFIFO, StrategyHeap:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithMaxRelaxations caps the number of relaxations of a single query.
//
//	n > 0: abort with ErrRelaxationLimit once more than n relaxations happen
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxRelaxations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRelaxations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRelaxations = n
	}
}
