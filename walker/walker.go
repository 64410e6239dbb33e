// Package walker computes the shortest path between two nodes of a core.Graph
// by repeated distance relaxation over a FIFO work queue.
package walker

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/relaxwalk/core"
)

// visitRecord is the per-query, per-node scratch state.
type visitRecord struct {
	best int64       // best distance from the source seen so far
	self core.NodeID // own id; never changes
	from core.NodeID // predecessor; core.NoConnection until first reached
}

// reached reports whether the node was ever relaxed.
func (v *visitRecord) reached() bool { return v.from != core.NoConnection }

// walker encapsulates the mutable state of one query.
type walker struct {
	graph       *core.Graph
	opts        Options
	log         *zap.Logger
	source      core.NodeID
	target      core.NodeID
	visits      map[core.NodeID]*visitRecord
	relaxations int
	dequeues    int
}

// FindShortestPath returns the shortest path from source to target in g.
//
// Unreachability is reported as data: the result is NoPath(source, target) and err is nil.
// source == target yields the zero-hop path [source] with distance 0.
//
// Errors:
//   - ErrNilGraph, ErrUnknownNode for invalid input;
//   - ErrOptionViolation for bad options;
//   - ErrRelaxationLimit when Options.MaxRelaxations is exceeded;
//   - ErrBrokenChain if the predecessor table holds a cycle. Both strategies only
//     record strictly shorter labels, so this is an invariant check rather than an
//     outcome callers should expect;
//   - ctx.Err() on cancellation.
//
// The graph is only read. Concurrent queries on one graph are safe. Nodes created
// while a query runs are invisible to it; mutate the graph between queries.
func FindShortestPath(g *core.Graph, source, target core.NodeID, opts ...Option) (Path, error) {
	if g == nil {
		return Path{}, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Path{}, o.err
	}

	if !g.HasNode(source) {
		return Path{}, fmt.Errorf("%w: source %d", ErrUnknownNode, source)
	}
	if !g.HasNode(target) {
		return Path{}, fmt.Errorf("%w: target %d", ErrUnknownNode, target)
	}

	log := o.Logger.With(zap.Int("source", int(source)), zap.Int("target", int(target)))
	if source == target {
		log.Debug("zero-hop query")
		return Path{Start: source, End: target, TotalDistance: 0, Nodes: []core.NodeID{source}}, nil
	}

	w := newWalker(g, o, log, source, target)

	var err error
	switch o.Strategy {
	case StrategyHeap:
		err = w.runHeap()
	default:
		err = w.runFIFO()
	}
	if err != nil {
		return Path{}, err
	}

	p, err := w.path()
	if err != nil {
		return Path{}, err
	}
	log.Debug("query finished",
		zap.Stringer("strategy", o.Strategy),
		zap.Int("dequeues", w.dequeues),
		zap.Int("relaxations", w.relaxations),
		zap.Bool("found", p.Found()),
		zap.Int64("distance", p.TotalDistance),
	)

	return p, nil
}

// newWalker creates one unreached record per graph node.
func newWalker(g *core.Graph, o Options, log *zap.Logger, source, target core.NodeID) *walker {
	ids := g.NodeIDs()
	visits := make(map[core.NodeID]*visitRecord, len(ids))
	for _, id := range ids {
		visits[id] = &visitRecord{best: 0, self: id, from: core.NoConnection}
	}
	// The source starts at distance 0; records already do, kept explicit for readers.
	visits[source].best = 0

	return &walker{
		graph:  g,
		opts:   o,
		log:    log,
		source: source,
		target: target,
		visits: visits,
	}
}

// runFIFO drains a FIFO queue seeded with the source. A neighbor is relaxed when it
// was never reached or when the candidate distance is strictly shorter; every
// relaxed neighbor is pushed again, so nodes may be revisited many times.
func (w *walker) runFIFO() error {
	queue := []core.NodeID{w.source}
	for len(queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		curr := queue[0]
		queue = queue[1:]
		w.dequeues++

		currVisit := w.visits[curr]
		for _, next := range w.graph.Neighbors(curr) {
			// a self-loop never shortens a path; relaxing it would relabel curr mid-expansion
			if next == curr {
				continue
			}
			// nodes created after the query started have no record and are not walked
			nextVisit, ok := w.visits[next]
			if !ok {
				continue
			}
			candidate := currVisit.best + w.graph.Distance(curr, next)
			if nextVisit.reached() && candidate >= nextVisit.best {
				continue
			}
			if err := w.relax(curr, nextVisit, candidate); err != nil {
				return err
			}
			queue = append(queue, next)
		}
	}

	return nil
}

// relax records curr as the predecessor of next at distance d.
func (w *walker) relax(curr core.NodeID, next *visitRecord, d int64) error {
	w.relaxations++
	if w.opts.MaxRelaxations > 0 && w.relaxations > w.opts.MaxRelaxations {
		return fmt.Errorf("%w: %d", ErrRelaxationLimit, w.opts.MaxRelaxations)
	}
	next.best = d
	next.from = curr
	w.opts.OnRelax(curr, next.self, d)
	if ce := w.log.Check(zap.DebugLevel, "relaxed"); ce != nil {
		ce.Write(zap.Int("from", int(curr)), zap.Int("to", int(next.self)), zap.Int64("distance", d))
	}

	return nil
}

// path reconstructs the target's predecessor chain back to the source.
func (w *walker) path() (Path, error) {
	end := w.visits[w.target]
	if !end.reached() {
		return NoPath(w.source, w.target), nil
	}

	// a simple path holds at most len(visits)-1 nodes besides the source
	limit := len(w.visits) - 1
	nodes := []core.NodeID{end.self}
	for step := end; step.from != w.source; step = w.visits[step.from] {
		if len(nodes) >= limit {
			return Path{}, fmt.Errorf("%w: %d → %d", ErrBrokenChain, w.source, w.target)
		}
		nodes = append(nodes, step.from)
	}
	nodes = append(nodes, w.source)

	// reverse to get source → target
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Path{
		Start:         w.source,
		End:           w.target,
		TotalDistance: end.best,
		Nodes:         nodes,
	}, nil
}
