package graphio

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/relaxwalk/core"
	"github.com/katalvlaran/relaxwalk/walker"
)

// Runner builds scenario graphs and answers their queries.
type Runner struct {
	log      *zap.Logger
	walkOpts []walker.Option
}

// NewRunner returns a Runner with a no-op logger and default walker options.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run builds doc and answers every query in document order.
// The context is forwarded to each walk; the first failing query aborts the run.
func (r *Runner) Run(ctx context.Context, doc *Document) ([]Result, error) {
	g, err := doc.Build()
	if err != nil {
		return nil, err
	}
	r.log.Info("scenario built",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("links", g.ConnectionCount()),
		zap.Int("queries", len(doc.Queries)),
	)

	opts := make([]walker.Option, 0, len(r.walkOpts)+2)
	opts = append(opts, walker.WithContext(ctx), walker.WithLogger(r.log))
	opts = append(opts, r.walkOpts...)

	results := make([]Result, 0, len(doc.Queries))
	for i, q := range doc.Queries {
		p, err := walker.FindShortestPath(g, core.NodeID(q.From), core.NodeID(q.To), opts...)
		if err != nil {
			return results, fmt.Errorf("graphio: query %d (%d→%d): %w", i, q.From, q.To, err)
		}
		r.log.Debug("query answered",
			zap.Int("from", q.From),
			zap.Int("to", q.To),
			zap.Bool("found", p.Found()),
			zap.Int64("distance", p.TotalDistance),
		)
		results = append(results, Result{Query: q, Path: p})
	}

	return results, nil
}

// Report writes every result with walker.Fprint.
func Report(w io.Writer, results []Result) error {
	for _, res := range results {
		if err := walker.Fprint(w, res.Path); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc *Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}
