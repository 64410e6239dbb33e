package graphio

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/relaxwalk/walker"
)

// Sentinel errors for scenario handling.
var (
	// ErrDecode is returned when the input is not a well-formed scenario document.
	ErrDecode = errors.New("graphio: cannot decode document")

	// ErrInvalidDocument is returned when a decoded document fails validation.
	ErrInvalidDocument = errors.New("graphio: invalid document")

	// ErrNilDocument is returned when a nil *Document is passed.
	ErrNilDocument = errors.New("graphio: document is nil")

	// ErrNilGraph is returned when FromGraph receives a nil graph.
	ErrNilGraph = errors.New("graphio: graph is nil")
)

// Document describes a graph and the queries to run against it.
//
//	nodes: 3
//	links:
//	  - {a: 1, b: 2, distance: 4}
//	queries:
//	  - {from: 1, to: 2}
//
// Nodes are created as 1..Nodes; links and queries must reference that range.
// Nodes is capped at 1<<20 so a document cannot force a huge allocation in Build.
type Document struct {
	Nodes   int         `yaml:"nodes" validate:"min=0,max=1048576"`
	Links   []LinkSpec  `yaml:"links" validate:"dive"`
	Queries []QuerySpec `yaml:"queries" validate:"dive"`
}

// LinkSpec is one undirected connection.
type LinkSpec struct {
	A        int   `yaml:"a" validate:"min=1"`
	B        int   `yaml:"b" validate:"min=1"`
	Distance int64 `yaml:"distance" validate:"min=0"`
}

// QuerySpec is one shortest-path query.
type QuerySpec struct {
	From int `yaml:"from" validate:"min=1"`
	To   int `yaml:"to" validate:"min=1"`
}

// Result pairs a query with its answer.
type Result struct {
	Query QuerySpec
	Path  walker.Path
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used for scenario progress. nil keeps the no-op default.
func WithLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithWalkerOptions appends options passed to every walker.FindShortestPath call.
func WithWalkerOptions(opts ...walker.Option) RunnerOption {
	return func(r *Runner) {
		r.walkOpts = append(r.walkOpts, opts...)
	}
}
