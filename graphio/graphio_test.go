package graphio_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/relaxwalk/core"
	"github.com/katalvlaran/relaxwalk/graphio"
	"github.com/katalvlaran/relaxwalk/walker"
)

const seedPath = "testdata/seed.yaml"

// seedRelaxationsFirstQuery is the FIFO relaxation count of the first seed query (1 → 6).
const seedRelaxationsFirstQuery = 16

// ScenarioSuite covers decoding, validation, building and running scenarios.
type ScenarioSuite struct {
	suite.Suite
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

// TestLoadSeed decodes the seed scenario file.
func (s *ScenarioSuite) TestLoadSeed() {
	doc, err := graphio.Load(seedPath)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10, doc.Nodes)
	require.Len(s.T(), doc.Links, 11)
	require.Len(s.T(), doc.Queries, 6)
	require.Equal(s.T(), graphio.LinkSpec{A: 1, B: 2, Distance: 20}, doc.Links[0])
}

// TestLoadMissingFile wraps the os error.
func (s *ScenarioSuite) TestLoadMissingFile() {
	_, err := graphio.Load("testdata/does-not-exist.yaml")
	require.Error(s.T(), err)
	require.Contains(s.T(), err.Error(), "open scenario")
}

// TestDecodeErrors covers malformed and empty input.
func (s *ScenarioSuite) TestDecodeErrors() {
	_, err := graphio.Decode(strings.NewReader(""))
	require.ErrorIs(s.T(), err, graphio.ErrDecode)

	_, err = graphio.Decode(strings.NewReader("nodes: [oops"))
	require.ErrorIs(s.T(), err, graphio.ErrDecode)

	_, err = graphio.Decode(strings.NewReader("nodes: 2\nedges: []\n"))
	require.ErrorIs(s.T(), err, graphio.ErrDecode, "unknown keys are rejected")
}

// TestValidationErrors rejects out-of-range values.
func (s *ScenarioSuite) TestValidationErrors() {
	cases := []struct {
		name  string
		input string
		field string
	}{
		{"negative nodes", "nodes: -1\n", "Nodes"},
		{"too many nodes", "nodes: 2000000000\n", "Nodes"},
		{"negative distance", "nodes: 2\nlinks:\n  - {a: 1, b: 2, distance: -4}\n", "Links[0].Distance"},
		{"link beyond nodes", "nodes: 2\nlinks:\n  - {a: 1, b: 3, distance: 4}\n", "Links[0].B"},
		{"zero endpoint", "nodes: 2\nlinks:\n  - {a: 0, b: 2, distance: 4}\n", "Links[0].A"},
		{"query beyond nodes", "nodes: 2\nqueries:\n  - {from: 5, to: 1}\n", "Queries[0].From"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := graphio.Decode(strings.NewReader(tc.input))
			require.ErrorIs(s.T(), err, graphio.ErrInvalidDocument)
			require.Contains(s.T(), err.Error(), tc.field)
		})
	}
}

// TestValidateNil guards against nil documents.
func (s *ScenarioSuite) TestValidateNil() {
	require.ErrorIs(s.T(), graphio.Validate(nil), graphio.ErrNilDocument)
	require.ErrorIs(s.T(), graphio.Encode(&bytes.Buffer{}, nil), graphio.ErrNilDocument)

	var doc *graphio.Document
	_, err := doc.Build()
	require.ErrorIs(s.T(), err, graphio.ErrNilDocument)
}

// TestBuild materializes nodes and links in document order.
func (s *ScenarioSuite) TestBuild() {
	doc := &graphio.Document{
		Nodes: 3,
		Links: []graphio.LinkSpec{{A: 2, B: 3, Distance: 7}, {A: 1, B: 2, Distance: 0}},
	}
	g, err := doc.Build()
	require.NoError(s.T(), err)
	require.Equal(s.T(), []core.NodeID{1, 2, 3}, g.NodeIDs())
	require.Equal(s.T(), []core.Connection{
		{A: 2, B: 3, Distance: 7},
		{A: 1, B: 2, Distance: 0},
	}, g.Connections())
}

// TestRoundTrip encodes a graph and decodes it back.
func (s *ScenarioSuite) TestRoundTrip() {
	doc, err := graphio.Load(seedPath)
	require.NoError(s.T(), err)
	g, err := doc.Build()
	require.NoError(s.T(), err)

	captured, err := graphio.FromGraph(g)
	require.NoError(s.T(), err)
	var buf bytes.Buffer
	require.NoError(s.T(), graphio.Encode(&buf, captured))

	back, err := graphio.Decode(&buf)
	require.NoError(s.T(), err)
	g2, err := back.Build()
	require.NoError(s.T(), err)
	require.Equal(s.T(), g.Connections(), g2.Connections())
	require.Equal(s.T(), g.NodeIDs(), g2.NodeIDs())
}

// TestFromGraphLimits rejects nil graphs and negative distances.
func (s *ScenarioSuite) TestFromGraphLimits() {
	_, err := graphio.FromGraph(nil)
	require.ErrorIs(s.T(), err, graphio.ErrNilGraph)

	g := core.NewGraph(core.WithNegativeWeights())
	g.CreateNodes(2)
	require.NoError(s.T(), g.CreateLink(1, 2, -3))
	_, err = graphio.FromGraph(g)
	require.ErrorIs(s.T(), err, graphio.ErrInvalidDocument)
	require.Contains(s.T(), err.Error(), "Links[0].Distance")
}

// TestRunSeed answers the seed queries.
func (s *ScenarioSuite) TestRunSeed() {
	doc, err := graphio.Load(seedPath)
	require.NoError(s.T(), err)

	zc, logs := observer.New(zap.DebugLevel)
	runner := graphio.NewRunner(graphio.WithLogger(zap.New(zc)))
	results, err := runner.Run(context.Background(), doc)
	require.NoError(s.T(), err)
	require.Len(s.T(), results, 6)

	require.Equal(s.T(), []core.NodeID{1, 7, 2, 5, 4, 6}, results[0].Path.Nodes)
	require.Equal(s.T(), []core.NodeID{6, 4, 5, 2, 7, 1}, results[1].Path.Nodes)
	require.Equal(s.T(), int64(30), results[2].Path.TotalDistance)
	require.Equal(s.T(), int64(45), results[3].Path.TotalDistance)
	require.False(s.T(), results[4].Path.Found())
	require.Equal(s.T(), []core.NodeID{8, 9, 10}, results[5].Path.Nodes)

	require.Equal(s.T(), 1, logs.FilterMessage("scenario built").Len())
	require.Equal(s.T(), 6, logs.FilterMessage("query answered").Len())
}

// TestRunWalkerOptions forwards walker options and wraps query errors.
func (s *ScenarioSuite) TestRunWalkerOptions() {
	doc, err := graphio.Load(seedPath)
	require.NoError(s.T(), err)

	runner := graphio.NewRunner(graphio.WithWalkerOptions(walker.WithMaxRelaxations(1)))
	results, err := runner.Run(context.Background(), doc)
	require.ErrorIs(s.T(), err, walker.ErrRelaxationLimit)
	require.Contains(s.T(), err.Error(), "query 0 (1→6)")
	require.Empty(s.T(), results)
}

// TestRunCanceled surfaces context cancellation.
func (s *ScenarioSuite) TestRunCanceled() {
	doc, err := graphio.Load(seedPath)
	require.NoError(s.T(), err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = graphio.NewRunner().Run(ctx, doc)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestRunCanceledMidScenario keeps the answers given before cancellation.
func (s *ScenarioSuite) TestRunCanceledMidScenario() {
	doc, err := graphio.Load(seedPath)
	require.NoError(s.T(), err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// cancel on the first relaxation of the second query
	var relaxed int
	hook := walker.WithOnRelax(func(core.NodeID, core.NodeID, int64) {
		relaxed++
		if relaxed == seedRelaxationsFirstQuery+1 {
			cancel()
		}
	})

	results, err := graphio.NewRunner(graphio.WithWalkerOptions(hook)).Run(ctx, doc)
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Contains(s.T(), err.Error(), "query 1 (6→1)")
	require.Len(s.T(), results, 1)

	var buf bytes.Buffer
	require.NoError(s.T(), graphio.Report(&buf, results))
	require.Equal(s.T(),
		"Shortest distance between nodes 1 and 6 is: 55\nFull path is composed of nodes: [1, 7, 2, 5, 4, 6]\n\n",
		buf.String())
}

// TestReport prints every result.
func (s *ScenarioSuite) TestReport() {
	doc, err := graphio.Decode(strings.NewReader(
		"nodes: 3\nlinks:\n  - {a: 1, b: 2, distance: 4}\nqueries:\n  - {from: 1, to: 2}\n  - {from: 1, to: 3}\n"))
	require.NoError(s.T(), err)
	results, err := graphio.NewRunner().Run(context.Background(), doc)
	require.NoError(s.T(), err)

	var buf bytes.Buffer
	require.NoError(s.T(), graphio.Report(&buf, results))
	require.Equal(s.T(),
		"Shortest distance between nodes 1 and 2 is: 4\nFull path is composed of nodes: [1, 2]\n\n"+
			"There is no path between nodes 1 and 3.\n\n",
		buf.String())
}
