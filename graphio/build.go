package graphio

import (
	"fmt"

	"github.com/katalvlaran/relaxwalk/core"
)

// Build validates doc and materializes it as a core.Graph with nodes 1..Nodes
// and the links in document order.
func (doc *Document) Build() (*core.Graph, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithCapacity(doc.Nodes, len(doc.Links)))
	g.CreateNodes(doc.Nodes)
	for i, l := range doc.Links {
		if err := g.CreateLink(core.NodeID(l.A), core.NodeID(l.B), l.Distance); err != nil {
			return nil, fmt.Errorf("graphio: link %d: %w", i, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a Document without queries.
// The result is validated, so graphs built with core.WithNegativeWeights are
// rejected with ErrInvalidDocument.
func FromGraph(g *core.Graph) (*Document, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	conns := g.Connections()
	doc := &Document{
		Nodes: g.NodeCount(),
		Links: make([]LinkSpec, len(conns)),
	}
	for i, c := range conns {
		doc.Links[i] = LinkSpec{A: int(c.A), B: int(c.B), Distance: c.Distance}
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}

	return doc, nil
}
