package walker

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Describe renders p for humans.
//
// Unreachable:
//
//	There is no path between nodes 1 and 10.
//
// Found:
//
//	Shortest distance between nodes 1 and 6 is: 55
//	Full path is composed of nodes: [1, 7, 2, 5, 4, 6]
func Describe(p Path) string {
	if !p.Found() {
		return fmt.Sprintf("There is no path between nodes %d and %d.", p.Start, p.End)
	}

	ids := make([]string, len(p.Nodes))
	for i, id := range p.Nodes {
		ids[i] = strconv.Itoa(int(id))
	}

	return fmt.Sprintf("Shortest distance between nodes %d and %d is: %d\nFull path is composed of nodes: [%s]",
		p.Start, p.End, p.TotalDistance, strings.Join(ids, ", "))
}

// Fprint writes Describe(p) followed by a blank line to w.
func Fprint(w io.Writer, p Path) error {
	_, err := fmt.Fprintf(w, "%s\n\n", Describe(p))
	return err
}
