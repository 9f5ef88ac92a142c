package builder

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/Tomcat-42/graph-searcher/core"
)

// document mirrors the on-disk graph format.
type document struct {
	Nodes map[string]documentNode `json:"nodes"`
	Edges []documentEdge          `json:"edges"`
}

type documentNode struct {
	UTM []float64 `json:"utm"`
}

type documentEdge struct {
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Distance float64 `json:"distance"`
}

// FromJSON decodes a graph document from r and builds a validated graph.
// Vertices are inserted in lexical name order so adjacency ordering is
// reproducible regardless of document key order. Each undirected edge
// appears once in the document; an exact repetition is tolerated, a
// repetition with a different weight is rejected.
func FromJSON(r io.Reader) (*core.Graph, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if len(doc.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrMalformedDocument)
	}

	names := make([]string, 0, len(doc.Nodes))
	for name := range doc.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	g := core.NewGraph()
	for _, name := range names {
		n := doc.Nodes[name]
		if len(n.UTM) != 2 {
			return nil, fmt.Errorf("%w: node %q has %d coordinates", ErrBadCoordinate, name, len(n.UTM))
		}
		if err := g.AddVertex(name, core.Coord{X: n.UTM[0], Y: n.UTM[1]}); err != nil {
			return nil, fmt.Errorf("builder: node %q: %w", name, err)
		}
	}

	seen := make(map[[2]string]float64, len(doc.Edges))
	for _, e := range doc.Edges {
		key := edgeKey(e.Start, e.End)
		if w, ok := seen[key]; ok {
			if w != e.Distance {
				return nil, fmt.Errorf("%w: %s–%s listed as %v and %v",
					ErrAsymmetricWeight, e.Start, e.End, w, e.Distance)
			}
			continue
		}
		if err := g.AddEdge(e.Start, e.End, e.Distance); err != nil {
			return nil, fmt.Errorf("builder: edge %s–%s: %w", e.Start, e.End, err)
		}
		seen[key] = e.Distance
	}

	return g, nil
}

// FromFile opens path and delegates to FromJSON.
func FromFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("builder: open graph file: %w", err)
	}
	defer f.Close()

	g, err := FromJSON(f)
	if err != nil {
		return nil, fmt.Errorf("builder: file %q: %w", path, err)
	}

	return g, nil
}

// edgeKey canonicalizes an undirected endpoint pair.
func edgeKey(u, v string) [2]string {
	if u > v {
		u, v = v, u
	}

	return [2]string{u, v}
}
