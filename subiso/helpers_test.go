package subiso_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/core"
	"github.com/katalvlaran/subiso/subiso"
)

// matchers lists both strategies under test names.
var matchers = []struct {
	name string
	fn   subiso.Matcher
}{
	{"naive", subiso.FindEmbeddingNaive},
	{"ri", subiso.FindEmbeddingOrdered},
}

// graphOf builds a core.Graph from an edge list plus optional isolated vertices.
func graphOf(t testing.TB, edges [][2]string, isolated ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops())
	for _, id := range isolated {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// build runs a single builder constructor with a seed and ID prefix.
func build(t testing.TB, seed int64, prefix string, ctor builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithPrefixIDs(prefix)}, ctor)
	require.NoError(t, err)

	return g
}

// mapView is a View over a plain adjacency map, used to feed malformed or
// non-core graphs to the matchers.
type mapView struct {
	ids []string
	adj map[string][]string
	err error
}

func (m mapView) Vertices() []string { return m.ids }

func (m mapView) NeighborIDs(id string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.adj[id], nil
}

// symmetricView builds a well-formed mapView from an edge list.
func symmetricView(edges [][2]string) mapView {
	adj := make(map[string][]string)
	seen := make(map[string]bool)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		if e[0] != e[1] {
			adj[e[1]] = append(adj[e[1]], e[0])
		}
		seen[e[0]], seen[e[1]] = true, true
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return mapView{ids: ids, adj: adj}
}

var errBackend = errors.New("backend unavailable")
