package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/subiso/core"
)

// addVertices inserts idFn(0..n-1) into g and returns the IDs in index order.
// Complexity: O(n) time and space.
func addVertices(g *core.Graph, method string, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	var err error
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err = g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge connects u and v, wrapping core errors with method context.
func addEdge(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s): %w", method, u, v, err)
	}

	return nil
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
