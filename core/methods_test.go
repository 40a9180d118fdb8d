// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic behaviors for vertex/edge insertion and query APIs.
//   - Validate loop and multi-edge policy enforcement.
//   - Anchor the ordering guarantees the matchers rely on.

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, 1, g.VertexCount())
	assert.False(t, g.HasVertex("X"))
}

func TestGraph_AddEdgeIsUndirected(t *testing.T) {
	g := core.NewGraph()

	eid, err := g.AddEdge("u", "v")
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	assert.True(t, g.HasEdge("u", "v"))
	assert.True(t, g.HasEdge("v", "u"))
	assert.True(t, g.HasVertex("u"))
	assert.True(t, g.HasVertex("v"))

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "u", edges[0].From)
	assert.Equal(t, "v", edges[0].To)

	nbrs, err := g.NeighborIDs("v")
	require.NoError(t, err)
	assert.Equal(t, []string{"u"}, nbrs)
}

func TestGraph_EdgePolicies(t *testing.T) {
	simple := core.NewGraph()
	_, err := simple.AddEdge("a", "a")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = simple.AddEdge("a", "")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = simple.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = simple.AddEdge("b", "a")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	multi := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	assert.True(t, multi.Multigraph())
	assert.True(t, multi.Looped())
	_, err = multi.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = multi.AddEdge("b", "a")
	require.NoError(t, err)
	_, err = multi.AddEdge("a", "a")
	require.NoError(t, err)
	assert.Equal(t, 3, multi.EdgeCount())
}

func TestGraph_DegreeIgnoresLoopsAndParallels(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	for _, p := range [][2]string{{"a", "b"}, {"a", "b"}, {"a", "a"}, {"a", "c"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	deg, err := g.Degree("a")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
	assert.True(t, g.HasLoop("a"))
	assert.False(t, g.HasLoop("b"))

	nbrs, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, nbrs)
	assert.Equal(t, 4, g.EdgeCount())

	_, err = g.Degree("zz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_DeterministicOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"d", "b", "a", "c"} {
		require.NoError(t, g.AddVertex(id))
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())

	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	assert.Equal(t, "e2", edges[1].ID)
	assert.Equal(t, "e10", edges[9].ID)

	nbrs, err := g.NeighborIDs("hub")
	require.NoError(t, err)
	assert.Len(t, nbrs, 12)
	assert.Equal(t, []string{"a", "b", "c"}, nbrs[:3])
}

func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "b")

	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())
	assert.True(t, c.Looped())
	assert.True(t, c.HasLoop("b"))

	// Edge IDs continue after the source's counter.
	eid, err := c.AddEdge("a", "c")
	require.NoError(t, err)
	assert.Equal(t, "e3", eid)
	assert.False(t, g.HasVertex("c"))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraph_ConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 20; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				ids, err := g.NeighborIDs("hub")
				if err != nil || len(ids) != 20 {
					t.Errorf("NeighborIDs: got %d ids, err=%v", len(ids), err)
					return
				}
				_ = g.Vertices()
			}
		}()
	}
	wg.Wait()
}
