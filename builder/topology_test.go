package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/builder"
)

func TestTopology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind         string
		n            int
		wantV, wantE int
	}{
		{builder.KindComplete, 6, 6, 15},
		{builder.KindCycle, 6, 6, 6},
		{builder.KindPath, 6, 6, 5},
		{builder.KindStar, 6, 6, 5},
		{builder.KindGrid, 10, 9, 12}, // ⌊√10⌋ = 3
		{builder.KindGrid, 16, 16, 24},
		{"RANDOM", 8, 8, 28}, // p = 1 below
	}

	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("%s/%d", tc.kind, tc.n), func(t *testing.T) {
			t.Parallel()
			ctor, err := builder.Topology(tc.kind, tc.n, 1)
			require.NoError(t, err)
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

func TestTopology_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.Topology("hypercube", 8, 0)
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)

	ctor, err := builder.Topology(builder.KindGrid, 0, 0)
	require.NoError(t, err)
	_, err = builder.BuildGraph(nil, nil, ctor)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	assert.Len(t, builder.Kinds(), 6)
}

func TestMinVertices(t *testing.T) {
	t.Parallel()

	for _, kind := range builder.Kinds() {
		minN, err := builder.MinVertices(kind)
		require.NoError(t, err, kind)

		ctor, err := builder.Topology(kind, minN, 0)
		require.NoError(t, err, kind)
		_, err = builder.BuildGraph(nil, nil, ctor)
		assert.NoError(t, err, kind)

		ctor, err = builder.Topology(kind, minN-1, 0)
		require.NoError(t, err, kind)
		_, err = builder.BuildGraph(nil, nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, kind)
	}

	_, err := builder.MinVertices("hypercube")
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)
}

func ExampleTopology() {
	ctor, _ := builder.Topology(builder.KindGrid, 9, 0)
	g, _ := builder.BuildGraph(nil, nil, ctor)
	fmt.Println(g.VertexCount(), g.EdgeCount())
	// Output: 9 12
}
