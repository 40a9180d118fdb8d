package subiso_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subiso/builder"
	"github.com/katalvlaran/subiso/core"
	"github.com/katalvlaran/subiso/subiso"
)

func TestPlanOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edges [][2]string
		iso   []string
		want  []string
	}{
		{
			name:  "path prefers constrained interior",
			edges: [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}},
			want:  []string{"b", "c", "a", "d"},
		},
		{
			name:  "triangle with pendant",
			edges: [][2]string{{"x", "y"}, {"y", "z"}, {"z", "x"}, {"z", "w"}},
			want:  []string{"z", "x", "y", "w"},
		},
		{
			name:  "star starts at hub",
			edges: [][2]string{{"h", "a"}, {"h", "b"}, {"h", "c"}},
			want:  []string{"h", "a", "b", "c"},
		},
		{
			name:  "isolated vertices come last by ID",
			edges: [][2]string{{"m", "n"}},
			iso:   []string{"b", "a"},
			want:  []string{"m", "n", "a", "b"},
		},
		{
			name:  "loops do not count toward degree",
			edges: [][2]string{{"a", "a"}, {"a", "b"}, {"b", "c"}},
			want:  []string{"b", "a", "c"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := subiso.PlanOrder(graphOf(t, tc.edges, tc.iso...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlanOrder_EmptyAndErrors(t *testing.T) {
	t.Parallel()

	got, err := subiso.PlanOrder(core.NewGraph())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = subiso.PlanOrder(nil)
	assert.ErrorIs(t, err, subiso.ErrGraphNil)
}

func TestPlanOrder_IsPermutationAndStable(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		g := build(t, seed, "v", builder.RandomSparse(12, 0.35))
		first, err := subiso.PlanOrder(g)
		require.NoError(t, err)
		assert.ElementsMatch(t, g.Vertices(), first)

		again, err := subiso.PlanOrder(g.Clone())
		require.NoError(t, err)
		assert.Equal(t, first, again, "seed %d", seed)
	}
}

func TestFindEmbeddingOrdered_UsesPlannedOrder(t *testing.T) {
	t.Parallel()

	target := build(t, 1, "t", builder.Complete(5))
	pattern := graphOf(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}})

	want, err := subiso.PlanOrder(pattern)
	require.NoError(t, err)
	res, err := subiso.FindEmbeddingOrdered(target, pattern)
	require.NoError(t, err)
	assert.Equal(t, want, res.Order)
}
