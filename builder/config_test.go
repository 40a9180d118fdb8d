// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", newBuilderConfig().idFn(7))
	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).idFn(0))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	assert.Equal(t, "p3", newBuilderConfig(WithPrefixIDs("p")).idFn(3))

	// Last option wins.
	assert.Equal(t, "3", newBuilderConfig(WithSymbolIDs(), WithIDScheme(DefaultIDFn)).idFn(3))

	assert.Panics(t, func() { WithIDScheme(nil) })
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	exp := rand.New(rand.NewSource(123))
	assert.Same(t, exp, newBuilderConfig(WithRand(exp)).rng)
	assert.Panics(t, func() { WithRand(nil) })

	c1 := newBuilderConfig(WithSeed(42))
	c2 := newBuilderConfig(WithSeed(42))
	require.NotNil(t, c1.rng)
	assert.Equal(t, c1.rng.Int63(), c2.rng.Int63())
	assert.Equal(t, c1.rng.Int63(), c2.rng.Int63())
}
