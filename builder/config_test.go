// Package builder contains unit tests for builderConfig and BuilderOption.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citymap/core"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig()
	assert.Equal(t, "City 7", cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, defaultSpacing, cfg.spacing)
	assert.Equal(t, core.Position{}, cfg.offset)
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig(WithSymbolIDs(), WithIDScheme(DefaultIDFn), WithSpacing(2), WithSpacing(4))
	assert.Equal(t, "3", cfg.idFn(3))
	assert.Equal(t, 4.0, cfg.spacing)
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(123))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)

	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	require.NotNil(t, a)
	assert.Equal(t, a.Int63(), b.Int63(), "same seed, same stream")
}

func TestConfigAt(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig(WithSpacing(10), WithOffset(1, -1))
	assert.Equal(t, core.Position{X: 21, Y: 29}, cfg.at(2, 3))
}
