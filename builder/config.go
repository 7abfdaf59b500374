// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn    = CityIDFn   ("City 0","City 1",...)
//   • rng     = nil        (pure/deterministic unless seeded)
//   • spacing = 1.0
//   • offset  = (0,0)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/citymap/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// City name strategy: index -> name.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Distance between neighboring cities in Line/Grid, radius in Star,
	// and unit of the random positions in RandomMap.
	spacing float64
	// Added to every generated position.
	offset core.Position
}

const defaultSpacing = 1.0

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    CityIDFn,
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// at scales (x, y) by the spacing and shifts it by the offset.
func (c builderConfig) at(x, y float64) core.Position {
	return core.Position{X: c.offset.X + x*c.spacing, Y: c.offset.Y + y*c.spacing}
}
