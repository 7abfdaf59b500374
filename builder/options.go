// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/citymap/core"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the city naming function: idx -> name.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithCityPrefix names cities "<prefix><idx>", e.g. WithCityPrefix("N")
// yields "N0", "N1", … Useful to compose constructors without name clashes.
// Panics on an empty prefix.
func WithCityPrefix(prefix string) BuilderOption {
	if prefix == "" {
		panic("builder: WithCityPrefix(\"\")")
	}
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpacing sets the layout unit. Panics unless d is finite and > 0.
func WithSpacing(d float64) BuilderOption {
	if !(d > 0) || math.IsInf(d, 1) {
		panic("builder: WithSpacing(d<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = d
	}
}

// WithOffset shifts every generated position by (x, y).
// Panics on non-finite input.
func WithOffset(x, y float64) BuilderOption {
	p := core.Position{X: x, Y: y}
	if !p.Finite() {
		panic("builder: WithOffset(non-finite)")
	}
	return func(c *builderConfig) {
		c.offset = p
	}
}
