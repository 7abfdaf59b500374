// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMap(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical maps.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

// Constructor applies a deterministic map mutation using the resolved
// builderConfig. Constructors validate parameters before touching the map and
// return sentinel errors (no panics).
type Constructor func(m *core.Map, cfg builderConfig) error

// BuildMap creates a new core.Map with map options mopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildMap: %w" and returned
// immediately; cities and roads added before the failure stay in place.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildMap(mopts []core.MapOption, bopts []BuilderOption, cons ...Constructor) (*core.Map, error) {
	m := core.NewMap(mopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMap: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMap: %w", err)
		}
	}

	return m, nil
}

// addCity wraps core.AddCity with the constructor's method tag.
func addCity(m *core.Map, method, name string, p core.Position) error {
	if err := m.AddCity(name, p.X, p.Y); err != nil {
		return fmt.Errorf("%s: AddCity(%s): %w", method, name, err)
	}

	return nil
}

// addRoad wraps core.AddRoad with the constructor's method tag.
func addRoad(m *core.Map, method, a, b string) error {
	if err := m.AddRoad(a, b); err != nil {
		return fmt.Errorf("%s: AddRoad(%s-%s): %w", method, a, b, err)
	}

	return nil
}
