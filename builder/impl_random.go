// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// impl_random.go - implementation of RandomMap(n, maxRoadsPerCity).
//
// Model:
//   - City i is named cfg.idFn(i) at integer coordinates drawn uniformly from
//     [0, n) × [0, n), scaled by cfg.spacing.
//   - Backbone: roads i-(i+1) for i = 0..n-2, so the map is always connected.
//   - Extra roads: for every city i < n-1, draw k ∈ [0, maxRoadsPerCity) and
//     then k targets uniformly from [0, n). Targets equal to i or already
//     joined to i are skipped, so no core diagnostic is ever produced.
//
// Contract:
//   - n ≥ 1 and maxRoadsPerCity ≥ 1 (else ErrTooFewCities).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n * maxRoadsPerCity * deg) where deg bounds the duplicate scan.
//   - Space: O(1) extra.
//
// Determinism:
//   - Draw order is fixed: all positions (x then y per city), then the extra
//     roads city by city. Same seed ⇒ same map.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

const (
	methodRandomMap = "RandomMap"
	minRandomCities = 1
	minRandomRoads  = 1
)

// RandomMap returns a Constructor that samples a connected random map.
func RandomMap(n, maxRoadsPerCity int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		// 1) Validate parameters.
		if n < minRandomCities {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomMap, n, minRandomCities, ErrTooFewCities)
		}
		if maxRoadsPerCity < minRandomRoads {
			return fmt.Errorf("%s: maxRoadsPerCity=%d < min=%d: %w",
				methodRandomMap, maxRoadsPerCity, minRandomRoads, ErrTooFewCities)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomMap, ErrNeedRandSource)
		}
		rng := cfg.rng

		// 2) Cities.
		for i := 0; i < n; i++ {
			x, y := float64(rng.Intn(n)), float64(rng.Intn(n))
			if err := addCity(m, methodRandomMap, cfg.idFn(i), cfg.at(x, y)); err != nil {
				return err
			}
		}

		// 3) Backbone.
		for i := 0; i+1 < n; i++ {
			if err := addRoad(m, methodRandomMap, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		// 4) Extra roads.
		for i := 0; i+1 < n; i++ {
			from := cfg.idFn(i)
			k := rng.Intn(maxRoadsPerCity)
			for j := 0; j < k; j++ {
				t := rng.Intn(n)
				to := cfg.idFn(t)
				if t == i || m.HasRoad(from, to) {
					continue
				}
				if err := addRoad(m, methodRandomMap, from, to); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
