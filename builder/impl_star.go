// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewCities).
//   - Hub city with fixed name "Center" at cfg.at(0, 0).
//   - Leaves cfg.idFn(i), i = 1..n-1, evenly spaced on a circle of radius
//     cfg.spacing, leaf 1 at angle 0, counter-clockwise.
//   - Spokes Center-leaf[i] in ascending i; every spoke has length cfg.spacing
//     up to rounding.
//
// Complexity: O(n) cities + O(n-1) roads.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/citymap/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterID is the fixed name of the Star hub.
	CenterID = "Center"
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewCities)
		}

		if err := addCity(m, methodStar, CenterID, cfg.at(0, 0)); err != nil {
			return err
		}

		leaves := n - 1
		for i := 1; i < n; i++ {
			theta := 2 * math.Pi * float64(i-1) / float64(leaves)
			leaf := cfg.idFn(i)
			if err := addCity(m, methodStar, leaf, cfg.at(math.Cos(theta), math.Sin(theta))); err != nil {
				return err
			}
			if err := addRoad(m, methodStar, CenterID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
