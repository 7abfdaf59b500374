// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// impl_line.go - implementation of Line(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewCities).
//   - City i is named cfg.idFn(i) and placed at cfg.at(i, 0).
//   - Roads i-(i+1) in ascending i; each has length cfg.spacing.
//
// Complexity: O(n) cities + O(n-1) roads.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

const (
	methodLine   = "Line"
	minLineNodes = 2
)

// Line returns a Constructor that lays n cities on a horizontal line.
func Line(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < minLineNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, n, minLineNodes, ErrTooFewCities)
		}

		for i := 0; i < n; i++ {
			if err := addCity(m, methodLine, cfg.idFn(i), cfg.at(float64(i), 0)); err != nil {
				return err
			}
		}
		for i := 0; i+1 < n; i++ {
			if err := addRoad(m, methodLine, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
