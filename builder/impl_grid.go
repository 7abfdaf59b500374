// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • City names use the fixed scheme "r,c" (row-major order), independent
//     of cfg.idFn, to keep coordinates explicit.
//   • Cell (r,c) sits at cfg.at(c, r).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewCities).
//   • For each (r,c) emit the Right road, then the Bottom road, when present.
//
// Complexity:
//   • Time: O(rows*cols) cities + O(2*rows*cols) roads.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/citymap/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
)

// GridID returns the name Grid gives to cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewCities)
		}

		// 1) Cities in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addCity(m, methodGrid, GridID(r, c), cfg.at(float64(c), float64(r))); err != nil {
					return err
				}
			}
		}

		// 2) Right and Bottom roads.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addRoad(m, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addRoad(m, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
