// SPDX-License-Identifier: MIT
// Package: citymap/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Errors coming from core (duplicate names when composing constructors)
//     are wrapped the same way and still match core sentinels.

package builder

import "errors"

// ErrTooFewCities indicates that a size parameter (n, rows, cols,
// maxRoadsPerCity) is below the constructor's minimum.
var ErrTooFewCities = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
