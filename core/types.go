// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Position, Handle, Arc, Road, Map, MapOption, sentinel errors and NewMap.

package core

import (
	"errors"
	"math"
)

// Sentinel errors for core map operations.
var (
	// ErrEmptyName indicates that a city name is the empty string.
	ErrEmptyName = errors.New("core: city name is empty")

	// ErrBadPosition indicates a NaN or infinite coordinate.
	ErrBadPosition = errors.New("core: city position is not finite")

	// ErrAlreadyExists indicates a duplicate city or road.
	ErrAlreadyExists = errors.New("core: already exists")

	// ErrNotFound indicates an operation referenced a missing city or road.
	ErrNotFound = errors.New("core: not found")

	// ErrSelfLoop indicates a road whose endpoints are the same city.
	ErrSelfLoop = errors.New("core: road endpoints must be different")
)

// Position is a point on the plane.
type Position struct {
	X float64
	Y float64
}

// Finite reports whether both coordinates are neither NaN nor ±Inf.
func (p Position) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Distance returns the straight-line distance between p and q.
// Complexity: O(1).
func Distance(p, q Position) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Handle is the stable integer identity of a live city. Handles of removed
// cities are recycled, so a Handle must not be kept across mutations.
type Handle int

// NoHandle is returned by lookups that miss.
const NoHandle Handle = -1

// Arc is one direction of a road as seen from the city that owns it.
type Arc struct {
	// To is the neighbor at the other end of the road.
	To Handle

	// Length is the road length, fixed when the road was added.
	Length float64
}

// Road is a value snapshot of one undirected road, with A < B.
type Road struct {
	A      string
	B      string
	Length float64
}

// city is one slot of the handle table.
type city struct {
	name string
	pos  Position
	arcs []Arc // insertion order
	live bool
}

// MapOption configures a Map before first use.
type MapOption func(m *Map)

// WithReporter routes informational messages and diagnostics to r.
// Panics on nil to surface programmer error early.
func WithReporter(r Reporter) MapOption {
	if r == nil {
		panic("core: WithReporter(nil)")
	}
	return func(m *Map) { m.reporter = r }
}

// Map is the city map: cities indexed by name and by handle, roads stored as
// symmetric arc lists.
//
// The zero value is not usable; construct with NewMap.
type Map struct {
	reporter Reporter

	index  map[string]Handle // name → handle of live cities
	cities []city            // handle → slot
	free   []Handle          // dead slots, reused LIFO
	roads  int               // number of undirected roads
}

// NewMap creates an empty Map. Without WithReporter every outcome is discarded.
// Complexity: O(1).
func NewMap(opts ...MapOption) *Map {
	m := &Map{
		reporter: Discard,
		index:    make(map[string]Handle),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Reporter returns the outcome sink this Map reports to. Collaborators that
// act on the map's behalf (the path finder) report through the same sink.
func (m *Map) Reporter() Reporter { return m.reporter }
