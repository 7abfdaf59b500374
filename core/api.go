// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: Stats snapshot and Clear.
// Policy:
//   - No algorithms here.
//   - Every exported function documents its complexity.

package core

// MapStats is a point-in-time summary of a Map.
type MapStats struct {
	// CityCount is the number of live cities.
	CityCount int

	// RoadCount is the number of undirected roads.
	RoadCount int

	// FreeHandles is the number of recycled slots waiting for reuse.
	FreeHandles int

	// TotalLength is the sum of all road lengths.
	TotalLength float64
}

// Stats produces a read-only snapshot of sizes and total road length.
//
// Implementation:
//   - Stage 1: Copy the counters.
//   - Stage 2: Sum lengths over live arcs; each road is seen twice, so halve.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (m *Map) Stats() MapStats {
	st := MapStats{
		CityCount:   len(m.index),
		RoadCount:   m.roads,
		FreeHandles: len(m.free),
	}
	var sum float64
	for h := range m.cities {
		for _, a := range m.cities[h].arcs {
			sum += a.Length
		}
	}
	st.TotalLength = sum / 2

	return st
}

// Clear removes every city and road without reporting. The reporter is kept.
// Complexity: O(1) plus garbage collection of the old tables.
func (m *Map) Clear() {
	m.index = make(map[string]Handle)
	m.cities = nil
	m.free = nil
	m.roads = 0
}
