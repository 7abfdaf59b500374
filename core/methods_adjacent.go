// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs by name (Neighbors) and by handle (Lookup, NameOf,
//       PositionOf, Arcs, HandleBound).
//
// Determinism:
//   - Arcs(h) preserves road insertion order.
//
// Notes:
//   - The handle surface is read-only by contract. Returned slices alias the
//     map's storage and are valid until the next mutation.

package core

// Neighbors returns neighbor name → road length for the named city.
//
// Returns:
//   - map[string]float64: a fresh map (empty for an isolated city).
//   - nil if the city does not exist.
//
// Complexity:
//   - Time O(deg), Space O(deg).
func (m *Map) Neighbors(name string) map[string]float64 {
	h, ok := m.index[name]
	if !ok {
		return nil
	}

	arcs := m.cities[h].arcs
	out := make(map[string]float64, len(arcs))
	for _, a := range arcs {
		out[m.cities[a.To].name] = a.Length
	}

	return out
}

// Lookup resolves a city name to its handle.
func (m *Map) Lookup(name string) (Handle, bool) {
	h, ok := m.index[name]
	if !ok {
		return NoHandle, false
	}

	return h, true
}

// NameOf returns the name of a live handle ("" for a dead or out-of-range one).
func (m *Map) NameOf(h Handle) string {
	if !m.valid(h) {
		return ""
	}

	return m.cities[h].name
}

// PositionOf returns the position of a live handle.
func (m *Map) PositionOf(h Handle) Position {
	if !m.valid(h) {
		return Position{}
	}

	return m.cities[h].pos
}

// Arcs returns the outgoing arcs of a live handle in insertion order.
// The slice must not be modified.
func (m *Map) Arcs(h Handle) []Arc {
	if !m.valid(h) {
		return nil
	}

	return m.cities[h].arcs
}

// HandleBound returns one past the largest handle ever issued, so that
// per-query scratch arrays can be indexed by Handle directly.
func (m *Map) HandleBound() int { return len(m.cities) }

func (m *Map) valid(h Handle) bool {
	return h >= 0 && int(h) < len(m.cities) && m.cities[h].live
}
