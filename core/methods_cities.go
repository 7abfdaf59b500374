// SPDX-License-Identifier: MIT
//
// File: methods_cities.go
// Role: City lifecycle & queries.
//
// Determinism:
//   - Cities() returns names sorted lexicographically ascending.
//   - Freed handles are reused LIFO.
//
// Concurrency:
//   - None inside; see package doc.

package core

import (
	"slices"
	"sort"
)

// AddCity inserts a city at (x, y).
//
// Implementation:
//   - Stage 1: Validate the name (ErrEmptyName) and position (ErrBadPosition).
//   - Stage 2: Reject a duplicate name (ErrAlreadyExists).
//   - Stage 3: Take a recycled handle or append a new slot; register the name.
//   - Stage 4: Report "Added City: <name>".
//
// Errors:
//   - ErrEmptyName, ErrBadPosition, ErrAlreadyExists; all wrapped in *OpError.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// Notes:
//   - Nothing is mutated on failure.
func (m *Map) AddCity(name string, x, y float64) error {
	const op = "AddCity"

	if name == "" {
		return m.fail(op, ErrEmptyName, Diagnostic{Reason: ReasonEmpty, SubjectType: SubjectCity})
	}
	pos := Position{X: x, Y: y}
	if !pos.Finite() {
		return m.fail(op, ErrBadPosition, Diagnostic{Reason: ReasonNotFinite, SubjectType: SubjectCity, Subject: name})
	}
	if _, exists := m.index[name]; exists {
		return m.fail(op, ErrAlreadyExists, Diagnostic{Reason: ReasonAlreadyExists, SubjectType: SubjectCity, Subject: name})
	}

	h := m.allocate()
	m.cities[h] = city{name: name, pos: pos, live: true}
	m.index[name] = h

	m.reporter.Info("Added " + SubjectCity + ": " + name)

	return nil
}

// allocate returns a free slot, growing the table when none is recycled.
func (m *Map) allocate() Handle {
	if n := len(m.free); n > 0 {
		h := m.free[n-1]
		m.free = m.free[:n-1]
		return h
	}
	m.cities = append(m.cities, city{})

	return Handle(len(m.cities) - 1)
}

// RemoveCity deletes a city and every road touching it.
//
// Implementation:
//   - Stage 1: Resolve the name (ErrNotFound, subject City).
//   - Stage 2: For each arc of the city, drop the reciprocal arc at the neighbor.
//   - Stage 3: Drop the city's own arcs, its name entry and its slot.
//   - Stage 4: Report "Removed City: <name>".
//
// Behavior highlights:
//   - All-or-nothing: a missing city leaves the map untouched; otherwise the
//     city and all incident roads are gone before the call returns.
//
// Complexity:
//   - Time O(Σ deg(neighbor)), Space O(1).
func (m *Map) RemoveCity(name string) error {
	h, ok := m.index[name]
	if !ok {
		return m.fail("RemoveCity", ErrNotFound, cityMissing(name))
	}

	c := &m.cities[h]
	for _, a := range c.arcs {
		m.dropArc(a.To, h)
	}
	m.roads -= len(c.arcs)

	delete(m.index, name)
	*c = city{}
	m.free = append(m.free, h)

	m.reporter.Info("Removed " + SubjectCity + ": " + name)

	return nil
}

// dropArc removes the arc from → to, keeping the order of the remaining arcs.
func (m *Map) dropArc(from, to Handle) bool {
	arcs := m.cities[from].arcs
	for i := range arcs {
		if arcs[i].To == to {
			m.cities[from].arcs = slices.Delete(arcs, i, i+1)
			return true
		}
	}

	return false
}

// HasCity reports whether a city with this name exists.
func (m *Map) HasCity(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Position returns the coordinates of a city.
func (m *Map) Position(name string) (Position, bool) {
	h, ok := m.index[name]
	if !ok {
		return Position{}, false
	}

	return m.cities[h].pos, true
}

// Cities returns all city names sorted ascending.
// Complexity: O(V·log V).
func (m *Map) Cities() []string {
	out := make([]string, 0, len(m.index))
	for name := range m.index {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// CityCount returns the number of live cities.
func (m *Map) CityCount() int { return len(m.index) }
