// SPDX-License-Identifier: MIT
//
// File: methods_roads.go
// Role: Road lifecycle & queries: AddRoad/RemoveRoad/HasRoad/RoadLength/Roads/RoadCount.
//
// Determinism:
//   - Roads() returns roads sorted by (A, B) with A < B.
//   - Arcs are appended in insertion order on both endpoints.

package core

import "sort"

// AddRoad joins two existing cities with a road whose length is their
// straight-line distance.
//
// Steps:
//  1. a == b ⇒ ErrSelfLoop (subject Road "a - b").
//  2. Missing a, then missing b ⇒ ErrNotFound (subject City).
//  3. Road present in either direction ⇒ ErrAlreadyExists (subject Road).
//  4. Compute the length once, append a→b and b→a arcs with that length.
//  5. Report "Added Road: a-b".
//
// Complexity: O(deg(a)) for the duplicate check, O(1) amortized insert.
func (m *Map) AddRoad(a, b string) error {
	const op = "AddRoad"

	// 1) Self-loop check precedes existence checks.
	if a == b {
		return m.fail(op, ErrSelfLoop, Diagnostic{Reason: ReasonMustDiffer, SubjectType: SubjectRoad, Subject: PairSubject(a, b)})
	}

	// 2) Both endpoints must exist.
	ha, ok := m.index[a]
	if !ok {
		return m.fail(op, ErrNotFound, cityMissing(a))
	}
	hb, ok := m.index[b]
	if !ok {
		return m.fail(op, ErrNotFound, cityMissing(b))
	}

	// 3) Adjacency is symmetric, so one side is enough.
	if m.arcIndex(ha, hb) >= 0 {
		return m.fail(op, ErrAlreadyExists, Diagnostic{Reason: ReasonAlreadyExists, SubjectType: SubjectRoad, Subject: PairSubject(a, b)})
	}

	// 4) Install both directions with the same cached length.
	length := Distance(m.cities[ha].pos, m.cities[hb].pos)
	m.cities[ha].arcs = append(m.cities[ha].arcs, Arc{To: hb, Length: length})
	m.cities[hb].arcs = append(m.cities[hb].arcs, Arc{To: ha, Length: length})
	m.roads++

	m.reporter.Info("Added " + SubjectRoad + ": " + a + "-" + b)

	return nil
}

// RemoveRoad deletes the road between a and b.
//
// Steps:
//  1. Missing a, then missing b ⇒ ErrNotFound (subject City).
//  2. Road absent in either direction ⇒ ErrNotFound (subject Road "a - b").
//  3. Drop both arcs; report "Removed Road: a-b".
//
// Complexity: O(deg(a) + deg(b)).
func (m *Map) RemoveRoad(a, b string) error {
	const op = "RemoveRoad"

	ha, ok := m.index[a]
	if !ok {
		return m.fail(op, ErrNotFound, cityMissing(a))
	}
	hb, ok := m.index[b]
	if !ok {
		return m.fail(op, ErrNotFound, cityMissing(b))
	}
	if m.arcIndex(ha, hb) < 0 || m.arcIndex(hb, ha) < 0 {
		return m.fail(op, ErrNotFound, Diagnostic{Reason: ReasonDoesntExist, SubjectType: SubjectRoad, Subject: PairSubject(a, b)})
	}

	m.dropArc(ha, hb)
	m.dropArc(hb, ha)
	m.roads--

	m.reporter.Info("Removed " + SubjectRoad + ": " + a + "-" + b)

	return nil
}

// arcIndex returns the position of the arc from → to, or -1.
func (m *Map) arcIndex(from, to Handle) int {
	for i, a := range m.cities[from].arcs {
		if a.To == to {
			return i
		}
	}

	return -1
}

// HasRoad reports whether a road joins a and b.
func (m *Map) HasRoad(a, b string) bool {
	_, ok := m.RoadLength(a, b)
	return ok
}

// RoadLength returns the cached length of the road between a and b.
func (m *Map) RoadLength(a, b string) (float64, bool) {
	ha, ok := m.index[a]
	if !ok {
		return 0, false
	}
	hb, ok := m.index[b]
	if !ok {
		return 0, false
	}
	i := m.arcIndex(ha, hb)
	if i < 0 {
		return 0, false
	}

	return m.cities[ha].arcs[i].Length, true
}

// Roads returns every road once, with A < B, sorted by (A, B).
// Complexity: O(E·log E).
func (m *Map) Roads() []Road {
	out := make([]Road, 0, m.roads)
	for h := range m.cities {
		c := &m.cities[h]
		if !c.live {
			continue
		}
		for _, a := range c.arcs {
			other := m.cities[a.To].name
			if c.name < other {
				out = append(out, Road{A: c.name, B: other, Length: a.Length})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}

// RoadCount returns the number of undirected roads.
func (m *Map) RoadCount() int { return m.roads }
