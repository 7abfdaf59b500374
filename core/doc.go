// Package core provides the in-memory city map: named cities on a 2-D plane
// joined by undirected roads whose length is the Euclidean distance between
// their endpoints.
//
// The Map G = (V,E) keeps the following guarantees at all times:
//
//   - City names are unique and non-empty; positions are finite.
//   - Roads join two distinct live cities; there is at most one road per
//     unordered pair and no self-loops.
//   - Adjacency is symmetric: if B is a neighbor of A with length w, then A is
//     a neighbor of B with length w.
//   - Removing a city eagerly removes every road touching it.
//
// Storage layout:
//
//	index  map[string]Handle   // name → handle
//	cities []city              // handle → {name, position, arcs}
//	free   []Handle            // recycled slots of removed cities
//
// Every city receives an integer Handle on creation. Search code works on
// handles and plain slices, so the hot path never hashes a string. Arcs of a
// city are kept in road insertion order, which makes neighbor iteration (and
// therefore search tie-breaking) deterministic.
//
// Outcome channels:
//
// Every mutation reports through an injected Reporter:
//
//	Info("Added City: A")
//	Error(Diagnostic{Reason: ReasonAlreadyExists, SubjectType: SubjectCity, Subject: "A"})
//
// StreamReporter renders diagnostics as two lines ("Error: <reason>" and
// "<SubjectType>: <subject>"); Recorder captures them in memory for tests.
// The same Diagnostic travels inside the returned *OpError, so callers may
// either watch the channel or branch on errors.Is(err, ErrNotFound) and friends.
//
// Core Methods:
//
//	// City lifecycle
//	AddCity(name string, x, y float64) error   // O(1) amortized
//	RemoveCity(name string) error              // O(Σ deg(neighbors))
//	HasCity(name string) bool                  // O(1)
//	Position(name string) (Position, bool)     // O(1)
//
//	// Road lifecycle
//	AddRoad(a, b string) error                 // O(deg(a))
//	RemoveRoad(a, b string) error              // O(deg(a)+deg(b))
//	HasRoad(a, b string) bool                  // O(deg(a))
//	RoadLength(a, b string) (float64, bool)    // O(deg(a))
//
//	// Query
//	Neighbors(name string) map[string]float64  // O(deg)
//	Cities() []string                          // O(V·log V), sorted
//	Roads() []Road                             // O(E·log E), sorted
//
//	// Handle surface (read-only, used by package astar)
//	Lookup, NameOf, PositionOf, Arcs, HandleBound
//
// Concurrency:
//
// Map performs no internal locking. A host that shares one Map between
// goroutines must hold an exclusive lock for mutations and at least a shared
// lock for queries (see internal/server).
package core
