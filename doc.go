// Package citymap is an in-memory road map of named cities with
// shortest-route queries.
//
// What is citymap?
//
//	A small library and command set that brings together:
//		• A graph store: cities at planar positions, undirected roads whose
//		  length is the straight-line distance between their ends
//		• A* search with the Euclidean heuristic and two relaxation policies
//		• Dijkstra distance tables for "everything within r" questions
//		• Map constructors: Line, Grid, Star, RandomMap
//		• HCL scenario files, an HTTP API and a CLI on top
//
// Every mutation reports its outcome twice: as an error value for callers
// and as a one-line message on an injected core.Reporter ("Added City: A",
// "Error: already exists" / "City: A").
//
// Packages:
//
//	core/       — Map, cities, roads, reporters, sentinel errors
//	astar/      — FindPath, ShortestPath, Distance, relaxation policies
//	dijkstra/   — single-source distance tables
//	builder/    — deterministic map constructors and naming schemes
//	internal/   — scenario runner, HTTP server, CLI parsing, logging
//	cmd/citymap — run | bench | serve
//	examples/   — runnable walk-throughs
//
// Quick start:
//
//	m := core.NewMap(core.WithReporter(core.NewStreamReporter(os.Stdout, os.Stderr)))
//	_ = m.AddCity("A", 0, 0)
//	_ = m.AddCity("B", 3, 4)
//	_ = m.AddRoad("A", "B")
//	d, _ := astar.Distance(m, "A", "B") // 5
//
// A Map is not safe for concurrent use; the HTTP server serialises access
// with its own lock.
package citymap
