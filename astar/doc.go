// Package astar answers shortest-path queries over a core.Map with the A*
// search algorithm.
//
// The heuristic is the straight-line distance from a city to the target.
// Road lengths are themselves straight-line distances, so the heuristic never
// overestimates (admissible) and obeys the triangle inequality (consistent):
// the first time the target leaves the frontier its g-score is optimal, and
// the search stops right there.
//
// Algorithm:
//
//  1. Validate: the map must be non-nil and both endpoints must exist.
//     A missing endpoint is reported as a City diagnostic before any search
//     work starts.
//  2. g[source] = 0; push source with f = h(source).
//  3. Pop the lowest f (ties: earliest push first). Skip it if already
//     closed; otherwise close it. If it is the target, rebuild the path by
//     walking predecessors back to the source.
//  4. For every arc to a city that is not closed, compute g' = g[u] + w and
//     open or update the neighbor according to the Policy.
//  5. If the frontier empties, report "Path: <source> - <target>" as
//     "doesn't exist" and return ErrNoPath.
//
// Relaxation policies:
//
//	PolicyRelax        // default; a cheaper route to an open city updates its
//	                   // g-score and predecessor and re-pushes it (lazy
//	                   // decrease-key). Always returns a minimum-length path.
//	PolicyFirstOpened  // once a city is opened its g-score and predecessor
//	                   // are fixed. Matches the historical behavior; may
//	                   // return a longer path on graphs where a city is first
//	                   // discovered through a detour.
//
// All scratch state (g-scores, predecessors, open/closed flags, frontier) is
// indexed by core.Handle, allocated per query and dropped on return.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) in the worst case under lazy decrease-key.
//
// The package performs no locking; see core for the concurrency contract.
package astar
