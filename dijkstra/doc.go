// Package dijkstra computes single-source distance tables on a core.Map.
//
// Overview:
//
//   - Dijkstra settles every city reachable from a source in order of
//     increasing road distance and returns the distance to each of them.
//   - It is the uninformed counterpart of package astar: no heuristic, no
//     goal, the whole reachable component (or the part within MaxDistance)
//     is explored.
//
// When to use:
//
//   - Isochrone-style questions ("which cities lie within 500 km of X").
//   - As an oracle for A*: both must agree on every reachable pair.
//
// Key features:
//
//   - Functional options: Source, WithReturnPath, WithMaxDistance.
//   - Lazy decrease-key min-heap over integer handles.
//   - Unreachable cities are absent from the result rather than mapped to
//     a sentinel distance.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package dijkstra
