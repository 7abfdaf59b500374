// Package builder assembles deterministic core.Map fixtures from small,
// composable constructors.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildMap:        creates a core.Map and applies constructors in order.
//     – Constructor:     func(*core.Map, builderConfig) error.
//   - Topologies:
//     – Line(n):         n cities on the x-axis joined in sequence.
//     – Grid(rows,cols): a rows×cols lattice with right/bottom roads.
//     – Star(n):         hub "Center" with n-1 leaves on a circle.
//     – RandomMap(n,k):  random integer positions, a chain backbone so the map
//     is connected, plus up to k-1 extra random roads per city.
//   - Options (BuilderOption):
//     – WithIDScheme, WithCityPrefix: city naming.
//     – WithSeed, WithRand:           randomness source for RandomMap.
//     – WithSpacing, WithOffset:      geometry of the deterministic layouts.
//   - ID schemes (IDFn): CityIDFn ("City 0", "City 1", …), DefaultIDFn,
//     SymbolIDFn, ExcelColumnIDFn.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical maps.
//   - Option constructors panic on meaningless arguments; constructors never
//     panic and return sentinel errors wrapped with the method name.
//   - Constructors never provoke a core diagnostic on purpose: random roads
//     that would be self-loops or duplicates are skipped before AddRoad.
package builder
