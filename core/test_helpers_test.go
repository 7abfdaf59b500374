// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for citymap/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Map.
//   - Check the symmetry invariant in one place.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citymap/core"
)

// Common city names used across core tests.
const (
	CityA = "A"
	CityB = "B"
	CityC = "C"
	CityD = "D"
	CityX = "X"
)

// fixture is a named city position.
type fixture struct {
	Name string
	X, Y float64
}

// newRecordedMap returns a map reporting into a fresh Recorder.
func newRecordedMap() (*core.Map, *core.Recorder) {
	rec := &core.Recorder{}
	return core.NewMap(core.WithReporter(rec)), rec
}

// mustCities adds every fixture and fails the test on the first error.
func mustCities(t *testing.T, m *core.Map, cities ...fixture) {
	t.Helper()
	for _, c := range cities {
		require.NoError(t, m.AddCity(c.Name, c.X, c.Y), "AddCity(%s)", c.Name)
	}
}

// mustRoads adds roads given as consecutive name pairs.
func mustRoads(t *testing.T, m *core.Map, pairs ...string) {
	t.Helper()
	require.Zero(t, len(pairs)%2, "mustRoads needs pairs")
	for i := 0; i < len(pairs); i += 2 {
		require.NoError(t, m.AddRoad(pairs[i], pairs[i+1]), "AddRoad(%s,%s)", pairs[i], pairs[i+1])
	}
}

// requireSymmetric asserts: B ∈ N(A) with w ⇔ A ∈ N(B) with w, for every pair.
func requireSymmetric(t *testing.T, m *core.Map) {
	t.Helper()
	for _, a := range m.Cities() {
		for b, w := range m.Neighbors(a) {
			back, ok := m.Neighbors(b)[a]
			require.True(t, ok, "%s lists %s but not the reverse", a, b)
			require.Equal(t, w, back, "length mismatch %s-%s", a, b)
		}
	}
}
