package scenario_test

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citymap/astar"
	"github.com/katalvlaran/citymap/internal/logging"
	"github.com/katalvlaran/citymap/internal/scenario"
)

// runFile decodes and runs testdata/name with separate info and diagnostic
// buffers.
func runFile(t *testing.T, name string) (scenario.Report, *bytes.Buffer, *bytes.Buffer, error) {
	t.Helper()
	s, err := scenario.ParseFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	var out, errw bytes.Buffer
	r, err := scenario.NewRunner(scenario.Config{Out: &out, Err: &errw})
	require.NoError(t, err)
	rep, runErr := r.Run(s)

	return rep, &out, &errw, runErr
}

func TestRun_PassingFiles(t *testing.T) {
	for _, name := range []string{
		"two_cities.hcl",
		"line_dead_end.hcl",
		"diamond.hcl",
		"square.hcl",
		"errors.hcl",
		"australia.hcl",
	} {
		t.Run(name, func(t *testing.T) {
			rep, _, _, err := runFile(t, name)
			require.NoError(t, err)
			assert.Zero(t, rep.Failed)
			assert.NotZero(t, rep.Steps)
		})
	}
}

func TestRun_TwoCitiesOutput(t *testing.T) {
	rep, out, errw, err := runFile(t, "two_cities.hcl")
	require.NoError(t, err)

	assert.Equal(t, "Added City: A\n"+
		"Added City: B\n"+
		"Added Road: A-B\n"+
		"A\n10\nB\n"+
		"From A to B: 10km\n"+
		"From A to A: 0km\n", out.String())
	assert.Empty(t, errw.String())
	assert.Equal(t, 2, rep.Map.CityCount())
	assert.Equal(t, 1, rep.Map.RoadCount())
}

func TestRun_ErrorDiagnostics(t *testing.T) {
	rep, _, errw, err := runFile(t, "errors.hcl")
	require.NoError(t, err)

	assert.Equal(t, "Error: already exists\nCity: A\n"+
		"Error: doesn't exist\nCity: Nowhere\n"+
		"Error: doesn't exist\nCity: Nowhere\n"+
		"Error: must be different\nRoad: A - A\n"+
		"Error: must not be empty\nCity: \n"+
		"Error: already exists\nRoad: B - A\n"+
		"Error: doesn't exist\nCity: B\n"+
		"Error: doesn't exist\nPath: A - C\n"+
		"Error: doesn't exist\nCity: B\n", errw.String())
	assert.ElementsMatch(t, []string{"A", "C"}, rep.Map.Cities())
}

func TestRun_Australia(t *testing.T) {
	rep, out, _, err := runFile(t, "australia.hcl")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "From Brisbane to Perth: 4454.07km\n")
	assert.Contains(t, out.String(), "Removed City: Sydney\nFrom Brisbane to Melbourne: 8337.58km\n")
	assert.Contains(t, out.String(), "From Brisbane to Alice Springs: 4036.56km\nFrom Brisbane to Melbourne: 6071.73km\n")
	assert.Contains(t, out.String(), "Removed Road: Darwin-Perth\n"+
		"Brisbane\n2749.93\nDarwin\n1286.63\nAlice Springs\n1332.11\nAdelaide\n2262.57\nPerth\n"+
		"From Brisbane to Perth: 7631.25km\n")
	assert.Equal(t, 8, rep.Map.CityCount())
	assert.Equal(t, 7, rep.Map.RoadCount())
}

func TestRun_AggregatesFailures(t *testing.T) {
	rep, out, _, err := runFile(t, "failing.hcl")
	require.Error(t, err)
	assert.ErrorIs(t, err, scenario.ErrExpectation)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 4)
	assert.Equal(t, 4, rep.Failed)
	assert.Equal(t, 8, rep.Steps)

	assert.Contains(t, merr.Errors[0].Error(), `city "A"`)
	assert.Contains(t, merr.Errors[0].Error(), "want success, got already_exists")
	assert.Contains(t, merr.Errors[1].Error(), "want not_found, got already_exists")
	assert.Contains(t, merr.Errors[2].Error(), "length 5, want 6")
	assert.Contains(t, merr.Errors[3].Error(), "path [A B], want one of [[B A]]")

	// Every step ran, including those after the first failure.
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("From A to B: 5km\n")))
}

func TestParse_InvalidFile(t *testing.T) {
	_, err := scenario.ParseFile(filepath.Join("testdata", "invalid.hcl"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid position")
	assert.Contains(t, err.Error(), "Invalid policy")
	assert.Contains(t, err.Error(), "Invalid expect_error")

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 3, "one entry per invalid block")
}

func TestParse_MissingFile(t *testing.T) {
	_, err := scenario.ParseFile(filepath.Join("testdata", "nope.hcl"))
	assert.Error(t, err)
}

func TestParse_Steps(t *testing.T) {
	s, err := scenario.Parse("inline.hcl", []byte(`
locals {
  unit = 2
  far  = max(local.unit * 3, 5)
}
city "A" { at = [0, 0] }
city "B" { at = [local.far, abs(-1)] }
road "A" "B" {}
path "A" "B" {
  policy    = "first-opened"
  tolerance = 0.5
}
remove_road "A" "B" {}
remove_city "B" { expect_error = "not_found" }
`))
	require.NoError(t, err)
	require.Len(t, s.Steps, 6)

	kinds := make([]scenario.Kind, len(s.Steps))
	for i, st := range s.Steps {
		kinds[i] = st.Kind
	}
	assert.Equal(t, []scenario.Kind{
		scenario.KindAddCity, scenario.KindAddCity, scenario.KindAddRoad,
		scenario.KindPath, scenario.KindRemoveRoad, scenario.KindRemoveCity,
	}, kinds)

	assert.Equal(t, 6.0, s.Steps[1].X)
	assert.Equal(t, 1.0, s.Steps[1].Y)

	p := s.Steps[3]
	require.NotNil(t, p.Policy)
	assert.Equal(t, astar.PolicyFirstOpened, *p.Policy)
	assert.Equal(t, 0.5, p.Tolerance)
	assert.Nil(t, p.ExpectLength)
	assert.Equal(t, 9, p.Range.Start.Line)

	assert.Zero(t, s.Steps[2].Tolerance, "only path steps carry a tolerance")
	assert.Equal(t, scenario.ErrKindNotFound, s.Steps[5].ExpectError)
	assert.Equal(t, "remove_city", s.Steps[5].Kind.String())
}

func TestParse_DuplicateLocal(t *testing.T) {
	_, err := scenario.Parse("dup.hcl", []byte(`
locals {
  a = 1
}
locals {
  a = 2
}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Duplicate local value")
}

func TestParse_UnknownBlock(t *testing.T) {
	_, err := scenario.Parse("bad.hcl", []byte(`teleport "A" {}`))
	assert.Error(t, err)
}

func TestRunner_ConfigValidation(t *testing.T) {
	_, err := scenario.NewRunner(scenario.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output writer has not been provided")

	_, err = scenario.NewRunner(scenario.Config{Out: &bytes.Buffer{}, Policy: astar.Policy(9)})
	require.Error(t, err)
	assert.ErrorIs(t, err, astar.ErrBadPolicy)
}

func TestRunner_DefaultPolicyAndClock(t *testing.T) {
	s, err := scenario.Parse("detour.hcl", []byte(`
city "S" { at = [0, 0] }
city "N" { at = [10, 3] }
city "W" { at = [4, 4.5] }
city "M" { at = [8, 0] }
city "X" { at = [9, 0] }
city "T" { at = [10, 0] }
road "S" "N" {}
road "S" "W" {}
road "N" "X" {}
road "W" "M" {}
road "M" "X" {}
road "X" "T" {}
path "S" "T" { expect_path = [["S", "N", "X", "T"]] }
path "S" "T" {
  policy      = "relax"
  expect_path = [["S", "W", "M", "X", "T"]]
}
`))
	require.NoError(t, err)

	clk := testclock.NewClock(time.Unix(0, 0))
	r, err := scenario.NewRunner(scenario.Config{
		Out:    &bytes.Buffer{},
		Policy: astar.PolicyFirstOpened,
		Clock:  clk,
	})
	require.NoError(t, err)

	rep, err := r.Run(s)
	require.NoError(t, err)
	assert.Zero(t, rep.Elapsed, "a stopped clock measures nothing")
}

func TestRunner_DebugLogsMapEvents(t *testing.T) {
	s, err := scenario.Parse("log.hcl", []byte(`
city "A" { at = [0, 0] }
remove_city "Z" { expect_error = "not_found" }
`))
	require.NoError(t, err)

	for _, tc := range []struct {
		level  string
		logged bool
	}{{"debug", true}, {"info", false}} {
		var out, logs bytes.Buffer
		r, err := scenario.NewRunner(scenario.Config{
			Out:    &out,
			Logger: logging.New(tc.level, logging.FormatJSON, &logs),
		})
		require.NoError(t, err)
		_, err = r.Run(s)
		require.NoError(t, err)

		assert.Equal(t, "Added City: A\nError: doesn't exist\nCity: Z\n", out.String(), tc.level)
		assert.Equal(t, tc.logged, bytes.Contains(logs.Bytes(), []byte(`"msg":"Added City: A"`)), tc.level)
		assert.Equal(t, tc.logged, bytes.Contains(logs.Bytes(), []byte(`"subject":"Z"`)), tc.level)
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, scenario.ErrKindNoPath, scenario.KindOf(astar.ErrNoPath))
	assert.Equal(t, "", scenario.KindOf(nil))
}
