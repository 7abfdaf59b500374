package scenario

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/katalvlaran/citymap/astar"
	"github.com/katalvlaran/citymap/core"
)

// Kind identifies the operation of a Step.
type Kind int

const (
	KindAddCity Kind = iota
	KindAddRoad
	KindRemoveCity
	KindRemoveRoad
	KindPath
)

func (k Kind) String() string {
	switch k {
	case KindAddCity:
		return blockCity
	case KindAddRoad:
		return blockRoad
	case KindRemoveCity:
		return blockRemoveCity
	case KindRemoveRoad:
		return blockRemoveRoad
	case KindPath:
		return blockPath
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DefaultTolerance is the absolute tolerance of expect_length.
const DefaultTolerance = 1e-6

// Step is one decoded operation.
type Step struct {
	Kind Kind

	// A is the city name (city, remove_city) or the first endpoint.
	A string
	// B is the second endpoint of road, remove_road and path blocks.
	B string

	// X and Y position a new city.
	X, Y float64

	// ExpectError is the expected failure kind, empty when success is expected.
	ExpectError string

	// Path expectations.
	ExpectLength *float64
	Tolerance    float64
	ExpectPaths  [][]string
	Policy       *astar.Policy // nil selects the runner default
	Print        bool

	// Range locates the block in its file.
	Range hcl.Range
}

// Scenario is a decoded file.
type Scenario struct {
	Name  string
	Steps []Step
}

// Error kinds accepted by expect_error.
const (
	ErrKindAlreadyExists = "already_exists"
	ErrKindNotFound      = "not_found"
	ErrKindSelfLoop      = "self_loop"
	ErrKindEmptyName     = "empty_name"
	ErrKindBadPosition   = "bad_position"
	ErrKindNoPath        = "no_path"
)

// errKinds maps an expect_error value to the sentinel it must match.
var errKinds = map[string]error{
	ErrKindAlreadyExists: core.ErrAlreadyExists,
	ErrKindNotFound:      core.ErrNotFound,
	ErrKindSelfLoop:      core.ErrSelfLoop,
	ErrKindEmptyName:     core.ErrEmptyName,
	ErrKindBadPosition:   core.ErrBadPosition,
	ErrKindNoPath:        astar.ErrNoPath,
}

// KindOf names the failure kind of err, or "" when err matches none.
func KindOf(err error) string {
	for _, k := range []string{
		ErrKindAlreadyExists, ErrKindNotFound, ErrKindSelfLoop,
		ErrKindEmptyName, ErrKindBadPosition, ErrKindNoPath,
	} {
		if errors.Is(err, errKinds[k]) {
			return k
		}
	}

	return ""
}
