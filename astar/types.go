// SPDX-License-Identifier: MIT

package astar

import (
	"errors"
	"io"
	"strconv"
)

// Sentinel errors returned by the path finder.
var (
	// ErrNilMap indicates that a nil *core.Map was passed in.
	ErrNilMap = errors.New("astar: map is nil")

	// ErrNoPath indicates that the search exhausted its frontier without
	// reaching the target.
	ErrNoPath = errors.New("astar: no path")

	// ErrBadPolicy indicates an unknown Policy value.
	ErrBadPolicy = errors.New("astar: unknown relaxation policy")
)

// Policy selects how the search treats a cheaper route to a city that is
// already on the frontier.
type Policy int

const (
	// PolicyRelax re-relaxes open cities; results are always optimal.
	PolicyRelax Policy = iota

	// PolicyFirstOpened fixes a city's g-score the first time it is opened.
	PolicyFirstOpened
)

// String returns the policy name used by the CLI and HTTP layers.
func (p Policy) String() string {
	switch p {
	case PolicyRelax:
		return "relax"
	case PolicyFirstOpened:
		return "first-opened"
	default:
		return "Policy(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePolicy maps "relax" / "first-opened" (and "" as relax) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "relax":
		return PolicyRelax, nil
	case "first-opened":
		return PolicyFirstOpened, nil
	default:
		return 0, ErrBadPolicy
	}
}

// Options configures a single query.
type Options struct {
	Policy Policy // relaxation policy (default PolicyRelax)
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// WithPolicy sets the relaxation policy.
// An unknown value panics to signal invalid configuration early.
func WithPolicy(p Policy) Option {
	if p != PolicyRelax && p != PolicyFirstOpened {
		panic(ErrBadPolicy.Error())
	}

	return func(o *Options) {
		o.Policy = p
	}
}

// DefaultOptions returns Options with PolicyRelax.
func DefaultOptions() Options {
	return Options{Policy: PolicyRelax}
}

// Result is the outcome of a successful query.
type Result struct {
	// Path lists the cities from source to target inclusive.
	Path []string

	// Length is the sum of the road lengths along Path.
	Length float64

	// Legs[i] is the length of the road Path[i] - Path[i+1].
	Legs []float64

	// Expanded counts cities closed by the search.
	Expanded int
}

// WriteTo prints the route one entry per line: each city, with the length of
// the road leading to it on the line before. Numbers use six significant
// digits. It implements io.WriterTo.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	var buf []byte
	for i, name := range r.Path {
		if i > 0 {
			buf = strconv.AppendFloat(buf, r.Legs[i-1], 'g', 6, 64)
			buf = append(buf, '\n')
		}
		buf = append(buf, name...)
		buf = append(buf, '\n')
	}
	n, err := w.Write(buf)

	return int64(n), err
}
