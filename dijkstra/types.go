package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that no source city was given.
	ErrEmptySource = errors.New("dijkstra: source city is empty")

	// ErrNilMap indicates that a nil *core.Map was passed to Dijkstra.
	ErrNilMap = errors.New("dijkstra: map is nil")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting city (must be non-empty and present in the map).
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – cities farther than this are neither settled nor returned.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      string
	ReturnPath  bool
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting city.
func Source(name string) Option {
	return func(o *Options) {
		o.Source = name
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps the explored radius.
// Panics on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the defaults for the given source:
// no predecessor map and no distance cap.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
