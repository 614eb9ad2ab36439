// Package dijkstra type declarations: configuration options and sentinel
// errors shared by CostsToTarget and ShortestPath.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was provided.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyAttribute indicates that no attribute key was selected via
	// WithAttribute or WithRandomAttribute.
	ErrEmptyAttribute = errors.New("dijkstra: attribute key is empty")

	// ErrNodeNotFound indicates that the target (or source) node index is
	// out of range for the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrAttributeNotFound indicates that some arc lacks the selected
	// attribute, so accumulated costs would be undefined.
	ErrAttributeNotFound = errors.New("dijkstra: attribute not found on arc")

	// ErrNegativeWeight indicates a negative attribute value; Dijkstra
	// requires non-negative arc costs.
	ErrNegativeWeight = errors.New("dijkstra: negative attribute value encountered")

	// ErrNoPath indicates that ShortestPath found no route between the
	// requested pair.
	ErrNoPath = errors.New("dijkstra: no path between source and target")

	// ErrBadMaxCost indicates that WithMaxCost received a negative or NaN
	// threshold.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Options configures a cost computation.
//
// Attribute – the key to accumulate (deterministic key, or a moment name
// when RandVar is set). RandVar – the random variable whose moment is
// accumulated; empty means deterministic. MaxCost – nodes whose cost to
// the target exceeds this value are not explored (default +Inf).
type Options struct {
	Attribute string
	RandVar   string
	MaxCost   float64
}

// Option represents a functional option for configuring the computation.
type Option func(*Options)

// WithAttribute selects a deterministic attribute to accumulate.
func WithAttribute(key string) Option {
	return func(o *Options) {
		o.Attribute = key
		o.RandVar = ""
	}
}

// WithRandomAttribute selects one moment of a random variable to
// accumulate, e.g. WithRandomAttribute("time", "mean").
func WithRandomAttribute(randVar, moment string) Option {
	return func(o *Options) {
		o.Attribute = moment
		o.RandVar = randVar
	}
}

// WithMaxCost caps exploration: once the cheapest unexplored node exceeds
// max, the search stops. Must be non-negative and not NaN; invalid values
// panic (invalid configuration, same policy as the option constructors of
// the rest of the library).
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns the Options used before functional overrides:
// no attribute selected, deterministic mode, no cost cap.
func DefaultOptions() Options {
	return Options{
		Attribute: "",
		RandVar:   "",
		MaxCost:   math.Inf(1),
	}
}
