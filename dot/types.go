// Package dot type declarations: export options and sentinel errors.
package dot

import "errors"

// DefaultName is the DOT graph name used when WithName is not given.
const DefaultName = "pulse"

// Sentinel errors returned by Export.
var (
	// ErrNilGraph indicates that a nil *core.Graph was provided.
	ErrNilGraph = errors.New("dot: graph is nil")

	// ErrEmptyName indicates an empty DOT graph name.
	ErrEmptyName = errors.New("dot: name must be non-empty")
)

// Options holds the export configuration.
type Options struct {
	// Name is the DOT graph name.
	Name string

	// ArcLabel selects a deterministic arc attribute to print as the edge
	// label. Empty leaves edges unlabeled; arcs lacking the attribute
	// stay unlabeled too.
	ArcLabel string

	// Highlight is a node-index path drawn in bold red, typically the
	// result of a search.
	Highlight []int
}

// Option represents a functional option for configuring Export.
type Option func(*Options)

// DefaultOptions returns the configuration used before overrides.
func DefaultOptions() Options {
	return Options{Name: DefaultName}
}

// WithName sets the DOT graph name. Must be non-empty; invalid values
// panic (invalid configuration).
func WithName(name string) Option {
	return func(o *Options) {
		if name == "" {
			panic(ErrEmptyName.Error())
		}
		o.Name = name
	}
}

// WithArcLabel selects the deterministic arc attribute printed on edges.
func WithArcLabel(key string) Option {
	return func(o *Options) {
		o.ArcLabel = key
	}
}

// WithHighlight marks a node-index path for emphasis.
func WithHighlight(path []int) Option {
	return func(o *Options) {
		o.Highlight = path
	}
}
