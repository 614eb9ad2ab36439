// Package core declares the Graph and Arc types, sentinel errors, and the
// NewGraph constructor. Method implementations live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates that a zero-length node name was provided.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrDuplicateNode indicates that AddNode was called with a name
	// already bound to an index.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent
	// node name or an out-of-range node index.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLoopNotAllowed indicates an arc with identical endpoints.
	// Pulse enumerates simple paths, so self-loops are never traversable.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Arc represents a directed connection between two nodes, carrying both
// deterministic and random attribute families.
//
// Arcs returned by Graph accessors are live references into the graph and
// must be treated as read-only.
type Arc struct {
	// From is the tail node index.
	From int

	// To is the head node index.
	To int

	// Det holds deterministic attributes, e.g. {"cost": 2.5}.
	Det map[string]float64

	// Rand holds random attributes keyed by variable and then moment,
	// e.g. {"time": {"mean": 2.0, "variance": 3.0}}.
	Rand map[string]map[string]float64
}

// Deterministic returns the deterministic attribute value for key,
// and whether it is present.
func (a *Arc) Deterministic(key string) (float64, bool) {
	v, ok := a.Det[key]

	return v, ok
}

// Random returns the moment value of the given random variable,
// and whether both levels are present.
func (a *Arc) Random(randVar, moment string) (float64, bool) {
	m, ok := a.Rand[randVar]
	if !ok {
		return 0, false
	}
	v, ok := m[moment]

	return v, ok
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithNodeCapacity pre-sizes the node catalogs for n nodes.
// Must be non-negative; negative values panic (invalid configuration).
func WithNodeCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: node capacity must be non-negative")
	}

	return func(g *Graph) { g.capHint = n }
}

// Graph is the in-memory multi-attribute directed graph.
//
// mu guards every field below it. Node indices are dense, assigned in
// insertion order, and never reused.
type Graph struct {
	mu sync.RWMutex

	capHint int // capacity hint from WithNodeCapacity

	names    map[string]int // node name → index
	nodes    []string       // node index → name
	out      []map[int]*Arc // node index → head index → arc
	arcCount int
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1) plus the capacity hint allocation.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.names = make(map[string]int, g.capHint)
	g.nodes = make([]string, 0, g.capHint)
	g.out = make([]map[int]*Arc, 0, g.capHint)

	return g
}
