// Package instance type declarations: the YAML document structure and
// sentinel errors.
package instance

import "errors"

// Sentinel errors returned by Parse, Load, and Build.
var (
	// ErrNoSource indicates a document without a source node name.
	ErrNoSource = errors.New("instance: source is required")

	// ErrNoTarget indicates a document without a target node name.
	ErrNoTarget = errors.New("instance: target is required")

	// ErrNoArcs indicates a document whose arc list is empty.
	ErrNoArcs = errors.New("instance: at least one arc is required")

	// ErrBadArc indicates an arc with a missing endpoint or a self-loop.
	ErrBadArc = errors.New("instance: malformed arc")

	// ErrRaggedAttributes indicates arcs that disagree on their attribute
	// schema: every arc must carry the same deterministic keys and the
	// same random moments.
	ErrRaggedAttributes = errors.New("instance: arcs carry different attribute keys")

	// ErrUnknownEndpoint indicates a source or target name that no arc or
	// nodes entry mentions.
	ErrUnknownEndpoint = errors.New("instance: endpoint not present in graph")
)

// Instance is one Pulse problem: a graph description plus the query
// endpoints and problem constants. Fields map 1:1 to the YAML document.
type Instance struct {
	// Name is a human-readable instance identifier. Optional.
	Name string `yaml:"name"`

	// Source and Target are the query endpoints, by node name.
	Source string `yaml:"source"`
	Target string `yaml:"target"`

	// Constants are problem parameters passed through to the engine via
	// pulse.WithConstants (deadlines, thresholds, limits). Optional.
	Constants map[string]float64 `yaml:"constants"`

	// Nodes pre-registers node names in order, pinning their indices.
	// Optional; endpoints of arcs are registered on first use anyway.
	Nodes []string `yaml:"nodes"`

	// Arcs is the arc list.
	Arcs []ArcSpec `yaml:"arcs"`
}

// ArcSpec describes one directed arc and its attributes.
type ArcSpec struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`

	// Attributes holds the deterministic weights of the arc.
	Attributes map[string]float64 `yaml:"attributes"`

	// Random holds the stochastic weights: variable → moment → value.
	Random map[string]map[string]float64 `yaml:"random"`
}
