// Package core provides the multi-attribute directed Graph that every
// pulsekit algorithm operates on.
//
// The Graph G = (V,A) is a directed graph whose arcs carry two attribute
// families instead of a single scalar weight:
//
//   - Deterministic attributes: map[string]float64
//     (e.g. "cost", "distance", "energy")
//   - Random attributes: map[string]map[string]float64, keyed by random
//     variable and then by moment
//     (e.g. "time" → {"mean": 2.0, "variance": 3.0})
//
// Nodes are addressed two ways at once:
//
//   - by string name, the stable external identifier ("depot", "s", …)
//   - by dense int index (0..n-1 in insertion order), which lets the
//     preprocessing and dominance layers use plain slices instead of maps
//
// Behavior highlights:
//
//   - Thread-safe: a single sync.RWMutex guards all state; concurrent
//     readers run in parallel, writers are exclusive.
//   - Deterministic iteration: Nodes() is sorted by index, OutArcs()
//     ascending by head index.
//   - Attribute ownership: AddArc copies the attribute maps it receives,
//     so later caller-side mutation cannot corrupt the graph.
//   - Last write wins: adding an arc between the same endpoints replaces
//     the previous one (parallel arcs carry no meaning for Pulse).
//   - Self-loops are rejected: Pulse enumerates simple paths only.
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(name string) (int, error)     // O(1), ErrDuplicateNode on reuse
//	EnsureNode(name string) int           // O(1), find-or-add
//	NodeIndex(name string) (int, bool)    // O(1)
//	NodeName(idx int) (string, error)     // O(1)
//	HasNode(name string) bool             // O(1)
//
//	// Arc lifecycle & query
//	AddArc(src, dst string, det, rnd …) (int, int, error) // O(1)
//	Arc(from, to int) (*Arc, bool)        // O(1)
//	OutArcs(from int) ([]*Arc, error)     // O(d log d), sorted by head
//
//	// Whole-graph views
//	Nodes() []string                      // O(V), index order
//	NodeCount() int / ArcCount() int      // O(1)
//	Reverse() *Graph                      // O(V+A), arc-reversed copy
//	AttributeKeys() ([]string, map[string][]string) // keys of first arc
//
// Errors:
//
//	ErrEmptyNodeName  – zero-length node name
//	ErrDuplicateNode  – AddNode with a name already present
//	ErrNodeNotFound   – missing node name or out-of-range index
//	ErrLoopNotAllowed – arc with src == dst
package core
