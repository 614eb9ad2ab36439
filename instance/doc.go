// Package instance loads Pulse problem instances from YAML documents.
//
// An instance bundles everything one query needs: the arc list with its
// deterministic and random attributes, the source and target node names,
// and the problem constants (deadlines, reliability thresholds, resource
// limits) that pruners consume. The format:
//
//	name: corridor
//	source: s
//	target: e
//	constants:
//	  deadline: 10
//	  alpha: 0.99
//	nodes: [s, e]          # optional; arcs register endpoints anyway
//	arcs:
//	  - from: s
//	    to: "1"
//	    attributes: {cost: 2}
//	    random:
//	      time: {mean: 2, variance: 3}
//
// Load (or Parse, for in-memory documents) validates the document and
// Build materializes it into a core.Graph plus resolved endpoint
// indices. Validation enforces a uniform attribute schema across arcs:
// every arc must carry the same deterministic keys and the same random
// moments, since the engine accumulates each declared weight on every
// arc it traverses.
package instance
