// Package pulsekit implements the Pulse algorithm family for shortest-path
// problems with side constraints — deterministic costs, stochastic travel
// times, resource caps and time windows — over directed multi-attribute
// graphs.
//
// The Pulse algorithm enumerates partial paths ("pulses") depth-first and
// keeps the search tractable with three pruning families:
//
//	• bounds      — cost-to-target tables from a reverse Dijkstra pass
//	• feasibility — chance constraints, resource caps, time windows
//	• dominance   — per-node labels discarding pulses that cannot improve
//
// Everything is organized under five subpackages:
//
//	core/     — the multi-attribute directed Graph: nodes, arcs,
//	            deterministic and random arc attributes
//	dijkstra/ — one-to-all cost tables toward a target (preprocessing)
//	            and plain single-pair shortest paths
//	pulse/    — the Pulse engine: propagation, pruners, frontier queue,
//	            incumbent tracking
//	instance/ — problem instances (graph + query) loaded from YAML
//	dot/      — Graphviz DOT export of graphs and solution paths
//
// Quick sketch: build a graph with per-arc cost and travel-time moments,
// preprocess bounds toward the target, then run the engine with a bound
// pruner and a chance-constraint pruner to obtain the cheapest path whose
// on-time probability meets a reliability threshold.
package pulsekit
