// Package dijkstra computes shortest-path cost tables toward a target node
// on multi-attribute graphs. It is the preprocessing stage of the Pulse
// engine: every pruning bound the engine uses is a table produced here.
//
// Two entry points:
//
//   - CostsToTarget(g, target, opts...) returns, for every node, the
//     minimum accumulated attribute value of any path from that node to
//     target. The computation runs a single Dijkstra pass on the reversed
//     graph, so one call covers all sources. Unreachable nodes get +Inf.
//   - ShortestPath(g, source, target, opts...) returns one cheapest path
//     between a concrete pair, plus its cost.
//
// The attribute to accumulate is chosen with WithAttribute(key) for
// deterministic attributes or WithRandomAttribute(randVar, moment) for a
// moment of a random variable (e.g. the "mean" of "time"). Accumulation is
// additive, which is exact for deterministic costs and for the mean and
// variance of independent arc variables.
//
// Complexity:
//
//   - Time:  O((V + A) log V) — lazy-decrease-key min-heap; each arc may
//     push one entry, stale entries are skipped on pop.
//   - Space: O(V + A) — the reversed graph copy dominates.
//
// Notes on implementation choices:
//
//   - An upfront O(A) scan rejects arcs with a missing or negative value
//     for the selected attribute, failing fast before any heap work.
//   - WithMaxCost(x) stops exploration once the heap minimum exceeds x.
//
// Errors (sentinel):
//
//   - ErrNilGraph          if the provided graph pointer is nil.
//   - ErrEmptyAttribute    if no attribute was selected.
//   - ErrNodeNotFound      if target (or source) is out of range.
//   - ErrAttributeNotFound if some arc lacks the selected attribute.
//   - ErrNegativeWeight    if some arc has a negative attribute value.
//   - ErrNoPath            if ShortestPath finds the pair disconnected.
package dijkstra
