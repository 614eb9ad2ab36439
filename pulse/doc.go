// Package pulse implements the Pulse algorithm: exact search for shortest
// paths with side constraints over multi-attribute directed graphs.
//
// A pulse is a partial path carrying its accumulated deterministic values
// (cost, consumed resources, elapsed time) and random moment values (mean
// and variance of stochastic travel time). The engine propagates pulses
// depth-first from the source toward the target; before a pulse extends,
// every configured Pruner inspects it and may discard it. Pruning is what
// makes the enumeration tractable:
//
//   - NewBoundPruner: accumulated objective plus the cost-to-target table
//     (computed by Preprocess via the dijkstra package) already exceeds
//     the incumbent — no completion can improve, discard.
//   - NewChanceConstraintPruner: the normal approximation of the path's
//     arrival time cannot meet the required on-time probability, even
//     with best-case moments for the remainder — infeasible, discard.
//   - NewDominancePruner: another pulse reached this node with
//     component-wise equal-or-better accumulated state — dominated,
//     discard.
//   - NewResourceBoundPruner / NewTimeWindowPruner: hard resource caps
//     and latest-service times.
//
// When a pulse reaches the target, the engine records it as the incumbent
// if its objective improves on the best known complete path. When a pulse
// reaches the depth cap, it is suspended into a score-ordered frontier
// queue and resumed after the depth-first phase drains, so deep solutions
// are deferred rather than lost.
//
// Hooks (UpdateFunc, OrderFunc, ScoreFunc, Pruner) make the engine
// problem-agnostic: the same propagation loop solves the constrained
// shortest path, the reliable shortest path, and resource-constrained
// variants, differing only in the attribute schema and the pruner set.
// Sensible defaults cover the common case: additive accumulation of every
// declared weight, and exploration ordered by the objective's
// cost-to-target bound.
//
// Typical usage:
//
//	eng, err := pulse.New(g, src, dst,
//	    pulse.WithDeterministicWeights("cost"),
//	    pulse.WithRandomWeights(map[string][]string{"time": {"mean", "variance"}}),
//	    pulse.WithPreprocessing([]string{"cost"}, map[string][]string{"time": {"mean", "variance"}}),
//	    pulse.WithPruners(
//	        pulse.NewChanceConstraintPruner("time", "mean", "variance", 10, 0.9),
//	        pulse.NewBoundPruner("cost"),
//	    ),
//	)
//	if err != nil { ... }
//	if err = eng.Preprocess(); err != nil { ... }
//	res, err := eng.Run()
//
// or the single-call form pulse.Solve(g, src, dst, opts...).
//
// Complexity: worst case exponential in path length (exact search);
// practical performance comes from the pruner set and bound quality.
// Preprocessing adds one O((V+A) log V) Dijkstra pass per declared table.
//
// Determinism: branching follows OrderFunc with node-index tiebreak, and
// the frontier is FIFO among equal scores, so runs are fully reproducible.
package pulse
